package document

import (
	"fmt"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// Operation is the descriptor of one method on a resource.
type Operation struct {
	Summary       string
	Description   string
	Authenticated bool
	Tag           string
	Parameters    []*openapi.Parameter
	RequestBody   *openapi.RequestBody
	Responses     map[int]*openapi.Response
}

// PathParameters returns the names of parameters located in the path.
func (o *Operation) PathParameters() []string {
	var names []string
	for _, p := range o.Parameters {
		if p.In == "path" {
			names = append(names, p.Name)
		}
	}
	return names
}

// Route builds an operation that requires no authentication.
func Route(summary, description string, fragments ...Fragment) (*Operation, error) {
	return newOperation(summary, description, false, fragments)
}

// RouteAuthenticated builds an operation that requires a session.
func RouteAuthenticated(summary, description string, fragments ...Fragment) (*Operation, error) {
	return newOperation(summary, description, true, fragments)
}

func newOperation(summary, description string, authenticated bool, fragments []Fragment) (*Operation, error) {
	op, err := Merge(fragments...)
	if err != nil {
		return nil, fmt.Errorf("route %q: %w", summary, err)
	}
	op.Summary = summary
	op.Description = description
	op.Authenticated = authenticated
	return op, nil
}
