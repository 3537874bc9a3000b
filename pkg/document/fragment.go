package document

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// Kind identifies the operation field a fragment fills.
type Kind string

const (
	KindParameters  Kind = "parameters"
	KindRequestBody Kind = "requestBody"
	KindResponses   Kind = "responses"
)

// Fragment is one piece of an operation. The concrete variants are
// ParameterFragment, BodyFragment and ResponseFragment.
type Fragment interface {
	Kind() Kind
	apply(op *Operation)
}

// ParameterFragment contributes the full parameter list of an operation.
type ParameterFragment struct {
	Parameters []*openapi.Parameter
}

func (ParameterFragment) Kind() Kind { return KindParameters }

func (f ParameterFragment) apply(op *Operation) {
	op.Parameters = f.Parameters
}

// BodyFragment contributes the request body of an operation.
type BodyFragment struct {
	RequestBody *openapi.RequestBody
}

func (BodyFragment) Kind() Kind { return KindRequestBody }

func (f BodyFragment) apply(op *Operation) {
	op.RequestBody = f.RequestBody
}

// ResponseFragment contributes the responses of an operation keyed by status.
type ResponseFragment struct {
	Responses map[int]*openapi.Response
}

func (ResponseFragment) Kind() Kind { return KindResponses }

func (f ResponseFragment) apply(op *Operation) {
	op.Responses = f.Responses
}

// Ref returns a reference to a named component schema.
func Ref(name string) *openapi.Schema {
	return openapi.SchemaRef(name)
}

// Parameter describes one path parameter.
func Parameter(name, description string, schema *openapi.Schema) *openapi.Parameter {
	return openapi.PathParam(name, description, schema)
}

// Parameters bundles path parameters into a single fragment. All parameters
// of an operation belong in one fragment; two parameter fragments collide.
func Parameters(params ...*openapi.Parameter) ParameterFragment {
	return ParameterFragment{Parameters: params}
}

// Body describes a required JSON request body.
func Body(description string, schema *openapi.Schema) BodyFragment {
	return BodyFragment{RequestBody: openapi.RequestBodyJSON(description, schema, true)}
}

// Success describes the 200 response. A nil schema yields a response without
// content.
func Success(description string, schema *openapi.Schema) ResponseFragment {
	return ResponseFragment{
		Responses: map[int]*openapi.Response{
			http.StatusOK: openapi.ResponseJSON(description, schema),
		},
	}
}

// Merge combines fragments into an operation. Each kind may appear once;
// a repeated kind returns ErrFragmentCollision instead of replacing the
// earlier fragment.
func Merge(fragments ...Fragment) (*Operation, error) {
	op := &Operation{}
	seen := make(map[Kind]bool, len(fragments))

	for _, f := range fragments {
		kind := f.Kind()
		if seen[kind] {
			return nil, fmt.Errorf("%w: %s declared twice", ErrFragmentCollision, kind)
		}
		seen[kind] = true
		f.apply(op)
	}

	return op, nil
}
