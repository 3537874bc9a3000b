package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// Validate checks the cross-references that declarations cannot check on
// their own: path placeholders against path parameters, schema references
// against the registry, examples against their schemas, and that every
// operation is complete. All problems are returned joined.
func (d *Document) Validate() error {
	var errs []error

	for _, r := range d.resources {
		placeholders := r.Placeholders()
		for _, m := range r.Methods() {
			errs = append(errs, d.validateOperation(r.Path, m, placeholders, r.Operations[m])...)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(d.schemas)) {
		walkSchema(d.schemas[name], func(s *openapi.Schema) {
			if err := d.checkRef(s); err != nil {
				errs = append(errs, fmt.Errorf("schema %s: %w", name, err))
			}
			if s.Example != nil {
				if err := d.checkExample(s); err != nil {
					errs = append(errs, fmt.Errorf("schema %s: %w", name, err))
				}
			}
		})
	}

	return errors.Join(errs...)
}

func (d *Document) validateOperation(path, method string, placeholders []string, op *Operation) []error {
	var errs []error
	where := strings.ToUpper(method) + " " + path

	params := op.PathParameters()
	for _, name := range placeholders {
		if !slices.Contains(params, name) {
			errs = append(errs, fmt.Errorf("%s: %w: %s", where, ErrMissingPathParameter, name))
		}
	}
	for _, name := range params {
		if !slices.Contains(placeholders, name) {
			errs = append(errs, fmt.Errorf("%s: %w: %s", where, ErrUnknownPathParameter, name))
		}
	}

	if len(op.Responses) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", where, ErrNoResponses))
	}
	if op.Authenticated && len(d.security) == 0 {
		errs = append(errs, fmt.Errorf("%s: %w", where, ErrNoSecurityScheme))
	}

	check := func(s *openapi.Schema) {
		walkSchema(s, func(s *openapi.Schema) {
			if err := d.checkRef(s); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		})
	}
	for _, p := range op.Parameters {
		check(p.Schema)
	}
	if op.RequestBody != nil {
		for _, mt := range op.RequestBody.Content {
			check(mt.Schema)
		}
	}
	for _, resp := range op.Responses {
		for _, mt := range resp.Content {
			check(mt.Schema)
		}
	}

	return errs
}

func (d *Document) checkRef(s *openapi.Schema) error {
	if s.Ref == "" {
		return nil
	}
	name, ok := strings.CutPrefix(s.Ref, openapi.SchemaRefPrefix)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnresolvedRef, s.Ref)
	}
	if _, ok := d.schemas[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnresolvedRef, name)
	}
	return nil
}

// checkExample validates an example against the schema that carries it.
// The component registry is attached to the root so local $refs resolve.
func (d *Document) checkExample(s *openapi.Schema) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	delete(root, "example")
	root["components"] = map[string]any{"schemas": d.schemas}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(root),
		gojsonschema.NewGoLoader(s.Example),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExample, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidExample, strings.Join(msgs, "; "))
	}
	return nil
}

// walkSchema visits s and every schema nested inside it.
func walkSchema(s *openapi.Schema, visit func(*openapi.Schema)) {
	if s == nil {
		return
	}
	visit(s)
	for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
		walkSchema(s.Properties[name], visit)
	}
	walkSchema(s.Items, visit)
	walkSchema(s.AdditionalProperties, visit)
	for _, c := range s.OneOf {
		walkSchema(c, visit)
	}
	for _, c := range s.AllOf {
		walkSchema(c, visit)
	}
}
