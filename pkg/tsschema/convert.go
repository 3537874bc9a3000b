package tsschema

import (
	"fmt"
	"reflect"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

type convertError struct {
	pos lexer.Position
	err error
}

func (e *convertError) Error() string { return e.err.Error() }
func (e *convertError) Unwrap() error { return e.err }

func errorAt(pos lexer.Position, format string, args ...any) error {
	return &convertError{pos: pos, err: fmt.Errorf(format, args...)}
}

type converter struct{}

func (c *converter) declaration(d *Declaration) (*openapi.Schema, error) {
	doc, err := parseDoc(d.Doc)
	if err != nil {
		return nil, &convertError{pos: d.Pos, err: err}
	}

	var schema *openapi.Schema
	if d.Interface != nil {
		schema, err = c.iface(d.Interface)
	} else {
		schema, err = c.typ(d.Alias.Type)
	}
	if err != nil {
		return nil, err
	}

	return doc.applyTo(schema), nil
}

func (c *converter) iface(i *Interface) (*openapi.Schema, error) {
	obj, err := c.object(i.Members)
	if err != nil {
		return nil, err
	}
	if len(i.Extends) == 0 {
		return obj, nil
	}

	all := make([]*openapi.Schema, 0, len(i.Extends)+1)
	for _, base := range i.Extends {
		all = append(all, openapi.SchemaRef(base))
	}
	return &openapi.Schema{AllOf: append(all, obj)}, nil
}

func (c *converter) object(members []*Member) (*openapi.Schema, error) {
	obj := &openapi.Schema{
		Type:       "object",
		Properties: make(map[string]*openapi.Schema, len(members)),
	}

	for _, m := range members {
		if _, dup := obj.Properties[m.Name]; dup {
			return nil, errorAt(m.Pos, "duplicate member %q", m.Name)
		}

		prop, err := c.typ(m.Type)
		if err != nil {
			return nil, err
		}

		doc, err := parseDoc(m.Doc)
		if err != nil {
			return nil, &convertError{pos: m.Pos, err: fmt.Errorf("member %s: %w", m.Name, err)}
		}

		obj.Properties[m.Name] = doc.applyTo(prop)
		if !m.Optional {
			obj.Required = append(obj.Required, m.Name)
		}
	}

	return obj, nil
}

func (c *converter) typ(t *Type) (*openapi.Schema, error) {
	var (
		members  []*openapi.Schema
		nullable bool
	)

	for _, p := range t.Union {
		if len(p.Dims) == 0 && p.Primary.Ref != nil && p.Primary.Ref.ident() == "null" {
			nullable = true
			continue
		}
		s, err := c.postfix(p)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}

	if len(members) == 0 {
		return nil, errorAt(t.Pos, "%w: null must be part of a union", ErrUnsupportedType)
	}

	var schema *openapi.Schema
	switch {
	case len(members) == 1:
		schema = members[0]
	case literalUnion(members):
		schema = &openapi.Schema{Type: members[0].Type}
		for _, m := range members {
			schema.Enum = append(schema.Enum, m.Enum...)
		}
	default:
		schema = &openapi.Schema{OneOf: members}
	}

	if nullable {
		if schema.IsRef() {
			schema = &openapi.Schema{AllOf: []*openapi.Schema{schema}}
		}
		schema.Nullable = true
		if len(schema.Enum) > 0 {
			schema.Enum = append(schema.Enum, nil)
		}
	}

	return schema, nil
}

func (c *converter) postfix(p *Postfix) (*openapi.Schema, error) {
	s, err := c.primary(p.Primary)
	if err != nil {
		return nil, err
	}
	for range p.Dims {
		s = &openapi.Schema{Type: "array", Items: s}
	}
	return s, nil
}

func (c *converter) primary(p *Primary) (*openapi.Schema, error) {
	switch {
	case p.String != nil:
		return &openapi.Schema{Type: "string", Enum: []any{*p.String}}, nil
	case p.Number != nil:
		return &openapi.Schema{Type: "number", Enum: []any{*p.Number}}, nil
	case p.Object != nil:
		return c.object(p.Object.Members)
	case p.Tuple != nil:
		return c.tuple(p)
	case p.Group != nil:
		return c.typ(p.Group)
	default:
		return c.ref(p.Pos, p.Ref)
	}
}

func (c *converter) tuple(p *Primary) (*openapi.Schema, error) {
	elems := p.Tuple.Elems
	if len(elems) == 0 {
		return nil, errorAt(p.Pos, "%w: empty tuple", ErrUnsupportedType)
	}

	items := make([]*openapi.Schema, 0, len(elems))
	for _, e := range elems {
		s, err := c.typ(e)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}

	n := len(items)
	schema := &openapi.Schema{Type: "array", MinItems: &n, MaxItems: &n}
	if uniform(items) {
		schema.Items = items[0]
	} else {
		schema.Items = &openapi.Schema{OneOf: items}
	}
	return schema, nil
}

func (c *converter) ref(pos lexer.Position, r *Ref) (*openapi.Schema, error) {
	name := r.ident()

	if len(r.Args) > 0 {
		return c.generic(pos, name, r.Args)
	}

	switch name {
	case "string":
		return &openapi.Schema{Type: "string"}, nil
	case "number":
		return &openapi.Schema{Type: "number"}, nil
	case "integer":
		return &openapi.Schema{Type: "integer"}, nil
	case "boolean":
		return &openapi.Schema{Type: "boolean"}, nil
	case "true", "false":
		return &openapi.Schema{Type: "boolean", Enum: []any{name == "true"}}, nil
	case "object":
		return &openapi.Schema{Type: "object"}, nil
	case "any", "unknown":
		return &openapi.Schema{}, nil
	case "Date":
		return &openapi.Schema{Type: "string", Format: "date-time"}, nil
	case "undefined", "void", "never", "Array", "Record":
		return nil, errorAt(pos, "%w: %s", ErrUnsupportedType, name)
	}

	return openapi.SchemaRef(name), nil
}

func (c *converter) generic(pos lexer.Position, name string, args []*Type) (*openapi.Schema, error) {
	switch {
	case name == "Array" && len(args) == 1:
		items, err := c.typ(args[0])
		if err != nil {
			return nil, err
		}
		return &openapi.Schema{Type: "array", Items: items}, nil

	case name == "Record" && len(args) == 2:
		key, err := c.typ(args[0])
		if err != nil {
			return nil, err
		}
		if key.Type != "string" {
			return nil, errorAt(pos, "%w: Record keys must be strings", ErrUnsupportedType)
		}
		value, err := c.typ(args[1])
		if err != nil {
			return nil, err
		}
		return &openapi.Schema{Type: "object", AdditionalProperties: value}, nil
	}

	return nil, errorAt(pos, "%w: generic %s with %d arguments", ErrUnsupportedType, name, len(args))
}

// ident returns the last segment of a qualified name.
func (r *Ref) ident() string {
	return r.Name[len(r.Name)-1]
}

func literalUnion(members []*openapi.Schema) bool {
	typ := members[0].Type
	for _, m := range members {
		if len(m.Enum) == 0 || m.Type != typ || m.Nullable {
			return false
		}
	}
	return true
}

func uniform(items []*openapi.Schema) bool {
	for _, s := range items[1:] {
		if !reflect.DeepEqual(s, items[0]) {
			return false
		}
	}
	return true
}
