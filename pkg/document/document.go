package document

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// Group is a documentation heading that collects tags.
type Group struct {
	Name string
	Tags []string
}

// Tag labels the operations declared after it.
type Tag struct {
	Name        string
	Description string
	Group       string
}

// Resource is one path template and its operations keyed by lower-case method.
type Resource struct {
	Path       string
	Operations map[string]*Operation
}

func (r *Resource) clone() *Resource {
	ops := make(map[string]*Operation, len(r.Operations))
	for m, op := range r.Operations {
		c := *op
		ops[m] = &c
	}
	return &Resource{Path: r.Path, Operations: ops}
}

var methodOrder = []string{"get", "post", "put", "patch", "delete"}

// Methods returns the declared methods in canonical order.
func (r *Resource) Methods() []string {
	methods := make([]string, 0, len(r.Operations))
	for _, m := range methodOrder {
		if _, ok := r.Operations[m]; ok {
			methods = append(methods, m)
		}
	}
	return methods
}

var placeholder = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// Placeholders returns the parameter names embedded in the path template.
func (r *Resource) Placeholders() []string {
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(r.Path, -1) {
		names = append(names, m[1])
	}
	return names
}

// TemplatePath converts :name placeholders to OpenAPI {name} templates.
func TemplatePath(path string) string {
	return placeholder.ReplaceAllString(path, "{$1}")
}

// Document is the finished, read-only result of a build.
type Document struct {
	groups    []Group
	tags      []Tag
	resources []*Resource
	schemas   map[string]*openapi.Schema
	security  []string
	schemes   map[string]*openapi.SecurityScheme
}

// Groups returns a copy of the groups in declaration order.
func (d *Document) Groups() []Group {
	groups := make([]Group, 0, len(d.groups))
	for _, g := range d.groups {
		groups = append(groups, Group{Name: g.Name, Tags: slices.Clone(g.Tags)})
	}
	return groups
}

// Tags returns a copy of the tags in first-declaration order.
func (d *Document) Tags() []Tag {
	return slices.Clone(d.tags)
}

// Resources returns copies of the resources in first-declaration order.
func (d *Document) Resources() []*Resource {
	resources := make([]*Resource, 0, len(d.resources))
	for _, r := range d.resources {
		resources = append(resources, r.clone())
	}
	return resources
}

// Resource returns a copy of the resource declared for a path template.
func (d *Document) Resource(path string) (*Resource, bool) {
	for _, r := range d.resources {
		if r.Path == path {
			return r.clone(), true
		}
	}
	return nil, false
}

// Schemas returns a copy of the component schema registry.
func (d *Document) Schemas() map[string]*openapi.Schema {
	return maps.Clone(d.schemas)
}

// Spec exports the document as an OpenAPI specification.
func (d *Document) Spec(cfg *openapi.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.Title, cfg.Version)
	spec.SetDescription(cfg.Description)
	for _, url := range cfg.Servers {
		spec.AddServer(url)
	}

	for _, t := range d.tags {
		spec.AddTag(t.Name, t.Description)
	}
	for _, g := range d.groups {
		if len(g.Tags) > 0 {
			spec.AddTagGroup(g.Name, g.Tags)
		}
	}

	spec.Components.AddSchemas(d.schemas)
	for _, name := range d.security {
		spec.Components.AddSecurityScheme(name, d.schemes[name])
	}

	for _, r := range d.resources {
		item := &openapi.PathItem{}
		for _, m := range r.Methods() {
			setOperation(item, m, d.operation(r.Operations[m]))
		}
		spec.Paths[TemplatePath(r.Path)] = item
	}

	return spec
}

func (d *Document) operation(op *Operation) *openapi.Operation {
	out := &openapi.Operation{
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: operationID(op.Summary),
		Parameters:  op.Parameters,
		RequestBody: op.RequestBody,
		Responses:   op.Responses,
	}
	if op.Tag != "" {
		out.Tags = []string{op.Tag}
	}
	if op.Authenticated {
		for _, name := range d.security {
			out.Security = append(out.Security, openapi.SecurityRequirement{name: {}})
		}
	}
	return out
}

func setOperation(item *openapi.PathItem, method string, op *openapi.Operation) {
	switch method {
	case "get":
		item.Get = op
	case "post":
		item.Post = op
	case "put":
		item.Put = op
	case "patch":
		item.Patch = op
	case "delete":
		item.Delete = op
	}
}

// operationID derives a camel-case identifier from a summary:
// "Delete / Leave Server" becomes "deleteLeaveServer".
func operationID(summary string) string {
	words := strings.FieldsFunc(summary, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for i, w := range words {
		if i == 0 {
			sb.WriteString(strings.ToLower(w[:1]) + w[1:])
			continue
		}
		sb.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return sb.String()
}
