// Package document accumulates declarative route and schema descriptors into
// an API document.
//
// Declarations run top to bottom against a Builder:
//
//	b := document.New(logger)
//	b.Group("Servers")
//	b.Tag("Server Information", "Query and fetch servers")
//	b.Resource("/servers/:server", document.Methods{
//	    http.MethodGet: b.RouteAuthenticated("Fetch Server", "Retrieve a server.",
//	        document.Parameters(document.Parameter("server", "Server ID", document.Ref("Id"))),
//	        document.Success("Retrieved server.", document.Ref("Server")),
//	    ),
//	})
//	doc, err := b.Build()
//
// The first error raised by any declaration is kept and returned by Build;
// later declarations become no-ops so a broken template fails the whole build.
package document

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
	"github.com/JaimeStill/chat-api-docs/pkg/tsschema"
)

// Methods maps an HTTP method to its operation. Keys are case-insensitive.
type Methods map[string]*Operation

// Builder is the mutable accumulator used while declarations run.
// It is not safe for concurrent use.
type Builder struct {
	logger *slog.Logger

	group string
	tag   string

	groups    []*Group
	groupIdx  map[string]*Group
	tags      []*Tag
	tagIdx    map[string]*Tag
	resources []*Resource
	resIdx    map[string]*Resource
	schemas   map[string]*openapi.Schema
	security  []string
	schemes   map[string]*openapi.SecurityScheme

	err error
}

// New creates an empty builder.
func New(logger *slog.Logger) *Builder {
	return &Builder{
		logger:   logger,
		groupIdx: make(map[string]*Group),
		tagIdx:   make(map[string]*Tag),
		resIdx:   make(map[string]*Resource),
		schemas:  make(map[string]*openapi.Schema),
		schemes:  make(map[string]*openapi.SecurityScheme),
	}
}

// Err returns the first declaration error, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
		b.logger.Error("declaration failed", "error", err)
	}
}

// Group sets the documentation group for tags declared after it.
func (b *Builder) Group(name string) {
	if b.err != nil {
		return
	}
	b.group = name
	if _, ok := b.groupIdx[name]; !ok {
		g := &Group{Name: name}
		b.groups = append(b.groups, g)
		b.groupIdx[name] = g
	}
	b.logger.Debug("group selected", "group", name)
}

// Tag registers a tag under the current group and makes it the tag of
// resources declared after it. Registering an existing name replaces its
// description. Tags declared before any Group are left out of every group.
func (b *Builder) Tag(name, description string) {
	if b.err != nil {
		return
	}
	b.tag = name

	if t, ok := b.tagIdx[name]; ok {
		b.logger.Warn("tag redeclared", "tag", name, "previous", t.Description)
		t.Description = description
		return
	}

	t := &Tag{Name: name, Description: description, Group: b.group}
	b.tags = append(b.tags, t)
	b.tagIdx[name] = t
	if g, ok := b.groupIdx[b.group]; ok {
		g.Tags = append(g.Tags, name)
	} else {
		b.logger.Warn("tag declared outside a group", "tag", name)
	}
}

// Resource registers the operations of one path template. Each operation is
// stored as a copy tagged with the current tag. Redeclaring a path and method replaces the
// earlier operation.
func (b *Builder) Resource(path string, methods Methods) {
	if b.err != nil {
		return
	}

	r, ok := b.resIdx[path]
	if !ok {
		r = &Resource{Path: path, Operations: make(map[string]*Operation, len(methods))}
		b.resources = append(b.resources, r)
		b.resIdx[path] = r
	}

	for method, op := range methods {
		m := strings.ToLower(method)
		if !supportedMethod(m) {
			b.fail(fmt.Errorf("resource %s: %w: %s", path, ErrUnsupportedMethod, method))
			return
		}
		if op == nil {
			continue
		}
		if _, dup := r.Operations[m]; dup {
			b.logger.Warn("operation redeclared", "path", path, "method", m)
		}
		tagged := *op
		tagged.Tag = b.tag
		r.Operations[m] = &tagged
	}

	b.logger.Debug("resource registered", "path", path, "methods", r.Methods())
}

// Route builds an unauthenticated operation, recording any merge error.
func (b *Builder) Route(summary, description string, fragments ...Fragment) *Operation {
	return b.route(Route(summary, description, fragments...))
}

// RouteAuthenticated builds an authenticated operation, recording any merge error.
func (b *Builder) RouteAuthenticated(summary, description string, fragments ...Fragment) *Operation {
	return b.route(RouteAuthenticated(summary, description, fragments...))
}

func (b *Builder) route(op *Operation, err error) *Operation {
	if b.err != nil {
		return nil
	}
	if err != nil {
		b.fail(err)
		return nil
	}
	return op
}

// Schema compiles a schema template, registers the declared type as a
// component schema and returns a reference to it.
func (b *Builder) Schema(src string) *openapi.Schema {
	if b.err != nil {
		return nil
	}

	def, err := tsschema.Compile(src)
	if err != nil {
		b.fail(fmt.Errorf("declare schema: %w", err))
		return nil
	}

	if err := b.register(def); err != nil {
		b.fail(err)
		return nil
	}

	return openapi.SchemaRef(def.Name)
}

// Schemas registers component schemas that are only reached through Ref.
func (b *Builder) Schemas(srcs ...string) {
	for _, src := range srcs {
		b.Schema(src)
	}
}

func (b *Builder) register(def *tsschema.Definition) error {
	if prev, ok := b.schemas[def.Name]; ok {
		if reflect.DeepEqual(prev, def.Schema) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateSchema, def.Name)
	}
	b.schemas[def.Name] = def.Schema
	b.logger.Debug("schema registered", "schema", def.Name, "imports", def.Imports)
	return nil
}

// SecurityScheme registers a scheme that satisfies authenticated operations.
// Multiple schemes are alternatives.
func (b *Builder) SecurityScheme(name string, scheme *openapi.SecurityScheme) {
	if b.err != nil {
		return
	}
	if _, ok := b.schemes[name]; !ok {
		b.security = append(b.security, name)
	}
	b.schemes[name] = scheme
}

// Build finishes the declarations and returns the read-only document.
func (b *Builder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}

	doc := &Document{
		groups:    make([]Group, 0, len(b.groups)),
		tags:      make([]Tag, 0, len(b.tags)),
		resources: make([]*Resource, 0, len(b.resources)),
		schemas:   maps.Clone(b.schemas),
		security:  slices.Clone(b.security),
		schemes:   maps.Clone(b.schemes),
	}

	for _, g := range b.groups {
		doc.groups = append(doc.groups, Group{Name: g.Name, Tags: slices.Clone(g.Tags)})
	}
	for _, t := range b.tags {
		doc.tags = append(doc.tags, *t)
	}
	for _, r := range b.resources {
		if len(r.Operations) == 0 {
			continue
		}
		doc.resources = append(doc.resources, r.clone())
	}

	b.logger.Info(
		"document built",
		"groups", len(doc.groups),
		"tags", len(doc.tags),
		"paths", len(doc.resources),
		"schemas", len(doc.schemas),
	)

	return doc, nil
}

func supportedMethod(m string) bool {
	switch m {
	case "get", "post", "put", "patch", "delete":
		return true
	}
	return false
}
