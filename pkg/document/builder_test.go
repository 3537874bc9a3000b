package document_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/chat-api-docs/pkg/document"
	"github.com/JaimeStill/chat-api-docs/pkg/logging"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
	"github.com/JaimeStill/chat-api-docs/pkg/tsschema"
)

func newBuilder() *document.Builder {
	return document.New(logging.Discard())
}

func serverParams() document.ParameterFragment {
	return document.Parameters(document.Parameter("server", "Server ID", document.Ref("Id")))
}

func TestBuilder_GroupTagsResources(t *testing.T) {
	b := newBuilder()

	b.Group("Servers")
	b.Tag("Server Information", "Query and fetch servers")
	b.Resource("/servers/:server", document.Methods{
		http.MethodGet:    b.Route("Fetch Server", "", serverParams(), document.Success("ok", nil)),
		http.MethodDelete: b.Route("Delete Server", "", serverParams(), document.Success("ok", nil)),
	})
	b.Resource("/servers/create", document.Methods{
		http.MethodPost: b.Route("Create Server", "", document.Success("ok", nil)),
	})
	b.Tag("Server Members", "Find and edit server members")
	b.Resource("/servers/:server/members", document.Methods{
		http.MethodGet: b.Route("Fetch Members", "", serverParams(), document.Success("ok", nil)),
	})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantGroups := []document.Group{
		{Name: "Servers", Tags: []string{"Server Information", "Server Members"}},
	}
	if diff := cmp.Diff(wantGroups, doc.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}

	wantTags := []document.Tag{
		{Name: "Server Information", Description: "Query and fetch servers", Group: "Servers"},
		{Name: "Server Members", Description: "Find and edit server members", Group: "Servers"},
	}
	if diff := cmp.Diff(wantTags, doc.Tags()); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}

	wantMethods := map[string][]string{
		"/servers/:server":         {"get", "delete"},
		"/servers/create":          {"post"},
		"/servers/:server/members": {"get"},
	}
	if got := len(doc.Resources()); got != len(wantMethods) {
		t.Fatalf("len(Resources()) = %d, want %d", got, len(wantMethods))
	}
	for path, methods := range wantMethods {
		r, ok := doc.Resource(path)
		if !ok {
			t.Errorf("Resource(%q) not found", path)
			continue
		}
		if diff := cmp.Diff(methods, r.Methods()); diff != "" {
			t.Errorf("%s Methods() mismatch (-want +got):\n%s", path, diff)
		}
	}

	members, _ := doc.Resource("/servers/:server/members")
	if got := members.Operations["get"].Tag; got != "Server Members" {
		t.Errorf("operation Tag = %q, want %q", got, "Server Members")
	}
}

func TestBuilder_TagRedeclared(t *testing.T) {
	var buf bytes.Buffer
	b := document.New(slog.New(slog.NewTextHandler(&buf, nil)))

	b.Group("Servers")
	b.Tag("Server Information", "Query and fetch servers")
	b.Tag("Server Information", "new desc")

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tags := doc.Tags()
	if len(tags) != 1 {
		t.Fatalf("len(Tags()) = %d, want 1", len(tags))
	}
	if tags[0].Description != "new desc" {
		t.Errorf("Description = %q, want %q", tags[0].Description, "new desc")
	}
	if got := doc.Groups()[0].Tags; len(got) != 1 {
		t.Errorf("group tags = %v, want one entry", got)
	}
	if !strings.Contains(buf.String(), "tag redeclared") {
		t.Errorf("log output %q missing redeclare warning", buf.String())
	}
}

func TestBuilder_OperationRedeclared(t *testing.T) {
	var buf bytes.Buffer
	b := document.New(slog.New(slog.NewTextHandler(&buf, nil)))

	b.Resource("/servers/create", document.Methods{
		http.MethodPost: b.Route("First", "", document.Success("ok", nil)),
	})
	b.Resource("/servers/create", document.Methods{
		"POST": b.Route("Second", "", document.Success("ok", nil)),
	})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	r, _ := doc.Resource("/servers/create")
	if got := r.Operations["post"].Summary; got != "Second" {
		t.Errorf("Summary = %q, want %q", got, "Second")
	}
	if len(doc.Resources()) != 1 {
		t.Errorf("len(Resources()) = %d, want 1", len(doc.Resources()))
	}
	if !strings.Contains(buf.String(), "operation redeclared") {
		t.Errorf("log output %q missing redeclare warning", buf.String())
	}
}

func TestBuilder_DeclarationsAfterBuild(t *testing.T) {
	b := newBuilder()
	b.Group("Servers")
	b.Tag("Server Information", "Query and fetch servers")
	b.Resource("/servers/create", document.Methods{
		http.MethodPost: b.Route("Create Server", "", document.Success("ok", nil)),
	})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	b.Tag("Server Members", "Find and edit server members")
	b.Resource("/servers/create", document.Methods{
		http.MethodDelete: b.Route("Delete Server", "", document.Success("ok", nil)),
		http.MethodPost:   b.Route("Replaced", "", document.Success("ok", nil)),
	})
	b.Resource("/servers/:server", document.Methods{
		http.MethodGet: b.Route("Fetch Server", "", serverParams(), document.Success("ok", nil)),
	})

	r, ok := doc.Resource("/servers/create")
	if !ok {
		t.Fatal("Resource(/servers/create) not found")
	}
	if diff := cmp.Diff([]string{"post"}, r.Methods()); diff != "" {
		t.Errorf("Methods() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Operations["post"].Summary; got != "Create Server" {
		t.Errorf("Summary = %q, want %q", got, "Create Server")
	}
	if got := len(doc.Resources()); got != 1 {
		t.Errorf("len(Resources()) = %d, want 1", got)
	}
	if got := len(doc.Tags()); got != 1 {
		t.Errorf("len(Tags()) = %d, want 1", got)
	}
	if diff := cmp.Diff([]string{"Server Information"}, doc.Groups()[0].Tags); diff != "" {
		t.Errorf("group tags mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_SharedOperationKeepsEachTag(t *testing.T) {
	b := newBuilder()
	op := b.Route("Fetch Servers", "", document.Success("ok", nil))

	b.Group("Servers")
	b.Tag("Server Information", "")
	b.Resource("/servers/a", document.Methods{http.MethodGet: op})
	b.Tag("Server Members", "")
	b.Resource("/servers/b", document.Methods{http.MethodGet: op})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := map[string]string{
		"/servers/a": "Server Information",
		"/servers/b": "Server Members",
	}
	for path, want := range tests {
		r, _ := doc.Resource(path)
		if got := r.Operations["get"].Tag; got != want {
			t.Errorf("%s tag = %q, want %q", path, got, want)
		}
	}
	if op.Tag != "" {
		t.Errorf("declared operation tag = %q, want it untouched", op.Tag)
	}
}

func TestDocument_AccessorsReturnCopies(t *testing.T) {
	b := newBuilder()
	b.Group("Servers")
	b.Tag("Server Information", "Query and fetch servers")
	b.Resource("/servers/create", document.Methods{
		http.MethodPost: b.Route("Create Server", "", document.Success("ok", nil)),
	})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	doc.Groups()[0].Tags[0] = "changed"
	doc.Tags()[0].Description = "changed"
	doc.Resources()[0].Operations["post"].Summary = "changed"
	r, _ := doc.Resource("/servers/create")
	delete(r.Operations, "post")

	if got := doc.Groups()[0].Tags[0]; got != "Server Information" {
		t.Errorf("group tag = %q, want %q", got, "Server Information")
	}
	if got := doc.Tags()[0].Description; got != "Query and fetch servers" {
		t.Errorf("tag description = %q, want %q", got, "Query and fetch servers")
	}
	r, _ = doc.Resource("/servers/create")
	if op, ok := r.Operations["post"]; !ok || op.Summary != "Create Server" {
		t.Errorf("post operation = %+v, want Create Server", op)
	}
}

func TestBuilder_TagOutsideGroup(t *testing.T) {
	var buf bytes.Buffer
	b := document.New(slog.New(slog.NewTextHandler(&buf, nil)))

	b.Tag("Server Information", "Query and fetch servers")

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := len(doc.Groups()); got != 0 {
		t.Errorf("len(Groups()) = %d, want 0", got)
	}
	if got := len(doc.Tags()); got != 1 {
		t.Errorf("len(Tags()) = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "tag declared outside a group") {
		t.Errorf("log output %q missing ungrouped tag warning", buf.String())
	}
}

func TestBuilder_UnsupportedMethod(t *testing.T) {
	b := newBuilder()
	b.Resource("/servers", document.Methods{
		http.MethodOptions: b.Route("Options", "", document.Success("ok", nil)),
	})

	if _, err := b.Build(); !errors.Is(err, document.ErrUnsupportedMethod) {
		t.Errorf("Build() error = %v, want %v", err, document.ErrUnsupportedMethod)
	}
}

func TestBuilder_RouteCollisionFailsBuild(t *testing.T) {
	b := newBuilder()
	b.Resource("/servers/:server", document.Methods{
		http.MethodGet: b.Route("Fetch Server", "", document.Success("a", nil), document.Success("b", nil)),
	})

	if _, err := b.Build(); !errors.Is(err, document.ErrFragmentCollision) {
		t.Errorf("Build() error = %v, want %v", err, document.ErrFragmentCollision)
	}
}

func TestBuilder_Schema(t *testing.T) {
	b := newBuilder()

	ref := b.Schema(`
		interface BanData {
			/**
			 * Ban reason
			 * @minLength 1
			 * @maxLength 1024
			 */
			reason?: string
		}
	`)

	if diff := cmp.Diff(document.Ref("BanData"), ref); diff != "" {
		t.Errorf("Schema() mismatch (-want +got):\n%s", diff)
	}

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	s, ok := doc.Schemas()["BanData"]
	if !ok {
		t.Fatal("BanData not registered")
	}
	if s.Type != "object" {
		t.Errorf("Type = %q, want object", s.Type)
	}
	if len(s.Required) != 0 {
		t.Errorf("Required = %v, want none", s.Required)
	}
	reason := s.Properties["reason"]
	if reason == nil || reason.Type != "string" {
		t.Fatalf("reason = %+v, want string property", reason)
	}
	if *reason.MinLength != 1 || *reason.MaxLength != 1024 {
		t.Errorf("length = %d..%d, want 1..1024", *reason.MinLength, *reason.MaxLength)
	}
}

func TestBuilder_SchemaRedeclared(t *testing.T) {
	b := newBuilder()
	b.Schema(`type Id = string`)
	b.Schema(`type Id = string`)

	if _, err := b.Build(); err != nil {
		t.Fatalf("identical redeclaration: Build() error = %v", err)
	}

	b = newBuilder()
	b.Schema(`type Id = string`)
	b.Schema(`type Id = number`)

	if _, err := b.Build(); !errors.Is(err, document.ErrDuplicateSchema) {
		t.Errorf("Build() error = %v, want %v", err, document.ErrDuplicateSchema)
	}
}

func TestBuilder_SchemaErrorIsSticky(t *testing.T) {
	b := newBuilder()

	if ref := b.Schema(`interface Broken {`); ref != nil {
		t.Errorf("Schema() = %+v, want nil on error", ref)
	}

	b.Tag("Later", "declared after the failure")
	b.Schema(`type Id = string`)

	_, err := b.Build()
	var pe *tsschema.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Build() error = %v, want *tsschema.ParseError", err)
	}
	if !strings.HasPrefix(err.Error(), "declare schema: ") {
		t.Errorf("Error() = %q, want declare schema prefix", err.Error())
	}
	if b.Err() != err {
		t.Errorf("Err() = %v, want %v", b.Err(), err)
	}
}

func TestBuilder_EmptyResourceSkipped(t *testing.T) {
	b := newBuilder()
	b.Resource("/servers", document.Methods{})

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(doc.Resources()) != 0 {
		t.Errorf("len(Resources()) = %d, want 0", len(doc.Resources()))
	}
}

func TestBuilder_SchemasCopied(t *testing.T) {
	b := newBuilder()
	b.Schema(`type Id = string`)

	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	schemas := doc.Schemas()
	schemas["Extra"] = &openapi.Schema{Type: "string"}

	if _, ok := doc.Schemas()["Extra"]; ok {
		t.Error("Schemas() returned the internal registry")
	}
}
