package openapi_test

import (
	"testing"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

func TestSchemaRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRef string
	}{
		{"simple name", "Id", "#/components/schemas/Id"},
		{"compound name", "ServerMembers", "#/components/schemas/ServerMembers"},
		{"leading underscore", "_common", "#/components/schemas/_common"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := openapi.SchemaRef(tt.input)

			if schema.Ref != tt.wantRef {
				t.Errorf("SchemaRef(%q).Ref = %q, want %q", tt.input, schema.Ref, tt.wantRef)
			}
		})
	}
}

func TestSchema_IsRef(t *testing.T) {
	tests := []struct {
		name   string
		schema *openapi.Schema
		want   bool
	}{
		{"nil", nil, false},
		{"bare ref", openapi.SchemaRef("Id"), true},
		{"typed", &openapi.Schema{Type: "string"}, false},
		{"wrapped ref", &openapi.Schema{AllOf: []*openapi.Schema{openapi.SchemaRef("Id")}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schema.IsRef(); got != tt.want {
				t.Errorf("IsRef() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestBodyJSON(t *testing.T) {
	tests := []struct {
		name     string
		required bool
	}{
		{"required body", true},
		{"optional body", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := openapi.RequestBodyJSON("Server Data", openapi.SchemaRef("ServerData"), tt.required)

			if body.Required != tt.required {
				t.Errorf("Required = %v, want %v", body.Required, tt.required)
			}

			content, ok := body.Content["application/json"]
			if !ok {
				t.Fatal("Content missing application/json media type")
			}

			wantRef := "#/components/schemas/ServerData"
			if content.Schema.Ref != wantRef {
				t.Errorf("Schema.Ref = %q, want %q", content.Schema.Ref, wantRef)
			}
		})
	}
}

func TestResponseJSON(t *testing.T) {
	resp := openapi.ResponseJSON("Retrieved server.", openapi.SchemaRef("Server"))
	if resp.Description != "Retrieved server." {
		t.Errorf("Description = %q, want %q", resp.Description, "Retrieved server.")
	}
	if _, ok := resp.Content["application/json"]; !ok {
		t.Error("Content missing application/json media type")
	}

	empty := openapi.ResponseJSON("Deleted Server", nil)
	if empty.Content != nil {
		t.Errorf("Content = %v, want nil for bodyless response", empty.Content)
	}
}

func TestPathParam(t *testing.T) {
	param := openapi.PathParam("server", "Server ID", openapi.SchemaRef("Id"))

	if param.Name != "server" {
		t.Errorf("Name = %q, want %q", param.Name, "server")
	}
	if param.In != "path" {
		t.Errorf("In = %q, want %q", param.In, "path")
	}
	if !param.Required {
		t.Error("Required = false, want true")
	}
}
