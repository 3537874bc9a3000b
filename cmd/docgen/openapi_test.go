package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/chat-api-docs/internal/api"
	"github.com/JaimeStill/chat-api-docs/internal/config"
	"github.com/JaimeStill/chat-api-docs/internal/storage"
	"github.com/JaimeStill/chat-api-docs/pkg/logging"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

func testSpec(t *testing.T) *openapi.Spec {
	t.Helper()
	doc, err := api.Build(logging.Discard())
	if err != nil {
		t.Fatalf("api.Build() error = %v", err)
	}
	return doc.Spec(&openapi.Config{Title: "Chat Server API", Version: "0.1.0"})
}

func outputConfig(t *testing.T, format config.Format, maxSize string) *config.OutputConfig {
	t.Helper()
	out := &config.OutputConfig{Format: format, MaxSize: maxSize}
	if err := out.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return out
}

func newStore(t *testing.T, dir string) storage.System {
	t.Helper()
	store, err := storage.New(dir, logging.Discard())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	return store
}

func TestWriteSpec_WritesOnlyWhenChanged(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api")
	path := filepath.Join(dir, "openapi.local.json")
	store := newStore(t, dir)
	out := outputConfig(t, config.FormatJSON, "4MB")
	spec := testSpec(t)

	written, err := writeSpec(t.Context(), spec, out, store, "openapi.local.json")
	if err != nil {
		t.Fatalf("writeSpec() error = %v", err)
	}
	if !written {
		t.Error("first writeSpec() did not write")
	}

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	written, err = writeSpec(t.Context(), spec, out, store, "openapi.local.json")
	if err != nil {
		t.Fatalf("writeSpec() error = %v", err)
	}
	if written {
		t.Error("second writeSpec() rewrote identical content")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("ModTime = %v, want unchanged %v", info.ModTime(), past)
	}
}

func TestWriteSpec_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.yaml")
	out := outputConfig(t, config.FormatYAML, "4MB")

	if _, err := writeSpec(t.Context(), testSpec(t), out, newStore(t, dir), "openapi.yaml"); err != nil {
		t.Fatalf("writeSpec() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# OpenAPI specification") {
		t.Errorf("YAML output missing header")
	}
}

func TestWriteSpec_MaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.json")
	out := outputConfig(t, config.FormatJSON, "1KB")

	_, err := writeSpec(t.Context(), testSpec(t), out, newStore(t, dir), "openapi.json")
	if err == nil || !strings.Contains(err.Error(), "exceeds max_size") {
		t.Fatalf("writeSpec() error = %v, want max_size error", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("oversized spec was written")
	}
}
