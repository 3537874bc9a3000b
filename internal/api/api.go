// Package api assembles every route group into one document.
package api

import (
	"log/slog"

	"github.com/JaimeStill/chat-api-docs/internal/common"
	"github.com/JaimeStill/chat-api-docs/internal/servers"
	"github.com/JaimeStill/chat-api-docs/pkg/document"
)

// Registrar declares one route group or shared component set.
type Registrar func(b *document.Builder)

// Registrars lists declarations in document order. Shared components come
// first so route groups can reference them.
var Registrars = []Registrar{
	common.Register,
	servers.Register,
}

// Build runs every registrar against a fresh builder and returns the
// validated document.
func Build(logger *slog.Logger) (*document.Document, error) {
	return BuildWith(logger, Registrars...)
}

// BuildWith is Build over an explicit set of registrars.
func BuildWith(logger *slog.Logger, registrars ...Registrar) (*document.Document, error) {
	b := document.New(logger)
	for _, register := range registrars {
		register(b)
	}

	doc, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}
