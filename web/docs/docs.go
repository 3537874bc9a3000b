// Package docs provides the interactive API documentation handler using Scalar UI.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/JaimeStill/chat-api-docs/pkg/routes"
)

//go:embed index.html
var indexHTML []byte

// Handler serves the Scalar API documentation interface and the document it renders.
type Handler struct {
	spec []byte
}

// NewHandler creates a documentation handler for a JSON-encoded spec.
func NewHandler(spec []byte) *Handler {
	return &Handler{spec: spec}
}

// Routes returns the route group for documentation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/docs",
		Description: "Interactive API documentation powered by Scalar",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.serveIndex},
			{Method: "GET", Pattern: "/openapi.json", Handler: h.serveSpec},
		},
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

func (h *Handler) serveSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.spec)
}
