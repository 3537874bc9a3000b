// Package routes provides HTTP route registration and handler building for
// the documentation preview.
package routes

import (
	"log/slog"
	"net/http"
	"slices"

	pkgroutes "github.com/JaimeStill/chat-api-docs/pkg/routes"
)

type routes struct {
	routes []pkgroutes.Route
	groups []pkgroutes.Group
	logger *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger: logger,
		groups: []pkgroutes.Group{},
		routes: []pkgroutes.Route{},
	}
}

// Patterns returns the mux patterns in registration order.
func (r *routes) Patterns() []string {
	flat := r.flatten()
	patterns := make([]string, 0, len(flat))
	for _, route := range flat {
		patterns = append(patterns, route.Method+" "+route.Pattern)
	}
	return patterns
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Build constructs an http.Handler from all registered routes and groups.
func (r *routes) Build() http.Handler {
	mux := http.NewServeMux()
	for _, route := range r.flatten() {
		mux.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
		r.logger.Debug("route registered", "method", route.Method, "pattern", route.Pattern)
	}
	return mux
}

// flatten resolves group prefixes into standalone routes, top-level routes first.
func (r *routes) flatten() []pkgroutes.Route {
	flat := slices.Clone(r.routes)
	for _, group := range r.groups {
		flat = appendGroup(flat, "", group)
	}
	return flat
}

func appendGroup(flat []pkgroutes.Route, parentPrefix string, group pkgroutes.Group) []pkgroutes.Route {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		route.Pattern = prefix + route.Pattern
		flat = append(flat, route)
	}
	for _, child := range group.Children {
		flat = appendGroup(flat, prefix, child)
	}
	return flat
}
