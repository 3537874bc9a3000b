package routes

import "net/http"

// System collects the preview routes and builds the handler that serves them.
// Patterns lists every registered route as "METHOD /full/pattern" in the
// order Build registers them with the mux.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Patterns() []string
}
