package http

import (
	"net/http"
)

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. The view is
// read-only, so the only allowed method is GET.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, ErrMethodNotAllowed, "")
}

// routeNotFound is registered via [chi.Mux.NotFound].
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "")
}
