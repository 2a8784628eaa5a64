// Package manage exposes read-only views of a live inject.Session over
// HTTP: the binding registry, the singleton cache and a liveness probe.
// Mount it wherever the application serves its operational endpoints.
package manage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-inject/framework/inject"
)

// Handler returns the management router for a session.
//
//	GET /healthz    → {"status":"ok"}
//	GET /bindings   → registry contents in registration order
//	GET /singletons → type keys currently cached
func Handler(s *inject.Session) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, envelope{"status": "ok"})
	})

	r.Get("/bindings", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, envelope{"data": s.Bindings()})
	})

	r.Get("/singletons", func(w http.ResponseWriter, _ *http.Request) {
		keys := s.CachedKeys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		writeJSON(w, http.StatusOK, envelope{"data": names})
	})

	return r
}
