package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access line per request. It must run after
// withTraceID so the line carries the trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		event := log.Info()
		if rec.code >= http.StatusInternalServerError {
			event = log.Error()
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		event.
			Str("uri", r.RequestURI).
			Str("route", route).
			Str("method", r.Method).
			Int("status", rec.code).
			Dur("duration", time.Since(start)).
			Int("size", rec.bytes).
			Send()
	})
}
