// Package demo mounts the session inspection endpoint: a single GET
// /sessions route that exercises the signed session store and the plain
// cookie jar side by side.
package demo

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
)

// Router builds the demo router with its middleware chain: request IDs
// first, then request logging, then session decode/persist around the
// handler.
func Router(h *Handler, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(loggingMiddleware(log))
	r.Use(h.sessions.Middleware)

	r.Get("/sessions", h.handleIndex)

	return r
}

// loggingMiddleware records one line per request with method, path, status
// and duration. The request ID lands via the logger's context extractor.
func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.InfoContext(r.Context(), "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
