package session

import (
	"net/http"
	"sync"
)

// Middleware decodes the session before the handler runs, injects it into
// the request context and persists it after the handler mutates it. The
// Set-Cookie header is committed on the response writer's first write, so
// handlers can read and mutate the session in natural order without calling
// Save themselves.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.Load(r)

		cw := &commitWriter{
			ResponseWriter: w,
			commit: func() {
				_ = m.Save(w, sess)
			},
		}

		next.ServeHTTP(cw, r.WithContext(WithSession(r.Context(), sess)))

		// Handlers that never write still get their session persisted
		cw.doCommit()
	})
}

// commitWriter runs commit exactly once, immediately before the first byte
// or status line goes out. Headers are still mutable at that point.
type commitWriter struct {
	http.ResponseWriter
	commit func()
	once   sync.Once
}

func (w *commitWriter) doCommit() {
	w.once.Do(w.commit)
}

func (w *commitWriter) WriteHeader(statusCode int) {
	w.doCommit()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	w.doCommit()
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
