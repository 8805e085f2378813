package demo

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Handler serves the session demonstration endpoint. Each request is a
// self-contained transformation: read both stores, initialize the demo keys
// if absent, echo everything back.
type Handler struct {
	sessions *session.Manager
	cookies  *cookie.Manager
	log      *slog.Logger
}

// NewHandler creates the demo handler.
func NewHandler(sessions *session.Manager, cookies *cookie.Manager, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		sessions: sessions,
		cookies:  cookies,
		log:      log,
	}
}

// indexResponse is the wire format of GET /sessions.
type indexResponse struct {
	Session *session.Session  `json:"session"`
	Cookies map[string]string `json:"cookies"`
}

// handleIndex demonstrates the two client-held stores side by side: the
// signed session map and the plain cookie jar. Both get a "hello" key on
// first contact; neither is reassigned on replay.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := session.MustFromContext(r.Context())
	sess.SetIfAbsent("session_hello", "World")

	// The signed session token is excluded from the plain view so the two
	// stores stay independent.
	jar := h.cookies.Jar(r, h.sessions.CookieName())
	jar.SetIfAbsent("cookies_hello", "World")

	if err := h.cookies.WriteJar(w, jar); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write cookie jar", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.log.DebugContext(r.Context(), "session inspected",
		logger.SessionID(sess.ID),
		slog.Int("cookies", jar.Len()),
	)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(indexResponse{
		Session: sess,
		Cookies: jar.Values(),
	})
}
