package session

import (
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Manager loads sessions from inbound requests and persists them into
// responses. The cookie is the only store: the manager holds no per-client
// state, so a single instance is safe to share across requests.
type Manager struct {
	codec   *Codec
	cookies *cookie.Manager
	config  Config
}

// New creates a session manager backed by the given cookie manager.
func New(cookieMgr *cookie.Manager, opts ...Option) *Manager {
	if cookieMgr == nil {
		// Fail fast on misconfiguration to prevent insecure runtime behavior
		panic("session: cookie manager is required")
	}

	m := &Manager{
		cookies: cookieMgr,
		config:  DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.codec = NewCodec(cookieMgr, m.config.Encrypt)

	return m
}

// Load materializes the session from the request's session cookie. A
// missing, malformed or tampered token silently degrades to a fresh session
// with a new identifier; Load never fails.
func (m *Manager) Load(r *http.Request) *Session {
	token, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return NewSession()
	}

	s, err := m.codec.Decode(token)
	if err != nil {
		return NewSession()
	}
	return s
}

// Save re-encodes the session and attaches it as a Set-Cookie header. It is
// called unconditionally per response, mutated or not, so a nonzero TTL
// keeps sliding.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	token, err := m.codec.Encode(s)
	if err != nil {
		return err
	}
	return m.cookies.Set(w, m.config.CookieName, token, m.cookieOptions()...)
}

// Clear expires the session cookie on the client.
func (m *Manager) Clear(w http.ResponseWriter) {
	m.cookies.Delete(w, m.config.CookieName)
}

// CookieName reports the configured session cookie name.
func (m *Manager) CookieName() string {
	return m.config.CookieName
}

func (m *Manager) cookieOptions() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(cookie.ParseSameSite(m.config.SameSite)),
	}
	if m.config.TTL > 0 {
		opts = append(opts, cookie.WithMaxAge(int(m.config.TTL.Seconds())))
	}
	if m.config.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}
	return opts
}
