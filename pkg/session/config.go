package session

import (
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "_session_id")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"_session_id"`

	// SameSite policy for the session cookie: strict, lax or none
	SameSite string `env:"SESSION_SAME_SITE" envDefault:"strict"`

	// TTL is the cookie lifetime; 0 issues a browser-session cookie.
	// A nonzero TTL slides because the cookie is re-issued on every response.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// Encrypt selects AES-GCM tokens over signed-only tokens
	Encrypt bool `env:"SESSION_ENCRYPT" envDefault:"true"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:    "_session_id",
		SameSite:      "strict",
		TTL:           0,
		Encrypt:       true,
		SecureCookies: false,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, cookieMgr *cookie.Manager, opts ...Option) *Manager {
	configOpts := []Option{WithConfig(cfg)}
	configOpts = append(configOpts, opts...)
	return New(cookieMgr, configOpts...)
}
