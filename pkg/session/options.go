package session

import "time"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithSameSite sets the same-site policy: strict, lax or none
func WithSameSite(policy string) Option {
	return func(m *Manager) {
		m.config.SameSite = policy
	}
}

// WithTTL sets the session cookie lifetime; 0 means a browser-session cookie
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithEncryption toggles encrypted tokens; signed-only when disabled
func WithEncryption(encrypt bool) Option {
	return func(m *Manager) {
		m.config.Encrypt = encrypt
	}
}

// WithSecureCookies enables the Secure cookie flag
func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.config.SecureCookies = secure
	}
}
