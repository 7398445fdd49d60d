package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// TTL is the sliding session lifetime. A negative value disables expiry
	// and the cookie lives until the browser closes.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"-1s"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName: "sid",
		TTL:        NoExpiry,
	}
}
