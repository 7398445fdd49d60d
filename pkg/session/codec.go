package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/httpkit/pkg/cache"
	"github.com/dmitrymomot/httpkit/pkg/codec"
	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/signer"
)

// NoExpiry as a TTL keeps sessions alive until the browser closes.
const NoExpiry time.Duration = -1

// Codec turns sessions into signed cookies and back. It is created once at
// startup and is safe for concurrent use.
type Codec struct {
	signer signer.Signer
	clock  clock.Clock
	cache  cache.Service
	logger *slog.Logger
}

// NewCodec creates a Codec. It panics when s is nil: an unsigned session
// cookie would be trivially forgeable.
func NewCodec(s signer.Signer, opts ...Option) *Codec {
	if s == nil {
		panic("session: signer is required")
	}
	c := &Codec{
		signer: s,
		clock:  clock.New(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// New returns an empty session bound to c.
func (c *Codec) New() *Session {
	return &Session{codec: c}
}

// Resolve rebuilds the session carried by ck. A missing, tampered, corrupt or
// expired cookie yields a fresh session; no error reaches the caller.
// A non-negative ttl applies a sliding expiry of now+ttl that never moves an
// existing expiry backwards.
func (c *Codec) Resolve(ck *cookie.Cookie, ttl time.Duration) *Session {
	s := c.New()

	if ck != nil && ck.Value != "" {
		if err := c.decode(ck.Value, s); err != nil {
			c.logger.Debug("session cookie discarded", logger.Cookie(ck.Name), logger.Error(err))
			s = c.New()
		} else if s.Expired() {
			c.logger.Debug("session cookie discarded", logger.Cookie(ck.Name), logger.Reason("expired"))
			s = c.New()
		}
	}

	if ttl >= 0 {
		s.extendTo(c.clock.Now().Add(ttl))
	}
	return s
}

// Serialize returns the cookie for s:
//   - nil when s was not changed and has no expiry;
//   - a deletion cookie when s is empty or expired;
//   - otherwise "<signature>-<payload>", with MaxAge derived from the expiry.
func (c *Codec) Serialize(s *Session, name string) *cookie.Cookie {
	exp, hasExp := s.Expiry()
	if !s.Dirty() && !hasExp {
		return nil
	}
	if s.empty() || s.Expired() {
		return cookie.Deletion(name)
	}

	ck := cookie.New(name, codec.Sign(c.signer, codec.Encode(s)))
	if hasExp {
		// Round up; a live session never gets MaxAge 0.
		ck.MaxAge = max(int((exp.Sub(c.clock.Now())+time.Second-1)/time.Second), 1)
	}
	return ck
}

// Decode verifies and parses a raw cookie value. Unlike Resolve it reports
// why a value was rejected, keeps expired sessions and applies no TTL.
func (c *Codec) Decode(value string) (*Session, error) {
	s := c.New()
	if err := c.decode(value, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Codec) decode(value string, s *Session) error {
	payload, err := codec.Unsign(c.signer, value)
	if err != nil {
		return err
	}
	if err := codec.Decode(payload, s); err != nil {
		return err
	}
	if v, ok := s.Get(KeyExpiry); ok {
		if _, valid := s.Expiry(); !valid {
			return fmt.Errorf("%w: expiry %q", ErrCorrupt, v)
		}
	}
	return nil
}
