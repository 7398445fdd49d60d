package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/kv"
)

const (
	// KeyID holds the session identifier.
	KeyID = "___ID"
	// KeyExpiry holds the expiry as Unix milliseconds.
	KeyExpiry = "___TS"
)

// Session is a signed, cookie persisted key/value store with an identity and
// an optional expiry. It is owned by a single request and is not safe for
// concurrent use.
type Session struct {
	kv.Store
	codec *Codec
}

// Put stores value under key. Reserved keys are rejected.
func (s *Session) Put(key, value string) error {
	if isReserved(key) {
		return fmt.Errorf("%w: %s", ErrReservedKey, key)
	}
	return s.Store.Put(key, value)
}

// PutAll stores every pair of m, rejecting reserved keys.
func (s *Session) PutAll(m map[string]string) error {
	for k := range m {
		if isReserved(k) {
			return fmt.Errorf("%w: %s", ErrReservedKey, k)
		}
	}
	return s.Store.PutAll(m)
}

func (s *Session) PutInt(key string, v int) error {
	return s.Put(key, strconv.Itoa(v))
}

func (s *Session) PutBool(key string, v bool) error {
	return s.Put(key, strconv.FormatBool(v))
}

// ID returns the session identifier, generating a random UUID on first use.
// A freshly generated id marks the session dirty so it reaches the client.
func (s *Session) ID() string {
	if id, ok := s.Get(KeyID); ok {
		return id
	}
	id := uuid.NewString()
	_ = s.Store.Put(KeyID, id)
	return id
}

// Expiry returns the expiry time if one is set.
func (s *Session) Expiry() (time.Time, bool) {
	v, ok := s.Get(KeyExpiry)
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// ExpireOn sets the expiry and marks the session dirty.
func (s *Session) ExpireOn(t time.Time) {
	_ = s.Store.Put(KeyExpiry, strconv.FormatInt(t.UnixMilli(), 10))
}

// Expired reports whether an expiry is set and lies in the past.
func (s *Session) Expired() bool {
	exp, ok := s.Expiry()
	return ok && exp.Before(s.now())
}

// Clear removes all data including the id. The expiry survives, so a cleared
// session serializes to a deletion cookie.
func (s *Session) Clear() {
	exp, hasExp := s.Get(KeyExpiry)
	s.Store.Clear()
	if hasExp {
		_ = s.Store.Load(KeyExpiry, exp)
	}
}

// Serialize returns the cookie to send for this session, or nil when nothing
// needs to be sent. It panics if the session was not created by a Codec.
func (s *Session) Serialize(name string) *cookie.Cookie {
	if s.codec == nil {
		panic("session: not bound to a codec")
	}
	return s.codec.Serialize(s, name)
}

// empty reports whether the session holds nothing but an expiry.
func (s *Session) empty() bool {
	switch s.Len() {
	case 0:
		return true
	case 1:
		return s.ContainsKey(KeyExpiry)
	default:
		return false
	}
}

func (s *Session) extendTo(t time.Time) {
	if cur, ok := s.Expiry(); ok && !cur.Before(t) {
		return
	}
	_ = s.Store.Load(KeyExpiry, strconv.FormatInt(t.UnixMilli(), 10))
}

func (s *Session) now() time.Time {
	if s.codec != nil {
		return s.codec.clock.Now()
	}
	return time.Now()
}

func isReserved(key string) bool {
	return key == KeyID || key == KeyExpiry
}
