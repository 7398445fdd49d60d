package session

import (
	"context"
	"time"

	"github.com/dmitrymomot/httpkit/pkg/cache"
)

// Cache stores value in the side cache under this session. Use it for data
// too large for the cookie. The session id is created and persisted if needed.
func (s *Session) Cache(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	svc, err := s.cacheService()
	if err != nil {
		return err
	}
	s.ID()
	return svc.Set(ctx, s.cacheKey(key), value, ttl)
}

// Cached returns a value stored with Cache. A missing value yields
// cache.ErrNotFound.
func (s *Session) Cached(ctx context.Context, key string) ([]byte, error) {
	svc, err := s.cacheService()
	if err != nil {
		return nil, err
	}
	return svc.Get(ctx, s.cacheKey(key))
}

// Evict removes a value stored with Cache.
func (s *Session) Evict(ctx context.Context, key string) error {
	svc, err := s.cacheService()
	if err != nil {
		return err
	}
	return svc.Delete(ctx, s.cacheKey(key))
}

func (s *Session) cacheService() (cache.Service, error) {
	if s.codec == nil || s.codec.cache == nil {
		return nil, ErrNoCache
	}
	return s.codec.cache, nil
}

func (s *Session) cacheKey(key string) string {
	return s.ID() + ":" + key
}
