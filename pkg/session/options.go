package session

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/httpkit/pkg/cache"
)

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces the wall clock used for expiry, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(cd *Codec) {
		if c != nil {
			cd.clock = c
		}
	}
}

// WithCache enables session side storage.
func WithCache(svc cache.Service) Option {
	return func(cd *Codec) {
		cd.cache = svc
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cd *Codec) {
		if l != nil {
			cd.logger = l
		}
	}
}
