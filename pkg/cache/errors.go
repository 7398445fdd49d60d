package cache

import "errors"

var (
	ErrNotFound = errors.New("cache.not_found")

	ErrFailedToParseRedisConnString = errors.New("cache.redis_invalid_url")
	ErrRedisNotReady                = errors.New("cache.redis_not_ready")
	ErrHealthcheckFailed            = errors.New("cache.redis_healthcheck_failed")
)
