package httpkit

import (
	"time"

	"github.com/dmitrymomot/httpkit/pkg/cache"
	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/flash"
	"github.com/dmitrymomot/httpkit/pkg/locale"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/session"
)

// Cache drivers for session side storage.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the complete environment driven configuration. Load it with
// config.Load and pass it to New.
type Config struct {
	// Secrets sign the session cookie. The first one signs, all of them verify,
	// so a new secret can be prepended without logging everybody out.
	Secrets []string `env:"HTTPKIT_SECRETS,required,unset" envSeparator:","`

	// DefaultFormat is used when Accept or Content-Type matches nothing.
	DefaultFormat string `env:"HTTPKIT_DEFAULT_FORMAT" envDefault:"html"`

	// FormatsFile optionally points to a YAML "name: content/type" map of
	// custom formats.
	FormatsFile string `env:"HTTPKIT_FORMATS_FILE"`

	// Cache selects session side storage: none, memory or redis.
	Cache     string `env:"HTTPKIT_CACHE" envDefault:"memory"`
	CacheSize int    `env:"HTTPKIT_CACHE_SIZE" envDefault:"10000"`

	Cookie  cookie.Config
	Session session.Config
	Flash   flash.Config
	Locale  locale.Config
	Log     logger.Config
	Redis   cache.RedisConfig
}

// DefaultConfig returns the defaults of every section. Secrets must still be
// set by the caller.
func DefaultConfig() Config {
	return Config{
		DefaultFormat: "html",
		Cache:         CacheMemory,
		CacheSize:     10000,
		Cookie:        cookie.DefaultConfig(),
		Session:       session.DefaultConfig(),
		Flash:         flash.DefaultConfig(),
		Locale:        locale.DefaultConfig(),
		Log:           logger.Config{Level: "info", Format: "json"},
		Redis: cache.RedisConfig{
			ConnectionURL:  "redis://localhost:6379/0",
			Prefix:         "httpkit:",
			RetryAttempts:  3,
			RetryInterval:  5 * time.Second,
			ConnectTimeout: 30 * time.Second,
		},
	}
}
