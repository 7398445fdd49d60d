package httpkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/httpkit/pkg/cache"
	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/format"
	"github.com/dmitrymomot/httpkit/pkg/locale"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/requestid"
	"github.com/dmitrymomot/httpkit/pkg/session"
	"github.com/dmitrymomot/httpkit/pkg/signer"
)

// SessionPurpose is the HKDF purpose the session signing key is derived for.
const SessionPurpose = "session"

// janitorInterval is how often the memory cache drops expired entries.
const janitorInterval = time.Minute

// Kit holds everything built once at startup: the signer, the session codec,
// the cookie manager, the format registry, the locale resolver, the logger and
// the side cache. It is safe for concurrent use.
type Kit struct {
	cfg           Config
	logger        *slog.Logger
	signer        signer.Signer
	clock         clock.Clock
	cookies       *cookie.Manager
	sessions      *session.Codec
	formats       *format.Registry
	defaultFormat format.Format
	locales       *locale.Resolver
	cache         cache.Service
	redis         redis.UniversalClient
	closers       []func() error
}

// Option configures New.
type Option func(*Kit)

// WithLogger replaces the logger built from Config.Log.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kit) {
		if l != nil {
			k.logger = l
		}
	}
}

// WithSigner replaces the HMAC signer derived from Config.Secrets.
func WithSigner(s signer.Signer) Option {
	return func(k *Kit) {
		k.signer = s
	}
}

// WithCache replaces the side cache selected by Config.Cache.
func WithCache(svc cache.Service) Option {
	return func(k *Kit) {
		k.cache = svc
	}
}

// WithRedisClient makes the redis cache driver use an existing client
// instead of dialing Config.Redis.ConnectionURL.
func WithRedisClient(client redis.UniversalClient) Option {
	return func(k *Kit) {
		k.redis = client
	}
}

// WithClock replaces the wall clock used for session expiry.
func WithClock(c clock.Clock) Option {
	return func(k *Kit) {
		if c != nil {
			k.clock = c
		}
	}
}

// New builds a Kit from cfg. Redis, when selected, is dialed here.
func New(cfg Config, opts ...Option) (*Kit, error) {
	k := &Kit{cfg: cfg, clock: clock.New()}
	for _, opt := range opts {
		opt(k)
	}

	if k.logger == nil {
		k.logger = logger.NewFromConfig(cfg.Log,
			logger.WithContextExtractors(requestid.LoggerExtractor()))
	}
	log := k.logger.With(logger.Component("httpkit"))

	if k.signer == nil {
		if len(cfg.Secrets) == 0 {
			return nil, ErrNoSecrets
		}
		s, err := signer.NewDerived(SessionPurpose, cfg.Secrets...)
		if err != nil {
			return nil, err
		}
		k.signer = s
	}

	if err := k.setupFormats(); err != nil {
		return nil, err
	}

	locales, err := locale.NewResolver(cfg.Locale)
	if err != nil {
		return nil, err
	}
	k.locales = locales

	if err := k.setupCache(); err != nil {
		return nil, errors.Join(err, k.Close())
	}

	k.cookies = cookie.NewFromConfig(cfg.Cookie)

	codecOpts := []session.Option{
		session.WithClock(k.clock),
		session.WithLogger(k.logger.With(logger.Component("session"))),
	}
	if k.cache != nil {
		codecOpts = append(codecOpts, session.WithCache(k.cache))
	}
	k.sessions = session.NewCodec(k.signer, codecOpts...)

	log.Debug("kit ready",
		slog.String("cache", cfg.Cache),
		logger.FormatName(k.defaultFormat.Name()),
		logger.Locale(k.locales.Default().String()),
		slog.Int("custom_formats", len(k.formats.Custom())),
	)
	return k, nil
}

func (k *Kit) setupFormats() error {
	k.formats = format.NewRegistry()
	if path := k.cfg.FormatsFile; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Join(ErrFormatsFile, err)
		}
		defer f.Close()
		if err := k.formats.LoadYAML(f); err != nil {
			return errors.Join(ErrFormatsFile, err)
		}
	}

	name := k.cfg.DefaultFormat
	if name == "" {
		k.defaultFormat = format.HTML
		return nil
	}
	def, ok := k.formats.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	k.defaultFormat = def
	return nil
}

func (k *Kit) setupCache() error {
	if k.cache != nil {
		return nil
	}
	switch strings.ToLower(k.cfg.Cache) {
	case "", CacheNone:
		return nil
	case CacheMemory:
		size := k.cfg.CacheSize
		if size <= 0 {
			size = DefaultConfig().CacheSize
		}
		mem := cache.NewMemory(size, cache.WithClock(k.clock), cache.WithJanitor(janitorInterval))
		k.cache = mem
		k.closers = append(k.closers, mem.Close)
		return nil
	case CacheRedis:
		if k.redis == nil {
			client, err := cache.Connect(context.Background(), k.cfg.Redis)
			if err != nil {
				return err
			}
			k.redis = client
			k.closers = append(k.closers, client.Close)
		}
		k.cache = cache.NewRedis(k.redis, cache.WithPrefix(k.cfg.Redis.Prefix))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCache, k.cfg.Cache)
	}
}

// Close releases the cache resources New created. Clients passed in with
// options are left open.
func (k *Kit) Close() error {
	var errs []error
	for i := len(k.closers) - 1; i >= 0; i-- {
		errs = append(errs, k.closers[i]())
	}
	k.closers = nil
	return errors.Join(errs...)
}

// Healthcheck pings Redis when it backs the side cache.
func (k *Kit) Healthcheck(ctx context.Context) error {
	if k.redis == nil {
		return nil
	}
	return cache.Healthcheck(k.redis)(ctx)
}

func (k *Kit) Logger() *slog.Logger         { return k.logger }
func (k *Kit) Cookies() *cookie.Manager     { return k.cookies }
func (k *Kit) Sessions() *session.Codec     { return k.sessions }
func (k *Kit) Formats() *format.Registry    { return k.formats }
func (k *Kit) DefaultFormat() format.Format { return k.defaultFormat }
func (k *Kit) Locales() *locale.Resolver    { return k.locales }
func (k *Kit) Cache() cache.Service         { return k.cache }
func (k *Kit) Config() Config               { return k.cfg }
