package locale

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/httpkit/pkg/header"
)

// maxHeaderLength caps the Accept-Language value handed to the parser.
const maxHeaderLength = 1024

// Resolver picks the request language among the supported ones.
// It is safe for concurrent use.
type Resolver struct {
	matcher    language.Matcher
	supported  []language.Tag
	def        language.Tag
	cookieName string
	queryParam string
}

// NewResolver builds a Resolver from cfg. The default must be one of the
// supported languages; it is added when the list is empty.
func NewResolver(cfg Config) (*Resolver, error) {
	def, err := language.Parse(strings.TrimSpace(cfg.Default))
	if err != nil {
		return nil, fmt.Errorf("%w: default %q: %w", ErrInvalidTag, cfg.Default, err)
	}

	// The default goes first: the matcher falls back to the first tag.
	tags := []language.Tag{def}
	found := false
	for _, s := range cfg.Supported {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		tag, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTag, s, err)
		}
		if tag == def {
			found = true
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) > 1 && !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, def)
	}

	return &Resolver{
		matcher:    language.NewMatcher(tags),
		supported:  tags,
		def:        def,
		cookieName: cfg.CookieName,
		queryParam: cfg.QueryParam,
	}, nil
}

// Default returns the fallback language.
func (r *Resolver) Default() language.Tag {
	return r.def
}

// Supported returns the supported languages, default first.
func (r *Resolver) Supported() []language.Tag {
	return append([]language.Tag(nil), r.supported...)
}

// Match returns the supported language closest to the given preferences,
// which may be Accept-Language values or plain tags. Unparseable input and
// input with no acceptable match yield the default.
func (r *Resolver) Match(prefs ...string) language.Tag {
	var want []language.Tag
	for _, p := range prefs {
		if len(p) > maxHeaderLength {
			p = p[:maxHeaderLength]
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		want = append(want, tags...)
	}
	if len(want) == 0 {
		return r.def
	}
	_, idx, conf := r.matcher.Match(want...)
	if conf == language.No {
		return r.def
	}
	return r.supported[idx]
}

// Resolve picks the language for req: an explicit cookie or query parameter
// first, then Accept-Language, then the default.
func (r *Resolver) Resolve(req *http.Request) language.Tag {
	if r.cookieName != "" {
		if c, err := req.Cookie(r.cookieName); err == nil && c.Value != "" {
			if tag, ok := r.exact(c.Value); ok {
				return tag
			}
		}
	}
	if r.queryParam != "" {
		if v := req.URL.Query().Get(r.queryParam); v != "" {
			if tag, ok := r.exact(v); ok {
				return tag
			}
		}
	}
	return r.Match(req.Header.Values(header.AcceptLanguage)...)
}

// exact accepts an explicit choice only when it matches a supported language.
func (r *Resolver) exact(s string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf < language.High {
		return language.Und, false
	}
	return r.supported[idx], true
}

// Middleware stores the resolved language in the request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		next.ServeHTTP(w, req.WithContext(WithLocale(req.Context(), r.Resolve(req))))
	})
}

type localeContextKey struct{}

// WithLocale sets the locale in the context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeContextKey{}, tag)
}

// FromContext returns the locale from the context.
func FromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	return tag, ok
}
