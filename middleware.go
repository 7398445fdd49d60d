package httpkit

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/httpkit/pkg/flash"
	"github.com/dmitrymomot/httpkit/pkg/format"
	"github.com/dmitrymomot/httpkit/pkg/header"
	"github.com/dmitrymomot/httpkit/pkg/locale"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/requestid"
	"github.com/dmitrymomot/httpkit/pkg/session"
)

// Middleware resolves the session and the flash from their cookies,
// negotiates the formats and the locale, and makes a *Context available
// through FromContext. Session and flash cookies are written right before the
// response headers go out.
//
// The negotiated format and locale are stored with logger.WithContextAttrs,
// so loggers built by pkg/logger add them to every record logged with the
// request context.
func (k *Kit) Middleware(next http.Handler) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept, content := k.formats.Negotiate(r, k.defaultFormat)
		c := &Context{
			w:           w,
			session:     session.MustFromContext(r.Context()),
			flash:       flash.MustFromContext(r.Context()),
			accept:      accept,
			contentType: content,
			locale:      k.locales.Resolve(r),
		}

		ctx := r.Context()
		if raw := r.Header.Get(header.Accept); raw != "" {
			ctx = format.WithRawToken(ctx, raw)
		}
		ctx = locale.WithLocale(ctx, c.locale)
		ctx = logger.WithContextAttrs(ctx,
			logger.FormatName(accept.Name()),
			logger.Locale(c.locale.String()),
		)
		c.r = r.WithContext(context.WithValue(ctx, contextKey{}, c))

		k.logger.DebugContext(c.r.Context(), "request context ready")
		next.ServeHTTP(w, c.r)
	})

	var h http.Handler = inner
	h = flash.Middleware(k.cookies, k.cfg.Flash, k.logger)(h)
	h = k.sessions.Middleware(k.cookies, k.cfg.Session)(h)
	return requestid.Middleware(h)
}
