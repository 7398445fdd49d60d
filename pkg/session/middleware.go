package session

import (
	"net/http"

	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/logger"
)

// Middleware resolves the session cookie at request start, exposes the
// session through the request context and writes the serialized cookie
// before the response headers go out. A deletion cookie is only sent when
// the request carried a session cookie.
func (c *Codec) Middleware(cookies *cookie.Manager, cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, _ := cookies.Get(r, cfg.CookieName)
			s := c.Resolve(in, cfg.TTL)

			ww, finish := cookie.BeforeWrite(w, func() {
				ck := s.Serialize(cfg.CookieName)
				if ck.IsDeletion() && in == nil {
					return
				}
				if err := cookies.Write(w, ck); err != nil {
					c.logger.ErrorContext(r.Context(), "failed to write session cookie",
						logger.Cookie(cfg.CookieName), logger.Error(err))
				}
			})

			next.ServeHTTP(ww, r.WithContext(WithSession(r.Context(), s)))
			finish()
		})
	}
}
