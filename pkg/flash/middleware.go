package flash

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/logger"
)

// Middleware resolves the flash cookie, exposes the flash through the request
// context and writes its cookie before the response headers go out.
// A deletion cookie is only sent when the request carried a flash cookie.
func Middleware(cookies *cookie.Manager, cfg Config, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, _ := cookies.Get(r, cfg.CookieName)
			f := Resolve(in)

			ww, finish := cookie.BeforeWrite(w, func() {
				ck := f.Serialize(cfg.CookieName)
				if ck.IsDeletion() && in == nil {
					return
				}
				if err := cookies.Write(w, ck); err != nil {
					log.ErrorContext(r.Context(), "failed to write flash cookie",
						logger.Cookie(cfg.CookieName), logger.Error(err))
				}
			})

			next.ServeHTTP(ww, r.WithContext(WithFlash(r.Context(), f)))
			finish()
		})
	}
}
