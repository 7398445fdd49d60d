package format

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/httpkit/pkg/header"
)

type rawTokenKey struct{}

// WithRawToken stashes the raw header token the request was resolved from.
func WithRawToken(ctx context.Context, raw string) context.Context {
	return context.WithValue(ctx, rawTokenKey{}, raw)
}

// RawToken returns the token stashed with WithRawToken.
func RawToken(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(rawTokenKey{}).(string)
	return raw, ok
}

// ContentTypeOf returns the content type to send for f. Unknown is served
// with the stashed raw token when there is one, text/html otherwise.
func ContentTypeOf(ctx context.Context, f Format) string {
	if f == Unknown {
		if raw, ok := RawToken(ctx); ok && raw != "" {
			return raw
		}
	}
	return f.ContentType()
}

// Negotiate classifies the Accept and Content-Type headers of r. A missing
// Accept header counts as a single blank token and so resolves to HTML.
func Negotiate(r *http.Request, def Format) (accept, content Format) {
	accept = ResolveAll(def, acceptTokens(r))
	content = Resolve(def, r.Header.Get(header.ContentType))
	return accept, content
}

// Negotiate classifies the Accept and Content-Type headers of r, taking the
// registered formats into account.
func (reg *Registry) Negotiate(r *http.Request, def Format) (accept, content Format) {
	accept = reg.ResolveAll(def, acceptTokens(r))
	content = reg.Resolve(def, r.Header.Get(header.ContentType))
	return accept, content
}

func acceptTokens(r *http.Request) []string {
	if v := r.Header.Values(header.Accept); len(v) > 0 {
		return v
	}
	return []string{""}
}
