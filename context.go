package httpkit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/httpkit/pkg/flash"
	"github.com/dmitrymomot/httpkit/pkg/format"
	"github.com/dmitrymomot/httpkit/pkg/header"
	"github.com/dmitrymomot/httpkit/pkg/method"
	"github.com/dmitrymomot/httpkit/pkg/requestid"
	"github.com/dmitrymomot/httpkit/pkg/session"
	"github.com/dmitrymomot/httpkit/pkg/status"
)

// Context is the per-request view Kit.Middleware builds: the request, the
// response writer, the session, the flash, the negotiated formats and the
// locale. It implements context.Context by delegating to the request context.
// A Context belongs to one request and is not safe for concurrent use.
type Context struct {
	r           *http.Request
	w           http.ResponseWriter
	session     *session.Session
	flash       *flash.Flash
	accept      format.Format
	contentType format.Format
	locale      language.Tag
}

type contextKey struct{}

// FromContext returns the Context stored by Kit.Middleware.
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}

// MustFromContext is FromContext that panics when the middleware did not run.
func MustFromContext(ctx context.Context) *Context {
	c, ok := FromContext(ctx)
	if !ok {
		panic("httpkit: context not found, is Kit.Middleware installed?")
	}
	return c
}

func (c *Context) Request() *http.Request              { return c.r }
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }
func (c *Context) Session() *session.Session           { return c.session }
func (c *Context) Flash() *flash.Flash                 { return c.flash }
func (c *Context) Accept() format.Format               { return c.accept }
func (c *Context) ContentType() format.Format          { return c.contentType }
func (c *Context) Locale() language.Tag                { return c.locale }

// RequestID returns the correlation id of the request.
func (c *Context) RequestID() string {
	return requestid.FromContext(c.r.Context())
}

// Method returns the request method. Unknown methods are returned as sent.
func (c *Context) Method() method.Method {
	m, err := method.Parse(c.r.Method)
	if err != nil {
		return method.Method(c.r.Method)
	}
	return m
}

// IsAjax reports whether the request was sent by XMLHttpRequest.
func (c *Context) IsAjax() bool {
	return header.IsAjax(c.r.Header.Get(header.XRequestedWith))
}

// Error writes msg in the accepted format with the given status code.
func (c *Context) Error(code status.Status, msg string) error {
	h := c.w.Header()
	ct := format.ContentTypeOf(c, c.accept)
	if c.accept.IsText() {
		ct += "; charset=utf-8"
	}
	h.Set(header.ContentType, ct)
	h.Set("X-Content-Type-Options", "nosniff")
	c.w.WriteHeader(code.Code())
	if _, err := fmt.Fprint(c.w, c.accept.ErrorMessage(msg)); err != nil {
		return fmt.Errorf("httpkit: write error body: %w", err)
	}
	return nil
}

// Redirect sends a redirect. POST, PUT and the like get 303 so the browser
// follows with GET; safe methods get 302.
func (c *Context) Redirect(url string) {
	code := status.Found
	if !c.Method().IsSafe() {
		code = status.SeeOther
	}
	http.Redirect(c.w, c.r, url, code.Code())
}

func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *Context) Err() error {
	return c.r.Context().Err()
}

func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}
