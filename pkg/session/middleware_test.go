package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/cookie"
	"github.com/dmitrymomot/httpkit/pkg/session"
)

func TestMiddleware_RoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := newCodec(t)
	cfg := session.Config{CookieName: "sid", TTL: time.Hour}
	mw := c.Middleware(cookie.NewManager(), cfg)

	login := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := session.MustFromContext(r.Context())
		require.NoError(t, s.Put("user", "42"))
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	login.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	res := rec.Result()
	require.Len(t, res.Cookies(), 1)
	sid := res.Cookies()[0]
	assert.Equal(t, "sid", sid.Name)
	assert.Equal(t, 3600, sid.MaxAge)
	assert.True(t, sid.HttpOnly)

	var user string
	profile := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		user, _ = s.Get("user")
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(sid)
	rec = httptest.NewRecorder()
	profile.ServeHTTP(rec, req)

	assert.Equal(t, "42", user)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, rec.Result().Cookies(), 1, "sliding expiry refreshes the cookie")
}

func TestMiddleware_NoCookieWhenUntouched(t *testing.T) {
	t.Parallel()

	c, _ := newCodec(t)
	mw := c.Middleware(cookie.NewManager(), session.DefaultConfig())

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Result().Cookies())
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { session.MustFromContext(context.Background()) })

	c, _ := newCodec(t)
	s := c.New()
	got, ok := session.FromContext(session.WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestMiddleware_DeletionOnlyWhenCookieSent(t *testing.T) {
	t.Parallel()

	c, _ := newCodec(t)
	cfg := session.Config{CookieName: "sid", TTL: time.Hour}
	mw := c.Middleware(cookie.NewManager(), cfg)

	logout := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session.MustFromContext(r.Context()).Clear()
	}))

	rec := httptest.NewRecorder()
	logout.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Result().Cookies(), "an empty session of a new visitor sends nothing")

	s := c.Resolve(nil, time.Hour)
	require.NoError(t, s.Put("user", "42"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(s.Serialize("sid").HTTP())
	rec = httptest.NewRecorder()
	logout.ServeHTTP(rec, req)

	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
