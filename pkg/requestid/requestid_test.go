package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/header"
	"github.com/dmitrymomot/httpkit/pkg/logger"
	"github.com/dmitrymomot/httpkit/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, incoming string) (seen, echoed string) {
	t.Helper()
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(header.XRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get(header.XRequestID)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "missing", incoming: ""},
		{name: "valid", incoming: "req-123_abc", reused: true},
		{name: "spaces", incoming: "req 123"},
		{name: "injection", incoming: "id\r\nSet-Cookie: x=1"},
		{name: "too long", incoming: strings.Repeat("a", 129)},
		{name: "max length", incoming: strings.Repeat("a", 128), reused: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seen, echoed := serve(t, requestid.Middleware, tt.incoming)
			require.NotEmpty(t, seen)
			assert.Equal(t, seen, echoed)
			if tt.reused {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	mw := requestid.New(requestid.WithTrustHeader(false), requestid.WithGenerator(func() string { return "fixed" }))
	seen, echoed := serve(t, mw, "client-id")
	assert.Equal(t, "fixed", seen)
	assert.Equal(t, "fixed", echoed)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithRequestID(context.Background(), "abc"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Empty(t, requestid.FromContext(context.Background()))
}
