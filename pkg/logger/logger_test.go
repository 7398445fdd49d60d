package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/logger"
)

type ctxKey struct{}

func TestNew_JSONWithExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(logger.Component("test")),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(ctxKey{}).(string); ok {
				return slog.String("trace", v), true
			}
			return slog.Attr{}, false
		}, nil),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
	log.InfoContext(ctx, "hello", logger.Cookie("sid"), logger.Error(nil))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "test", rec["component"])
	assert.Equal(t, "abc", rec["trace"])
	assert.Equal(t, "sid", rec["cookie"])
	assert.NotContains(t, rec, "error")
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	dev := logger.New(logger.WithOutput(&buf), logger.WithDevelopment())
	dev.Debug("shown", logger.FormatName("json"))
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "format=json")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{Level: "debug", Format: "TEXT"}, logger.WithOutput(&buf))
	log.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	log = logger.NewFromConfig(logger.Config{Level: "nonsense", Format: "json"}, logger.WithOutput(&buf))
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	assert.Panics(t, func() {
		logger.NewFromConfig(logger.Config{Format: "xml"})
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	assert.True(t, logger.SessionID("").Equal(slog.Attr{}))

	err := errors.New("boom")
	errs := logger.Errors(nil, err)
	require.Equal(t, "errors", errs.Key)
	assert.Len(t, errs.Value.Group(), 1)

	g := logger.Group("req", logger.Locale("en-US"), logger.Reason("expired"))
	require.Equal(t, slog.KindGroup, g.Value.Kind())
	assert.Equal(t, "locale", g.Value.Group()[0].Key)

	assert.Equal(t, "session_id", logger.SessionID("x").Key)
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			return slog.String("trace", v), true
		}
		return slog.Attr{}, false
	}
	empty := func(context.Context) (slog.Attr, bool) { return slog.Attr{}, true }
	h := logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), extractor, nil, empty)

	t.Run("context attrs follow extractor attrs", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		ctx = logger.WithContextAttrs(ctx, logger.SessionID("s1"), logger.Error(nil))
		ctx = logger.WithContextAttrs(ctx, logger.Locale("de"))
		slog.New(h).InfoContext(ctx, "hello")

		out := buf.String()
		assert.Less(t, strings.Index(out, `"trace"`), strings.Index(out, `"session_id"`))
		assert.Less(t, strings.Index(out, `"session_id"`), strings.Index(out, `"locale"`))
		assert.NotContains(t, out, `"error"`)
		assert.NotContains(t, out, `"":`)
	})

	t.Run("groups and static attrs keep extractors", func(t *testing.T) {
		buf.Reset()
		ctx := context.WithValue(context.Background(), ctxKey{}, "xyz")
		slog.New(h).With(logger.Component("api")).WithGroup("req").InfoContext(ctx, "hi")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "api", rec["component"])
		assert.Equal(t, map[string]any{"trace": "xyz"}, rec["req"])
	})

	t.Run("levels are delegated", func(t *testing.T) {
		filtered := logger.NewContextHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		assert.False(t, filtered.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, filtered.Enabled(context.Background(), slog.LevelError))
	})
}

func TestWithContextAttrs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Nil(t, logger.ContextAttrs(ctx))
	assert.Equal(t, ctx, logger.WithContextAttrs(ctx, logger.SessionID("")), "empty attributes add nothing")

	parent := logger.WithContextAttrs(ctx, logger.Locale("en"))
	child := logger.WithContextAttrs(parent, logger.FormatName("json"))
	assert.Len(t, logger.ContextAttrs(parent), 1, "the parent context is not modified")
	require.Len(t, logger.ContextAttrs(child), 2)
	assert.Equal(t, "format", logger.ContextAttrs(child)[1].Key)
}
