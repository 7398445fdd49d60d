package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor derives an attribute from the context passed to a
// *Context logging call. It reports false when the context carries nothing
// worth logging. Extractors run once per emitted record, after the level
// check, so they must only read from ctx.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type attrsKey struct{}

// WithContextAttrs returns a copy of ctx carrying attrs. Every record logged
// through a ContextHandler with the returned context gets them appended.
// Repeated calls accumulate; attributes added by an outer call come first.
// Empty attributes are dropped.
func WithContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev := ContextAttrs(ctx)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	for _, a := range attrs {
		if !a.Equal(slog.Attr{}) {
			merged = append(merged, a)
		}
	}
	if len(merged) == len(prev) {
		return ctx
	}
	return context.WithValue(ctx, attrsKey{}, merged)
}

// ContextAttrs returns the attributes stored by WithContextAttrs, or nil.
// The returned slice must not be modified.
func ContextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return attrs
}

// ContextHandler wraps a slog.Handler and appends request-scoped attributes
// to each record: first the results of its extractors in registration order,
// then whatever WithContextAttrs stored in the record's context.
//
// Extracted attributes land in the innermost open group, exactly like
// attributes passed to the logging call itself.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are skipped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	h := &ContextHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

// Enabled reports whether the wrapped handler accepts level.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds the context attributes to rec and passes it on.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	stored := ContextAttrs(ctx)
	if len(h.extractors) == 0 && len(stored) == 0 {
		return h.next.Handle(ctx, rec)
	}

	rec = rec.Clone()
	for _, ex := range h.extractors {
		if a, ok := ex(ctx); ok && !a.Equal(slog.Attr{}) {
			rec.AddAttrs(a)
		}
	}
	rec.AddAttrs(stored...)
	return h.next.Handle(ctx, rec)
}

// WithAttrs returns a handler whose wrapped handler carries attrs. The
// extractors are shared.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

// WithGroup returns a handler that opens group name on the wrapped handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
