package flash

import "context"

type flashContextKey struct{}

// WithFlash adds a flash to the context
func WithFlash(ctx context.Context, f *Flash) context.Context {
	return context.WithValue(ctx, flashContextKey{}, f)
}

// FromContext retrieves a flash from the context
func FromContext(ctx context.Context) (*Flash, bool) {
	f, ok := ctx.Value(flashContextKey{}).(*Flash)
	return f, ok
}

// MustFromContext retrieves a flash from the context or panics
func MustFromContext(ctx context.Context) *Flash {
	f, ok := FromContext(ctx)
	if !ok {
		panic("flash: not found in context")
	}
	return f
}
