package logging

import "context"

type attrsKey struct{}

// WithAttrs returns a context carrying key/value pairs that every Logger
// call made with this context prepends to its own args. Pairs accumulate
// across nested calls.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := attrsFrom(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, attrsKey{}, merged)
}

func attrsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(attrsKey{}).([]any)
	return v
}

func withContextArgs(ctx context.Context, args []any) []any {
	prev := attrsFrom(ctx)
	if len(prev) == 0 {
		return args
	}
	out := make([]any, 0, len(prev)+len(args))
	out = append(out, prev...)
	return append(out, args...)
}
