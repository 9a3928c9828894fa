package logs

import (
	"context"
	"crypto/rand"
)

type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		parent := SpanOf(ctx)
		span := Span(rand.Text()[:12])
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"what", what}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
