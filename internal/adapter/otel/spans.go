package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "codeguide"

// StartSearchSpan starts a span for one search query.
func StartSearchSpan(ctx context.Context, query string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "search",
		trace.WithAttributes(
			attribute.String("search.query", query),
		),
	)
}

// StartReloadSpan starts a span for a content reload.
func StartReloadSpan(ctx context.Context, trigger string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "content.reload",
		trace.WithAttributes(
			attribute.String("reload.trigger", trigger),
		),
	)
}
