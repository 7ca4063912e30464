package psort

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startSortSpan creates the span covering one parallel sort.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startSortSpan(ctx context.Context, itemCount, workerCount int) (context.Context, trace.Span) {
	tracer := otel.Tracer("psort")
	ctx, span := tracer.Start(ctx, "psort.sort")
	span.SetAttributes(
		attribute.Int("items", itemCount),
		attribute.Int("workers", workerCount),
	)

	return ctx, span
}

// spanError records err on span, marks the span failed, and passes err
// through.
func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
