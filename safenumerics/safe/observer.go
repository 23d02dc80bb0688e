package safe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/LerianStudio/lib-safenumerics/safenumerics/checked"
)

// FailureSpanEventName is the span event name recorded for reported
// arithmetic failures.
const FailureSpanEventName = "safenumerics.failure"

// Observer is a report handler that emits telemetry for every reported
// failure before surfacing the structured error: a zap log entry and an
// event on the OpenTelemetry span of its construction context.
//
// component and operation are used for telemetry labeling.
type Observer struct {
	ctx       context.Context
	logger    *zap.Logger
	component string
	operation string
}

// NewObserver creates an Observer bound to ctx and logger. Either may be
// nil; a nil ctx falls back to context.Background().
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func NewObserver(ctx context.Context, logger *zap.Logger, component, operation string) *Observer {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Observer{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// Handler returns the report handler for this observer, suitable for
// ExceptionPolicy.WithHandler.
//
// Example:
//
//	obs := safe.NewObserver(ctx, logger, "billing", "accrue")
//	policy := safe.Strict.WithHandler(obs.Handler())
func (o *Observer) Handler() Handler {
	return func(kind checked.ErrorKind, msg string) error {
		err := checked.NewError(kind, msg)

		if o.logger != nil {
			o.logger.Error("arithmetic failure",
				zap.String("kind", kind.String()),
				zap.String("category", kind.Action().String()),
				zap.String("detail", msg),
				zap.String("component", o.component),
				zap.String("operation", o.operation),
			)
		}

		o.recordFailureToSpan(err, kind, msg)

		return err
	}
}

func (o *Observer) recordFailureToSpan(err error, kind checked.ErrorKind, msg string) {
	span := trace.SpanFromContext(o.ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("failure.kind", kind.String()),
		attribute.String("failure.category", kind.Action().String()),
		attribute.String("failure.message", msg),
	}

	if o.component != "" {
		attrs = append(attrs, attribute.String("failure.component", o.component))
	}

	if o.operation != "" {
		attrs = append(attrs, attribute.String("failure.operation", o.operation))
	}

	span.AddEvent(FailureSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(err)
	span.SetStatus(codes.Error, "arithmetic failure: "+kind.String())
}
