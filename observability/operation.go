package observability

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/lazystream/errors"
)

// Operation tracks one traced and measured stream operation, such as a CLI
// command reading a sequence.
type Operation struct {
	Command   string
	Sequence  string
	RunID     string
	StartTime time.Time
	Metrics   *StreamMetrics
}

// NewOperation creates an operation starting now. If metrics is nil, metric
// recording is skipped.
func NewOperation(command, sequence, runID string, metrics *StreamMetrics) *Operation {
	return &Operation{
		Command:   command,
		Sequence:  sequence,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type operationKey struct{}

// WithOperation stores op in the context.
func WithOperation(ctx context.Context, op *Operation) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFromContext retrieves the Operation from context, or nil.
func OperationFromContext(ctx context.Context) *Operation {
	if op, ok := ctx.Value(operationKey{}).(*Operation); ok {
		return op
	}
	return nil
}

// Start opens the command span and stores op in the returned context.
func (op *Operation) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanCommand, trace.WithAttributes(
		attribute.String(AttrCommand, op.Command),
		attribute.String(AttrRunID, op.RunID),
	))
	if op.Sequence != "" {
		span.SetAttributes(attribute.String(AttrSequence, op.Sequence))
	}
	return WithOperation(ctx, op), span
}

// End records the outcome on span, ends it, and records the operation
// metrics. count is the number of elements the operation produced.
func (op *Operation) End(ctx context.Context, span trace.Span, count int, err error) string {
	duration := time.Since(op.StartTime)
	status := StatusOf(err)

	if err != nil {
		SetSpanError(trace.ContextWithSpan(ctx, span), err)
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrCount, count),
	)
	span.End()

	if op.Metrics != nil {
		op.Metrics.RecordOperation(ctx, op.Command, status, duration)
	}
	return status
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}

// StatusOf classifies an operation error for metrics and spans.
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.HasCode(err, errors.ErrCodeEmptyStream):
		return StatusEmpty
	case stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, context.Canceled),
		errors.HasCode(err, errors.ErrCodeTimeout):
		return StatusTimeout
	default:
		return StatusError
	}
}
