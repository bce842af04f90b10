package observability

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/kbukum/xduce/errors"
)

// Run statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// RunContext holds observability context for one pipeline run.
type RunContext struct {
	Pipeline  string
	RunID     string
	StartTime time.Time
	Metrics   *Metrics
}

// NewRunContext creates a run context. If metrics is nil, metric recording
// is skipped.
func NewRunContext(pipeline, runID string, metrics *Metrics) *RunContext {
	return &RunContext{
		Pipeline:  pipeline,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// Start opens the run span and stores rc in the returned context.
func (rc *RunContext) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanPipelineRun, trace.WithAttributes(
		attribute.String(AttrPipeline, rc.Pipeline),
		attribute.String(AttrRunID, rc.RunID),
	))
	return WithRunContext(ctx, rc), span
}

// End closes the run span and records run metrics.
func (rc *RunContext) End(ctx context.Context, span trace.Span, in, out int64, err error) string {
	duration := time.Since(rc.StartTime)
	status := StatusFor(err)

	if err != nil {
		SetSpanError(ctx, err)
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrItemsIn, in),
		attribute.Int64(AttrItemsOut, out),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRun(ctx, rc.Pipeline, status, in, out, duration)
		if err != nil {
			rc.Metrics.RecordError(ctx, ErrorCode(err), "pipeline")
		}
	}
	return status
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}

// StatusFor maps a run error to a status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded),
		apperrors.HasCode(err, apperrors.ErrCodeCanceled):
		return StatusCanceled
	default:
		return StatusError
	}
}

// ErrorCode returns the AppError code carried by err, or "UNKNOWN".
func ErrorCode(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}
