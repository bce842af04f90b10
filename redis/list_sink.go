package redis

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/observability"
	"github.com/kbukum/xduce/resilience"
	"github.com/kbukum/xduce/xform"
)

// ListSink collects pipeline output and appends it to a Redis list.
//
// Append only buffers; nothing reaches Redis until Flush. A ListSink is not
// safe for concurrent use, like every other xform sink.
type ListSink struct {
	client  *Client
	key     string
	batch   int
	retry   resilience.RetryConfig
	metrics *observability.Metrics
	buf     []string
}

var _ xform.Appender[string] = (*ListSink)(nil)

// SinkOption configures a ListSink.
type SinkOption func(*ListSink)

// WithBatchSize overrides the configured RPUSH batch size.
func WithBatchSize(n int) SinkOption {
	return func(s *ListSink) {
		if n > 0 {
			s.batch = n
		}
	}
}

// WithRetry overrides the retry policy used for each batch.
func WithRetry(cfg resilience.RetryConfig) SinkOption {
	return func(s *ListSink) { s.retry = cfg }
}

// WithMetrics records flushed items and failures.
func WithMetrics(m *observability.Metrics) SinkOption {
	return func(s *ListSink) { s.metrics = m }
}

// ListSink returns a sink appending to the list at key.
func (c *Client) ListSink(key string, opts ...SinkOption) *ListSink {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = c.cfg.FlushAttempts
	s := &ListSink{
		client: c,
		key:    key,
		batch:  c.cfg.BatchSize,
		retry:  retry,
	}
	for _, opt := range opts {
		opt(s)
	}
	retryHook := s.retry.OnRetry
	s.retry.OnRetry = func(attempt int, err error, backoff time.Duration) {
		c.log.Warn("Retrying list push", map[string]interface{}{
			"key":     key,
			"attempt": attempt,
			"backoff": backoff.String(),
			"error":   err.Error(),
		})
		if retryHook != nil {
			retryHook(attempt, err, backoff)
		}
	}
	return s
}

// Append buffers item until the next Flush.
func (s *ListSink) Append(item string) {
	s.buf = append(s.buf, item)
}

// Len returns the number of buffered items.
func (s *ListSink) Len() int {
	return len(s.buf)
}

// Key returns the Redis key the sink appends to.
func (s *ListSink) Key() string {
	return s.key
}

// Flush pushes buffered items in batches. Each batch is retried on
// retryable failures. Batches already pushed are dropped from the buffer
// even when a later batch fails, so a second Flush never duplicates them.
func (s *ListSink) Flush(ctx context.Context) error {
	if len(s.buf) == 0 {
		return nil
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanSinkFlush)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrSink, listName(s.key))

	start := time.Now()
	pushed := 0
	for pushed < len(s.buf) {
		end := min(pushed+s.batch, len(s.buf))
		batch := s.buf[pushed:end]
		err := resilience.RetryFunc(ctx, s.retry, func() error {
			return s.client.rdb.RPush(ctx, s.key, toArgs(batch)...).Err()
		})
		if err != nil {
			s.buf = s.buf[pushed:]
			return s.fail(ctx, pushed, err)
		}
		pushed = end
	}

	s.buf = s.buf[:0]
	s.record(ctx, pushed)
	observability.SetSpanAttribute(ctx, observability.AttrItemsOut, pushed)
	s.client.log.Debug("Flushed list sink",
		logger.Fields("key", s.key, "items", pushed, logger.FieldDuration, time.Since(start).Milliseconds()))
	return nil
}

func (s *ListSink) fail(ctx context.Context, pushed int, cause error) error {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		appErr = apperrors.Timeout("flush " + listName(s.key)).WithCause(cause)
	case ctx.Err() != nil:
		appErr = apperrors.Canceled("flush "+listName(s.key), cause)
	default:
		appErr = apperrors.SinkFailed(listName(s.key), cause)
	}
	appErr = appErr.WithDetails(map[string]any{"pushed": pushed, "pending": len(s.buf)})

	s.record(ctx, pushed)
	if s.metrics != nil {
		s.metrics.RecordError(ctx, string(appErr.Code), "redis")
	}
	observability.SetSpanError(ctx, appErr)
	s.client.log.WithError(cause).Error("List sink flush failed", map[string]interface{}{
		"key":     s.key,
		"pushed":  pushed,
		"pending": len(s.buf),
	})
	return appErr
}

func (s *ListSink) record(ctx context.Context, items int) {
	if s.metrics != nil && items > 0 {
		s.metrics.RecordFlush(ctx, listName(s.key), items)
	}
}

func toArgs(items []string) []interface{} {
	args := make([]interface{}, len(items))
	for i, item := range items {
		args[i] = item
	}
	return args
}
