package observability

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/xform"
)

// Instrument counts every item passing through the point where it is
// composed, labelled with pipeline and stage. A nil m yields a plain
// pass-through.
func Instrument[T any](ctx context.Context, m *Metrics, pipeline, stage string) xform.Transducer[T, T] {
	return xform.New(func(next func(T)) func(T) {
		return func(item T) {
			if m != nil {
				m.RecordStageItem(ctx, pipeline, stage)
			}
			next(item)
		}
	})
}

// Logged writes a debug line for every item passing through, with its
// zero-based position.
func Logged[T any](log *logger.Logger, stage string) xform.Transducer[T, T] {
	enabled := log.Enabled(zerolog.DebugLevel)
	return xform.New(func(next func(T)) func(T) {
		i := 0
		return func(item T) {
			if enabled {
				log.Debug("item", map[string]interface{}{
					logger.FieldStage: stage,
					logger.FieldIndex: i,
					logger.FieldItem:  item,
				})
			}
			i++
			next(item)
		}
	})
}
