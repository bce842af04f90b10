package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/observability"
	"github.com/kbukum/xduce/validation"
	"github.com/kbukum/xduce/xform"
)

// Option configures Build and New.
type Option func(*options)

type options struct {
	log     *logger.Logger
	metrics *observability.Metrics
	ctx     context.Context
}

// WithLogger sets the logger used by log stages and by Runnable.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics counts the items leaving every stage.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithContext sets the context stage counters record against in Build.
// Runnable uses the context passed to Run instead.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}
	return o
}

type compiled struct {
	name string
	xf   Line
}

// Build validates cfg and compiles its stages, in order, into one transducer.
// Every invalid stage is reported, not just the first; each error names the
// stage index and type.
func Build(cfg Config, opts ...Option) (Line, error) {
	o := newOptions(opts)
	stages, err := compile(cfg, o)
	if err != nil {
		return Line{}, err
	}
	return chain(o.ctx, cfg.Name, stages, o.metrics), nil
}

func compile(cfg Config, o options) ([]compiled, error) {
	if err := validation.Validate(cfg); err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", cfg.Name, err)
	}

	log := o.log.WithComponent("pipeline").WithFields(map[string]interface{}{
		logger.FieldPipeline: cfg.Name,
	})
	var errs error
	stages := make([]compiled, 0, len(cfg.Stages))
	for i, sc := range cfg.Stages {
		name := fmt.Sprintf("%d:%s", i, sc.Type)
		xf, err := compileStage(sc, buildEnv{name: name, log: log})
		if err != nil {
			if appErr, ok := apperrors.AsAppError(err); ok {
				appErr.WithDetail("stage", i).WithDetail("type", sc.Type)
			}
			errs = multierr.Append(errs, fmt.Errorf("stage %d (%s): %w", i, sc.Type, err))
			continue
		}
		stages = append(stages, compiled{name: name, xf: xf})
	}
	if errs != nil {
		return nil, fmt.Errorf("pipeline %q: %w", cfg.Name, errs)
	}
	return stages, nil
}

func chain(ctx context.Context, pipeline string, stages []compiled, m *observability.Metrics) Line {
	parts := make([]Line, 0, 2*len(stages))
	for _, s := range stages {
		parts = append(parts, s.xf)
		if m != nil {
			parts = append(parts, observability.Instrument[string](ctx, m, pipeline, s.name))
		}
	}
	return xform.Chain(parts[0], parts[1:]...)
}
