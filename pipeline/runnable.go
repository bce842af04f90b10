package pipeline

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/observability"
	"github.com/kbukum/xduce/validation"
	"github.com/kbukum/xduce/xform"
)

// Result summarises one Run.
type Result struct {
	RunID    uuid.UUID
	Inputs   int64
	Outputs  int64
	Duration time.Duration
}

// Runnable is a compiled pipeline ready to execute any number of times.
// Every Run gets fresh stage state.
type Runnable struct {
	cfg     Config
	stages  []compiled
	log     *logger.Logger
	metrics *observability.Metrics
}

// New compiles cfg into a Runnable. It fails with the same errors as Build.
func New(cfg Config, opts ...Option) (*Runnable, error) {
	o := newOptions(opts)
	stages, err := compile(cfg, o)
	if err != nil {
		return nil, err
	}
	return &Runnable{
		cfg:     cfg,
		stages:  stages,
		log:     o.log.WithComponent("pipeline"),
		metrics: o.metrics,
	}, nil
}

// Name returns the pipeline name.
func (r *Runnable) Name() string { return r.cfg.Name }

// Stages returns the number of configured stages.
func (r *Runnable) Stages() int { return len(r.stages) }

// Run pulls every line from in through the pipeline and appends the output to
// out. It stops pulling as soon as ctx is done and then returns a CANCELED
// error together with the counts reached so far.
func (r *Runnable) Run(ctx context.Context, in iter.Seq[string], out xform.Appender[string]) (Result, error) {
	runID, err := r.runID()
	if err != nil {
		return Result{}, err
	}

	rc := observability.NewRunContext(r.cfg.Name, runID.String(), r.metrics)
	ctx, span := rc.Start(ctx)
	ctx = logger.ContextWithRunID(ctx, runID.String())
	log := r.log.WithContext(ctx).WithFields(map[string]interface{}{
		logger.FieldPipeline: r.cfg.Name,
	})
	observability.SetSpanAttribute(ctx, observability.AttrStages, len(r.stages))
	log.Info("Pipeline run started", map[string]interface{}{"stages": len(r.stages)})

	var inputs int64
	src := func(yield func(string) bool) {
		for line := range in {
			if ctx.Err() != nil {
				return
			}
			inputs++
			if !yield(line) {
				return
			}
		}
	}

	xf := chain(ctx, r.cfg.Name, r.stages, r.metrics)
	counted := xform.Fork2(xform.Output[xform.Appender[string], string](), xform.Count[string]())
	final := xform.Transduce(xform.Tuple2[xform.Appender[string], int]{V0: out}, xf, counted, src)

	if cerr := ctx.Err(); cerr != nil {
		err = apperrors.Canceled("pipeline "+r.cfg.Name, cerr).WithDetail("items_in", inputs)
	}

	res := Result{
		RunID:    runID,
		Inputs:   inputs,
		Outputs:  int64(final.V1),
		Duration: rc.Duration(),
	}
	status := rc.End(ctx, span, res.Inputs, res.Outputs, err)

	fields := map[string]interface{}{
		logger.FieldStatus:   status,
		logger.FieldItemsIn:  res.Inputs,
		logger.FieldItemsOut: res.Outputs,
		logger.FieldDuration: res.Duration.Milliseconds(),
	}
	if err != nil {
		log.WithError(err).Warn("Pipeline run stopped", fields)
		return res, err
	}
	log.Info("Pipeline run finished", fields)
	return res, nil
}

func (r *Runnable) runID() (uuid.UUID, error) {
	if r.cfg.RunID == "" {
		return uuid.New(), nil
	}
	return validation.ValidateUUID("run_id", r.cfg.RunID)
}
