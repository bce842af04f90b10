package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/kbukum/xduce/config"
	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/logger"
	"github.com/kbukum/xduce/observability"
	"github.com/kbukum/xduce/pipeline"
	"github.com/kbukum/xduce/redis"
	"github.com/kbukum/xduce/version"
	"github.com/kbukum/xduce/xform"
)

const shutdownTimeout = 10 * time.Second

// cli carries everything run needs from the process.
type cli struct {
	configFile string
	envFile    string
	inputs     []string
	stdin      io.Reader
	stdout     io.Writer
	// logOut overrides the configured log output.
	logOut io.Writer
}

// sink is an output with a flush step.
type sink interface {
	xform.Appender[string]
	flush(ctx context.Context) error
}

type lineSink struct{ *pipeline.LineWriter }

func (s lineSink) flush(context.Context) error { return s.Flush() }

type redisSink struct{ *redis.ListSink }

func (s redisSink) flush(ctx context.Context) error { return s.Flush(ctx) }

func loadConfig(c cli) (*AppConfig, error) {
	var cfg AppConfig
	opts := []config.LoaderOption{config.WithEnvPrefix("XDUCE")}
	if c.configFile != "" {
		opts = append(opts, config.WithConfigFile(c.configFile))
	}
	if c.envFile != "" {
		opts = append(opts, config.WithEnvFile(c.envFile))
	}
	if err := config.LoadConfig("xduce", &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func run(ctx context.Context, c cli) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var log *logger.Logger
	if c.logOut != nil {
		log = logger.NewWithWriter(&cfg.Logging, cfg.Name, c.logOut)
	} else {
		log = logger.New(&cfg.Logging, cfg.Name)
	}
	logger.SetGlobalLogger(log)
	logger.RegisterDefaults("observability")
	log = log.WithComponent("xduce")

	info := version.Get()
	log.Info("Starting xduce", info.Fields())

	var closers []func(context.Context) error
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		for i := len(closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, closers[i](sctx))
		}
	}()

	var metrics *observability.Metrics
	if cfg.Telemetry.Enabled {
		m, shutdown, terr := initTelemetry(ctx, cfg, info.Version)
		closers = append(closers, shutdown...)
		if terr != nil {
			return terr
		}
		metrics = m
	}

	r, err := pipeline.New(cfg.Pipeline, pipeline.WithLogger(log), pipeline.WithMetrics(metrics))
	if err != nil {
		return err
	}

	out, err := openSink(ctx, cfg, c.stdout, log, metrics, &closers)
	if err != nil {
		return err
	}

	ctx, stop := withSignalCancel(ctx, log)
	defer stop()

	in, readErr := readInputs(c.inputs, c.stdin)
	res, runErr := r.Run(ctx, in, out)

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	err = multierr.Combine(runErr, readErr(), out.flush(fctx))

	fields := map[string]interface{}{
		logger.FieldRunID:    res.RunID.String(),
		logger.FieldItemsIn:  res.Inputs,
		logger.FieldItemsOut: res.Outputs,
		logger.FieldDuration: res.Duration.Milliseconds(),
		"output":             cfg.Output.Kind,
	}
	if err != nil {
		log.WithError(err).Error("xduce failed", fields)
		return err
	}
	log.Info("xduce finished", fields)
	return nil
}

func initTelemetry(ctx context.Context, cfg *AppConfig, ver string) (*observability.Metrics, []func(context.Context) error, error) {
	tc := observability.DefaultTracerConfig(cfg.Name)
	tc.ServiceVersion = ver
	tc.Environment = cfg.Environment
	tc.Endpoint = cfg.Telemetry.Endpoint
	tc.Insecure = cfg.Telemetry.Insecure
	tc.SampleRate = cfg.Telemetry.SampleRate
	tp, err := observability.InitTracer(ctx, tc)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(context.Context) error{tp.Shutdown}

	mc := observability.DefaultMeterConfig(cfg.Name)
	mc.ServiceVersion = ver
	mc.Environment = cfg.Environment
	mc.Endpoint = cfg.Telemetry.Endpoint
	mc.Insecure = cfg.Telemetry.Insecure
	mp, err := observability.InitMeter(ctx, mc)
	if err != nil {
		return nil, closers, err
	}
	closers = append(closers, mp.Shutdown)

	m, err := observability.NewMetrics(observability.Meter("xduce"))
	return m, closers, err
}

func openSink(ctx context.Context, cfg *AppConfig, stdout io.Writer, log *logger.Logger,
	metrics *observability.Metrics, closers *[]func(context.Context) error) (sink, error) {
	if cfg.Output.Kind != OutputRedis {
		return lineSink{pipeline.NewLineWriter(stdout)}, nil
	}

	client, err := redis.New(cfg.Output.Redis, log)
	if err != nil {
		return nil, err
	}
	*closers = append(*closers, func(context.Context) error { return client.Close() })
	if err := client.Ping(ctx); err != nil {
		return nil, err
	}
	return redisSink{client.ListSink(cfg.Output.Key, redis.WithMetrics(metrics))}, nil
}

// withSignalCancel cancels ctx on SIGINT or SIGTERM so a run stops pulling
// input and still flushes what it produced.
func withSignalCancel(ctx context.Context, log *logger.Logger) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			log.Info("Received signal, canceling run", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

// readInputs streams the lines of every path in order, or of stdin when
// there are none. "-" also names stdin.
func readInputs(paths []string, stdin io.Reader) (iter.Seq[string], func() error) {
	if len(paths) == 0 {
		return pipeline.Lines(stdin)
	}

	var err error
	seq := func(yield func(string) bool) {
		for _, path := range paths {
			more, rerr := yieldLines(path, stdin, yield)
			if rerr != nil {
				err = rerr
				return
			}
			if !more {
				return
			}
		}
	}
	return seq, func() error { return err }
}

func yieldLines(path string, stdin io.Reader, yield func(string) bool) (bool, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return false, apperrors.SourceFailed(path, err)
		}
		defer f.Close()
		r = f
	}

	lines, readErr := pipeline.Lines(r)
	for line := range lines {
		if !yield(line) {
			return false, nil
		}
	}
	return true, readErr()
}
