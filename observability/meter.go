package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/xduce/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns defaults for a local collector.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a periodic OTLP/HTTP meter provider as the global
// provider. The caller must shut it down on exit to flush the last interval.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded while running pipelines.
type Metrics struct {
	stageItems   metric.Int64Counter
	runTotal     metric.Int64Counter
	runDuration  metric.Float64Histogram
	runItems     metric.Int64Counter
	flushedItems metric.Int64Counter
	errorTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	stageItems, err := meter.Int64Counter("xduce.stage.items",
		metric.WithDescription("Items forwarded by a pipeline stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.stage.items counter: %w", err)
	}

	runTotal, err := meter.Int64Counter("xduce.run.total",
		metric.WithDescription("Completed pipeline runs by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("xduce.run.duration",
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.run.duration histogram: %w", err)
	}

	runItems, err := meter.Int64Counter("xduce.run.items",
		metric.WithDescription("Items read and written by pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.run.items counter: %w", err)
	}

	flushedItems, err := meter.Int64Counter("xduce.sink.flushed",
		metric.WithDescription("Items flushed to external sinks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.sink.flushed counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("xduce.error.total",
		metric.WithDescription("Errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating xduce.error.total counter: %w", err)
	}

	return &Metrics{
		stageItems:   stageItems,
		runTotal:     runTotal,
		runDuration:  runDuration,
		runItems:     runItems,
		flushedItems: flushedItems,
		errorTotal:   errorTotal,
	}, nil
}

// RecordStageItem counts one item leaving a stage.
func (m *Metrics) RecordStageItem(ctx context.Context, pipeline, stage string) {
	m.stageItems.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("stage", stage),
	))
}

// RecordRun records a finished pipeline run.
func (m *Metrics) RecordRun(ctx context.Context, pipeline, status string, in, out int64, duration time.Duration) {
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("status", status),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("pipeline", pipeline),
	))
	m.runItems.Add(ctx, in, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("direction", "in"),
	))
	m.runItems.Add(ctx, out, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("direction", "out"),
	))
}

// RecordFlush counts items pushed to an external sink.
func (m *Metrics) RecordFlush(ctx context.Context, sink string, items int) {
	m.flushedItems.Add(ctx, int64(items), metric.WithAttributes(
		attribute.String("sink", sink),
	))
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
