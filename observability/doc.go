// Package observability wires OpenTelemetry tracing and metrics into xduce.
//
// InitTracer and InitMeter install OTLP/HTTP exporters. RunContext wraps a
// pipeline run in a span and records run metrics when it ends. Instrument
// and Logged are transducers that count or log items at any point in a
// composed pipeline without changing them.
package observability
