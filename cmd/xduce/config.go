package main

import (
	"go.uber.org/multierr"

	"github.com/kbukum/xduce/config"
	"github.com/kbukum/xduce/pipeline"
	"github.com/kbukum/xduce/redis"
	"github.com/kbukum/xduce/validation"
)

// Output kinds.
const (
	OutputStdout = "stdout"
	OutputRedis  = "redis"
)

// AppConfig is the xduce binary configuration.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Pipeline  pipeline.Config `yaml:"pipeline" mapstructure:"pipeline"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// OutputConfig selects where pipeline output goes.
type OutputConfig struct {
	Kind  string       `yaml:"kind" mapstructure:"kind"`
	Key   string       `yaml:"key" mapstructure:"key"`
	Redis redis.Config `yaml:"redis" mapstructure:"redis"`
}

// TelemetryConfig enables OTLP trace and metric export.
type TelemetryConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults applies defaults to every section.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "xduce"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Pipeline.ApplyDefaults()
	if c.Output.Kind == "" {
		c.Output.Kind = OutputStdout
	}
	if c.Output.Kind == OutputRedis {
		c.Output.Redis.ApplyDefaults()
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate reports every invalid section at once. The pipeline itself is
// validated when it is compiled.
func (c *AppConfig) Validate() error {
	err := c.ServiceConfig.Validate()

	v := validation.New()
	v.At("output").
		OneOf("kind", c.Output.Kind, []string{OutputStdout, OutputRedis}).
		Custom(c.Output.Kind != OutputRedis || c.Output.Key != "", "key", "is required for redis output")
	if c.Telemetry.Enabled {
		v.At("telemetry").Required("endpoint", c.Telemetry.Endpoint)
	}
	if appErr := v.Validate(); appErr != nil {
		err = multierr.Append(err, appErr)
	}

	if c.Output.Kind == OutputRedis {
		err = multierr.Append(err, c.Output.Redis.Validate())
	}
	return err
}
