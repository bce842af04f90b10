package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	apperrors "github.com/kbukum/xduce/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const errorsPipeline = `
name: xduce-test
logging:
  level: debug
  format: json
pipeline:
  name: errors
  stages:
    - type: filter
      pattern: ERROR
    - type: transform
      op: replace
      pattern: "^ERROR\\s+"
    - type: number
      count: 1
      value: ". "
`

func TestRun_Stdout(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", errorsPipeline)

	var out, logs bytes.Buffer
	err := run(context.Background(), cli{
		configFile: cfgPath,
		stdin:      strings.NewReader("INFO up\nERROR disk full\nWARN slow\nERROR  timeout\n"),
		stdout:     &out,
		logOut:     &logs,
	})
	if err != nil {
		t.Fatalf("run failed: %v\nlogs:\n%s", err, logs.String())
	}
	if out.String() != "1. disk full\n2. timeout\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(logs.String(), "xduce finished") {
		t.Errorf("expected completion log, got:\n%s", logs.String())
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", errorsPipeline)
	a := writeFile(t, dir, "a.log", "ERROR one")
	b := writeFile(t, dir, "b.log", "ERROR two\nINFO three\n")

	var out bytes.Buffer
	err := run(context.Background(), cli{
		configFile: cfgPath,
		inputs:     []string{a, b},
		stdout:     &out,
		logOut:     &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "1. one\n2. two\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", errorsPipeline)

	err := run(context.Background(), cli{
		configFile: cfgPath,
		inputs:     []string{filepath.Join(dir, "missing.log")},
		stdout:     &bytes.Buffer{},
		logOut:     &bytes.Buffer{},
	})
	if !apperrors.HasCode(err, apperrors.ErrCodeSourceFailed) {
		t.Errorf("expected SOURCE_FAILED, got %v", err)
	}
}

func TestRun_Redis(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yml", `
name: xduce-test
pipeline:
  name: words
  stages:
    - type: split
    - type: transform
      op: upper
output:
  kind: redis
  key: words
  redis:
    addr: `+mini.Addr()+`
    batch_size: 2
`)

	err = run(context.Background(), cli{
		configFile: cfgPath,
		stdin:      strings.NewReader("the quick\nbrown fox\n"),
		stdout:     &bytes.Buffer{},
		logOut:     &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	got, err := mini.List("words")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Equal(got, []string{"THE", "QUICK", "BROWN", "FOX"}) {
		t.Errorf("got %v", got)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"redis without key", "pipeline:\n  stages:\n    - type: take\noutput:\n  kind: redis\n", "output.key"},
		{"unknown output", "pipeline:\n  stages:\n    - type: take\noutput:\n  kind: kafka\n", "output.kind"},
		{"no stages", "pipeline:\n  name: empty\n", "stages"},
		{"unknown stage", "pipeline:\n  stages:\n    - type: reverse\n", "reverse"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfgPath := writeFile(t, t.TempDir(), "config.yml", tc.yaml)
			err := run(context.Background(), cli{
				configFile: cfgPath,
				stdin:      strings.NewReader(""),
				stdout:     &bytes.Buffer{},
				logOut:     &bytes.Buffer{},
			})
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	cfg.ApplyDefaults()
	if cfg.Name != "xduce" || cfg.Output.Kind != OutputStdout || cfg.Pipeline.Name != "default" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Telemetry.Endpoint != "localhost:4318" || cfg.Telemetry.SampleRate != 1.0 {
		t.Errorf("unexpected telemetry defaults %+v", cfg.Telemetry)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("logs must not share stdout with output, got %q", cfg.Logging.Output)
	}
}
