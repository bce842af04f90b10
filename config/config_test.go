package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "xduce", Debug: true}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("expected development, got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug services should log at debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging defaults to be applied, got %+v", cfg.Logging)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    ServiceConfig
		errMsg string
	}{
		{"valid", ServiceConfig{Name: "xduce", Environment: "production"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "config.name is required"},
		{"bad env", ServiceConfig{Name: "xduce", Environment: "qa"}, "config.environment"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %v", tc.errMsg, err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
name: xduce
environment: staging
logging:
  level: debug
  format: json
`)

	var cfg ServiceConfig
	if err := LoadConfig("xduce", &cfg, WithConfigFile(path), WithEnvPrefix("XDUCE_TEST_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "xduce" || cfg.Environment != "staging" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "name: xduce\nlogging:\n  level: info\n")
	envPath := writeFile(t, dir, ".env", "XCFGTEST_ENVIRONMENT=production\n")
	t.Setenv("XCFGTEST_LOGGING_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("XCFGTEST_ENVIRONMENT") })

	var cfg ServiceConfig
	err := LoadConfig("xduce", &cfg, WithConfigFile(path), WithEnvFile(envPath), WithEnvPrefix("XCFGTEST"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env to override file, got %q", cfg.Logging.Level)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected .env value, got %q", cfg.Environment)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	var cfg ServiceConfig
	err := LoadConfig("xduce", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvFile("/nonexistent/.env"),
		WithEnvPrefix("XDUCE_TEST_NONE"),
		WithDefault("name", "fallback"))
	if err != nil {
		t.Fatalf("expected missing files to be skipped, got %v", err)
	}
	if cfg.Name != "fallback" {
		t.Errorf("expected default name, got %q", cfg.Name)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "name: [unclosed\n")
	var cfg ServiceConfig
	if err := LoadConfig("xduce", &cfg, WithConfigFile(path)); err == nil {
		t.Fatal("expected parse error")
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/xduce/config.yml": true,
		"./config.yml":           true,
		"./.env":                 true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("xduce", LoaderConfig{})
	if files.ConfigFile != "./cmd/xduce/config.yml" {
		t.Errorf("expected cmd config to win, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("xduce", LoaderConfig{ConfigFile: "/etc/x.yml"})
	if explicit.ConfigFile != "/etc/x.yml" {
		t.Errorf("explicit path should be kept, got %q", explicit.ConfigFile)
	}
}

func TestLoadConfigUsesFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env.xduce": true}}
	var cfg ServiceConfig
	if err := LoadConfig("xduce", &cfg, WithFileSystem(fs), WithEnvPrefix("XDUCE_TEST_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !slices.Equal(fs.loaded, []string{"./.env.xduce"}) {
		t.Errorf("expected env file to be loaded through the filesystem, got %v", fs.loaded)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("OUTPUT_REDIS_ADDR")
	for _, want := range []string{"output_redis_addr", "output.redis.addr", "output.redis_addr"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := generateEnvKeyVariants("NAME"); !slices.Equal(got, []string{"name"}) {
		t.Errorf("single-part key should map to itself, got %v", got)
	}
}
