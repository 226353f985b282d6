// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvEndpoint, EnvTheme, EnvDark, EnvLogLevel, EnvLogFile} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("taskboard", flag.ContinueOnError)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint: got %q, want %q", cfg.Endpoint, DefaultEndpoint)
	}
	if cfg.Theme != "classic" || cfg.Dark != "auto" || cfg.LogLevel != "info" {
		t.Errorf("got theme=%q dark=%q level=%q", cfg.Theme, cfg.Dark, cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadNoFiles(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFiles(newFlagSet(), nil, Files{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint: got %q", cfg.Endpoint)
	}
}

func TestLoadMissingFilesAreSkipped(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	files := Files{
		DotEnv:  filepath.Join(dir, ".env"),
		User:    filepath.Join(dir, "user.toml"),
		Project: filepath.Join(dir, "taskboard.toml"),
	}
	if _, err := LoadFiles(newFlagSet(), nil, files); err != nil {
		t.Fatalf("missing files should be ignored: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
endpoint = "http://user.example/todos"
theme = "neon"
dark = "on"
log_level = "debug"
`)
	project := writeFile(t, dir, "taskboard.toml", `
endpoint = "http://project.example/todos"
`)
	t.Setenv(EnvTheme, "MONO")

	fs := newFlagSet()
	cfg, err := LoadFiles(fs, []string{"-dark", "off", "-group", "ls", "-search", "x"}, Files{User: user, Project: project})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != "http://project.example/todos" {
		t.Errorf("Endpoint: got %q, want project file value", cfg.Endpoint)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want env value mono", cfg.Theme)
	}
	if cfg.Dark != "off" {
		t.Errorf("Dark: got %q, want flag value off", cfg.Dark)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want user file value", cfg.LogLevel)
	}
	if !cfg.Group {
		t.Error("Group flag not applied")
	}
	if got := strings.Join(fs.Args(), " "); got != "ls -search x" {
		t.Errorf("remaining args: got %q", got)
	}
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "TASKBOARD_ENDPOINT=http://dotenv.example/todos\nTASKBOARD_LOG_LEVEL=warn\n")
	t.Setenv(EnvLogLevel, "error")
	// godotenv sets variables directly; make sure they are restored.
	t.Setenv(EnvEndpoint, "")
	os.Unsetenv(EnvEndpoint)

	cfg, err := LoadFiles(newFlagSet(), nil, Files{DotEnv: dotenv})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Endpoint != "http://dotenv.example/todos" {
		t.Errorf("Endpoint: got %q, want .env value", cfg.Endpoint)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want real env value", cfg.LogLevel)
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "taskboard.toml", "endpont = \"http://x\"\n")
	_, err := LoadFiles(newFlagSet(), nil, Files{Project: p})
	if err == nil || !strings.Contains(err.Error(), "endpont") {
		t.Fatalf("got %v, want unknown key error", err)
	}
}

func TestMalformedTOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "taskboard.toml", "endpoint = \n")
	if _, err := LoadFiles(newFlagSet(), nil, Files{Project: p}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"bad endpoint", func(c *Config) { c.Endpoint = "not a url" }, "endpoint"},
		{"bad theme", func(c *Config) { c.Theme = "disco" }, "theme \"disco\" must be one of"},
		{"bad dark", func(c *Config) { c.Dark = "maybe" }, "dark"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFlagValidation(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFiles(newFlagSet(), []string{"-theme", "disco"}, Files{}); err == nil {
		t.Fatal("expected invalid theme to fail")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandPath("~/logs/tb.log"); got != filepath.Join(home, "logs", "tb.log") {
		t.Errorf("expandPath: got %q", got)
	}
	t.Setenv("TB_TEST_DIR", "/tmp/x")
	if got := expandPath("$TB_TEST_DIR/tb.log"); got != "/tmp/x/tb.log" {
		t.Errorf("expandPath env: got %q", got)
	}
}
