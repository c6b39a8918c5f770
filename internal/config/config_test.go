package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvCaseTimeout, EnvOutputDir, EnvNoColor, EnvHistoryEnabled,
		EnvHistoryHost, EnvHistoryPort, EnvHistoryUser, EnvHistoryPassword, EnvHistoryDatabase,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.CaseTimeout != DefaultCaseTimeout {
		t.Errorf("expected CaseTimeout %s, got %s", DefaultCaseTimeout, cfg.CaseTimeout)
	}

	if cfg.History.Enabled {
		t.Error("history should be disabled by default")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputJSONDir != DefaultOutputJSONDir {
		t.Errorf("expected output dir %s, got %s", DefaultOutputJSONDir, cfg.OutputJSONDir)
	}
	if cfg.ProjectPath != dir {
		t.Errorf("expected project path %s, got %s", dir, cfg.ProjectPath)
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultConfigFile), `
output_dir: reports
case_timeout: 2s
fail_fast: true
history:
  enabled: true
  host: db.internal
`)
	writeFile(t, filepath.Join(dir, DefaultEnvFile), "SEMRUN_DB_HOST=db.from.env\nSEMRUN_CASE_TIMEOUT=750ms\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputJSONDir != "reports" {
		t.Errorf("expected output dir from yaml, got %s", cfg.OutputJSONDir)
	}
	if !cfg.FailFast {
		t.Error("expected fail_fast from yaml")
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled from yaml")
	}
	if cfg.History.Host != "db.from.env" {
		t.Errorf("expected env to override yaml host, got %s", cfg.History.Host)
	}
	if cfg.CaseTimeout != 750*time.Millisecond {
		t.Errorf("expected env timeout 750ms, got %s", cfg.CaseTimeout)
	}
	if cfg.History.Port != DefaultHistoryPort {
		t.Errorf("expected default port to survive, got %s", cfg.History.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, DefaultConfigFile), "case_timeout: [nope\n")
		if _, err := Load(dir); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("bad timeout in environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvCaseTimeout, "soon")
		if _, err := Load(t.TempDir()); err == nil {
			t.Error("expected error for bad duration")
		}
	})
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name        string
		flags       Flags
		wantTimeout time.Duration
		wantFast    bool
	}{
		{
			name:        "no flags keep loaded values",
			flags:       Flags{},
			wantTimeout: DefaultCaseTimeout,
		},
		{
			name:        "timeout and fail fast",
			flags:       Flags{Timeout: time.Second, FailFast: true},
			wantTimeout: time.Second,
			wantFast:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.ApplyFlags(tt.flags)
			if cfg.CaseTimeout != tt.wantTimeout {
				t.Errorf("expected timeout %s, got %s", tt.wantTimeout, cfg.CaseTimeout)
			}
			if cfg.FailFast != tt.wantFast {
				t.Errorf("expected fail fast %v, got %v", tt.wantFast, cfg.FailFast)
			}
		})
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := &Config{ProjectPath: "/project", OutputJSONDir: "storage", OutputJSONFile: "out.json"}
	expected := "/project/storage/out.json"
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
