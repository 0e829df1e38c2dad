package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "piececube.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env.MaxSteps != 250 || cfg.Env.ScrambleLength != 25 {
		t.Errorf("unexpected env defaults: %+v", cfg.Env)
	}
	if cfg.Env.SolveReward != 100 || cfg.Env.Discount != 0.99 {
		t.Errorf("unexpected reward defaults: %+v", cfg.Env)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[env]
max_steps = 40
scramble_length = 3
seed = 9

[storage]
db_path = "/tmp/episodes.db"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env.MaxSteps != 40 || cfg.Env.ScrambleLength != 3 || cfg.Env.Seed != 9 {
		t.Errorf("env = %+v", cfg.Env)
	}
	if cfg.Env.StepPenalty != -0.1 {
		t.Errorf("unset keys should keep defaults, step_penalty = %g", cfg.Env.StepPenalty)
	}
	if cfg.Storage.DBPath != "/tmp/episodes.db" || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[env]\nmax_steps = 40\n")
	t.Setenv(EnvMaxSteps, "12")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvDBPath, "/tmp/override.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env.MaxSteps != 12 || cfg.Env.Seed != 77 || cfg.Storage.DBPath != "/tmp/override.db" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[env\n", "config parse failed"},
		{"unknown key", "[env]\nmax_step = 3\n", "unknown keys env.max_step"},
		{"range", "[env]\nmax_steps = 0\n", "env.max_steps must be positive"},
		{"level", "[log]\nlevel = \"loud\"\n", "not a known level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadAcceptsLevelAliases(t *testing.T) {
	for _, level := range []string{"warning", "off", "INFO"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv(EnvLogLevel, level)
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load with level %q: %v", level, err)
			}
			if cfg.Log.Level != level {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, level)
			}
		})
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	t.Setenv(EnvMaxSteps, "lots")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric max steps")
	}
}
