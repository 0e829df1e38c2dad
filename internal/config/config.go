// Package config loads piececube settings from a TOML file, a .env file and
// PIECECUBE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/logging"
)

// Environment variable names.
const (
	EnvDBPath   = "PIECECUBE_DB"
	EnvLogLevel = "PIECECUBE_LOG_LEVEL"
	EnvMaxSteps = "PIECECUBE_MAX_STEPS"
	EnvSeed     = "PIECECUBE_SEED"
)

// Config is the full application configuration.
type Config struct {
	Env     EnvConfig     `toml:"env"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// EnvConfig controls episodes and reward shaping of the training environment.
type EnvConfig struct {
	MaxSteps       int     `toml:"max_steps"`
	ScrambleLength int     `toml:"scramble_length"`
	StepPenalty    float64 `toml:"step_penalty"`
	UndoPenalty    float64 `toml:"undo_penalty"`
	FaceletReward  float64 `toml:"facelet_reward"`
	SolveReward    float64 `toml:"solve_reward"`
	Discount       float64 `toml:"discount"`
	Seed           uint64  `toml:"seed"` // 0 picks a random seed
}

// StorageConfig locates the episode database.
type StorageConfig struct {
	DBPath string `toml:"db_path"` // empty uses the default path
}

// LogConfig controls log output.
type LogConfig struct {
	Level     string `toml:"level"`
	NoColor   bool   `toml:"no_color"`
	Timestamp bool   `toml:"timestamp"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env: EnvConfig{
			MaxSteps:       250,
			ScrambleLength: piececube.DefaultScrambleLength,
			StepPenalty:    -0.1,
			UndoPenalty:    -1.0,
			FaceletReward:  0.5,
			SolveReward:    100.0,
			Discount:       0.99,
		},
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies .env and
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config parse failed (%s): unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvMaxSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxSteps, err)
		}
		cfg.Env.MaxSteps = n
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Env.Seed = n
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Env.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("env.max_steps must be positive, got %d", c.Env.MaxSteps))
	}
	if c.Env.ScrambleLength < 1 {
		errs = append(errs, fmt.Errorf("env.scramble_length must be positive, got %d", c.Env.ScrambleLength))
	}
	if c.Env.Discount < 0 || c.Env.Discount > 1 {
		errs = append(errs, fmt.Errorf("env.discount must be within [0, 1], got %g", c.Env.Discount))
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config invalid: %w", errors.Join(errs...))
	}
	return nil
}
