// Package cli implements the command-line interface for piececube.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/config"
	"github.com/SeamusWaldron/piececube/internal/logging"
	"github.com/SeamusWaldron/piececube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Loaded before any command runs
	cfg = config.Default()
	log = zerolog.Nop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "piececube",
	Short: "Rubik's cube simulator and training environment",
	Long: `piececube - A piece-based 3x3x3 Rubik's cube simulator.

Play the cube in the terminal, generate scrambles, and run rollouts of the
reinforcement-learning environment with episodes recorded to SQLite.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.piececube/episodes.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig merges file, environment and flags, then configures logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		loaded.Storage.DBPath = dbPath
	}
	if verbose {
		loaded.Log.Level = "debug"
	}
	cfg = loaded

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	logCfg.Level, _ = logging.ParseLevel(cfg.Log.Level)
	logCfg.NoColor = cfg.Log.NoColor
	logCfg.Timestamp = cfg.Log.Timestamp
	log = logging.Configure(logCfg)
	return nil
}

// openDB opens the configured database and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if cfg.Storage.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(cfg.Storage.DBPath)
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Debug().Str("path", db.Path()).Msg("database opened")
	return db, nil
}
