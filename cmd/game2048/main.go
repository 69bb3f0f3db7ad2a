// game2048 plays 2048 in the terminal, alone or against a computer opponent.
//
// Usage:
//
//	game2048 play            - Play a classic game
//	game2048 vs              - Race the computer on a separate board
//	game2048 autoplay        - Let a strategy play a whole game
//	game2048 scores [mode]   - Show high scores
//	game2048 config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.game2048/scores.db)
//	--config <path>      - Read configuration from this YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nghiafl1/game2048/internal/backend"
	"github.com/nghiafl1/game2048/internal/config"
	"github.com/nghiafl1/game2048/internal/core"
	"github.com/nghiafl1/game2048/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagSize       int
	flagDifficulty string
)

var (
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game2048",
	Short: "2048 in your terminal",
	Long: `game2048 is the sliding tile puzzle: merge equal tiles until you
reach 2048, or race a computer opponent on its own board.

Available commands:
  play      - Play a classic game
  vs        - Race the computer
  autoplay  - Watch a strategy play
  scores    - View high scores
  config    - Print the effective configuration

Examples:
  game2048 play
  game2048 play --size 5 --seed 42
  game2048 vs --difficulty hard --time-limit 60
  game2048 autoplay --strategy greedy --json
  game2048 scores versus`,
	PersistentPreRun: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid size (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(vsCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env and the config file, applies flag overrides and builds
// the logger. It runs before every subcommand.
func setup(cmd *cobra.Command, args []string) {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "game2048",
	})

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("could not load .env", "error", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSize != 0 {
		cfg.GridSize = flagSize
	}
	if flagDifficulty != "" {
		cfg.Difficulty, _ = config.NormalizeDifficulty(flagDifficulty)
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Difficulty.Known() {
		logger.Warn("unknown difficulty plays like hard", "difficulty", cfg.Difficulty)
	}

	appConfig = cfg
	logger.Debug("configuration loaded",
		"grid_size", cfg.GridSize,
		"difficulty", cfg.Difficulty,
		"time_limit", cfg.TimeLimit,
		"db", cfg.DBPath,
	)
}

// runtimeConfig returns the session settings, resolving a zero seed to
// the current time.
func runtimeConfig() core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return appConfig.Runtime(seed)
}

// newEngine builds the engine the commands talk to. No remote engine is
// configured, so the fallback serves everything locally.
func newEngine(seed int64) backend.Engine {
	return backend.NewFallback(nil, backend.NewLocal(seed), logger)
}

// openStore opens the scores database. Failures are logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
