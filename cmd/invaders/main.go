// invaders is a Space Invaders game for the terminal.
//
// Usage:
//
//	invaders play            - Play the game
//	invaders play --demo     - Watch the autopilot play
//	invaders sim             - Run a headless autopilot simulation
//	invaders config show     - Print the effective configuration
//	invaders list            - List available game modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom config YAML
//	--log-file <path>     - Write logs to a file (play only logs there)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Invaders is a terminal version of the classic arcade shooter:
move your ship along the bottom of the field and shoot down the
descending formation before it reaches you.

Available commands:
  play     - Play the game (or watch the demo)
  sim      - Run a headless simulation with the autopilot
  config   - Inspect the configuration
  list     - Show available game modes

Examples:
  invaders play
  invaders play --demo
  invaders sim --frames 7200 --seed 42
  invaders config show --config ./my-invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens --log-file for appending. Without the flag, logs are
// discarded. The returned close function is always safe to call.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}

// loadConfig loads the game configuration and hands it to the game package.
func loadConfig(logger *log.Logger) (config.InvadersConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	invaders.SetConfig(cfg)
	logger.Debug("configuration loaded", "path", flagConfig, "enemies", cfg.EnemyCount())
	return cfg, nil
}
