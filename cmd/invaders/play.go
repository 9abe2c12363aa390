package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start the game on its title screen.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter            - Start
  R                - Play again (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --demo
  invaders play invaders_demo
  invaders play --config ./my-invaders.yaml --log-file invaders.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := invaders.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagDemo {
		gameID = invaders.DemoGameID
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available modes", gameID)
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(w, "invaders")
	if err != nil {
		return err
	}
	if _, err := loadConfig(logger); err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
