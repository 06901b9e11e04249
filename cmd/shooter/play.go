package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Enter/R        - Start (and restart after game over)
  WASD/Arrows    - Move
  Space          - Fire
  Q/Ctrl+C       - Quit

Examples:
  shooter play
  shooter play --seed 42
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The viewport is the terminal width scaled to logical pixels.
	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	session, err := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ViewportW: width * cfg.Surface.ColumnPixels,
			TickRate:  flagFPS,
			Seed:      flagSeed,
		},
	})
	if err != nil {
		return err
	}

	if session.Started {
		logger.Info("thanks for playing", "score", session.Score, "over", session.Over)
	}
	return nil
}
