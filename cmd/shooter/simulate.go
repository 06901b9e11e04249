package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/input"
	"github.com/vovakirdan/space-shooter/internal/loop"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

var (
	flagFrames    int
	flagViewportW int
	flagFireEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run a game without a terminal. Frames are stepped as fast as possible
with timestamps spaced by the tick rate, and the autopilot steers and fires.
The same seed and flags always produce the same result.

Examples:
  shooter simulate --seed 7
  shooter simulate --seed 7 --frames 3600 --fire-every 4`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum number of frames to run")
	simulateCmd.Flags().IntVar(&flagViewportW, "viewport", 1920, "Viewport width in logical pixels")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 8, "Autopilot fires every N frames (0 = never)")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := loop.NewManualScheduler()
	game, err := shooter.NewGame(cfg, core.RuntimeConfig{
		ViewportW: flagViewportW,
		TickRate:  flagFPS,
		Seed:      seed,
	}, sched)
	if err != nil {
		return err
	}

	w, h := shooter.SurfaceSize(flagViewportW, cfg.Surface)
	game.Attach(core.NewScreen(w/cfg.Surface.ColumnPixels, h/cfg.Surface.ColumnPixels, w, h))

	keys := input.NewDispatcher()
	game.Mount(keys)
	defer game.Unmount()

	game.OnChange(func(s core.SessionState) {
		if s.Score > 0 {
			logger.Debug("score", "score", s.Score, "frame", game.World().Frames())
		}
	})

	if !game.Start() {
		logger.Warn("surface too small to play", "viewport", flagViewportW)
		return nil
	}

	pilot := shooter.NewAutopilot()
	pilot.FireEvery = flagFireEvery
	frameMs := 1000 / float64(flagFPS)

	start := time.Now()
	for i := 1; i <= flagFrames && sched.Pending() > 0; i++ {
		pilot.Drive(game.World(), keys)
		sched.Advance(float64(i) * frameMs)
	}

	world := game.World()
	logger.Info("simulation finished",
		"seed", seed,
		"score", world.Score(),
		"frames", world.Frames(),
		"spawned", world.Spawned(),
		"over", world.Over(),
		"phase", game.Phase(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
