// shooter is a terminal space shooter.
//
// Usage:
//
//	shooter                  - Play in this terminal (same as "shooter play")
//	shooter play             - Play in this terminal
//	shooter serve            - Start SSH server for remote play
//	shooter simulate         - Run a headless game driven by the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML (env: SHOOTER_CONFIG)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - dodge and blast enemies in your terminal",
	Long: `Space Shooter is a terminal arcade game: steer the ship, shoot the
enemies falling from the top, and do not let them touch you.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  simulate  - Headless run driven by the autopilot

Examples:
  shooter
  shooter play --seed 42
  shooter serve --addr :2222
  shooter simulate --seed 7 --frames 3600`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads .env and applies the global logging flags.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	return nil
}

// loadConfig reads the game config from --config, then SHOOTER_CONFIG,
// then the default search path.
func loadConfig() (config.ShooterConfig, error) {
	path := flagConfig
	if path == "" {
		path = config.GetEnv(config.EnvConfig, "")
	}
	cfg, err := config.LoadShooter(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}
