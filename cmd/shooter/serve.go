package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the space shooter SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game sized to its terminal.

Host key handling:
  - If --host-key (or SHOOTER_HOST_KEY) is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.space-shooter/host_key

Examples:
  shooter serve                           # Listen on :23234 with auto-generated key
  shooter serve --addr :2222              # Listen on port 2222
  shooter serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH server address (host:port, env: SHOOTER_SSH_ADDR)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (env: SHOOTER_HOST_KEY)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	shooterCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagOrEnv(flagSSHAddr, config.EnvSSHAddr, cfg.Address)
	cfg.HostKeyPath = flagOrEnv(flagHostKey, config.EnvHostKey, "")
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Shooter = shooterCfg
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("shooter-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
	return server.ListenAndServe()
}

// flagOrEnv prefers an explicit flag value, then the environment, then fallback.
func flagOrEnv(flagValue, envKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetEnv(envKey, fallback)
}
