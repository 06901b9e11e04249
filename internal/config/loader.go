package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment keys read by the CLI. A .env file in the working directory
// may provide them too.
const (
	EnvSSHAddr = "SHOOTER_SSH_ADDR"
	EnvHostKey = "SHOOTER_HOST_KEY"
	EnvConfig  = "SHOOTER_CONFIG"
)

const shooterFile = "shooter.yaml"

// LoadShooter loads and validates the space shooter configuration.
// Search order: customPath -> ~/.space-shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
// Files may be partial; missing keys keep their default values.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg, err := loadShooter(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultShooterConfig(), fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseShooter(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(shooterFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseShooter(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", shooterFile)); err == nil {
		if cfg, err := ParseShooter(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseShooter decodes YAML on top of the defaults.
func ParseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultShooterConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".space-shooter", "configs", filename)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
