// Package config provides YAML-based game configuration loading
// for the space shooter.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// ShooterConfig contains all configuration for the space shooter.
// Distances are logical pixels, speeds are logical pixels per frame.
type ShooterConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Player  PlayerConfig  `yaml:"player"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Scoring ScoringConfig `yaml:"scoring"`
	Effects EffectsConfig `yaml:"effects"`
	HUD     HUDConfig     `yaml:"hud"`
	Palette PaletteConfig `yaml:"palette"`
	Input   InputConfig   `yaml:"input"`
}

// SurfaceConfig defines the drawable surface size.
type SurfaceConfig struct {
	MaxWidth     int `yaml:"max_width"`     // Upper bound on surface width
	Margin       int `yaml:"margin"`        // Subtracted from the viewport width
	Height       int `yaml:"height"`        // Fixed surface height
	ColumnPixels int `yaml:"column_pixels"` // Logical pixels per terminal column
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the surface bottom to the ship's top
	NotchDepth   float64 `yaml:"notch_depth"`   // Depth of the tail notch in the ship glyph
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines enemies and their spawning.
type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MinSpeed        float64 `yaml:"min_speed"` // Inclusive
	MaxSpeed        float64 `yaml:"max_speed"` // Exclusive
	HP              int     `yaml:"hp"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PerKill int `yaml:"per_kill"`
}

// EffectsConfig defines purely visual parameters.
type EffectsConfig struct {
	Stars        int     `yaml:"stars"`
	StarSize     float64 `yaml:"star_size"`
	StarMaxAlpha float64 `yaml:"star_max_alpha"`
	PlayerGlow   float64 `yaml:"player_glow"`
	BulletGlow   float64 `yaml:"bullet_glow"`
	EnemyGlow    float64 `yaml:"enemy_glow"`
	BurstGlow    float64 `yaml:"burst_glow"`
	BurstRadius  float64 `yaml:"burst_radius"`
}

// HUDConfig defines the in-surface score overlay.
type HUDConfig struct {
	ScoreX     float64 `yaml:"score_x"`
	ScoreY     float64 `yaml:"score_y"`
	ScoreLabel string  `yaml:"score_label"`
}

// PaletteConfig holds hex colors ("#rrggbb" or "#rgb").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Star       string `yaml:"star"`
	Player     string `yaml:"player"`
	Bullet     string `yaml:"bullet"`
	Enemy      string `yaml:"enemy"`
	Burst      string `yaml:"burst"`
	Text       string `yaml:"text"`
}

// Palette is a parsed PaletteConfig.
type Palette struct {
	Background core.Color
	Star       core.Color
	Player     core.Color
	Bullet     core.Color
	Enemy      core.Color
	Burst      core.Color
	Text       core.Color
}

// Colors parses every palette entry.
func (p PaletteConfig) Colors() (Palette, error) {
	var out Palette
	entries := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", p.Background, &out.Background},
		{"star", p.Star, &out.Star},
		{"player", p.Player, &out.Player},
		{"bullet", p.Bullet, &out.Bullet},
		{"enemy", p.Enemy, &out.Enemy},
		{"burst", p.Burst, &out.Burst},
		{"text", p.Text, &out.Text},
	}
	for _, e := range entries {
		c, err := core.ParseHexColor(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette.%s: %w", e.name, err)
		}
		*e.dst = c
	}
	return out, nil
}

// InputConfig defines how terminal key presses are turned into held keys.
// Terminals report presses only, so a key counts as held until its
// hold window expires without a repeat.
type InputConfig struct {
	InitialHoldMs int `yaml:"initial_hold_ms"` // Hold after the first press (covers the auto-repeat delay)
	RepeatHoldMs  int `yaml:"repeat_hold_ms"`  // Hold after each auto-repeat
}

// Validate reports every invalid value in the configuration.
func (c ShooterConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("surface.max_width", float64(c.Surface.MaxWidth))
	positive("surface.height", float64(c.Surface.Height))
	positive("surface.column_pixels", float64(c.Surface.ColumnPixels))
	if c.Surface.Margin < 0 {
		errs = append(errs, fmt.Errorf("surface.margin must not be negative, got %d", c.Surface.Margin))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	if c.Player.NotchDepth < 0 || c.Player.NotchDepth >= c.Player.Height {
		errs = append(errs, fmt.Errorf("player.notch_depth must be in [0, height), got %v", c.Player.NotchDepth))
	}

	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.speed", c.Bullet.Speed)

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.min_speed", c.Enemy.MinSpeed)
	positive("enemy.hp", float64(c.Enemy.HP))
	positive("enemy.spawn_interval_ms", c.Enemy.SpawnIntervalMs)
	if c.Enemy.MaxSpeed <= c.Enemy.MinSpeed {
		errs = append(errs, fmt.Errorf("enemy speed range [%v, %v) is empty", c.Enemy.MinSpeed, c.Enemy.MaxSpeed))
	}

	if c.Scoring.PerKill < 0 {
		errs = append(errs, fmt.Errorf("scoring.per_kill must not be negative, got %d", c.Scoring.PerKill))
	}
	if c.Effects.Stars < 0 {
		errs = append(errs, fmt.Errorf("effects.stars must not be negative, got %d", c.Effects.Stars))
	}
	if c.Effects.StarMaxAlpha < 0 || c.Effects.StarMaxAlpha > 1 {
		errs = append(errs, fmt.Errorf("effects.star_max_alpha must be in [0, 1], got %v", c.Effects.StarMaxAlpha))
	}

	positive("input.initial_hold_ms", float64(c.Input.InitialHoldMs))
	positive("input.repeat_hold_ms", float64(c.Input.RepeatHoldMs))

	if _, err := c.Palette.Colors(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid shooter config: %w", err)
	}
	return nil
}
