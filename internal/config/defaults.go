package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Surface: SurfaceConfig{
			MaxWidth:     800,
			Margin:       40,
			Height:       600,
			ColumnPixels: 10,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			Speed:        5,
			BottomOffset: 80,
			NotchDepth:   10,
		},
		Bullet: BulletConfig{
			Width:  4,
			Height: 15,
			Speed:  8,
		},
		Enemy: EnemyConfig{
			Width:           40,
			Height:          40,
			MinSpeed:        2,
			MaxSpeed:        4,
			HP:              1,
			SpawnIntervalMs: 1000, // One enemy per second
		},
		Scoring: ScoringConfig{
			PerKill: 10,
		},
		Effects: EffectsConfig{
			Stars:        50,
			StarSize:     2,
			StarMaxAlpha: 0.5,
			PlayerGlow:   20,
			BulletGlow:   10,
			EnemyGlow:    15,
			BurstGlow:    30,
			BurstRadius:  20,
		},
		HUD: HUDConfig{
			ScoreX:     20,
			ScoreY:     40,
			ScoreLabel: "Score",
		},
		Palette: PaletteConfig{
			Background: "#0a0a1a",
			Star:       "#ffffff",
			Player:     "#8b5cf6",
			Bullet:     "#0ea5e9",
			Enemy:      "#f97316",
			Burst:      "#ffd700",
			Text:       "#ffffff",
		},
		Input: InputConfig{
			InitialHoldMs: 250,
			RepeatHoldMs:  100,
		},
	}
}

// DefaultShooterYAML returns the embedded default configuration file.
func DefaultShooterYAML() []byte {
	return defaultShooterYAML
}
