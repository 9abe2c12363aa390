package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  1200,
			Height: 800,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       30,
			Speed:        7,
			BottomOffset: 70,
		},
		Bullets: BulletConfig{
			Width:       4,
			Height:      10,
			PlayerSpeed: 7,
			EnemySpeed:  5,
		},
		Enemies: EnemyConfig{
			Rows:           5,
			Cols:           10,
			Width:          40,
			Height:         30,
			SpacingX:       100,
			SpacingY:       70,
			OriginX:        150,
			OriginY:        60,
			Speed:          1.5,
			Descent:        20,
			ShotIntervalMS: 1000,
			Points:         10,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			ExplosionFrames: 60,
			TransientFrames: 15,
		},
		Palette: []string{
			"#888888", "#4a90e2", "#9b59b6", "#e74c3c",
			"#2ecc71", "#f39c12", "#1abc9c", "#e67e22",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
