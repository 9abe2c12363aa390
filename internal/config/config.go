// Package config provides YAML-based game configuration loading and
// validation for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// InvadersConfig contains all tunable constants of the simulation.
type InvadersConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Palette  []string       `yaml:"palette"` // Enemy tints, one picked per game
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per frame
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from field bottom to ship top
}

// BulletConfig defines both projectile kinds. They share one shape.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"` // Upward, pixels per frame
	EnemySpeed  float64 `yaml:"enemy_speed"`  // Downward, pixels per frame
}

// EnemyConfig defines the enemy formation.
type EnemyConfig struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	OriginX        float64 `yaml:"origin_x"`
	OriginY        float64 `yaml:"origin_y"`
	Speed          float64 `yaml:"speed"`   // Horizontal pixels per frame
	Descent        float64 `yaml:"descent"` // Drop on each wall bounce
	ShotIntervalMS int     `yaml:"shot_interval_ms"`
	Points         int     `yaml:"points"` // Score per kill
}

// GameplayConfig defines lives and frame-counted timers.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	ExplosionFrames int `yaml:"explosion_frames"` // Player hit freeze
	TransientFrames int `yaml:"transient_frames"` // Enemy explosion lifetime
}

// EnemyCount returns the number of enemies in a full formation.
func (c InvadersConfig) EnemyCount() int {
	return c.Enemies.Rows * c.Enemies.Cols
}

// Validate checks that the configuration describes a playable game.
// Errors wrap ErrInvalid.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.player_speed", c.Bullets.PlayerSpeed)
	positive("bullets.enemy_speed", c.Bullets.EnemySpeed)
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	positive("enemies.speed", c.Enemies.Speed)

	if c.Enemies.Rows <= 0 || c.Enemies.Cols <= 0 {
		errs = append(errs, fmt.Errorf("enemy grid must be at least 1x1, got %dx%d", c.Enemies.Rows, c.Enemies.Cols))
	}
	if c.Enemies.Descent < 0 {
		errs = append(errs, fmt.Errorf("enemies.descent must not be negative, got %v", c.Enemies.Descent))
	}
	if c.Enemies.ShotIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("enemies.shot_interval_ms must be positive, got %d", c.Enemies.ShotIntervalMS))
	}
	if c.Enemies.Points < 0 {
		errs = append(errs, fmt.Errorf("enemies.points must not be negative, got %d", c.Enemies.Points))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.ExplosionFrames <= 0 || c.Gameplay.TransientFrames <= 0 {
		errs = append(errs, fmt.Errorf("gameplay frame counters must be positive"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, fmt.Errorf("palette must contain at least one color"))
	}

	// The formation and the ship must fit inside the field.
	gridRight := c.Enemies.OriginX + float64(c.Enemies.Cols-1)*c.Enemies.SpacingX + c.Enemies.Width
	if c.Enemies.Cols > 0 && (c.Enemies.OriginX <= 0 || gridRight >= c.Field.Width) {
		errs = append(errs, fmt.Errorf("enemy grid spans x=%v..%v, must fit strictly inside field width %v",
			c.Enemies.OriginX, gridRight, c.Field.Width))
	}
	gridBottom := c.Enemies.OriginY + float64(c.Enemies.Rows-1)*c.Enemies.SpacingY + c.Enemies.Height
	if c.Enemies.Rows > 0 && gridBottom >= c.Field.Height {
		errs = append(errs, fmt.Errorf("enemy grid bottom %v reaches field height %v", gridBottom, c.Field.Height))
	}
	if c.Player.Width >= c.Field.Width {
		errs = append(errs, fmt.Errorf("player width %v does not fit field width %v", c.Player.Width, c.Field.Width))
	}
	if c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset >= c.Field.Height {
		errs = append(errs, fmt.Errorf("player.bottom_offset %v must be within [%v, %v)",
			c.Player.BottomOffset, c.Player.Height, c.Field.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
