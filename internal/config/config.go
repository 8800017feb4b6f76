// Package config provides YAML-based game configuration loading and
// validation for Rainbow Breaker.
package config

import (
	"errors"
	"fmt"
)

// RainbowConfig contains all configuration for the game.
type RainbowConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Grid    GridConfig    `yaml:"grid"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Physics PhysicsConfig `yaml:"physics"`
	Ball    BallConfig    `yaml:"ball"`
	Render  RenderConfig  `yaml:"render"`
}

// FieldConfig defines the play-field size in pixels.
// Zero means the driver picks a size that fits the terminal.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the block grid. Columns always match the field width.
type GridConfig struct {
	Rows int `yaml:"rows"`
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
}

// PhysicsConfig defines simulation constants.
type PhysicsConfig struct {
	ReferenceHz float64 `yaml:"reference_hz"`
	Gravity     float64 `yaml:"gravity"`
	MaxDelta    float64 `yaml:"max_delta"`
	DebrisSpeed float64 `yaml:"debris_speed"`
	DebrisLift  float64 `yaml:"debris_lift"`
}

// BallConfig defines the random velocity ranges for new balls.
type BallConfig struct {
	StartVXMax float64 `yaml:"start_vx_max"`
	StartVYMin float64 `yaml:"start_vy_min"`
	StartVYMax float64 `yaml:"start_vy_max"`
	SpawnVXMax float64 `yaml:"spawn_vx_max"`
	SpawnVYMin float64 `yaml:"spawn_vy_min"`
	SpawnVYMax float64 `yaml:"spawn_vy_max"`
}

// RenderConfig defines presentation parameters.
type RenderConfig struct {
	TrailFade float64  `yaml:"trail_fade"`
	Caption   []string `yaml:"caption"`
}

// Validate checks the configuration for values the game cannot run with.
// Field dimensions of zero are allowed and resolved by the driver.
func (c RainbowConfig) Validate() error {
	var errs []error

	if c.Field.Width < 0 || c.Field.Height < 0 {
		errs = append(errs, fmt.Errorf("field: dimensions must not be negative (got %dx%d)", c.Field.Width, c.Field.Height))
	}
	if c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid.rows must be positive (got %d)", c.Grid.Rows))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle: dimensions must be positive (got %dx%d)", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.BottomOffset < 0 {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset must not be negative (got %d)", c.Paddle.BottomOffset))
	}
	if c.Physics.ReferenceHz <= 0 {
		errs = append(errs, fmt.Errorf("physics.reference_hz must be positive (got %v)", c.Physics.ReferenceHz))
	}
	if c.Physics.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("physics.max_delta must not be negative (got %v)", c.Physics.MaxDelta))
	}
	if c.Ball.StartVXMax < 0 || c.Ball.SpawnVXMax < 0 {
		errs = append(errs, errors.New("ball: vx maxima must not be negative"))
	}
	if c.Ball.StartVYMin > c.Ball.StartVYMax {
		errs = append(errs, fmt.Errorf("ball: start_vy_min %v exceeds start_vy_max %v", c.Ball.StartVYMin, c.Ball.StartVYMax))
	}
	if c.Ball.SpawnVYMin > c.Ball.SpawnVYMax {
		errs = append(errs, fmt.Errorf("ball: spawn_vy_min %v exceeds spawn_vy_max %v", c.Ball.SpawnVYMin, c.Ball.SpawnVYMax))
	}
	if c.Render.TrailFade < 0 || c.Render.TrailFade > 1 {
		errs = append(errs, fmt.Errorf("render.trail_fade must be within [0, 1] (got %v)", c.Render.TrailFade))
	}

	if c.Field.Width > 0 && c.Field.Height > 0 {
		errs = append(errs, c.ValidateField(c.Field.Width, c.Field.Height))
	}

	return errors.Join(errs...)
}

// ValidateField checks that the grid and paddle fit a field of the given size.
func (c RainbowConfig) ValidateField(width, height int) error {
	var errs []error

	if width <= 0 || height <= 0 {
		errs = append(errs, fmt.Errorf("field: dimensions must be positive (got %dx%d)", width, height))
	}
	if c.Paddle.Width > width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds field width %d", c.Paddle.Width, width))
	}
	if c.Grid.Rows >= height-c.Paddle.BottomOffset {
		errs = append(errs, fmt.Errorf("grid.rows %d leaves no room above the paddle in a field %d high", c.Grid.Rows, height))
	}
	if c.Paddle.BottomOffset > height {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset %d exceeds field height %d", c.Paddle.BottomOffset, height))
	}

	return errors.Join(errs...)
}
