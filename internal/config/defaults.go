package config

import (
	_ "embed"
)

//go:embed defaults/rainbow.yaml
var defaultRainbowYAML []byte

// DefaultCaption is shown when the grid is cleared.
var DefaultCaption = []string{"CLEAR!", "おめでと"}

// DefaultRainbowConfig returns the default configuration.
func DefaultRainbowConfig() RainbowConfig {
	return RainbowConfig{
		Field: FieldConfig{
			Width:  0, // Fit terminal
			Height: 0,
		},
		Grid: GridConfig{
			Rows: 16,
		},
		Paddle: PaddleConfig{
			Width:        12,
			Height:       2,
			BottomOffset: 8,
		},
		Physics: PhysicsConfig{
			ReferenceHz: 30,
			Gravity:     0.1,
			MaxDelta:    3.0,
			DebrisSpeed: 3.0,
			DebrisLift:  1.0,
		},
		Ball: BallConfig{
			StartVXMax: 10,
			StartVYMin: -1,
			StartVYMax: 8,
			SpawnVXMax: 10,
			SpawnVYMin: 1,
			SpawnVYMax: 10,
		},
		Render: RenderConfig{
			TrailFade: 0.15,
			Caption:   append([]string(nil), DefaultCaption...),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRainbowYAML
}
