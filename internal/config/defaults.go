package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default game configuration.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
			Title:  "Flappy Dragon",
		},
		Physics: PhysicsConfig{
			Gravity:         0.2,
			MaxVelocity:     2.0,
			FlapVelocity:    -2.0,
			FrameDurationMS: 75,
		},
		Player: PlayerConfig{
			StartX: 5,
			StartY: 25,
		},
		Obstacles: ObstaclesConfig{
			GapMin:  10,
			GapMax:  40,
			MaxSize: 20,
			MinSize: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
