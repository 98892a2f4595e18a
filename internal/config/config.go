// Package config provides YAML-based game configuration loading for
// Flappy Dragon.
package config

import (
	"errors"
	"fmt"
)

// DragonConfig contains all configuration for the game.
type DragonConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// ScreenConfig defines the fixed console window.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines gravity and tick cadence.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`           // Velocity added per physics tick
	MaxVelocity     float64 `yaml:"max_velocity"`      // Gravity stops accelerating past this
	FlapVelocity    float64 `yaml:"flap_velocity"`     // Velocity set by a flap (negative = up)
	FrameDurationMS float64 `yaml:"frame_duration_ms"` // Milliseconds between physics ticks
}

// PlayerConfig defines where a run starts.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// ObstaclesConfig defines gap placement and size.
type ObstaclesConfig struct {
	GapMin  int `yaml:"gap_min"`  // Lowest gap center (inclusive)
	GapMax  int `yaml:"gap_max"`  // Highest gap center (exclusive)
	MaxSize int `yaml:"max_size"` // Gap height at score 0
	MinSize int `yaml:"min_size"` // Gap height floor
}

// GapSize returns the gap height for an obstacle spawned at the given score.
// The gap shrinks by one cell per point until it reaches MinSize.
func (o ObstaclesConfig) GapSize(score int) int {
	size := o.MaxSize - score
	if size < o.MinSize {
		return o.MinSize
	}
	return size
}

// Validation errors.
var (
	ErrInvalidScreen   = errors.New("config: screen dimensions must be positive")
	ErrInvalidGapRange = errors.New("config: gap_max must be greater than gap_min")
	ErrInvalidGapSize  = errors.New("config: min_size must be at least 2 and not above max_size")
	ErrInvalidCadence  = errors.New("config: frame_duration_ms must be positive")
	ErrInvalidPhysics  = errors.New("config: gravity and max_velocity must be positive")
	ErrInvalidPlayer   = errors.New("config: start_y must be a row of the screen")
)

// Validate checks that the configuration can drive a game.
func (c DragonConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.Obstacles.GapMax <= c.Obstacles.GapMin {
		return fmt.Errorf("%w (got [%d, %d))", ErrInvalidGapRange, c.Obstacles.GapMin, c.Obstacles.GapMax)
	}
	if c.Obstacles.MinSize < 2 || c.Obstacles.MinSize > c.Obstacles.MaxSize {
		return fmt.Errorf("%w (got min %d, max %d)", ErrInvalidGapSize, c.Obstacles.MinSize, c.Obstacles.MaxSize)
	}
	if c.Physics.FrameDurationMS <= 0 {
		return fmt.Errorf("%w (got %v)", ErrInvalidCadence, c.Physics.FrameDurationMS)
	}
	if c.Physics.Gravity <= 0 || c.Physics.MaxVelocity <= 0 {
		return fmt.Errorf("%w (got gravity %v, max_velocity %v)", ErrInvalidPhysics, c.Physics.Gravity, c.Physics.MaxVelocity)
	}
	if c.Player.StartY < 0 || c.Player.StartY >= c.Screen.Height {
		return fmt.Errorf("%w (got %d, height %d)", ErrInvalidPlayer, c.Player.StartY, c.Screen.Height)
	}
	return nil
}
