package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual style of obstacle walls.
const (
	WallChar  = '|'
	WallColor = core.ColorRed
)

// Obstacle is a vertical wall in world space with a single gap.
type Obstacle struct {
	X    int // World-space x, compared against the player's x
	GapY int // Center row of the gap
	Size int // Gap height
}

// NewObstacle creates an obstacle at world x with a random gap center.
// The gap height shrinks as the score grows.
func NewObstacle(x, score int, rng *rand.Rand, cfg config.ObstaclesConfig) Obstacle {
	return Obstacle{
		X:    x,
		GapY: cfg.GapMin + rng.Intn(cfg.GapMax-cfg.GapMin),
		Size: cfg.GapSize(score),
	}
}

// Render draws the two wall segments relative to the player's world x.
// Off-screen columns are clipped by the screen.
func (o *Obstacle) Render(dst *core.Screen, playerX, screenH int) {
	screenX := o.X - playerX
	halfSize := o.Size / 2

	// Top segment
	for y := 0; y < o.GapY-halfSize; y++ {
		dst.Set(screenX, y, WallColor, core.ColorBlack, WallChar)
	}

	// Bottom segment
	for y := o.GapY + halfSize; y < screenH; y++ {
		dst.Set(screenX, y, WallColor, core.ColorBlack, WallChar)
	}
}

// CheckCollision reports whether the player is in this obstacle's column and
// outside the gap. Only the tick where the x values are equal is tested.
func (o *Obstacle) CheckCollision(p Player) bool {
	halfSize := o.Size / 2
	xMatch := p.X == o.X
	aboveGap := p.Y < o.GapY-halfSize
	belowGap := p.Y > o.GapY+halfSize
	return xMatch && (aboveGap || belowGap)
}
