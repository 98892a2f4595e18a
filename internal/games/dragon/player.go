package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual style of the player.
const (
	PlayerChar  = '@'
	PlayerColor = core.ColorYellow
)

// Player is the dragon: a world-space x that grows by one per physics tick,
// a screen row and a vertical velocity.
type Player struct {
	X        int     // World-space x
	Y        int     // Screen row, never negative
	Velocity float64 // Vertical velocity (negative = up)

	physics config.PhysicsConfig
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int, physics config.PhysicsConfig) Player {
	return Player{
		X:       x,
		Y:       y,
		physics: physics,
	}
}

// ApplyGravityAndAdvance performs one physics tick: accelerate downward up
// to the velocity cap, move by the truncated velocity, and advance x by one.
func (p *Player) ApplyGravityAndAdvance() {
	if p.Velocity < p.physics.MaxVelocity {
		p.Velocity += p.physics.Gravity
		if p.Velocity > p.physics.MaxVelocity {
			p.Velocity = p.physics.MaxVelocity
		}
	}

	p.Y = core.Max(0, p.Y+int(p.Velocity))

	// Collision relies on x visiting every integer.
	p.X++
}

// Flap sets the velocity to the flap impulse regardless of its current value.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapVelocity
}

// Render draws the player in the leftmost column.
func (p *Player) Render(dst *core.Screen) {
	dst.Set(0, p.Y, PlayerColor, core.ColorBlack, PlayerChar)
}
