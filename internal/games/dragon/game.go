// Package dragon implements Flappy Dragon: a glyph falls under gravity,
// the player flaps to stay up and threads the gaps of scrolling walls.
package dragon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ID is the identifier scores are recorded under.
const ID = "dragon"

// Background of the playing field.
const PlayBackground = core.ColorNavy

// Mode is the screen the game is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// State owns the player, the current obstacle and the mode.
// The frame driver is its only user and calls Tick once per frame.
type State struct {
	cfg       config.DragonConfig
	rng       *rand.Rand
	player    Player
	obstacle  Obstacle
	mode      Mode
	score     int
	frameTime float64 // Milliseconds accumulated since the last physics tick
}

// New creates a game on the main menu.
// All obstacle gaps for the session are drawn from rng.
func New(cfg config.DragonConfig, rng *rand.Rand) *State {
	s := &State{
		cfg:  cfg,
		rng:  rng,
		mode: ModeMenu,
	}
	s.player = s.startPlayer()
	s.obstacle = NewObstacle(cfg.Screen.Width, 0, rng, cfg.Obstacles)
	return s
}

// ID returns the identifier scores are recorded under.
func (s *State) ID() string {
	return ID
}

// Title returns the display name of the game.
func (s *State) Title() string {
	return s.cfg.Screen.Title
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed in the current run.
func (s *State) Score() int {
	return s.score
}

// Ended reports whether the last run is over.
func (s *State) Ended() bool {
	return s.mode == ModeEnd
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the current obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// Tick runs one frame for the current mode.
func (s *State) Tick(f *core.Frame) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(f)
	case ModeEnd:
		s.dead(f)
	case ModePlaying:
		s.play(f)
	}
}

func (s *State) startPlayer() Player {
	return NewPlayer(s.cfg.Player.StartX, s.cfg.Player.StartY, s.cfg.Physics)
}

// restart begins a new run.
func (s *State) restart() {
	s.player = s.startPlayer()
	s.frameTime = 0
	s.obstacle = NewObstacle(s.cfg.Screen.Width, 0, s.rng, s.cfg.Obstacles)
	s.mode = ModePlaying
	s.score = 0
}

// dispatchMenuKey handles the keys shared by the menu and end screens.
func (s *State) dispatchMenuKey(f *core.Frame) {
	switch f.Key {
	case core.KeyPlay:
		s.restart()
	case core.KeyQuit:
		f.Quitting = true
	}
}

func (s *State) mainMenu(f *core.Frame) {
	dst := f.Screen
	dst.Clear()
	dst.PrintCentered(5, "Welcome to "+s.cfg.Screen.Title)
	dst.PrintCentered(8, "(P) Play Game")
	dst.PrintCentered(9, "(Q) Quit Game")

	s.dispatchMenuKey(f)
}

func (s *State) dead(f *core.Frame) {
	dst := f.Screen
	dst.Clear()
	dst.PrintCentered(5, "You are dead!")
	dst.PrintCentered(6, fmt.Sprintf("You earned %d points", s.score))
	dst.PrintCentered(8, "(P) Play Again")
	dst.PrintCentered(9, "(Q) Quit Game")

	s.dispatchMenuKey(f)
}

func (s *State) play(f *core.Frame) {
	dst := f.Screen
	dst.ClearBg(PlayBackground)

	// Physics runs on its own cadence; at most one tick per frame
	s.frameTime += f.ElapsedMS
	if s.frameTime > s.cfg.Physics.FrameDurationMS {
		s.frameTime = 0
		s.player.ApplyGravityAndAdvance()
	}

	// Flap is applied immediately, not on the physics cadence
	if f.HasKey(core.KeyFlap) {
		s.player.Flap()
	}

	s.player.Render(dst)
	dst.Print(0, 0, "Press SPACE to flap.")
	dst.Print(0, 1, fmt.Sprintf("Score: %d", s.score))

	screenH := s.cfg.Screen.Height
	s.obstacle.Render(dst, s.player.X, screenH)
	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+s.cfg.Screen.Width, s.score, s.rng, s.cfg.Obstacles)
	}

	if s.player.Y > screenH || s.obstacle.CheckCollision(s.player) {
		s.mode = ModeEnd
	}
}
