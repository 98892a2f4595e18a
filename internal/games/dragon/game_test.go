package dragon

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func newTestState(seed int64) *State {
	return New(config.DefaultDragonConfig(), rand.New(rand.NewSource(seed)))
}

// tick runs one frame with the given elapsed time and key.
func tick(s *State, elapsedMS float64, key core.Key) *core.Frame {
	f := core.NewFrame(core.NewScreen(80, 50), elapsedMS, key)
	s.Tick(f)
	return f
}

// playing returns a state that has just started a run.
func playing(t *testing.T) *State {
	t.Helper()
	s := newTestState(42)
	tick(s, 16, core.KeyPlay)
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing after Play key, got %v", s.Mode())
	}
	return s
}

func TestNewStartsOnMenu(t *testing.T) {
	s := newTestState(1)

	if s.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected Menu", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("initial score = %d, expected 0", s.Score())
	}
	if s.Ended() {
		t.Error("new game should not be ended")
	}
}

func TestMenuPlayStartsRun(t *testing.T) {
	s := newTestState(7)
	s.score = 9

	f := tick(s, 16, core.KeyPlay)

	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %v, expected Playing", s.Mode())
	}
	if f.Quitting {
		t.Error("Play should not request quit")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	p := s.Player()
	if p.X != 5 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("player = (%d, %d, %v), expected (5, 25, 0)", p.X, p.Y, p.Velocity)
	}
	if s.frameTime != 0 {
		t.Errorf("frameTime = %v, expected 0", s.frameTime)
	}
	o := s.Obstacle()
	if o.X != 80 || o.Size != 20 {
		t.Errorf("obstacle = %+v, expected x=80 size=20", o)
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      core.Key
		mode     Mode
		quitting bool
	}{
		{"no key", core.KeyNone, ModeMenu, false},
		{"flap is ignored", core.KeyFlap, ModeMenu, false},
		{"quit", core.KeyQuit, ModeMenu, true},
		{"play", core.KeyPlay, ModePlaying, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(1)
			f := tick(s, 16, tc.key)

			if s.Mode() != tc.mode {
				t.Errorf("mode = %v, expected %v", s.Mode(), tc.mode)
			}
			if f.Quitting != tc.quitting {
				t.Errorf("Quitting = %v, expected %v", f.Quitting, tc.quitting)
			}
		})
	}
}

func TestEndKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      core.Key
		mode     Mode
		quitting bool
	}{
		{"no key", core.KeyNone, ModeEnd, false},
		{"flap is ignored", core.KeyFlap, ModeEnd, false},
		{"quit", core.KeyQuit, ModeEnd, true},
		{"play again", core.KeyPlay, ModePlaying, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(1)
			s.mode = ModeEnd
			s.score = 4

			f := tick(s, 16, tc.key)

			if s.Mode() != tc.mode {
				t.Errorf("mode = %v, expected %v", s.Mode(), tc.mode)
			}
			if f.Quitting != tc.quitting {
				t.Errorf("Quitting = %v, expected %v", f.Quitting, tc.quitting)
			}
			if tc.mode == ModePlaying && s.Score() != 0 {
				t.Errorf("restart should clear score, got %d", s.Score())
			}
		})
	}
}

func TestPlayingQuitKeyIgnored(t *testing.T) {
	s := playing(t)

	f := tick(s, 16, core.KeyQuit)

	if f.Quitting {
		t.Error("Quit should only be honoured on menu screens")
	}
	if s.Mode() != ModePlaying {
		t.Errorf("mode = %v, expected Playing", s.Mode())
	}
}

func TestFallingOffScreenEndsRun(t *testing.T) {
	s := playing(t)
	s.player.Y = 51

	tick(s, 0, core.KeyNone)

	if s.Mode() != ModeEnd {
		t.Errorf("mode = %v, expected End", s.Mode())
	}
	if !s.Ended() {
		t.Error("Ended() should be true")
	}
}

func TestBottomRowDoesNotEndRun(t *testing.T) {
	s := playing(t)
	s.player.Y = 50

	tick(s, 0, core.KeyNone)

	if s.Mode() != ModePlaying {
		t.Errorf("mode = %v, expected Playing at y == height", s.Mode())
	}
}

func TestPhysicsCadence(t *testing.T) {
	s := playing(t)

	tick(s, 50, core.KeyNone)
	if s.Player().X != 5 {
		t.Fatalf("x = %d after 50ms, expected no physics tick", s.Player().X)
	}

	tick(s, 30, core.KeyNone)
	if s.Player().X != 6 {
		t.Fatalf("x = %d after 80ms, expected one physics tick", s.Player().X)
	}
	if s.frameTime != 0 {
		t.Errorf("frameTime = %v, expected reset to 0", s.frameTime)
	}

	tick(s, 75, core.KeyNone)
	if s.Player().X != 6 {
		t.Errorf("x = %d after exactly 75ms, expected no tick", s.Player().X)
	}
}

func TestSlowFrameAppliesSingleTick(t *testing.T) {
	s := playing(t)

	tick(s, 1000, core.KeyNone)

	if s.Player().X != 6 {
		t.Errorf("x = %d after a 1000ms frame, expected exactly one tick", s.Player().X)
	}
}

func TestFlapIsImmediate(t *testing.T) {
	s := playing(t)

	tick(s, 0, core.KeyFlap)

	p := s.Player()
	if p.Velocity != -2.0 {
		t.Errorf("velocity = %v, expected -2.0", p.Velocity)
	}
	if p.X != 5 {
		t.Errorf("x = %d, flap should not run a physics tick", p.X)
	}
}

func TestPassingObstacleScores(t *testing.T) {
	s := playing(t)
	s.obstacle = Obstacle{X: 6, GapY: 25, Size: 20}

	tick(s, 100, core.KeyNone) // x reaches 6, inside the gap
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %v, expected Playing inside the gap", s.Mode())
	}
	if s.Score() != 0 {
		t.Fatalf("score = %d before passing, expected 0", s.Score())
	}

	tick(s, 100, core.KeyNone) // x reaches 7, past the obstacle
	if s.Score() != 1 {
		t.Fatalf("score = %d, expected 1", s.Score())
	}

	o := s.Obstacle()
	if o.X != 7+80 {
		t.Errorf("next obstacle x = %d, expected %d", o.X, 7+80)
	}
	if o.Size != 19 {
		t.Errorf("next obstacle size = %d, expected 19", o.Size)
	}
}

func TestHittingWallEndsRun(t *testing.T) {
	s := playing(t)
	s.obstacle = Obstacle{X: 6, GapY: 40, Size: 2}

	tick(s, 100, core.KeyNone)

	if s.Mode() != ModeEnd {
		t.Errorf("mode = %v, expected End after hitting the wall", s.Mode())
	}
}

func TestFallingWithoutFlapEndsRun(t *testing.T) {
	s := playing(t)

	for i := 0; i < 1000 && s.Mode() == ModePlaying; i++ {
		tick(s, 80, core.KeyNone)
	}

	if s.Mode() != ModeEnd {
		t.Errorf("mode = %v, expected End without flapping", s.Mode())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, Obstacle, Player) {
		s := newTestState(12345)
		tick(s, 16, core.KeyPlay)
		for i := 0; i < 2000 && s.Mode() == ModePlaying; i++ {
			key := core.KeyNone
			if i%6 == 0 {
				key = core.KeyFlap
			}
			tick(s, 40, key)
		}
		return s.Score(), s.Obstacle(), s.Player()
	}

	score1, obs1, p1 := run()
	score2, obs2, p2 := run()

	if score1 != score2 {
		t.Errorf("scores differ: %d vs %d", score1, score2)
	}
	if obs1 != obs2 {
		t.Errorf("obstacles differ: %+v vs %+v", obs1, obs2)
	}
	if p1.X != p2.X || p1.Y != p2.Y {
		t.Errorf("players differ: (%d, %d) vs (%d, %d)", p1.X, p1.Y, p2.X, p2.Y)
	}
}

func TestMenuRender(t *testing.T) {
	s := newTestState(1)
	f := tick(s, 16, core.KeyNone)

	if !strings.Contains(f.Screen.Row(5), "Welcome to Flappy Dragon") {
		t.Errorf("row 5 = %q, expected title", f.Screen.Row(5))
	}
	if !strings.Contains(f.Screen.Row(8), "(P) Play Game") {
		t.Errorf("row 8 = %q, expected play line", f.Screen.Row(8))
	}
	if !strings.Contains(f.Screen.Row(9), "(Q) Quit Game") {
		t.Errorf("row 9 = %q, expected quit line", f.Screen.Row(9))
	}
}

func TestEndRender(t *testing.T) {
	s := newTestState(1)
	s.mode = ModeEnd
	s.score = 3

	f := tick(s, 16, core.KeyNone)

	if !strings.Contains(f.Screen.Row(5), "You are dead!") {
		t.Errorf("row 5 = %q, expected death message", f.Screen.Row(5))
	}
	if !strings.Contains(f.Screen.Row(6), "You earned 3 points") {
		t.Errorf("row 6 = %q, expected final score", f.Screen.Row(6))
	}
	if !strings.Contains(f.Screen.Row(8), "(P) Play Again") {
		t.Errorf("row 8 = %q, expected play again line", f.Screen.Row(8))
	}
}

func TestPlayingRender(t *testing.T) {
	s := playing(t)
	s.score = 2

	f := tick(s, 0, core.KeyNone)

	if !strings.HasPrefix(f.Screen.Row(0), "Press SPACE to flap.") {
		t.Errorf("row 0 = %q, expected hint", f.Screen.Row(0))
	}
	if !strings.HasPrefix(f.Screen.Row(1), "Score: 2") {
		t.Errorf("row 1 = %q, expected score", f.Screen.Row(1))
	}
	if f.Screen.Get(0, 25) != PlayerChar {
		t.Errorf("expected player at (0, 25), got %q", f.Screen.Get(0, 25))
	}
	if f.Screen.GetCell(40, 40).Bg != PlayBackground {
		t.Errorf("expected navy background, got %v", f.Screen.GetCell(40, 40).Bg)
	}
}

func TestModeString(t *testing.T) {
	if ModeMenu.String() != "Menu" || ModePlaying.String() != "Playing" || ModeEnd.String() != "End" {
		t.Error("unexpected mode names")
	}
	if Mode(9).String() != "Unknown" {
		t.Error("unknown mode should be named Unknown")
	}
}
