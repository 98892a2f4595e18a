package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// ErrTerminalTooSmall is returned by CheckTerminal when the playfield
// does not fit; the game still runs, clipped.
var ErrTerminalTooSmall = errors.New("tui: terminal smaller than the game window")

// CheckTerminal compares the terminal behind fd with the configured window.
// The help line below the playfield needs one extra row.
func CheckTerminal(fd int, cfg core.RuntimeConfig) error {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	if w < cfg.ScreenW || h < cfg.ScreenH+1 {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, w, h, cfg.ScreenW, cfg.ScreenH+1)
	}
	return nil
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the game requests exit or the user presses ctrl+c.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
