package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Play      key.Binding
	Quit      key.Binding
	Flap      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Play, k.Quit, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Play, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns KeyNone for unbound keys and true when the program must exit at once.
func (k KeyMap) MapKey(msg tea.KeyMsg) (gameKey core.Key, forceQuit bool) {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return core.KeyNone, true
	case key.Matches(msg, k.Play):
		return core.KeyPlay, false
	case key.Matches(msg, k.Quit):
		return core.KeyQuit, false
	case key.Matches(msg, k.Flap):
		return core.KeyFlap, false
	}
	return core.KeyNone, false
}
