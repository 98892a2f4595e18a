// Package tui drives the game on Bubble Tea: it owns the frame cadence,
// maps terminal keys to game keys, paints the screen buffer and records
// finished runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run one frame. It carries the wall-clock time
// the frame was scheduled for.
type TickMsg time.Time

// nextFrame schedules the next TickMsg one frame interval from now.
func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
