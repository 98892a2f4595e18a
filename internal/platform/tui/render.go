package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
// ColorDefault is absent so the terminal's own color shows through.
var ansiColors = map[core.Color]string{
	core.ColorBlack:  "0",
	core.ColorRed:    "1",
	core.ColorYellow: "3",
	core.ColorWhite:  "7",
	core.ColorNavy:   "17",
}

type cellStyle struct {
	fg, bg core.Color
}

// Painter converts a Screen buffer to a styled string for display.
// Styles are built once per color pair for the painter's renderer.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses lipgloss' default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (p *Painter) style(cs cellStyle) lipgloss.Style {
	if st, ok := p.styles[cs]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if c, ok := ansiColors[cs.fg]; ok {
		st = st.Foreground(lipgloss.Color(c))
	}
	if c, ok := ansiColors[cs.bg]; ok {
		st = st.Background(lipgloss.Color(c))
	}
	p.styles[cs] = st
	return st
}

// Render paints the screen.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			cs := cellStyle{fg: start.Fg, bg: start.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != cs.fg || cell.Bg != cs.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(cs).Render(run.String()))
		}
	}
	return sb.String()
}
