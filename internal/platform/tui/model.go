package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// Game is what the frame driver runs. It is called once per frame and
// draws into the frame's screen.
type Game interface {
	// ID is the identifier scores are recorded under.
	ID() string
	// Title is shown as the window title.
	Title() string
	// Tick runs one frame.
	Tick(f *core.Frame)
	// Score is the score of the current or last run.
	Score() int
	// Ended reports whether the last run is over.
	Ended() bool
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer sets the name finished runs are recorded under.
func WithPlayer(name string) Option {
	return func(m *Model) {
		m.player = name
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.painter = NewPainter(r)
	}
}

// Model is the Bubble Tea model that drives a Game frame by frame.
type Model struct {
	game     Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	painter  *Painter
	logger   *log.Logger
	player   string
	key      core.Key  // Key latched for the next frame
	lastTick time.Time // Timestamp of the previous frame
	ended    bool      // Game.Ended() as of the previous frame
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case scores are not recorded.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = NewPainter(nil)
	}
	return m
}

// Init sets the window title and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "player", m.player)
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		nextFrame(m.config.FrameInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield has a fixed size; a small terminal just clips it.
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey latches the key for the next frame. Only the latest key
// pressed between two frames is seen by the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	gameKey, forceQuit := m.keys.MapKey(msg)
	if forceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if gameKey != core.KeyNone {
		m.key = gameKey
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.NewFrame(m.screen, m.elapsed(now), m.key)
	m.lastTick = now
	m.key = core.KeyNone

	m.game.Tick(frame)

	ended := m.game.Ended()
	if ended && !m.ended {
		m.recordRun()
	}
	m.ended = ended

	if frame.Quitting {
		m.logger.Info("quit requested", "game", m.game.ID(), "player", m.player)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nextFrame(m.config.FrameInterval())
}

// elapsed returns milliseconds since the previous frame; 0 for the first.
func (m Model) elapsed(now time.Time) float64 {
	if m.lastTick.IsZero() || now.Before(m.lastTick) {
		return 0
	}
	return float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
}

// recordRun logs a finished run and saves its score.
func (m Model) recordRun() {
	score := m.game.Score()
	m.logger.Info("run ended", "game", m.game.ID(), "player", m.player, "score", score)

	if m.store == nil || score <= 0 {
		return
	}

	best, err := m.store.PlayerBest(m.game.ID(), m.player)
	if err != nil {
		m.logger.Warn("could not read personal best", "error", err)
	} else if score > best {
		m.logger.Info("new personal best", "player", m.player, "score", score, "previous", best)
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		// The game continues without the record
		m.logger.Error("could not save score", "error", err)
	}
}

// View renders the screen buffer and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}
