package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// Model is the Bubble Tea model for running the puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger for storage and screenshot errors.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size without restarting the board.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the game screen to the space left above the help line.
func (m *Model) layout() {
	h := max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
	m.screen.Resize(m.config.ScreenW, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, h)
	}
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameSeconds(m.lastTick, now, m.config.TickSeconds())
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if result.Restarted {
		m.runSaved = false
	}

	if m.gameState.GameOver && !m.runSaved && !m.animating() {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// animating reports whether the game is still settling its last move.
func (m Model) animating() bool {
	a, ok := m.game.(registry.Animator)
	return ok && a.Animating()
}

// recordRun stores the finished run. Failures are logged and play goes on.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{GameID: m.game.ID(), Score: uint64(max(m.gameState.Score, 0))}
	if rec, ok := m.game.(registry.Recorder); ok {
		sum := rec.Summary()
		run.Score = sum.Score
		run.MaxTile = sum.MaxTile
		run.Moves = sum.Moves
		run.Slide = sum.Slide
	}
	if run.Score == 0 {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("cannot save run", "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".tilemerge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the board with the help line underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
