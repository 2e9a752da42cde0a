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

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *flappy.Game
	rc         *render.RenderContext
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	phase      flappy.Phase
	quitting   bool
}

// NewModel creates a Bubble Tea model for game, sized from cfg.
// A nil logger discards everything.
func NewModel(game *flappy.Game, set *assets.Set, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows := playfieldRows(cfg.ScreenH)
	return Model{
		game:       game,
		rc:         render.NewRenderContext(set, game.Config(), cfg.ScreenW, rows),
		screen:     core.NewScreen(cfg.ScreenW, rows),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		phase:      game.Phase(),
	}
}

func playfieldRows(screenH int) int {
	return core.Max(screenH-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game ready", "phase", m.phase, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns a left click into a world-space click for the next tick.
// Clicks on the help footer are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !isPrimaryClick(msg) {
		return m, nil
	}
	if !m.rc.Bounds().Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.inputFrame.Click(m.rc.ToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events. The world is kept; only the
// world-to-cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := playfieldRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.rc.Resize(msg.Width, rows)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if phase := m.game.Phase(); phase != m.phase {
		m.logPhase(m.phase, phase)
		m.phase = phase
	}

	if result.Quit {
		m.logger.Info("quit from menu", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logPhase(from, to flappy.Phase) {
	switch to {
	case flappy.PhaseGameOver:
		m.logger.Info("game over", "score", m.gameState.Score, "ticks", m.game.Ticks())
	case flappy.PhasePlaying:
		m.logger.Info("playing", "from", from)
	default:
		m.logger.Debug("phase change", "from", from, "to", to)
	}
}

// saveScreenshot saves the current frame to ~/.flappy/screenshots.
func (m Model) saveScreenshot() {
	m.rc.Draw(m.game, m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.rc.Draw(m.game, m.screen)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run plays game in the current terminal until the player quits.
func Run(game *flappy.Game, set *assets.Set, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, set, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
