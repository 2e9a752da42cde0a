package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T) (Model, *flappy.Game) {
	t.Helper()
	set, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error = %v", err)
	}
	game := flappy.New(config.DefaultFlappyConfig(), 1)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	return NewModel(game, set, cfg, nil), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{})
	}
	return m
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnEnter(t *testing.T) {
	m, game := newTestModel(t)

	m = tick(t, m, 5)
	if game.Phase() != flappy.PhaseInstructions {
		t.Fatalf("phase = %v before start, want instructions", game.Phase())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)
	if game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v after enter, want playing", game.Phase())
	}
	if m.State().Instructions {
		t.Error("State().Instructions should be false once playing")
	}
}

func TestModelStartsOnClick(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, leftClick(10, 10))
	tick(t, m, 1)
	if game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v after click, want playing", game.Phase())
	}
}

func TestModelIgnoresFooterClick(t *testing.T) {
	m, game := newTestModel(t)

	// Row 24 is the help footer of a 25-row terminal; column 80 is past
	// the right edge.
	for _, click := range []tea.MouseMsg{leftClick(10, 24), leftClick(80, 5)} {
		m, _ = update(t, m, click)
		m = tick(t, m, 1)
		if game.Phase() != flappy.PhaseInstructions {
			t.Errorf("phase = %v after click at (%d, %d), want instructions", game.Phase(), click.X, click.Y)
		}
	}
}

func TestModelInputClearedEachTick(t *testing.T) {
	m, game := newTestModel(t)
	game.Start()

	m, _ = update(t, m, runeKey("w"))
	m = tick(t, m, 1)
	if got := game.Bird().Vel; got >= 0 {
		t.Fatalf("Vel = %v after jump, want negative", got)
	}

	before := game.Bird().Vel
	tick(t, m, 1)
	want := before + game.Config().Physics.Gravity
	if got := game.Bird().Vel; got != want {
		t.Errorf("Vel = %v on next tick, want %v (jump must not repeat)", got, want)
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if !isQuit(cmd) {
		t.Error("q should return tea.Quit")
	}
	if !m.Quitting() {
		t.Error("Quitting() = false after q")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelGameOverMenu(t *testing.T) {
	m, game := newTestModel(t)
	game.Start()

	// Without input the bird falls below the first pipe's gap.
	for i := 0; i < 400 && game.Phase() != flappy.PhaseGameOver; i++ {
		m = tick(t, m, 1)
	}
	if game.Phase() != flappy.PhaseGameOver {
		t.Fatal("bird never died")
	}
	if !m.State().GameOver {
		t.Error("State().GameOver = false after death")
	}

	cellOf := func(zone core.Box) (int, int) {
		return m.rc.ToCell(zone.X+zone.W/2, zone.Y+zone.H/2)
	}

	col, row := cellOf(flappy.QuitZone(game.Config()))
	m, _ = update(t, m, leftClick(col, row))
	m, cmd := update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Fatal("clicking Quit should end the program")
	}
	if !m.Quitting() {
		t.Error("Quitting() = false after Quit button")
	}
}

func TestModelGameOverPlayAgain(t *testing.T) {
	m, game := newTestModel(t)
	game.Start()
	for i := 0; i < 400 && game.Phase() != flappy.PhaseGameOver; i++ {
		m = tick(t, m, 1)
	}
	if game.Phase() != flappy.PhaseGameOver {
		t.Fatal("bird never died")
	}

	zone := flappy.PlayAgainZone(game.Config())
	col, row := m.rc.ToCell(zone.X+zone.W/2, zone.Y+zone.H/2)
	m, _ = update(t, m, leftClick(col, row))
	tick(t, m, 1)

	if game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v after Play Again, want playing", game.Phase())
	}
	if game.Score() != 0 {
		t.Errorf("Score() = %d after restart, want 0", game.Score())
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m, game := newTestModel(t)
	game.Start()
	m = tick(t, m, 10)

	bird := game.Bird()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.Ticks() != 10 {
		t.Errorf("Ticks() = %d after resize, want 10", game.Ticks())
	}
	if game.Bird() != bird {
		t.Error("resize changed the bird")
	}
	if w, h := m.rc.Size(); w != 120 || h != 39 {
		t.Errorf("playfield = %dx%d, want 120x39", w, h)
	}

	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 40 {
		t.Errorf("View() has %d lines, want 40", got)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View() missing score label")
	}
	if !strings.Contains(view, "flap") {
		t.Error("View() missing help footer")
	}
}
