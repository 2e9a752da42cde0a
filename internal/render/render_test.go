package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newContext(t *testing.T, cols, rows int) (*RenderContext, *core.Screen) {
	t.Helper()
	set, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	return NewRenderContext(set, config.DefaultFlappyConfig(), cols, rows), core.NewScreen(cols, rows)
}

func TestToWorldInvertsToCell(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 40}, {33, 17}} {
		rc, _ := newContext(t, size[0], size[1])
		for col := 0; col < size[0]; col += 7 {
			for row := 0; row < size[1]; row += 5 {
				p := rc.ToWorld(col, row)
				c, r := rc.ToCell(p.X, p.Y)
				if c != col || r != row {
					t.Fatalf("%dx%d: ToCell(ToWorld(%d, %d)) = (%d, %d)", size[0], size[1], col, row, c, r)
				}
			}
		}
	}
}

func TestCellRect(t *testing.T) {
	rc, _ := newContext(t, 80, 24)

	r := rc.CellRect(core.NewBox(100, 370, 200, 50))
	if r.X != 20 || r.W != 40 {
		t.Errorf("CellRect x span = (%d, %d), expected (20, 40)", r.X, r.W)
	}
	if r.H < 1 {
		t.Errorf("CellRect height must be at least 1, got %d", r.H)
	}

	tiny := rc.CellRect(core.NewBox(0, 0, 0.1, 0.1))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box should cover one cell, got %dx%d", tiny.W, tiny.H)
	}
}

func TestDrawInstructions(t *testing.T) {
	rc, screen := newContext(t, 80, 24)
	g := flappy.New(config.DefaultFlappyConfig(), 1)

	rc.Draw(g, screen)
	out := screen.String()

	if !strings.Contains(out, "GET READY!") {
		t.Error("instructions overlay should be drawn")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("score label missing from row 0: %q", screen.Row(0))
	}
	if strings.Contains(out, "Play Again") {
		t.Error("game-over menu should not be drawn during instructions")
	}

	ground := screen.GetCell(0, 23)
	if ground.Rune == ' ' || ground.Color != colorGround {
		t.Errorf("ground should fill the bottom row, got %+v", ground)
	}
}

func TestDrawBird(t *testing.T) {
	rc, screen := newContext(t, 80, 24)
	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()

	rc.Draw(g, screen)

	col, row := rc.ToCell(133, 300)
	found := false
	for x := col; x < col+8; x++ {
		if screen.GetCell(x, row).Color == colorBird {
			found = true
		}
	}
	if !found {
		t.Errorf("bird not drawn near (%d, %d): %q", col, row, screen.Row(row))
	}
}

func TestDrawPipes(t *testing.T) {
	rc, screen := newContext(t, 80, 24)
	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()
	for i := 0; i < 100; i++ {
		g.Update()
	}
	// The first pipe is now at x = 200, column 40.
	if g.Pipes()[0].X != 200 {
		t.Fatalf("pipe X = %v, expected 200", g.Pipes()[0].X)
	}

	rc.Draw(g, screen)

	if c := screen.GetCell(41, 0); c.Color != colorPipe {
		t.Errorf("top piece should reach the top row, got %+v", c)
	}
	if c := screen.GetCell(41, 21); c.Color != colorPipe {
		t.Errorf("bottom piece should reach the ground, got %+v", c)
	}

	p := g.Pipes()[0]
	_, gapRow := rc.ToCell(0, float64(p.GapTop)+float64(p.Gap)/2)
	if c := screen.GetCell(45, gapRow); c.Color == colorPipe {
		t.Errorf("gap row %d should be open, got %+v", gapRow, c)
	}
}

func TestDrawGameOverMenu(t *testing.T) {
	rc, screen := newContext(t, 80, 24)
	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()
	for g.Phase() == flappy.PhasePlaying {
		g.Update()
	}

	rc.Draw(g, screen)
	out := screen.String()

	for _, want := range []string{"G A M E   O V E R", "Play Again", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("game-over screen should contain %q", want)
		}
	}

	// The button drawn over the hit-zone must be where a click selects it.
	zone := rc.CellRect(flappy.PlayAgainZone(g.Config()))
	cx, cy := zone.Center()
	if got := g.Select(rc.ToWorld(cx, cy)); got != flappy.MenuPlayAgain {
		t.Errorf("click at button centre (%d, %d) selected %v", cx, cy, got)
	}
}

func TestDrawTinyTerminal(t *testing.T) {
	rc, screen := newContext(t, 5, 3)
	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()

	rc.Draw(g, screen)

	if c := screen.GetCell(0, 2); c.Color != colorGround {
		t.Errorf("ground should still be visible on a tiny terminal, got %+v", c)
	}
}

func TestResize(t *testing.T) {
	rc, _ := newContext(t, 80, 24)
	rc.Resize(160, 48)

	if c, r := rc.Size(); c != 160 || r != 48 {
		t.Errorf("Size() = (%d, %d), expected (160, 48)", c, r)
	}
	if col, row := rc.ToCell(400, 600); col != 160 || row != 48 {
		t.Errorf("ToCell(400, 600) = (%d, %d), expected (160, 48)", col, row)
	}
}

func TestPipeSpritesScaledOnResize(t *testing.T) {
	rc, screen := newContext(t, 80, 24)

	// 50 world units at 0.2 cells per unit.
	for _, w := range []int{10, 11} {
		ps, ok := rc.pipes[w]
		if !ok {
			t.Fatalf("no pipe sprites cached for width %d", w)
		}
		if ps.top.Width() != w || ps.bottom.Width() != w {
			t.Errorf("width %d: sprites are %d and %d wide", w, ps.top.Width(), ps.bottom.Width())
		}
	}

	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()
	for i := 0; i < 300; i++ {
		g.Update()
		rc.Draw(g, screen)
	}
	if len(rc.pipes) != 2 {
		t.Errorf("drawing scrolled pipes grew the cache to %d widths", len(rc.pipes))
	}

	rc.Resize(40, 24)
	if _, ok := rc.pipes[10]; ok {
		t.Error("Resize should drop sprites scaled for the old width")
	}
	if _, ok := rc.pipes[5]; !ok {
		t.Error("Resize should scale sprites for the new width")
	}
}

func TestDrawPipeOutsideViewport(t *testing.T) {
	rc, screen := newContext(t, 80, 24)
	g := flappy.New(config.DefaultFlappyConfig(), 1)
	g.Start()

	// Initial pipes start at the right edge and beyond.
	rc.Draw(g, screen)
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if screen.GetCell(x, y).Color == colorPipe {
				t.Fatalf("pipe drawn at (%d, %d) before any scrolled in", x, y)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	rc, _ := newContext(t, 80, 24)
	if b := rc.Bounds(); b != core.NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v", b)
	}
	rc.Resize(0, 0)
	if b := rc.Bounds(); b.W != 1 || b.H != 1 {
		t.Errorf("Bounds() after zero resize = %+v, expected 1x1", b)
	}
}
