// Package render draws a game world into a core.Screen. The world is laid
// out in fixed world units and scaled to whatever terminal it runs in.
package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Colors used for each layer.
const (
	colorSky     = core.ColorGray
	colorBird    = core.ColorBrightYellow
	colorPipe    = core.ColorBrightGreen
	colorGround  = core.ColorOrange
	colorScore   = core.ColorBrightWhite
	colorOverlay = core.ColorBrightWhite
	colorBanner  = core.ColorBrightRed
	colorButton  = core.ColorCyan
)

// RenderContext owns the loaded sprites and the world-to-cell mapping.
// Build one per terminal and pass it to every frame.
type RenderContext struct {
	assets *assets.Set
	cfg    config.FlappyConfig

	cols, rows int
	sx, sy     float64 // cells per world unit

	birds   [2]*assets.Sprite // scaled to the bird's cell size
	pipeTop *assets.Sprite
	pipes   map[int]pipeSprites // scaled pipe pieces by cell width
}

// pipeSprites holds both pipe pieces scaled to one cell width.
type pipeSprites struct {
	top, bottom *assets.Sprite
}

// NewRenderContext prepares sprites for a cols×rows playfield.
func NewRenderContext(set *assets.Set, cfg config.FlappyConfig, cols, rows int) *RenderContext {
	rc := &RenderContext{
		assets:  set,
		cfg:     cfg,
		pipeTop: set.Pipe.FlipV(),
	}
	rc.Resize(cols, rows)
	return rc
}

// Resize updates the mapping for a new terminal size.
func (rc *RenderContext) Resize(cols, rows int) {
	rc.cols = core.Max(cols, 1)
	rc.rows = core.Max(rows, 1)
	rc.sx = float64(rc.cols) / float64(rc.cfg.Playfield.Width)
	rc.sy = float64(rc.rows) / float64(rc.cfg.Playfield.Height)

	w := rc.cellSpan(0, float64(rc.cfg.Player.Width), rc.sx)
	h := rc.cellSpan(0, float64(rc.cfg.Player.Height), rc.sy)
	for i, s := range rc.assets.Birds {
		rc.birds[i] = s.Scale(w, h)
	}

	// A scrolling pipe covers floor(width) or floor(width)+1 cells
	// depending on how its edges round.
	rc.pipes = make(map[int]pipeSprites, 2)
	pw := core.Max(int(math.Floor(float64(rc.cfg.Obstacles.PipeWidth)*rc.sx)), 1)
	rc.pipeSpritesFor(pw)
	rc.pipeSpritesFor(pw + 1)
}

func (rc *RenderContext) pipeSpritesFor(w int) pipeSprites {
	if ps, ok := rc.pipes[w]; ok {
		return ps
	}
	ps := pipeSprites{
		top:    rc.pipeTop.Scale(w, rc.pipeTop.Height()),
		bottom: rc.assets.Pipe.Scale(w, rc.assets.Pipe.Height()),
	}
	rc.pipes[w] = ps
	return ps
}

// Size returns the playfield size in cells.
func (rc *RenderContext) Size() (int, int) {
	return rc.cols, rc.rows
}

// Bounds returns the playfield in cells.
func (rc *RenderContext) Bounds() core.Rect {
	return core.NewRect(0, 0, rc.cols, rc.rows)
}

// ToCell maps a world position to the cell containing it.
func (rc *RenderContext) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * rc.sx)), int(math.Floor(y * rc.sy))
}

// ToWorld maps a cell to the world position of its centre.
func (rc *RenderContext) ToWorld(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) / rc.sx,
		Y: (float64(row) + 0.5) / rc.sy,
	}
}

// CellRect maps a world box to the cells it covers. Edges are rounded so
// boxes of equal size keep equal cell sizes as they scroll. The result is at
// least one cell in each direction.
func (rc *RenderContext) CellRect(b core.Box) core.Rect {
	x0 := int(math.Round(b.X * rc.sx))
	y0 := int(math.Round(b.Y * rc.sy))
	return core.NewRect(x0, y0, rc.cellSpan(b.X, b.W, rc.sx), rc.cellSpan(b.Y, b.H, rc.sy))
}

func (rc *RenderContext) cellSpan(start, length, scale float64) int {
	a := math.Round(start * scale)
	b := math.Round((start + length) * scale)
	return core.Max(int(b-a), 1)
}

// Draw renders one frame of g into dst: background, bird, pipes, ground,
// score, then the overlay for the current phase.
func (rc *RenderContext) Draw(g *flappy.Game, dst *core.Screen) {
	dst.Clear()

	groundRow := rc.groundRow()
	rc.drawBackground(dst, groundRow)
	rc.drawBird(dst, g.Bird())
	for _, p := range g.Pipes() {
		rc.drawPipe(dst, p, groundRow)
	}
	rc.drawGround(dst, groundRow)

	col, row := rc.ToCell(10, 10)
	dst.DrawText(col, row, fmt.Sprintf("Score: %d", g.Score()), colorScore)

	switch g.Phase() {
	case flappy.PhaseInstructions:
		rc.drawCentered(dst, rc.assets.Message, colorOverlay)
	case flappy.PhaseGameOver:
		rc.drawCentered(dst, rc.assets.GameOver, colorBanner)
		rc.drawButton(dst, flappy.PlayAgainZone(rc.cfg), "Play Again")
		rc.drawButton(dst, flappy.QuitZone(rc.cfg), "Quit")
	}
}

func (rc *RenderContext) groundRow() int {
	_, row := rc.ToCell(0, float64(rc.cfg.Playfield.Height-rc.cfg.Playfield.GroundHeight))
	// Keep at least one row of ground visible on tiny terminals.
	return core.Clamp(row, 0, rc.rows-1)
}

// drawBackground tiles the sky above the ground.
func (rc *RenderContext) drawBackground(dst *core.Screen, groundRow int) {
	bg := rc.assets.Background
	for y := 0; y < groundRow; y++ {
		for x := 0; x < rc.cols; x++ {
			if r := bg.At(x%bg.Width(), y%bg.Height()); r != ' ' {
				dst.SetColored(x, y, r, colorSky)
			}
		}
	}
}

func (rc *RenderContext) drawBird(dst *core.Screen, b flappy.Bird) {
	col, row := rc.ToCell(float64(b.X), b.Y)
	blit(dst, rc.birds[b.Frame()], col, row, colorBird)
}

// drawPipe draws the flipped top piece ending at the gap and the bottom
// piece from the gap down to the ground. Caps face the gap.
func (rc *RenderContext) drawPipe(dst *core.Screen, p flappy.Pipe, groundRow int) {
	r := rc.CellRect(core.NewBox(p.X, 0, float64(p.Width), 1))
	if !r.Intersects(rc.Bounds()) {
		return
	}
	ps := rc.pipeSpritesFor(r.W)
	_, gapTop := rc.ToCell(0, float64(p.GapTop))
	_, gapBottom := rc.ToCell(0, float64(p.GapBottom()))

	top := ps.top
	for i := 0; gapTop-1-i >= 0; i++ {
		line := top.Height() - 1 - core.Min(i, top.Height()-1)
		blitRow(dst, top, line, r.X, gapTop-1-i, colorPipe)
	}

	bottom := ps.bottom
	for y := gapBottom; y < groundRow; y++ {
		line := core.Min(y-gapBottom, bottom.Height()-1)
		blitRow(dst, bottom, line, r.X, y, colorPipe)
	}
}

// drawGround tiles the base sprite from the ground row down. The last sprite
// row repeats for tall grounds.
func (rc *RenderContext) drawGround(dst *core.Screen, groundRow int) {
	base := rc.assets.Base
	for y := groundRow; y < rc.rows; y++ {
		line := core.Min(y-groundRow, base.Height()-1)
		for x := 0; x < rc.cols; x++ {
			dst.SetColored(x, y, base.At(x%base.Width(), line), colorGround)
		}
	}
}

// drawCentered draws an unscaled sprite centred on the playfield. Its
// blank cells are opaque.
func (rc *RenderContext) drawCentered(dst *core.Screen, s *assets.Sprite, c core.Color) {
	x := (rc.cols - s.Width()) / 2
	y := (rc.rows - s.Height()) / 2
	for row := 0; row < s.Height(); row++ {
		dst.DrawText(x, y+row, s.Row(row), c)
	}
}

// drawButton draws a labelled box over a menu hit-zone.
func (rc *RenderContext) drawButton(dst *core.Screen, zone core.Box, label string) {
	r := rc.CellRect(zone)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, colorButton)
	_, cy := r.Center()
	dst.DrawTextCentered(r, cy, label, colorOverlay)
}

func blit(dst *core.Screen, s *assets.Sprite, x, y int, c core.Color) {
	for row := 0; row < s.Height(); row++ {
		blitRow(dst, s, row, x, y+row, c)
	}
}

// blitRow copies one sprite row to (x, y), skipping transparent cells.
func blitRow(dst *core.Screen, s *assets.Sprite, row, x, y int, c core.Color) {
	for col := 0; col < s.Width(); col++ {
		if r := s.At(col, row); r != ' ' {
			dst.SetColored(x+col, y, r, c)
		}
	}
}
