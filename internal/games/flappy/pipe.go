package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// pipeReach is how far each pipe piece extends away from the gap. Pipes are
// vertically unbounded for collision purposes.
const pipeReach = 1e6

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // Horizontal position (left edge)
	GapTop int     // Y position where the gap starts
	Gap    int     // Height of the passable gap
	Width  int
}

// NewPipe creates a pipe at x with a gap-top height drawn uniformly from
// [cfg.MinGapTop(), cfg.MaxGapTop()].
func NewPipe(x float64, cfg config.FlappyConfig, rng *rand.Rand) Pipe {
	lo, hi := cfg.MinGapTop(), cfg.MaxGapTop()
	return Pipe{
		X:      x,
		GapTop: lo + rng.Intn(hi-lo+1),
		Gap:    cfg.Obstacles.GapSize,
		Width:  cfg.Obstacles.PipeWidth,
	}
}

// Advance scrolls the pipe left.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// Offscreen reports whether the pipe's right edge has passed the left
// screen boundary.
func (p Pipe) Offscreen() bool {
	return p.X < -float64(p.Width)
}

// GapBottom returns the y-coordinate where the bottom piece starts.
func (p Pipe) GapBottom() int {
	return p.GapTop + p.Gap
}

// TopRect returns the collision box of the upper piece.
func (p Pipe) TopRect() core.Box {
	return core.NewBox(p.X, float64(p.GapTop)-pipeReach, float64(p.Width), pipeReach)
}

// BottomRect returns the collision box of the lower piece.
func (p Pipe) BottomRect() core.Box {
	return core.NewBox(p.X, float64(p.GapBottom()), float64(p.Width), pipeReach)
}

// hitsPoint is the classic test: the bird's left edge must be strictly inside
// the pipe span and its top or bottom edge outside the gap.
func (p Pipe) hitsPoint(b *Bird) bool {
	x := float64(b.X)
	if !(p.X < x && x < p.X+float64(p.Width)) {
		return false
	}
	return b.Y < float64(p.GapTop) || b.Y+float64(b.Height) > float64(p.GapBottom())
}

// hitsBox tests full rectangle overlap against both pieces.
func (p Pipe) hitsBox(b *Bird) bool {
	r := b.Rect()
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}
