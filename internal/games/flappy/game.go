// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase gates whether physics and collision run.
type Phase int

const (
	PhaseInstructions Phase = iota // Instructions overlay, world frozen
	PhasePlaying                   // Simulation running
	PhaseGameOver                  // Bird dead, menu showing
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Game is the world: one bird, a fixed number of pipes, the score and the
// current phase.
type Game struct {
	cfg       config.FlappyConfig
	rng       *rand.Rand
	bird      *Bird
	pipes     []Pipe
	score     int
	phase     Phase
	tickCount int
}

// New creates a game showing the instructions overlay.
// The config must be valid; see config.FlappyConfig.Validate.
func New(cfg config.FlappyConfig, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// Reset reseeds the obstacle generator and returns to the instructions overlay.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.populate()
	g.phase = PhaseInstructions
}

// Restart rebuilds the world in place and resumes play immediately.
func (g *Game) Restart() {
	g.populate()
	g.phase = PhasePlaying
}

// populate creates a new bird and the initial pipe row, and clears the score.
func (g *Game) populate() {
	g.bird = NewBird(g.cfg)
	g.score = 0
	g.tickCount = 0

	n := g.cfg.Obstacles.Count
	if cap(g.pipes) < n {
		g.pipes = make([]Pipe, 0, n)
	}
	g.pipes = g.pipes[:0]
	for i := 0; i < n; i++ {
		x := float64(g.cfg.Playfield.Width + i*g.cfg.Obstacles.Spacing)
		g.pipes = append(g.pipes, NewPipe(x, g.cfg, g.rng))
	}
}

// Start leaves the instructions overlay. It has no effect in other phases.
func (g *Game) Start() {
	if g.phase == PhaseInstructions {
		g.phase = PhasePlaying
	}
}

// Step applies one tick of input and then advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	if in.Has(core.ActionJump) {
		g.bird.Jump()
	}
	if in.Has(core.ActionSuperJump) {
		g.bird.SuperJump()
	}

	switch g.phase {
	case PhaseInstructions:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionClick) {
			g.Start()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		} else if in.Has(core.ActionClick) {
			switch g.Select(in.Pointer) {
			case MenuPlayAgain:
				g.Restart()
			case MenuQuit:
				return core.StepResult{State: g.State(), Quit: true}
			}
		}
	}

	g.Update()
	return core.StepResult{State: g.State()}
}

// Update advances physics, scrolls and recycles pipes, detects collisions and
// scores. It does nothing outside PhasePlaying.
func (g *Game) Update() {
	if g.phase != PhasePlaying {
		return
	}
	g.tickCount++

	g.bird.Advance()

	speed := g.cfg.Obstacles.Speed
	recycled := 0
	for i := range g.pipes {
		p := &g.pipes[i]
		p.Advance(speed)
		if p.Offscreen() {
			recycled++
			continue
		}
		if g.collides(*p) {
			g.kill()
		}
	}

	if g.cfg.Collision.BoundsLethal && g.outOfBounds() {
		g.kill()
	}

	if recycled > 0 {
		g.recycle()
		g.score += recycled
	}
}

// recycle drops offscreen pipes, preserving order, and appends one fresh pipe
// at the right edge for each.
func (g *Game) recycle() {
	kept := g.pipes[:0]
	for _, p := range g.pipes {
		if !p.Offscreen() {
			kept = append(kept, p)
		}
	}
	for len(kept) < g.cfg.Obstacles.Count {
		kept = append(kept, NewPipe(float64(g.cfg.Playfield.Width), g.cfg, g.rng))
	}
	g.pipes = kept
}

func (g *Game) collides(p Pipe) bool {
	if g.cfg.Collision.Mode == config.CollisionBox {
		return p.hitsBox(g.bird)
	}
	return p.hitsPoint(g.bird)
}

func (g *Game) outOfBounds() bool {
	groundY := float64(g.cfg.Playfield.Height - g.cfg.Playfield.GroundHeight)
	bottom := g.bird.Y + float64(g.bird.Height)
	return bottom > groundY || bottom < 0
}

func (g *Game) kill() {
	g.bird.Dead = true
	g.phase = PhaseGameOver
}

// Bird returns a copy of the avatar.
func (g *Game) Bird() Bird {
	return *g.bird
}

// Pipes returns the live pipes, oldest first. The slice must not be modified.
func (g *Game) Pipes() []Pipe {
	return g.pipes
}

// Score returns the number of pipes that have scrolled off screen.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of simulated ticks since the last restart.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		GameOver:     g.phase == PhaseGameOver,
		Instructions: g.phase == PhaseInstructions,
	}
}
