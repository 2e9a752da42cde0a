package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player avatar. It never moves horizontally; the world scrolls
// past it.
type Bird struct {
	X      int     // Fixed horizontal position (left edge)
	Y      float64 // Vertical position (top edge), unbounded
	Vel    float64 // Vertical velocity, positive is down
	Width  int
	Height int
	Dead   bool

	// JumpTimer counts down the ticks left in the flap animation.
	JumpTimer int

	physics   config.FlappyPhysics
	animTicks int
}

// NewBird places a fresh avatar at a third of the width and half the height
// of the playfield.
func NewBird(cfg config.FlappyConfig) *Bird {
	return &Bird{
		X:         cfg.Playfield.Width / 3,
		Y:         float64(cfg.Playfield.Height / 2),
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		physics:   cfg.Physics,
		animTicks: cfg.Player.JumpAnimationTick,
	}
}

// Jump sets an upward velocity and restarts the flap animation.
// A dead bird ignores it.
func (b *Bird) Jump() {
	b.impulse(b.physics.JumpVelocity)
}

// SuperJump is a stronger Jump.
func (b *Bird) SuperJump() {
	b.impulse(b.physics.SuperJumpVelocity)
}

func (b *Bird) impulse(speed float64) {
	if b.Dead {
		return
	}
	b.Vel = -speed
	b.JumpTimer = b.animTicks
}

// Advance integrates one tick of gravity.
func (b *Bird) Advance() {
	b.Vel += b.physics.Gravity
	b.Y += b.Vel
	if b.JumpTimer > 0 {
		b.JumpTimer--
	}
}

// Frame returns the animation frame to draw: 1 while flapping, else 0.
func (b *Bird) Frame() int {
	if b.JumpTimer > 0 {
		return 1
	}
	return 0
}

// Rect returns the avatar's bounding box in world units.
func (b *Bird) Rect() core.Box {
	return core.NewBox(float64(b.X), b.Y, float64(b.Width), float64(b.Height))
}
