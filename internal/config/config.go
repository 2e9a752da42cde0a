// Package config provides YAML-based tuning for the game. Every value has a
// compiled-in default embedded from defaults/flappy.yaml; a file only changes
// behaviour when the player supplies one.
package config

import (
	"errors"
	"fmt"
)

// Collision test modes.
const (
	// CollisionPoint tests the avatar's leading x-coordinate against the pipe
	// span, the way the classic game does.
	CollisionPoint = "point"
	// CollisionBox tests the full avatar rectangle against both pipe pieces.
	CollisionBox = "box"
)

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Collision FlappyCollision `yaml:"collision"`
}

// FlappyPlayfield defines the world dimensions in world units.
type FlappyPlayfield struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundHeight int `yaml:"ground_height"`
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	JumpVelocity      float64 `yaml:"jump_velocity"`       // magnitude, applied upward
	SuperJumpVelocity float64 `yaml:"super_jump_velocity"` // magnitude, applied upward
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	PipeWidth int     `yaml:"pipe_width"`
	GapSize   int     `yaml:"gap_size"`
	Speed     float64 `yaml:"speed"`
	Margin    int     `yaml:"margin"`  // minimum distance from gap to ceiling and ground
	Count     int     `yaml:"count"`   // live pipes, constant for a session
	Spacing   int     `yaml:"spacing"` // horizontal distance between initial pipes
}

// FlappyPlayer defines avatar parameters.
type FlappyPlayer struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	JumpAnimationTick int `yaml:"jump_animation_ticks"`
}

// FlappyCollision selects how collisions are detected.
type FlappyCollision struct {
	Mode string `yaml:"mode"` // "point" or "box"

	// BoundsLethal kills the avatar when it falls into the ground or leaves
	// the top of the playfield. Off by default: the classic game never checks.
	BoundsLethal bool `yaml:"bounds_lethal"`
}

// MinGapTop returns the smallest valid gap-top height.
func (c FlappyConfig) MinGapTop() int {
	return c.Obstacles.Margin
}

// MaxGapTop returns the largest valid gap-top height.
func (c FlappyConfig) MaxGapTop() int {
	return c.Playfield.Height - c.Playfield.GroundHeight - c.Obstacles.GapSize - c.Obstacles.Margin
}

// Validate reports the first setting that would make the game unplayable.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	case c.Playfield.GroundHeight < 0 || c.Playfield.GroundHeight >= c.Playfield.Height:
		return fmt.Errorf("ground_height %d out of range", c.Playfield.GroundHeight)
	case c.Obstacles.PipeWidth <= 0:
		return errors.New("pipe_width must be positive")
	case c.Obstacles.GapSize <= 0:
		return errors.New("gap_size must be positive")
	case c.Obstacles.Speed <= 0:
		return errors.New("speed must be positive")
	case c.Obstacles.Count <= 0:
		return errors.New("count must be positive")
	case c.Obstacles.Margin < 0:
		return errors.New("margin must not be negative")
	case c.MaxGapTop() < c.MinGapTop():
		return fmt.Errorf("gap_size %d with margin %d does not fit above the ground", c.Obstacles.GapSize, c.Obstacles.Margin)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("player size must be positive")
	case c.Player.JumpAnimationTick < 0:
		return errors.New("jump_animation_ticks must not be negative")
	case c.Collision.Mode != CollisionPoint && c.Collision.Mode != CollisionBox:
		return fmt.Errorf("unknown collision mode %q", c.Collision.Mode)
	}
	return nil
}
