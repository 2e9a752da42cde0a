package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the compiled-in tuning. It matches
// defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        400,
			Height:       600,
			GroundHeight: 50,
		},
		Physics: FlappyPhysics{
			Gravity:           0.25,
			JumpVelocity:      3.5,
			SuperJumpVelocity: 6.5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth: 50,
			GapSize:   200,
			Speed:     2,
			Margin:    50,
			Count:     3,
			Spacing:   300,
		},
		Player: FlappyPlayer{
			Width:             34,
			Height:            24,
			JumpAnimationTick: 30, // half a second at 60 ticks per second
		},
		Collision: FlappyCollision{
			Mode:         CollisionPoint,
			BoundsLethal: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
