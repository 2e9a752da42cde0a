package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// MenuChoice is an option on the game-over screen.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlayAgain
	MenuQuit
)

// Hit-zone geometry relative to the playfield centre, in world units.
const (
	menuHalfWidth   = 100
	menuZoneHeight  = 50
	playAgainOffset = 70
	quitOffset      = 140
)

// PlayAgainZone returns the clickable "Play Again" region.
func PlayAgainZone(cfg config.FlappyConfig) core.Box {
	return menuZone(cfg, playAgainOffset)
}

// QuitZone returns the clickable "Quit" region.
func QuitZone(cfg config.FlappyConfig) core.Box {
	return menuZone(cfg, quitOffset)
}

func menuZone(cfg config.FlappyConfig, offset int) core.Box {
	cx := cfg.Playfield.Width / 2
	cy := cfg.Playfield.Height / 2
	return core.NewBox(float64(cx-menuHalfWidth), float64(cy+offset), 2*menuHalfWidth, menuZoneHeight)
}

// Select resolves a click on the game-over screen. Borders are outside the
// zones. Outside PhaseGameOver every click resolves to MenuNone.
func (g *Game) Select(p core.Point) MenuChoice {
	if g.phase != PhaseGameOver {
		return MenuNone
	}
	switch {
	case PlayAgainZone(g.cfg).ContainsOpen(p.X, p.Y):
		return MenuPlayAgain
	case QuitZone(g.cfg).ContainsOpen(p.X, p.Y):
		return MenuQuit
	default:
		return MenuNone
	}
}
