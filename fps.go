package aml

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawStats prints frame rates and the binding count in the top-left
// corner.
func (g *Game) drawStats(screen *ebiten.Image) {
	bindings := 0
	if g.Engine != nil {
		bindings = g.Engine.Len()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBindings: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), bindings))
}
