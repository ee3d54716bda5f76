package aml

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is an ebiten.Game that advances a FrameScheduler once per Update and
// draws a list of nodes in order.
type Game struct {
	Engine    *Engine
	Scheduler *FrameScheduler
	Nodes     []*Node

	Width, Height int
	ClearColor    color.Color
	// ShowFPS draws frame rates and the binding count over the nodes.
	ShowFPS bool

	// OnUpdate, when set, runs after the scheduler has advanced. Returning
	// an error stops the game.
	OnUpdate func() error
}

// NewGame returns a game drawing a w x h logical screen. sched must be the
// scheduler the engine was created with.
func NewGame(e *Engine, sched *FrameScheduler, w, h int) *Game {
	return &Game{Engine: e, Scheduler: sched, Width: w, Height: h}
}

// AddNode appends nodes to the draw list.
func (g *Game) AddNode(nodes ...*Node) {
	g.Nodes = append(g.Nodes, nodes...)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Scheduler != nil {
		g.Scheduler.Advance()
	}
	if g.OnUpdate != nil {
		return g.OnUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	for _, n := range g.Nodes {
		n.Draw(screen)
	}
	if g.ShowFPS {
		g.drawStats(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width <= 0 || g.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}

// Run opens a window and runs g until the window closes or Update returns
// an error. Zero fields in cfg keep Ebitengine's defaults, except the size,
// which falls back to the game's logical size.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = g.Width, g.Height
	}
	if w > 0 && h > 0 {
		ebiten.SetWindowSize(w, h)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		g.ShowFPS = true
	}
	return ebiten.RunGame(g)
}
