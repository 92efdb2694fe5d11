//go:build ebiten

package app

import (
	"time"

	"cellmap/internal/render"
	"cellmap/internal/ui"
	"cellmap/pkg/core"
	"cellmap/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life board to the ebiten.Game interface.
type Game struct {
	board     *life.Board
	loop      *Loop
	surface   *render.Surface
	presenter *render.Presenter
	overlay   *ui.Overlay
	hud       *ui.HUD

	scale    int
	hudWidth int
}

// New builds a Game for board, attaches its surface and seeds the board.
func New(board *life.Board, cfg *Config, seed int64) (*Game, error) {
	size := board.Size()
	surface, err := render.NewSurface(size.W, size.H, cfg.Scale)
	if err != nil {
		return nil, err
	}
	board.SetRenderer(surface)

	var limiter *core.FixedStep
	if cfg.Limit {
		limiter = core.NewFixedStep(cfg.Tick)
	}
	g := &Game{
		board:     board,
		loop:      NewLoop(board, limiter),
		surface:   surface,
		presenter: render.NewPresenter(surface),
		overlay:   ui.NewOverlay(board, cfg.Scale),
		hud:       ui.NewHUD(board, cfg.HUDWidth),
		scale:     cfg.Scale,
		hudWidth:  cfg.HUDWidth,
	}
	g.loop.Start(seed)
	return g, nil
}

// Generations returns the total generations executed.
func (g *Game) Generations() int64 { return g.loop.Generations() }

// Seed returns the seed used for the current board.
func (g *Game) Seed() int64 { return g.loop.Seed() }

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.loop.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Start(g.loop.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Start(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	g.loop.Tick()
	return nil
}

// Draw presents the surface, then the overlay and HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.board.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.hudWidth, g.board.Size().H * g.scale
}

func (g *Game) boardWidth() int { return g.board.Size().W * g.scale }
