package app

import (
	"slices"
	"testing"
	"time"

	"cellmap/internal/render"
	"cellmap/pkg/core"
	"cellmap/pkg/sims/life"
)

func newTestBoard(t *testing.T) (*life.Board, *render.Surface) {
	t.Helper()
	board, err := life.NewBoard(life.Config{Width: 16, Height: 12, Fill: 0.5})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	surface, err := render.NewSurface(16, 12, 2)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	board.SetRenderer(surface)
	return board, surface
}

func TestLoopCountsGenerationsAcrossResets(t *testing.T) {
	board, _ := newTestBoard(t)
	loop := NewLoop(board, nil)
	loop.Start(21)
	for i := 0; i < 5; i++ {
		if !loop.Tick() {
			t.Fatalf("tick %d did not step", i)
		}
	}
	loop.Start(22)
	loop.Tick()
	if loop.Generations() != 6 {
		t.Fatalf("generations=%d, expected 6", loop.Generations())
	}
	if loop.Seed() != 22 {
		t.Fatalf("seed=%d, expected 22", loop.Seed())
	}
	if board.Engine().Generation() != 1 {
		t.Fatalf("board generation=%d, expected 1 since the last reset", board.Engine().Generation())
	}
}

func TestLoopPauseAndSingleStep(t *testing.T) {
	board, _ := newTestBoard(t)
	loop := NewLoop(board, nil)
	loop.Start(3)
	loop.TogglePause()
	if loop.Tick() {
		t.Fatal("paused loop stepped")
	}
	loop.RequestStep()
	if !loop.Tick() {
		t.Fatal("single step request ignored while paused")
	}
	if loop.Tick() {
		t.Fatal("single step request applied twice")
	}
	loop.Resume()
	if loop.Paused() || !loop.Tick() {
		t.Fatal("resumed loop did not step")
	}
}

func TestLoopRespectsLimiter(t *testing.T) {
	board, _ := newTestBoard(t)
	loop := NewLoop(board, core.NewFixedStep(time.Hour))
	loop.Start(3)
	if !loop.Tick() {
		t.Fatal("first tick should step")
	}
	if loop.Tick() {
		t.Fatal("limiter allowed a second step within the tick")
	}
	loop.RequestStep()
	if !loop.Tick() {
		t.Fatal("single step should bypass the limiter")
	}
}

func TestLoopKeepsSurfaceInSync(t *testing.T) {
	board, surface := newTestBoard(t)
	loop := NewLoop(board, nil)
	loop.Start(17)
	for i := 0; i < 12; i++ {
		loop.Tick()
	}

	// A freshly painted surface must equal the incrementally drawn one.
	fresh, err := render.NewSurface(16, 12, 2)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	fresh.Paint(board.Cells())
	if !slices.Equal(fresh.Pix(), surface.Pix()) {
		t.Fatal("incremental drawing diverged from a full repaint")
	}
}
