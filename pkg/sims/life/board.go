package life

import (
	"math"

	"cellmap/pkg/core"
)

// Board adapts a CellMap to core.Sim and forwards generation changes to an
// optional Renderer.
type Board struct {
	engine   *CellMap
	fill     float64
	renderer Renderer
}

// NewBoard builds a Board from cfg.
func NewBoard(cfg Config) (*Board, error) {
	m, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	b := &Board{engine: m}
	b.SetFloatParameter("fill", cfg.Fill)
	return b, nil
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.engine.Size() }

// Cells exposes the packed cell buffer.
func (b *Board) Cells() []uint8 { return b.engine.Cells() }

// Engine returns the underlying CellMap.
func (b *Board) Engine() *CellMap { return b.engine }

// Fill returns the activation fraction used by Reset.
func (b *Board) Fill() float64 { return b.fill }

// SetRenderer attaches r; nil detaches. If r is also a Painter the current
// board is painted immediately.
func (b *Board) SetRenderer(r Renderer) {
	b.renderer = r
	b.paint()
}

// Reset reseeds the board with the configured fill fraction.
func (b *Board) Reset(seed int64) {
	// fill is clamped by SetFloatParameter, so InitRandom cannot fail here.
	_ = b.engine.InitRandom(b.fill, seed)
	b.paint()
}

// Step advances one generation, drawing each changed cell.
func (b *Board) Step() {
	if b.renderer == nil {
		b.engine.StepFunc(nil)
		return
	}
	b.engine.StepFunc(func(c Change) {
		b.renderer.DrawCell(c.X, c.Y, Level(c.Alive))
	})
}

func (b *Board) paint() {
	if p, ok := b.renderer.(Painter); ok {
		p.Paint(b.engine.Cells())
	}
}

// Parameters reports the board state for the HUD.
func (b *Board) Parameters() core.ParameterSnapshot {
	m := b.engine
	size := m.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(size.W)),
				core.IntParam("h", "Height", int64(size.H)),
				core.IntParam("seed", "Seed", m.Seed()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", m.Generation()),
				core.IntParam("population", "Population", int64(m.Population())),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.FloatParam("fill", "Fill", b.fill),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fill", Label: "Fill (next reset)", Step: 0.05, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a tunable. The new fill applies on the next Reset.
func (b *Board) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fill":
		if math.IsNaN(value) {
			return false
		}
		b.fill = b.ParameterControls()[0].Clamp(value)
		return true
	}
	return false
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		b, err := NewBoard(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return b, nil
	})
	core.Register("classic", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		return NewClassic(c.Width, c.Height), nil
	})
}
