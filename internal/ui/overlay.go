//go:build ebiten

package ui

import (
	"cellmap/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints every cell by its stored live neighbour count when enabled.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool
	heatImg  *ebiten.Image
	heatBuf  []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the heatmap on key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	size := o.sim.Size()
	total := size.Len()
	if total == 0 {
		return
	}
	if o.heatImg == nil {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}
	fillHeatRGBA(o.heatBuf, o.sim.Cells())
	o.heatImg.WritePixels(o.heatBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.heatImg, op)
}
