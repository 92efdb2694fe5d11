//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter uploads a Surface into an ebiten image and draws it.
type Presenter struct {
	surface *Surface
	img     *ebiten.Image
}

// NewPresenter allocates an image matching the surface's pixel size.
func NewPresenter(s *Surface) *Presenter {
	w, h := s.PixelSize()
	return &Presenter{surface: s, img: ebiten.NewImage(w, h)}
}

// Blit uploads the current surface pixels and draws them at the origin.
func (p *Presenter) Blit(dst *ebiten.Image) {
	p.img.WritePixels(p.surface.Pix())
	dst.DrawImage(p.img, nil)
}

// Size returns the dimensions of the underlying image.
func (p *Presenter) Size() (int, int) { return p.surface.PixelSize() }
