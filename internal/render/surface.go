package render

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSurface is returned for non-positive surface dimensions or scale.
var ErrInvalidSurface = errors.New("render: surface dimensions and scale must be positive")

// Surface is a greyscale view over an RGBA buffer in which every grid cell
// occupies a scale*scale block of pixels.
type Surface struct {
	w, h  int
	scale int
	img   *image.RGBA
}

// NewSurface allocates a surface for a w*h grid drawn at scale pixels per cell.
func NewSurface(w, h, scale int) (*Surface, error) {
	if w <= 0 || h <= 0 || scale <= 0 {
		return nil, fmt.Errorf("new surface %dx%d scale %d: %w", w, h, scale, ErrInvalidSurface)
	}
	s := &Surface{
		w:     w,
		h:     h,
		scale: scale,
		img:   image.NewRGBA(image.Rect(0, 0, w*scale, h*scale)),
	}
	s.Fill(0x00)
	return s, nil
}

// Scale returns the pixel size of one cell.
func (s *Surface) Scale() int { return s.scale }

// PixelSize returns the surface dimensions in pixels.
func (s *Surface) PixelSize() (int, int) { return s.w * s.scale, s.h * s.scale }

// Pix exposes the RGBA bytes for upload.
func (s *Surface) Pix() []byte { return s.img.Pix }

// Image exposes the surface as an image, sharing its pixels.
func (s *Surface) Image() *image.RGBA { return s.img }

// DrawCell fills the block for cell (x, y) with grey level.
func (s *Surface) DrawCell(x, y int, level uint8) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		panic(fmt.Sprintf("render: cell (%d,%d) outside %dx%d surface", x, y, s.w, s.h))
	}
	fillBlock(s.img.Pix, s.img.Stride, x*s.scale, y*s.scale, s.scale, level)
}

// Paint redraws every cell from bit 0 of a packed cell buffer.
func (s *Surface) Paint(cells []uint8) {
	if len(cells) != s.w*s.h {
		return
	}
	for i, c := range cells {
		fillBlock(s.img.Pix, s.img.Stride, (i%s.w)*s.scale, (i/s.w)*s.scale, s.scale, levelOf(c))
	}
}

// Fill sets every pixel to grey level.
func (s *Surface) Fill(level uint8) {
	fillGrey(s.img.Pix, level)
}
