package ui

import "testing"

func TestFillHeatRGBAUsesNeighbourBits(t *testing.T) {
	cells := []uint8{0x00, 0x01, 0x06, 0x07, 0x10, 0x11}
	buf := make([]byte, 4*len(cells))
	fillHeatRGBA(buf, cells)

	want := []int{0, 0, 3, 3, 8, 8}
	for i, n := range want {
		got := [4]uint8{buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3]}
		if got != heatPalette[n] {
			t.Fatalf("cell %d (%#x) colour=%v, expected palette[%d]=%v", i, cells[i], got, n, heatPalette[n])
		}
	}
}

func TestHeatPaletteIsPremultiplied(t *testing.T) {
	for n, c := range heatPalette {
		if c[0] > c[3] || c[1] > c[3] || c[2] > c[3] {
			t.Fatalf("palette[%d]=%v has a channel above alpha", n, c)
		}
	}
}
