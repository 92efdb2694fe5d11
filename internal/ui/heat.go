package ui

// heatPalette maps a live neighbour count (0..8) to premultiplied RGBA.
var heatPalette = [9][4]uint8{
	{0, 0, 0, 0},
	{0, 24, 48, 48},
	{0, 48, 96, 96},
	{0, 96, 64, 128},
	{96, 96, 0, 144},
	{128, 64, 0, 160},
	{160, 32, 0, 176},
	{192, 16, 16, 192},
	{208, 0, 32, 208},
}

// fillHeatRGBA converts packed cells (count in bits 1..4) into translucent
// RGBA pixels in buf.
func fillHeatRGBA(buf []byte, cells []uint8) {
	last := len(heatPalette) - 1
	for i, c := range cells {
		n := int(c >> 1)
		if n > last {
			n = last
		}
		base := i * 4
		col := heatPalette[n]
		buf[base+0] = col[0]
		buf[base+1] = col[1]
		buf[base+2] = col[2]
		buf[base+3] = col[3]
	}
}
