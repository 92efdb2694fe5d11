package render

const (
	levelOff uint8 = 0x00
	levelOn  uint8 = 0xFF
)

func levelOf(cell uint8) uint8 {
	if cell&0x01 != 0 {
		return levelOn
	}
	return levelOff
}

// fillBlock writes a size*size square of grey pixels with its top-left corner
// at pixel (px, py). Alpha is always opaque.
func fillBlock(buf []byte, stride, px, py, size int, level uint8) {
	row := py*stride + px*4
	for j := 0; j < size; j++ {
		base := row
		for i := 0; i < size; i++ {
			buf[base+0] = level
			buf[base+1] = level
			buf[base+2] = level
			buf[base+3] = 0xFF
			base += 4
		}
		row += stride
	}
}

// fillGrey sets every RGBA pixel in buf to an opaque grey level.
func fillGrey(buf []byte, level uint8) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = level
		buf[base+1] = level
		buf[base+2] = level
		buf[base+3] = 0xFF
	}
}
