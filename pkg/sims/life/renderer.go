package life

// Grey levels written for dead and live cells.
const (
	Off uint8 = 0x00
	On  uint8 = 0xFF
)

// Renderer receives a colour level for each cell that changed.
type Renderer interface {
	DrawCell(x, y int, level uint8)
}

// Painter is implemented by renderers that can repaint a whole board from the
// packed cell buffer. It is used after a reset, never per generation.
type Painter interface {
	Paint(cells []uint8)
}

// Level maps a liveness flag to its grey level.
func Level(alive bool) uint8 {
	if alive {
		return On
	}
	return Off
}

// Draw forwards every change to r.
func Draw(r Renderer, changes []Change) {
	for _, c := range changes {
		r.DrawCell(c.X, c.Y, Level(c.Alive))
	}
}
