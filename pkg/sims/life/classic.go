package life

import (
	"cellmap/pkg/core"
)

// Classic is the textbook double-buffered Game of Life: every generation sums
// the eight wrapped neighbours of every cell. It serves as a reference for
// CellMap and as a baseline for benchmarks.
type Classic struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewClassic returns an all-dead Classic board.
func NewClassic(w, h int) *Classic {
	cells := make([]uint8, w*h)
	return &Classic{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Name returns the simulation identifier.
func (l *Classic) Name() string { return "classic" }

// Size returns the grid dimensions.
func (l *Classic) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values (0 or 1).
func (l *Classic) Cells() []uint8 { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Classic) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur)
}

// Load copies liveness from bit 0 of a buffer of the same size.
func (l *Classic) Load(cells []uint8) {
	for i := range l.cur {
		l.cur[i] = 0
		if i < len(cells) {
			l.cur[i] = cells[i] & aliveBit
		}
	}
}

// Alive reports whether (x, y) is alive after wrapping the coordinates.
func (l *Classic) Alive(x, y int) bool {
	x = (x%l.w + l.w) % l.w
	y = (y%l.h + l.h) % l.h
	return l.cur[y*l.w+x] == 1
}

// CountNeighbors sums the live wrapped neighbours of (x, y).
func (l *Classic) CountNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Classic) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := l.CountNeighbors(x, y)
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}
