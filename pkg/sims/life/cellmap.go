package life

import (
	"errors"
	"fmt"
	"math"

	"cellmap/pkg/core"
)

// Each cell packs its state into one byte: bit 0 is the alive flag and the
// remaining bits hold the live neighbour count shifted left by one.
const (
	aliveBit     uint8 = 0x01
	neighborUnit uint8 = 0x02
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")
	// ErrInvalidFraction is returned when an activation fraction is outside [0, 1].
	ErrInvalidFraction = errors.New("life: activation fraction must be within [0, 1]")
)

// State reports whether a CellMap has been populated yet.
type State int

const (
	// Uninitialized is the all-dead state right after construction or Clear.
	Uninitialized State = iota
	// Running is entered by InitRandom or the first SetCell.
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Change records a cell that flipped during a generation.
type Change struct {
	X, Y  int
	Alive bool
}

// CellMap is a toroidal Game of Life board that keeps every cell's live
// neighbour count up to date as cells are set and cleared, so a generation
// only has to look at one byte per cell.
//
// A CellMap is not safe for concurrent use.
type CellMap struct {
	w, h    int
	cells   []uint8
	scratch []uint8
	changes []Change

	state      State
	seed       int64
	generation int64
	population int
}

// New allocates an all-dead w*h board.
func New(w, h int) (*CellMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new cell map %dx%d: %w", w, h, ErrInvalidSize)
	}
	n := w * h
	return &CellMap{
		w:       w,
		h:       h,
		cells:   make([]uint8, n),
		scratch: make([]uint8, n),
	}, nil
}

// Size returns the grid dimensions.
func (m *CellMap) Size() core.Size { return core.Size{W: m.w, H: m.h} }

// Cells exposes the packed cell buffer. Callers must treat it as read-only.
func (m *CellMap) Cells() []uint8 { return m.cells }

// State returns the lifecycle state of the board.
func (m *CellMap) State() State { return m.state }

// Seed returns the seed used by the last InitRandom.
func (m *CellMap) Seed() int64 { return m.seed }

// Generation returns the number of generations stepped since the last init.
func (m *CellMap) Generation() int64 { return m.generation }

// Population returns the number of live cells.
func (m *CellMap) Population() int { return m.population }

func (m *CellMap) index(x, y int) int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", x, y, m.w, m.h))
	}
	return y*m.w + x
}

// offsets returns the flat index deltas from (x, y) to its eight neighbours,
// wrapping at every edge.
func (m *CellMap) offsets(x, y int) [8]int {
	w, length := m.w, len(m.cells)

	xleft := -1
	if x == 0 {
		xleft = w - 1
	}
	xright := 1
	if x == w-1 {
		xright = -(w - 1)
	}
	ytop := -w
	if y == 0 {
		ytop = length - w
	}
	ybottom := w
	if y == m.h-1 {
		ybottom = -(length - w)
	}

	return [8]int{
		ytop + xleft, ytop, ytop + xright,
		xleft, xright,
		ybottom + xleft, ybottom, ybottom + xright,
	}
}

// CellAlive reports whether the cell at (x, y) is alive.
func (m *CellMap) CellAlive(x, y int) bool {
	return m.cells[m.index(x, y)]&aliveBit != 0
}

// Neighbors returns the stored live neighbour count of (x, y).
func (m *CellMap) Neighbors(x, y int) int {
	return int(m.cells[m.index(x, y)] >> 1)
}

// SetCell marks (x, y) alive and bumps the count of its eight neighbours.
// Setting a live cell does nothing.
func (m *CellMap) SetCell(x, y int) {
	m.set(m.index(x, y), x, y)
}

// ClearCell marks (x, y) dead and decrements the count of its eight
// neighbours. Clearing a dead cell does nothing.
func (m *CellMap) ClearCell(x, y int) {
	m.clear(m.index(x, y), x, y)
}

func (m *CellMap) set(i, x, y int) {
	if m.cells[i]&aliveBit != 0 {
		return
	}
	m.cells[i] |= aliveBit
	for _, off := range m.offsets(x, y) {
		m.cells[i+off] += neighborUnit
	}
	m.population++
	m.state = Running
}

func (m *CellMap) clear(i, x, y int) {
	if m.cells[i]&aliveBit == 0 {
		return
	}
	m.cells[i] &^= aliveBit
	for _, off := range m.offsets(x, y) {
		m.cells[i+off] -= neighborUnit
	}
	m.population--
}

// Clear kills every cell and returns the board to Uninitialized.
func (m *CellMap) Clear() {
	clear(m.cells)
	clear(m.scratch)
	m.population = 0
	m.generation = 0
	m.state = Uninitialized
}

// InitRandom clears the board and activates exactly round(w*h*fraction)
// distinct cells picked uniformly at random from seed.
func (m *CellMap) InitRandom(fraction float64, seed int64) error {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return fmt.Errorf("init random with fraction %v: %w", fraction, ErrInvalidFraction)
	}
	m.Clear()

	length := len(m.cells)
	target := int(math.Round(float64(length) * fraction))
	rng := core.NewRNG(seed)

	if target <= length/2 {
		for m.population < target {
			x, y := rng.Point(m.w, m.h)
			i := y*m.w + x
			if m.cells[i]&aliveBit == 0 {
				m.set(i, x, y)
			}
		}
	} else {
		// Past half occupancy, sample the cells left dead so the rejection
		// loop never runs on a board more than half full.
		for holes := 0; holes < length-target; {
			x, y := rng.Point(m.w, m.h)
			i := y*m.w + x
			if m.scratch[i] == 0 {
				m.scratch[i] = 1
				holes++
			}
		}
		for i := range m.cells {
			if m.scratch[i] == 0 {
				m.set(i, i%m.w, i/m.w)
			}
		}
		clear(m.scratch)
	}

	m.seed = seed
	m.state = Running
	return nil
}

// StepFunc advances the board one generation under B3/S23 and calls fn for
// every cell that flipped, in row-major order. It returns the number of
// changes. An Uninitialized board does not advance.
func (m *CellMap) StepFunc(fn func(Change)) int {
	if m.state != Running {
		return 0
	}
	// Rules read the pre-step counts from scratch while set/clear rewrite
	// the live grid.
	copy(m.scratch, m.cells)

	changed := 0
	i := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x, i = x+1, i+1 {
			c := m.scratch[i]
			if c == 0 {
				continue
			}
			n := c >> 1
			if c&aliveBit != 0 {
				if n == 2 || n == 3 {
					continue
				}
				m.clear(i, x, y)
				changed++
				if fn != nil {
					fn(Change{X: x, Y: y, Alive: false})
				}
			} else if n == 3 {
				m.set(i, x, y)
				changed++
				if fn != nil {
					fn(Change{X: x, Y: y, Alive: true})
				}
			}
		}
	}
	m.generation++
	return changed
}

// Step advances the board one generation and returns the cells that flipped.
// The returned slice is reused by the next call to Step.
func (m *CellMap) Step() []Change {
	m.changes = m.changes[:0]
	m.StepFunc(func(c Change) {
		m.changes = append(m.changes, c)
	})
	return m.changes
}
