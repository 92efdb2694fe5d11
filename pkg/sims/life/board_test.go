package life

import (
	"math"
	"testing"

	"cellmap/pkg/core"
)

type recordingRenderer struct {
	draws  map[[2]int]uint8
	calls  int
	paints int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{draws: map[[2]int]uint8{}}
}

func (r *recordingRenderer) DrawCell(x, y int, level uint8) {
	r.calls++
	r.draws[[2]int{x, y}] = level
}

func (r *recordingRenderer) Paint(cells []uint8) {
	r.paints++
	r.draws = map[[2]int]uint8{}
}

func TestBoardForwardsChangesToRenderer(t *testing.T) {
	b, err := NewBoard(Config{Width: 24, Height: 16, Fill: 0.35})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	r := newRecordingRenderer()
	b.SetRenderer(r)
	if r.paints != 1 {
		t.Fatalf("SetRenderer painted %d times, expected 1", r.paints)
	}
	b.Reset(11)
	if r.paints != 2 {
		t.Fatalf("Reset painted %d times, expected 2", r.paints)
	}

	m := b.Engine()
	before := liveSet(m)
	b.Step()
	after := liveSet(m)

	flips := 0
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p := [2]int{x, y}
			level, drawn := r.draws[p]
			if before[p] == after[p] {
				if drawn {
					t.Fatalf("unchanged cell (%d,%d) was drawn", x, y)
				}
				continue
			}
			flips++
			if !drawn || level != Level(after[p]) {
				t.Fatalf("cell (%d,%d) drawn=%v level=%#x, expected %#x", x, y, drawn, level, Level(after[p]))
			}
		}
	}
	if r.calls != flips {
		t.Fatalf("renderer saw %d draws for %d flips", r.calls, flips)
	}
	if m.Generation() != 1 {
		t.Fatalf("generation=%d, expected 1", m.Generation())
	}
}

func TestBoardResetUsesFill(t *testing.T) {
	b, err := NewBoard(Config{Width: 10, Height: 10, Fill: 0.2})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Reset(3)
	if got := b.Engine().Population(); got != 20 {
		t.Fatalf("population=%d, expected 20", got)
	}
	if !b.SetFloatParameter("fill", 0.7) {
		t.Fatal("fill parameter rejected")
	}
	b.Reset(3)
	if got := b.Engine().Population(); got != 70 {
		t.Fatalf("population=%d, expected 70", got)
	}
}

func TestBoardFillIsClamped(t *testing.T) {
	b, err := NewBoard(Config{Width: 4, Height: 4, Fill: 3})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Fill() != 1 {
		t.Fatalf("fill=%v, expected clamp to 1", b.Fill())
	}
	b.SetFloatParameter("fill", -2)
	if b.Fill() != 0 {
		t.Fatalf("fill=%v, expected clamp to 0", b.Fill())
	}
	if b.SetFloatParameter("fill", math.NaN()) {
		t.Fatal("NaN fill accepted")
	}
	if b.SetFloatParameter("speed", 1) {
		t.Fatal("unknown key accepted")
	}
}

func TestBoardParameters(t *testing.T) {
	b, err := NewBoard(Config{Width: 8, Height: 6, Fill: 0.5})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	b.Reset(99)
	b.Step()
	snap := b.Parameters()
	want := map[string]string{
		"w":          "8",
		"h":          "6",
		"seed":       "99",
		"generation": "1",
		"fill":       "0.50",
	}
	for key, value := range want {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != value {
			t.Fatalf("parameter %q = %q, expected %q", key, p.Value, value)
		}
	}
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	if _, err := NewBoard(Config{Width: 0, Height: 4}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"life", "classic"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim, err := factory(map[string]string{"w": "12", "h": "7"})
		if err != nil {
			t.Fatalf("factory %q: %v", name, err)
		}
		if sim.Name() != name {
			t.Fatalf("factory %q built %q", name, sim.Name())
		}
		if got := sim.Size(); got != (core.Size{W: 12, H: 7}) {
			t.Fatalf("sim %q size=%v", name, got)
		}
		sim.Reset(5)
		sim.Step()
		if len(sim.Cells()) != 12*7 {
			t.Fatalf("sim %q has %d cells", name, len(sim.Cells()))
		}
	}
}

func TestDrawForwardsLevels(t *testing.T) {
	r := newRecordingRenderer()
	Draw(r, []Change{{X: 1, Y: 2, Alive: true}, {X: 3, Y: 0, Alive: false}})
	if r.draws[[2]int{1, 2}] != On || r.draws[[2]int{3, 0}] != Off || r.calls != 2 {
		t.Fatalf("unexpected draws %v", r.draws)
	}
}
