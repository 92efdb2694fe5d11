package core

import (
	"slices"
	"testing"
)

type nopSim struct{}

func (nopSim) Name() string   { return "nop" }
func (nopSim) Size() Size     { return Size{W: 2, H: 3} }
func (nopSim) Reset(int64)    {}
func (nopSim) Step()          {}
func (nopSim) Cells() []uint8 { return make([]uint8, 6) }

func TestRegister(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return nopSim{}, nil })
	Register("nil-factory", nil)
	Register("nop", func(map[string]string) (Sim, error) { return nopSim{}, nil })

	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name registered")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory registered")
	}
	if !slices.Contains(Names(), "nop") {
		t.Fatalf("names %v missing nop", Names())
	}
	if !slices.IsSorted(Names()) {
		t.Fatalf("names %v not sorted", Names())
	}
	if got := (Size{W: 2, H: 3}).Len(); got != 6 {
		t.Fatalf("Len=%d, expected 6", got)
	}
}
