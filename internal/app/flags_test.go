package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"cellmap/pkg/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "80", "-h", "60", "-fill", "0.3", "-seed", "9", "-scale", "4", "-limit", "-tick", "20ms", "-hud", "0"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 60 || cfg.Fill != 0.3 || cfg.Seed != 9 || cfg.Scale != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.Limit || cfg.Tick != 20*time.Millisecond || cfg.HUDWidth != 0 {
		t.Fatalf("unexpected timing config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if w, h := cfg.ScreenSize(); w != 320 || h != 240 {
		t.Fatalf("screen %dx%d, expected 320x240", w, h)
	}
	if got := cfg.LifeConfig(); got != (life.Config{Width: 80, Height: 60, Fill: 0.3, Seed: 9}) {
		t.Fatalf("LifeConfig=%+v", got)
	}
}

func TestDefaultsMatchClassicWindow(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Width != 500 || cfg.Height != 500 || cfg.Scale != 2 || cfg.Fill != 0.5 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 0
	cfg.Fill = 2
	cfg.Scale = 0
	err := cfg.Validate()
	if !errors.Is(err, life.ErrInvalidSize) || !errors.Is(err, life.ErrInvalidFraction) {
		t.Fatalf("Validate err=%v, expected size and fraction errors", err)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := NewConfig()
	now := func() time.Time { return time.Unix(0, 12345) }
	if got := cfg.ResolveSeed(now); got != 12345 {
		t.Fatalf("seed=%d, expected clock-derived 12345", got)
	}
	cfg.Seed = 7
	if got := cfg.ResolveSeed(now); got != 7 {
		t.Fatalf("seed=%d, expected 7", got)
	}
}
