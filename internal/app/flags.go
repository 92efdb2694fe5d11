package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"cellmap/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Fill   float64
	Seed   int64

	Scale    int
	TPS      int
	Limit    bool
	Tick     time.Duration
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	board := life.DefaultConfig()
	return &Config{
		Width:    board.Width,
		Height:   board.Height,
		Fill:     board.Fill,
		Seed:     board.Seed,
		Scale:    2,
		TPS:      60,
		Tick:     50 * time.Millisecond,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "fraction of cells alive after a reset")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board initialisation (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Limit, "limit", c.Limit, "advance at most one generation per -tick")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "generation interval when -limit is set")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d: %w", c.Width, c.Height, life.ErrInvalidSize))
	}
	if math.IsNaN(c.Fill) || c.Fill < 0 || c.Fill > 1 {
		errs = append(errs, fmt.Errorf("fill %v: %w", c.Fill, life.ErrInvalidFraction))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Limit && c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.Tick))
	}
	if c.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud width %d must not be negative", c.HUDWidth))
	}
	return errors.Join(errs...)
}

// ResolveSeed returns the configured seed, or one derived from now when the
// seed is 0.
func (c *Config) ResolveSeed(now func() time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now().UnixNano()
}

// LifeConfig extracts the board configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Fill: c.Fill, Seed: c.Seed}
}

// ScreenSize returns the window size for the board plus HUD.
func (c *Config) ScreenSize() (int, int) {
	return c.Width*c.Scale + c.HUDWidth, c.Height * c.Scale
}
