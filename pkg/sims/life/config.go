package life

import (
	"math"
	"strconv"
)

// Config holds the board dimensions and seeding policy.
type Config struct {
	Width  int
	Height int
	// Fill is the fraction of cells activated by a reset.
	Fill float64
	// Seed is used when the host does not pick one; 0 asks the host for a
	// time-derived seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 500, Height: 500, Fill: 0.5}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(parsed) && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Map renders the config back into FromMap form.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"fill": strconv.FormatFloat(c.Fill, 'g', -1, 64),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
