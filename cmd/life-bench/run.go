package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"cellmap/pkg/core"
	"cellmap/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type options struct {
	sim     string
	width   int
	height  int
	fill    float64
	steps   int
	boards  int
	seed    int64
	workers int
}

func (o options) validate() error {
	var errs []error
	if o.width <= 0 || o.height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d: %w", o.width, o.height, life.ErrInvalidSize))
	}
	if math.IsNaN(o.fill) || o.fill < 0 || o.fill > 1 {
		errs = append(errs, fmt.Errorf("fill %v: %w", o.fill, life.ErrInvalidFraction))
	}
	if o.steps < 0 {
		errs = append(errs, fmt.Errorf("steps %d must not be negative", o.steps))
	}
	if o.boards <= 0 {
		errs = append(errs, fmt.Errorf("boards %d must be positive", o.boards))
	}
	return errors.Join(errs...)
}

type result struct {
	board       int
	seed        int64
	generations int
	population  int
	elapsed     time.Duration
}

func (r result) rate() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.generations) / r.elapsed.Seconds()
}

// runBoards steps opts.boards independent boards, each owned by a single
// goroutine, and returns one result per board in board order.
func runBoards(ctx context.Context, opts options) ([]result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[opts.sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", opts.sim, strings.Join(core.Names(), ", "))
	}

	results := make([]result, opts.boards)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.workers, 1))
	for i := 0; i < opts.boards; i++ {
		g.Go(func() error {
			cfg := life.Config{Width: opts.width, Height: opts.height, Fill: opts.fill, Seed: opts.seed + int64(i)}
			sim, err := factory(cfg.Map())
			if err != nil {
				return fmt.Errorf("board %d: %w", i, err)
			}
			if err := seedSim(sim, cfg); err != nil {
				return fmt.Errorf("board %d: %w", i, err)
			}

			start := time.Now()
			for step := 0; step < opts.steps; step++ {
				if step%64 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				sim.Step()
			}
			results[i] = result{
				board:       i,
				seed:        cfg.Seed,
				generations: opts.steps,
				population:  population(sim.Cells()),
				elapsed:     time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// seedSim starts every engine from the same exact-count random board so
// different engines are comparable for a given seed.
func seedSim(sim core.Sim, cfg life.Config) error {
	classic, ok := sim.(*life.Classic)
	if !ok {
		sim.Reset(cfg.Seed)
		return nil
	}
	m, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if err := m.InitRandom(cfg.Fill, cfg.Seed); err != nil {
		return err
	}
	classic.Load(m.Cells())
	return nil
}

func population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c & 0x01)
	}
	return n
}
