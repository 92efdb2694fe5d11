package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.sim, "sim", "life", "engine to run (life or classic)")
	flag.IntVar(&opts.width, "w", 500, "board width in cells")
	flag.IntVar(&opts.height, "h", 500, "board height in cells")
	flag.Float64Var(&opts.fill, "fill", 0.5, "fraction of cells alive at start")
	flag.IntVar(&opts.steps, "steps", 1000, "generations per board")
	flag.IntVar(&opts.boards, "boards", runtime.NumCPU(), "independent boards to run")
	flag.Int64Var(&opts.seed, "seed", 0, "seed of the first board; board i uses seed+i (0 picks one from the clock)")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "boards stepped concurrently")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runBoards(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	wall := time.Since(start)

	fmt.Printf("%s %dx%d fill=%.2f steps=%d boards=%d workers=%d\n",
		opts.sim, opts.width, opts.height, opts.fill, opts.steps, opts.boards, opts.workers)
	total := 0
	for _, r := range results {
		total += r.generations
		fmt.Printf("board=%d seed=%d generations=%d population=%d elapsed=%s gen/s=%.1f\n",
			r.board, r.seed, r.generations, r.population, r.elapsed.Round(time.Millisecond), r.rate())
	}
	fmt.Printf("total generations: %d wall=%s aggregate gen/s=%.1f\n",
		total, wall.Round(time.Millisecond), float64(total)/wall.Seconds())
}
