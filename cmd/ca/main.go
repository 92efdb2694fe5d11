//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"cellmap/internal/app"
	"cellmap/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	board, err := life.NewBoard(cfg.LifeConfig())
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.ResolveSeed(time.Now)
	log.Printf("initializing %dx%d board, fill %.2f, seed %d", cfg.Width, cfg.Height, cfg.Fill, seed)

	game, err := app.New(board, cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("cellmap — Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ScreenSize())

	err = ebiten.RunGame(game)
	log.Printf("total generations: %d seed: %d", game.Generations(), game.Seed())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
