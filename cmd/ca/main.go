//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gridgames/internal/app"
	"gridgames/internal/config"
	"gridgames/pkg/game"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gameCfg, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	g, err := game.New(cfg.Sim, gameCfg, game.WithLogger(logger))
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	defer g.Close()

	gui := app.New(g, cfg.Scale)
	size := gameCfg.BoardSize

	ebiten.SetWindowTitle("gridgames - " + g.Variant())
	ebiten.SetWindowSize(size*cfg.Scale+app.HUDWidth, size*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gui); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
