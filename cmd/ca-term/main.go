package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gridgames/internal/config"
	"gridgames/internal/term"
	"gridgames/pkg/game"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	start := flag.Bool("start", false, "start ticking immediately")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	if *start {
		if err := g.Start(); err != nil {
			screen.Fini()
			log.Fatalf("start: %v", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := term.New(screen, g, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		log.Fatal(err)
	}
}
