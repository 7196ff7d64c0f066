//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"pong/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := app.NewLogger(os.Stderr, cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, logger)

	ebiten.SetWindowTitle("pong")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	logger.Info("window opened", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
