//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"pong/internal/app"

	"github.com/jonboulle/clockwork"
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

	fmt.Fprintln(os.Stderr, "Running headless; build with `-tags ebiten` for the windowed game.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	score, err := app.Headless(ctx, cfg, clockwork.NewRealClock(), logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Printf("%d - %d\n", score.Human, score.AI)
}
