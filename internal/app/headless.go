package app

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/render"
)

// Headless runs a match without a window, rendering into a Recorder. Frames
// are paced at cfg.TPS on clock unless cfg.Fast is set.
func Headless(ctx context.Context, cfg *Config, clock core.Clock, logger *slog.Logger) (game.Score, error) {
	rec := render.NewRecorder(cfg.Field())
	loop := game.NewLoop(rec, game.Options{
		Source:   core.NewRNG(cfg.SeedValue()),
		Logger:   logger,
		Autoplay: cfg.Autoplay,
	})

	var frames core.FrameSource = core.NewPacer(clock, cfg.TPS)
	if cfg.Fast {
		frames = core.Immediate{}
	}
	frames = core.Limit(frames, cfg.Frames)

	logger.Info("headless match started", "width", cfg.Width, "height", cfg.Height, "frames", cfg.Frames)
	runErr := loop.Run(ctx, frames)
	score := loop.State().Score
	logger.Info("headless match stopped", "human", score.Human, "ai", score.AI, "ticks", loop.Ticks())

	if cfg.Screenshot != "" {
		if err := writeScreenshot(cfg.Screenshot, rec); err != nil {
			return score, err
		}
		logger.Info("screenshot written", "path", cfg.Screenshot)
	}
	return score, runErr
}

func writeScreenshot(path string, rec *render.Recorder) error {
	img := render.Rasterize(rec.Ops(), rec.Size(), game.Background)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return f.Close()
}
