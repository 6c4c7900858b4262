package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/spacedrift/internal/config"
	"github.com/zeusync/spacedrift/internal/core/clock"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/injector"
)

const maxFrameDelta = 250 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	noServer := flag.Bool("no-server", false, "run the simulation without the websocket stream")
	flag.Parse()

	if err := run(*configPath, !*noServer); err != nil {
		fmt.Fprintln(os.Stderr, "spacedrift:", err)
		os.Exit(1)
	}
}

func run(configPath string, serve bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	defer app.Loop.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	toggles := make(chan os.Signal, 1)
	if sigs := pauseSignals(); len(sigs) > 0 {
		signal.Notify(toggles, sigs...)
		defer signal.Stop(toggles)
	}

	if serve {
		if err = app.Server.Start(ctx); err != nil {
			return err
		}
	}
	defer func() { _ = app.Server.Close() }()

	app.Logger.Info("Simulation started",
		log.Float64("fov", cfg.FOV),
		log.Float64("tick_rate", cfg.TickRate),
		log.Int("workers", cfg.Workers),
		log.Bool("serving", serve))

	frames := clock.NewFrame(maxFrameDelta)
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			app.Logger.Info("Shutting down", log.Uint64("frame", app.Loop.Frame().Number))
			return nil
		case <-toggles:
			togglePause(frames, app.Logger)
		case <-ticker.C:
			// a paused clock holds elapsed still, which would keep the spawn window open
			if frames.IsPaused() {
				continue
			}
			frames.Tick()
			if _, err = app.Loop.Tick(ctx, frames); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		}
	}
}
