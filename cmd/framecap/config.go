package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/go-glx/framecap/clock"
	"github.com/go-glx/framecap/frame"
	"github.com/go-glx/framecap/platform/sdl2"
)

const (
	clockMonotonic = "monotonic"
	clockSDL       = "sdl"
)

type config struct {
	fps         float64
	vsync       bool
	systemCap   bool
	minDelay    float64
	average     int
	frames      uint64
	workload    time.Duration
	reportEvery uint64
	clockName   string
	hud         bool
	logFile     string
	debug       bool
}

func configFromContext(c *cli.Context) config {
	return config{
		fps:         c.Float64("fps"),
		vsync:       c.Bool("vsync"),
		systemCap:   c.BoolT("system-cap"),
		minDelay:    c.Float64("min-delay"),
		average:     c.Int("average"),
		frames:      c.Uint64("frames"),
		workload:    c.Duration("workload"),
		reportEvery: c.Uint64("report-every"),
		clockName:   c.String("clock"),
		hud:         c.Bool("hud"),
		logFile:     c.String("log-file"),
		debug:       c.Bool("debug"),
	}
}

func (cfg config) timerOptions() []frame.TimerInitializer {
	return []frame.TimerInitializer{
		frame.WithName(cfg.clockName),
		frame.WithFPSCap(cfg.fps),
		frame.WithVSync(cfg.vsync),
		frame.WithSystemCap(cfg.systemCap),
		frame.WithMinDelay(cfg.minDelay),
		frame.WithAverageFPSCount(cfg.average),
	}
}

// setupLogger installs default slog logger, HUD owns the terminal
// so logs go to file or nowhere
func setupLogger(cfg config) (func(), error) {
	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.logFile != "":
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		out = f
		closeFn = func() { _ = f.Close() }
	case cfg.hud:
		out = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// buildClock returns time source with optional vsync presenter and cleanup
func buildClock(name string) (clock.Clock, frame.Presenter, func(), error) {
	switch name {
	case clockMonotonic, "":
		return clock.NewMonotonic(), nil, func() {}, nil
	case clockSDL:
		sdlClock, err := sdl2.NewClock()
		if err != nil {
			return nil, nil, nil, err
		}

		presenter, err := sdl2.NewPresenter()
		if err != nil {
			_ = sdlClock.Close()
			return nil, nil, nil, err
		}

		presenter.OnRejected(func(on bool) {
			slog.Warn("SDL refused vsync hint", "vsync", on)
		})

		return sdlClock, presenter, func() { _ = sdlClock.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown clock %q, expected %s or %s", name, clockMonotonic, clockSDL)
	}
}
