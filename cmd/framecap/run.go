package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-glx/framecap/frame"
)

func run(ctx context.Context, cfg config) error {
	clk, presenter, closeClock, err := buildClock(cfg.clockName)
	if err != nil {
		return err
	}
	defer closeClock()

	system := frame.NewSystem(frame.WithSystemLogger(slog.Default()))
	defer system.Shutdown()

	opts := cfg.timerOptions()
	if presenter != nil {
		opts = append(opts, frame.WithPresenter(presenter))
	}

	keeper := system.Init(clk, opts...)

	if cfg.hud {
		return runHUD(ctx, keeper, cfg)
	}

	return runHeadless(ctx, keeper, cfg)
}

func runHeadless(ctx context.Context, keeper frame.Keeper, cfg config) error {
	sum := &summary{minDelta: math.Inf(1)}

	var executor *frame.Executor
	executor = frame.NewExecutor(keeper,
		frame.WithLogger(slog.Default()),
		frame.WithTask(frame.NewDefaultTaskGarbageCollect()),
		frame.WithStatsListener(func(s frame.Stats) {
			sum.add(s)

			if cfg.reportEvery > 0 && s.CurrentFrame%cfg.reportEvery == 0 {
				slog.Info("frame",
					"frame", s.CurrentFrame,
					"fps", fmt.Sprintf("%.1f", s.CurrentFPS),
					"delta_ms", fmt.Sprintf("%.2f", s.DeltaPerformance),
					"process", s.Process.Duration,
					"tasks", s.Tasks.Duration,
					"throttle", s.ThrottleTime,
				)
			}
		}),
	)

	err := executor.Execute(ctx, func() error {
		if cfg.frames > 0 && executor.CurrentFrame() > cfg.frames {
			return frame.ErrStopExecution
		}

		simulateWork(cfg.workload)
		return nil
	})

	sum.log(keeper)
	return err
}

func simulateWork(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

type summary struct {
	frames   uint64
	total    float64 // ms
	minDelta float64
	maxDelta float64
	throttle time.Duration
}

func (s *summary) add(stats frame.Stats) {
	if stats.Minimized {
		return
	}

	s.frames++
	s.total += stats.DeltaPerformance
	s.minDelta = math.Min(s.minDelta, stats.DeltaPerformance)
	s.maxDelta = math.Max(s.maxDelta, stats.DeltaPerformance)
	s.throttle += stats.ThrottleTime
}

func (s *summary) meanFPS() float64 {
	if s.total <= 0 {
		return 0
	}

	return float64(s.frames) * 1000 / s.total
}

func (s *summary) log(keeper frame.Keeper) {
	if s.frames == 0 {
		slog.Info("no frames measured")
		return
	}

	slog.Info("summary",
		"frames", s.frames,
		"target_fps", keeper.FPSCap(),
		"mean_fps", fmt.Sprintf("%.2f", s.meanFPS()),
		"min_delta_ms", fmt.Sprintf("%.2f", s.minDelta),
		"max_delta_ms", fmt.Sprintf("%.2f", s.maxDelta),
		"throttle", s.throttle,
		"vsync", keeper.VSync(),
		"system_cap", keeper.SystemCap(),
	)
}
