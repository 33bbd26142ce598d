package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/go-glx/framecap/frame"
)

const fpsStep = 5

type hud struct {
	screen    tcell.Screen
	keeper    frame.Keeper
	workload  func()
	minimized bool
	quit      bool
	last      frame.Stats
}

func runHUD(ctx context.Context, keeper frame.Keeper, cfg config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	h := newHUD(screen, keeper, func() { simulateWork(cfg.workload) })

	executor := frame.NewExecutor(keeper,
		frame.WithLogger(slog.Default()),
		frame.WithFrameErrorHandleBehavior(frame.ErrBehaviorLog),
		frame.WithMinimizedProbe(func() bool { return h.minimized }),
		frame.WithStatsListener(func(s frame.Stats) { h.last = s }),
	)

	return executor.Execute(ctx, h.frame)
}

func newHUD(screen tcell.Screen, keeper frame.Keeper, workload func()) *hud {
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	return &hud{
		screen:   screen,
		keeper:   keeper,
		workload: workload,
	}
}

func (h *hud) frame() error {
	for h.screen.HasPendingEvent() {
		switch ev := h.screen.PollEvent().(type) {
		case *tcell.EventKey:
			h.handleKey(ev)
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}

	if h.quit {
		return frame.ErrStopExecution
	}

	if !h.keeper.IsPaused() {
		h.workload()
	}

	h.draw()
	return nil
}

func (h *hud) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		h.quit = true
	case 'p':
		if h.keeper.IsPaused() {
			h.keeper.UnpauseTimer()
		} else {
			h.keeper.PauseTimer()
		}
	case 'v':
		h.keeper.SetVSync(!h.keeper.VSync())
	case 's':
		h.keeper.SetSystemCap(!h.keeper.SystemCap())
	case 'm':
		h.minimized = !h.minimized
	case '+', '=':
		h.keeper.SetFPS(h.keeper.FPSCap() + fpsStep)
	case '-':
		h.keeper.SetFPS(h.keeper.FPSCap() - fpsStep)
	case 'r':
		h.keeper.StopTimer()
		h.keeper.StartTimer()
	}
}

func (h *hud) lines() []string {
	s := h.last

	return []string{
		fmt.Sprintf("framecap  [%s/%s]", h.keeper.Kind(), h.keeper.Name()),
		"",
		fmt.Sprintf("frame      %d", s.CurrentFrame),
		fmt.Sprintf("fps        %7.2f / %.0f cap (ratio %.2f)", s.CurrentFPS, h.keeper.FPSCap(), h.keeper.FPSRatio()),
		fmt.Sprintf("budget     %v", s.FrameTimeLimit),
		fmt.Sprintf("delta      %7.2f ms ticks, %7.2f ms perf", s.DeltaTicks, s.DeltaPerformance),
		fmt.Sprintf("process    %v", s.Process.Duration),
		fmt.Sprintf("tasks      %v", s.Tasks.Duration),
		fmt.Sprintf("throttle   %v", s.ThrottleTime),
		"",
		fmt.Sprintf("vsync %-5v  system cap %-5v  min delay %.1fms", h.keeper.VSync(), h.keeper.SystemCap(), h.keeper.MinDelay()),
		fmt.Sprintf("paused %-5v  minimized %-5v", h.keeper.IsPaused(), h.minimized),
		"",
		"q quit  p pause  v vsync  s system cap  m minimize  +/- fps  r reset",
	}
}

func (h *hud) draw() {
	h.screen.Clear()

	style := tcell.StyleDefault
	for y, line := range h.lines() {
		x := 0
		for _, r := range line {
			h.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}

	h.screen.Show()
}
