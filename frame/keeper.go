package frame

const (
	KindBase  = "base"
	KindClock = "clock"
)

type (
	// Keeper paces a frame loop and reports timing of the last frame.
	//
	// Loop driver calls StartTimer at frame start and CapFPS at frame end,
	// CapFPS may block until frame budget is spent.
	// Keeper is owned by a single loop and is not safe for concurrent use.
	Keeper interface {
		StartTimer()
		CapFPS(isMinimized bool)
		Delay(ms float64)

		PauseTimer()
		UnpauseTimer()
		StopTimer()
		ResetTimer()

		SetFPS(fps float64)
		SetVSync(on bool)
		SetSystemCap(on bool)
		SetMinDelay(ms float64)
		SetAverageFPSCount(n int)

		DeltaTicks() float64
		DeltaPerformance() float64
		FPS() float64
		FPSCap() float64
		FPSRatio() float64
		NeededTicks() float64
		SecondsPerFrame() float64
		PerformanceMs() float64
		PerformanceSeconds() float64
		Ticks() uint64
		TicksPaused() uint64
		FramesPassed() uint64
		AverageFPSCount() int
		MinDelay() float64

		IsStarted() bool
		IsPaused() bool
		VSync() bool
		SystemCap() bool

		Name() string
		Kind() string
	}

	// Presenter receives vsync preference, usually a display backend.
	Presenter interface {
		SetVSync(on bool)
	}
)
