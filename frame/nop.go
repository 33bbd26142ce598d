package frame

// NopKeeper is a placeholder Keeper, it never waits and measures nothing.
// Used until a clock backed timer is installed and after shutdown.
type NopKeeper struct{}

func NewNopKeeper() *NopKeeper {
	return &NopKeeper{}
}

func (NopKeeper) StartTimer()                 {}
func (NopKeeper) CapFPS(bool)                 {}
func (NopKeeper) Delay(float64)               {}
func (NopKeeper) PauseTimer()                 {}
func (NopKeeper) UnpauseTimer()               {}
func (NopKeeper) StopTimer()                  {}
func (NopKeeper) ResetTimer()                 {}
func (NopKeeper) SetFPS(float64)              {}
func (NopKeeper) SetVSync(bool)               {}
func (NopKeeper) SetSystemCap(bool)           {}
func (NopKeeper) SetMinDelay(float64)         {}
func (NopKeeper) SetAverageFPSCount(int)      {}
func (NopKeeper) DeltaTicks() float64         { return 0 }
func (NopKeeper) DeltaPerformance() float64   { return 0 }
func (NopKeeper) FPS() float64                { return 0 }
func (NopKeeper) FPSCap() float64             { return 0 }
func (NopKeeper) FPSRatio() float64           { return 0 }
func (NopKeeper) NeededTicks() float64        { return 0 }
func (NopKeeper) SecondsPerFrame() float64    { return 0 }
func (NopKeeper) PerformanceMs() float64      { return 0 }
func (NopKeeper) PerformanceSeconds() float64 { return 0 }
func (NopKeeper) Ticks() uint64               { return 0 }
func (NopKeeper) TicksPaused() uint64         { return 0 }
func (NopKeeper) FramesPassed() uint64        { return 0 }
func (NopKeeper) AverageFPSCount() int        { return 0 }
func (NopKeeper) MinDelay() float64           { return 0 }
func (NopKeeper) IsStarted() bool             { return false }
func (NopKeeper) IsPaused() bool              { return false }
func (NopKeeper) VSync() bool                 { return false }
func (NopKeeper) SystemCap() bool             { return false }
func (NopKeeper) Name() string                { return KindBase }
func (NopKeeper) Kind() string                { return KindBase }
