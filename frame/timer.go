package frame

import (
	"math"

	"github.com/go-glx/framecap/clock"
	"github.com/go-glx/framecap/frame/internal/average"
)

const (
	defaultFPSCap          = 60
	defaultFallbackFPS     = 15 // used for out of range caps, also base of fps ratio
	defaultAverageFPSCount = 5
	defaultMinDelayMs      = 16
	maxFPSCap              = 1000
)

type (
	// Timer is a Keeper that measures frames with platform clock
	// and waits out the rest of frame budget itself, unless vsync is on.
	Timer struct {
		clock     clock.Clock
		logger    logger
		presenter Presenter
		name      string

		// settings
		fpsCap          float64
		ticksPerFrame   float64 // ms budget of one frame
		secondsPerFrame float64
		fpsRatio        float64
		vsyncIsOn       bool    // display pacing the loop, timer only measures
		systemCapOn     bool    // always sleep, never spin
		minDelayMs      float64 // shorter waits are spun when system cap is off
		averageFPSCount int

		// state
		started      bool
		paused       bool
		ticksStart   uint64
		ticksPaused  uint64
		ticksNow     uint64
		timeNow      float64
		timePast     float64
		framesPassed uint64

		deltaTicks       float64
		deltaPerformance float64
		currentFPS       float64
		recordedFPS      *average.Window
	}
)

func NewTimer(c clock.Clock, initializers ...TimerInitializer) *Timer {
	t := &Timer{
		clock:           c,
		logger:          &fallbackLogger{},
		name:            KindClock,
		fpsCap:          defaultFPSCap,
		vsyncIsOn:       true,
		systemCapOn:     true,
		minDelayMs:      defaultMinDelayMs,
		averageFPSCount: defaultAverageFPSCount,
	}

	for _, init := range initializers {
		init(t)
	}

	if t.averageFPSCount < 1 {
		t.averageFPSCount = 1
	}

	t.recordedFPS = average.NewWindow(t.averageFPSCount)
	t.SetFPS(t.fpsCap)

	t.deltaTicks = t.ticksPerFrame
	t.deltaPerformance = t.ticksPerFrame

	if t.presenter != nil {
		t.presenter.SetVSync(t.vsyncIsOn)
	}

	return t
}

func (t *Timer) StartTimer() {
	t.started = true
	t.ticksStart = t.clock.Ticks()
	t.timePast = t.PerformanceMs()
}

func (t *Timer) CapFPS(isMinimized bool) {
	if isMinimized {
		// nothing is drawn, so nothing to pace or measure
		t.deltaTicks = 0
		t.deltaPerformance = 0
		t.timePast = 0
		t.ticksStart = 0
		return
	}

	t.timeNow = t.PerformanceMs()
	t.ticksNow = t.clock.Ticks()
	t.deltaTicks = float64(t.ticksNow) - float64(t.ticksStart)
	t.deltaPerformance = t.timeNow - t.timePast

	if t.ticksNow < t.ticksStart {
		// tick counter went back (wrapped), elapsed time is unknown
		t.deltaTicks = t.ticksPerFrame
	}

	if !t.vsyncIsOn && t.deltaTicks < t.ticksPerFrame {
		t.Delay(t.ticksPerFrame - t.deltaTicks)
		t.timeNow = t.PerformanceMs()
		t.deltaPerformance = t.timeNow - t.timePast
	}

	t.record()
}

// Delay blocks for ms milliseconds.
//
// Long waits (and every wait when system cap is on) go to the OS sleep:
// cheap on CPU, but the scheduler can be several ms late.
// Waits shorter than min delay spin on the tick counter instead,
// burning a core for precision that sleep can not give.
func (t *Timer) Delay(ms float64) {
	if ms <= 0 || math.IsNaN(ms) {
		return
	}

	if t.systemCapOn || ms >= t.minDelayMs {
		t.clock.Sleep(uint32(math.Min(math.Floor(ms+0.5), math.MaxUint32)))
		t.deltaTicks = t.ticksPerFrame
		return
	}

	from := t.clock.Ticks()
	for {
		now := t.clock.Ticks()
		if now < from || float64(now-from) >= ms {
			break
		}
	}

	t.deltaTicks = t.ticksPerFrame
	t.deltaPerformance = t.ticksPerFrame
}

func (t *Timer) record() {
	t.framesPassed++

	if t.deltaPerformance <= 0 {
		return
	}

	t.recordedFPS.Push(1000 / t.deltaPerformance)
	t.currentFPS = t.recordedFPS.Mean()
}

func (t *Timer) PauseTimer() {
	if !t.started || t.paused {
		return
	}

	t.paused = true
	t.ticksPaused = t.clock.Ticks()
}

// UnpauseTimer starts new baseline, time spent in pause is not
// carried into the next frame delta.
func (t *Timer) UnpauseTimer() {
	if !t.paused {
		return
	}

	t.StartTimer()
	t.paused = false
}

func (t *Timer) StopTimer() {
	t.ResetTimer()
	t.ticksPaused = t.clock.Ticks()
}

func (t *Timer) ResetTimer() {
	t.timeNow = 0
	t.timePast = 0
	t.ticksNow = 0
	t.ticksStart = 0
	t.framesPassed = 0
	t.deltaTicks = 0
	t.deltaPerformance = 0
	t.recordedFPS.Clear()

	t.started = false
	t.paused = false
}

func (t *Timer) SetFPS(fps float64) {
	if fps > 0 && fps <= maxFPSCap {
		t.fpsCap = fps
	} else {
		t.logger.Warn("fps cap out of range, using fallback",
			"requested", fps,
			"fallback", defaultFallbackFPS,
		)
		t.fpsCap = defaultFallbackFPS
	}

	t.currentFPS = t.fpsCap
	t.ticksPerFrame = 1000 / t.fpsCap
	t.secondsPerFrame = 1 / t.fpsCap
	t.fpsRatio = math.Max(1, t.fpsCap/defaultFallbackFPS)

	// old samples measured against another budget
	t.recordedFPS.Clear()
}

func (t *Timer) SetVSync(on bool) {
	t.vsyncIsOn = on

	if t.presenter != nil {
		t.presenter.SetVSync(on)
	}
}

func (t *Timer) SetSystemCap(on bool) {
	t.systemCapOn = on
}

func (t *Timer) SetMinDelay(ms float64) {
	t.minDelayMs = math.Max(0, ms)
}

func (t *Timer) SetAverageFPSCount(n int) {
	if n < 1 {
		n = 1
	}

	t.averageFPSCount = n
	t.recordedFPS.Resize(n)
}

func (t *Timer) DeltaTicks() float64       { return t.deltaTicks }
func (t *Timer) DeltaPerformance() float64 { return t.deltaPerformance }
func (t *Timer) FPS() float64              { return t.currentFPS }
func (t *Timer) FPSCap() float64           { return t.fpsCap }
func (t *Timer) FPSRatio() float64         { return t.fpsRatio }
func (t *Timer) NeededTicks() float64      { return t.ticksPerFrame }
func (t *Timer) SecondsPerFrame() float64  { return t.secondsPerFrame }
func (t *Timer) Ticks() uint64             { return t.clock.Ticks() }
func (t *Timer) TicksPaused() uint64       { return t.ticksPaused }
func (t *Timer) FramesPassed() uint64      { return t.framesPassed }
func (t *Timer) AverageFPSCount() int      { return t.averageFPSCount }
func (t *Timer) MinDelay() float64         { return t.minDelayMs }
func (t *Timer) IsStarted() bool           { return t.started }
func (t *Timer) IsPaused() bool            { return t.paused }
func (t *Timer) VSync() bool               { return t.vsyncIsOn }
func (t *Timer) SystemCap() bool           { return t.systemCapOn }
func (t *Timer) Name() string              { return t.name }
func (t *Timer) Kind() string              { return KindClock }

func (t *Timer) PerformanceMs() float64 {
	return clock.PerformanceMs(t.clock)
}

func (t *Timer) PerformanceSeconds() float64 {
	return clock.PerformanceSeconds(t.clock)
}

// RecordedFPS returns fps samples of the last frames, oldest first
func (t *Timer) RecordedFPS() []float64 {
	return t.recordedFPS.Samples()
}
