package frame

import "time"

type Timings struct {
	StartAt  time.Duration // position on keeper clock
	Duration time.Duration
}

type Stats struct {
	CurrentFrame uint64
	CurrentFPS   float64 // rolling average
	DeltaTime    float64 // seconds spent by last frame, including throttle

	DeltaTicks       float64
	DeltaPerformance float64

	FrameFreeTime  time.Duration
	FrameTargetFPS float64
	FrameTimeLimit time.Duration
	ThrottleTime   time.Duration

	Minimized bool
	Paused    bool
	VSync     bool

	Frame   Timings
	Process Timings
	Tasks   Timings
}
