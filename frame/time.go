package frame

import "time"

type (
	// timeRange is a span on the keeper performance clock, in ms
	timeRange struct {
		from float64
		to   float64
	}
)

func (tr *timeRange) start(k Keeper) {
	tr.from = k.PerformanceMs()
	tr.to = tr.from
}

func (tr *timeRange) finish(k Keeper) {
	tr.to = k.PerformanceMs()
}

func (tr *timeRange) timings() Timings {
	return Timings{
		StartAt:  durationFromMs(tr.from),
		Duration: durationFromMs(tr.to - tr.from),
	}
}

func durationFromMs(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
