package clock

import "time"

const nanosecondsPerSecond = uint64(time.Second)

// Monotonic is a Clock backed by the go runtime monotonic time.
// Counters start from zero at construction.
type Monotonic struct {
	epoch time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{
		epoch: time.Now(),
	}
}

func (m *Monotonic) Ticks() uint64 {
	return uint64(time.Since(m.epoch).Milliseconds())
}

func (m *Monotonic) PerformanceCounter() uint64 {
	return uint64(time.Since(m.epoch).Nanoseconds())
}

func (m *Monotonic) PerformanceFrequency() uint64 {
	return nanosecondsPerSecond
}

func (m *Monotonic) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
