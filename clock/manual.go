package clock

import "time"

type (
	// Manual is a Clock that moves only when told to.
	// Sleep advances it by the requested amount and remembers the call,
	// so pacing code can be checked without real waiting.
	Manual struct {
		now      time.Duration
		tickStep time.Duration // added after every Ticks read
		sleeps   []uint32
	}

	ManualInitializer = func(*Manual)
)

func NewManual(initializers ...ManualInitializer) *Manual {
	m := &Manual{}

	for _, init := range initializers {
		init(m)
	}

	return m
}

// WithStartAt sets initial clock time
func WithStartAt(at time.Duration) ManualInitializer {
	return func(m *Manual) {
		m.now = at
	}
}

// WithTickStep makes every Ticks call advance the clock by step.
// Needed for code that polls Ticks in a loop, otherwise it never ends.
func WithTickStep(step time.Duration) ManualInitializer {
	return func(m *Manual) {
		m.tickStep = step
	}
}

func (m *Manual) Ticks() uint64 {
	ticks := uint64(m.now.Milliseconds())
	m.now += m.tickStep

	return ticks
}

func (m *Manual) PerformanceCounter() uint64 {
	return uint64(m.now.Nanoseconds())
}

func (m *Manual) PerformanceFrequency() uint64 {
	return nanosecondsPerSecond
}

func (m *Manual) Sleep(ms uint32) {
	m.sleeps = append(m.sleeps, ms)
	m.now += time.Duration(ms) * time.Millisecond
}

// Advance moves clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.now += d
}

// Now returns current clock position
func (m *Manual) Now() time.Duration {
	return m.now
}

// Sleeps returns all Sleep calls in order
func (m *Manual) Sleeps() []uint32 {
	return append([]uint32(nil), m.sleeps...)
}

// ResetSleeps forgets recorded Sleep calls
func (m *Manual) ResetSleeps() {
	m.sleeps = m.sleeps[:0]
}
