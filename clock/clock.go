package clock

type (
	// Clock is a platform time source used by frame timers.
	//
	// Ticks is a coarse monotonic counter in milliseconds, it must not wrap.
	// PerformanceCounter is a high resolution monotonic counter,
	// PerformanceFrequency is the amount of counter units per second.
	// Sleep blocks the calling goroutine for at least ms milliseconds.
	Clock interface {
		Ticks() uint64
		PerformanceCounter() uint64
		PerformanceFrequency() uint64
		Sleep(ms uint32)
	}
)

// PerformanceMs returns high resolution clock time in milliseconds
func PerformanceMs(c Clock) float64 {
	freq := c.PerformanceFrequency()
	if freq == 0 {
		return 0
	}

	return float64(c.PerformanceCounter()) * 1000 / float64(freq)
}

// PerformanceSeconds returns high resolution clock time in seconds
func PerformanceSeconds(c Clock) float64 {
	freq := c.PerformanceFrequency()
	if freq == 0 {
		return 0
	}

	return float64(c.PerformanceCounter()) / float64(freq)
}
