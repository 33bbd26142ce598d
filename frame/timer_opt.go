package frame

type (
	TimerInitializer = func(*Timer)
)

// WithFPSCap sets target frames per second, (0..1000]
func WithFPSCap(fps float64) TimerInitializer {
	return func(t *Timer) {
		t.fpsCap = fps
	}
}

// WithVSync tells timer that display already paces the loop
func WithVSync(on bool) TimerInitializer {
	return func(t *Timer) {
		t.vsyncIsOn = on
	}
}

// WithSystemCap forces OS sleep for every wait, even short ones
func WithSystemCap(on bool) TimerInitializer {
	return func(t *Timer) {
		t.systemCapOn = on
	}
}

// WithMinDelay sets threshold in ms, shorter waits are spun
// when system cap is off
func WithMinDelay(ms float64) TimerInitializer {
	return func(t *Timer) {
		t.minDelayMs = ms
	}
}

func WithAverageFPSCount(n int) TimerInitializer {
	return func(t *Timer) {
		t.averageFPSCount = n
	}
}

func WithTimerLogger(logger logger) TimerInitializer {
	return func(t *Timer) {
		t.logger = logger
	}
}

// WithPresenter forwards every vsync change to presenter
func WithPresenter(p Presenter) TimerInitializer {
	return func(t *Timer) {
		t.presenter = p
	}
}

func WithName(name string) TimerInitializer {
	return func(t *Timer) {
		t.name = name
	}
}
