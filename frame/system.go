package frame

import "github.com/go-glx/framecap/clock"

type (
	// System owns the active Keeper of a game loop.
	// Keeper is replaced on every backend change, never reset in place.
	System struct {
		logger logger
		keeper Keeper
	}

	SystemInitializer = func(*System)
)

func NewSystem(initializers ...SystemInitializer) *System {
	s := &System{
		logger: &fallbackLogger{},
		keeper: NewNopKeeper(),
	}

	for _, init := range initializers {
		init(s)
	}

	return s
}

func WithSystemLogger(logger logger) SystemInitializer {
	return func(s *System) {
		s.logger = logger
	}
}

// Init replaces current keeper with clock backed Timer.
// Previous fps cap survives the swap unless initializers override it.
func (s *System) Init(c clock.Clock, initializers ...TimerInitializer) Keeper {
	s.logger.Info("starting timekeeper", "previous", s.keeper.Kind())

	opts := make([]TimerInitializer, 0, len(initializers)+2)
	opts = append(opts, WithTimerLogger(s.logger))
	if prevCap := s.keeper.FPSCap(); prevCap > 0 {
		opts = append(opts, WithFPSCap(prevCap))
	}
	opts = append(opts, initializers...)

	timer := NewTimer(c, opts...)
	s.keeper = timer

	s.logger.Info("timekeeper swapped",
		"kind", timer.Kind(),
		"name", timer.Name(),
		"fps_cap", timer.FPSCap(),
	)

	return timer
}

// Shutdown puts inert keeper back
func (s *System) Shutdown() {
	if s.keeper.Kind() != KindBase {
		s.logger.Info("stopping timekeeper", "name", s.keeper.Name())
	}

	s.keeper = NewNopKeeper()
}

func (s *System) Keeper() Keeper {
	return s.keeper
}
