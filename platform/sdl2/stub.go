//go:build !sdl2

package sdl2

// Clock stub for when SDL2 is not available
type Clock struct{}

// NewClock returns an error indicating SDL2 is not available
func NewClock() (*Clock, error) {
	return nil, ErrUnavailable
}

func (c *Clock) Close() error                 { return nil }
func (c *Clock) Ticks() uint64                { return 0 }
func (c *Clock) PerformanceCounter() uint64   { return 0 }
func (c *Clock) PerformanceFrequency() uint64 { return 0 }
func (c *Clock) Sleep(uint32)                 {}

// Presenter stub for when SDL2 is not available
type Presenter struct{}

// NewPresenter returns an error indicating SDL2 is not available
func NewPresenter() (*Presenter, error) {
	return nil, ErrUnavailable
}

func (p *Presenter) OnRejected(func(on bool)) {}
func (p *Presenter) SetVSync(bool)            {}
