//go:build sdl2

package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Clock is clock.Clock backed by SDL timer functions.
// Note: building this requires SDL2 development libraries installed.
// Default builds use a stub, see build tags (sdl2)
type Clock struct{}

// NewClock initializes SDL timer subsystem
func NewClock() (*Clock, error) {
	if err := sdl.InitSubSystem(sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL2 timer: %w", err)
	}

	return &Clock{}, nil
}

// Close releases SDL timer subsystem
func (c *Clock) Close() error {
	sdl.QuitSubSystem(sdl.INIT_TIMER)
	return nil
}

// Ticks uses 64 bit SDL counter, 32 bit one wraps after ~49 days
func (c *Clock) Ticks() uint64 {
	return sdl.GetTicks64()
}

func (c *Clock) PerformanceCounter() uint64 {
	return sdl.GetPerformanceCounter()
}

func (c *Clock) PerformanceFrequency() uint64 {
	return sdl.GetPerformanceFrequency()
}

func (c *Clock) Sleep(ms uint32) {
	sdl.Delay(ms)
}

// Presenter forwards vsync preference to SDL renderers,
// renderers created after the call pick it up.
type Presenter struct {
	rejected func(on bool)
}

func NewPresenter() (*Presenter, error) {
	return &Presenter{}, nil
}

// OnRejected sets callback for hints SDL refused to set
func (p *Presenter) OnRejected(fn func(on bool)) {
	p.rejected = fn
}

func (p *Presenter) SetVSync(on bool) {
	value := "0"
	if on {
		value = "1"
	}

	if !sdl.SetHint(sdl.HINT_RENDER_VSYNC, value) && p.rejected != nil {
		p.rejected(on)
	}
}
