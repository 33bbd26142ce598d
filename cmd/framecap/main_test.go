package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glx/framecap/clock"
	"github.com/go-glx/framecap/frame"
)

func TestBuildClock(t *testing.T) {
	c, presenter, closeFn, err := buildClock(clockMonotonic)
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &clock.Monotonic{}, c)
	assert.Nil(t, presenter)

	_, _, _, err = buildClock("sundial")
	assert.EqualError(t, err, `unknown clock "sundial", expected monotonic or sdl`)
}

func TestRunHeadless(t *testing.T) {
	cfg := config{
		fps:         500,
		systemCap:   true,
		minDelay:    16,
		average:     5,
		frames:      20,
		reportEvery: 10,
		clockName:   clockMonotonic,
	}

	start := time.Now()
	err := run(context.Background(), cfg)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second*5)
}

func TestSummary(t *testing.T) {
	sum := &summary{minDelta: 1000}

	sum.add(frame.Stats{DeltaPerformance: 10, ThrottleTime: time.Millisecond})
	sum.add(frame.Stats{DeltaPerformance: 30, ThrottleTime: time.Millisecond})
	sum.add(frame.Stats{DeltaPerformance: 0, Minimized: true})

	assert.Equal(t, uint64(2), sum.frames)
	assert.InDelta(t, 50.0, sum.meanFPS(), 1e-9)
	assert.Equal(t, 10.0, sum.minDelta)
	assert.Equal(t, 30.0, sum.maxDelta)
	assert.Equal(t, time.Millisecond*2, sum.throttle)
}

func testHUD(t *testing.T) (*hud, tcell.SimulationScreen, *frame.Timer) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	keeper := frame.NewTimer(clock.NewManual(),
		frame.WithTimerLogger(testLogger()),
		frame.WithVSync(false),
	)
	keeper.StartTimer()

	return newHUD(screen, keeper, func() {}), screen, keeper
}

func testKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHUD_HandleKey(t *testing.T) {
	h, _, keeper := testHUD(t)

	h.handleKey(testKey('p'))
	assert.True(t, keeper.IsPaused())
	h.handleKey(testKey('p'))
	assert.False(t, keeper.IsPaused())

	h.handleKey(testKey('v'))
	assert.True(t, keeper.VSync())

	h.handleKey(testKey('s'))
	assert.False(t, keeper.SystemCap())

	h.handleKey(testKey('m'))
	assert.True(t, h.minimized)

	h.handleKey(testKey('+'))
	assert.Equal(t, float64(65), keeper.FPSCap())
	h.handleKey(testKey('-'))
	h.handleKey(testKey('-'))
	assert.Equal(t, float64(55), keeper.FPSCap())

	h.handleKey(testKey('r'))
	assert.True(t, keeper.IsStarted())
	assert.Zero(t, keeper.FramesPassed())

	assert.False(t, h.quit)
	h.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, h.quit)
}

func TestHUD_Frame(t *testing.T) {
	h, screen, _ := testHUD(t)

	worked := 0
	h.workload = func() { worked++ }

	require.NoError(t, h.frame())
	assert.Equal(t, 1, worked)

	cells, width, _ := screen.GetContents()
	title := make([]rune, 0, len("framecap"))
	for x := 0; x < len("framecap") && x < width; x++ {
		title = append(title, cells[x].Runes...)
	}
	assert.Equal(t, "framecap", string(title))

	h.handleKey(testKey('p'))
	require.NoError(t, h.frame())
	assert.Equal(t, 1, worked, "paused loop skips work")

	h.handleKey(testKey('q'))
	assert.ErrorIs(t, h.frame(), frame.ErrStopExecution)
}
