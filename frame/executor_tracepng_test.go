package frame

import (
	"context"
	"fmt"
	"path"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-glx/framecap/clock"
)

type testTraceVariant struct {
	outputName            string
	frames                uint64
	targetFramesPerSecond float64
	systemCap             bool
	latencyFrame          time.Duration
	latencyTask           time.Duration
}

func testTraceVariants() []testTraceVariant {
	return []testTraceVariant{
		{
			outputName:            "sleep-30fps",
			frames:                30,
			targetFramesPerSecond: 30,
			systemCap:             true,

			// 33.3 budget
			latencyFrame: time.Millisecond * 12,
			latencyTask:  time.Millisecond * 4,
		},
		{
			outputName:            "spin-120fps",
			frames:                120,
			targetFramesPerSecond: 120,
			systemCap:             false,

			// 8.3 budget, below min delay, so waits are spun
			latencyFrame: time.Millisecond * 3,
			latencyTask:  time.Millisecond * 1,
		},
		{
			outputName:            "overloaded-60fps",
			frames:                60,
			targetFramesPerSecond: 60,
			systemCap:             true,

			// 16.6 budget, never fits
			latencyFrame: time.Millisecond * 20,
			latencyTask:  time.Millisecond * 2,
		},
	}
}

func TestTraceExecutor(t *testing.T) {
	outDir := t.TempDir()

	for _, variant := range testTraceVariants() {
		t.Run(variant.outputName, func(t *testing.T) {
			c := clock.NewManual(clock.WithTickStep(time.Microsecond * 100))
			keeper := NewTimer(c,
				WithTimerLogger(testLogger()),
				WithFPSCap(variant.targetFramesPerSecond),
				WithVSync(false),
				WithSystemCap(variant.systemCap),
			)

			collectedStats := make([]Stats, 0, variant.frames)

			var traceExecutor *Executor
			traceExecutor = NewExecutor(keeper,
				WithLogger(testLogger()),
				WithStatsListener(func(s Stats) {
					collectedStats = append(collectedStats, s)
				}),
				WithTask(NewTask(
					func() { c.Advance(variant.latencyTask) },
					WithRunAtMostOnceIn(time.Millisecond*100),
					WithRunAtLeastOnceIn(time.Millisecond*250),
				)),
			)

			err := traceExecutor.Execute(context.Background(), func() error {
				if traceExecutor.CurrentFrame() > variant.frames {
					return ErrStopExecution
				}

				c.Advance(variant.latencyFrame)
				return nil
			})
			require.NoError(t, err)
			require.Len(t, collectedStats, int(variant.frames))

			limit := collectedStats[0].FrameTimeLimit
			for _, s := range collectedStats {
				budgetUsed := s.Process.Duration + s.Tasks.Duration
				if budgetUsed >= limit {
					assert.Less(t, s.ThrottleTime, time.Millisecond, "frame %d is late, nothing to wait", s.CurrentFrame)
					continue
				}

				// ticks are whole ms and sleep is rounded, so pacing is
				// exact only up to a couple of ms
				assert.InDelta(t, float64(limit), float64(s.Frame.Duration), float64(time.Millisecond*2),
					"frame %d not paced to budget", s.CurrentFrame)
			}

			testOutput(t, outDir, variant, collectedStats)
		})
	}
}

func testOutput(t *testing.T, outDir string, variant testTraceVariant, stats []Stats) {
	// colors
	const colBack = "#fff"
	const colText = "#001"
	const colTimeline = "#000"
	const colTimelineStroke100ms = "#555"
	const colTimelineStrokeBudget = "#999"
	const colBlockThrottle = "#777"
	const colBlockFrame = "#e40"
	const colBlockTask = "#02e"

	// const
	const widthPxPerSecond = float64(2000)
	const widthPxPerMs = widthPxPerSecond / 1000
	const sampleHeight = float64(50)
	const mainPaddingX = float64(20)
	const mainPaddingY = float64(40)
	const timeLineMargin = float64(4)
	const infoHeight = float64(15)

	// calculate graph size
	firstStat := stats[0]
	lastStat := stats[len(stats)-1]
	origin := firstStat.Frame.StartAt
	timeLineDuration := lastStat.Frame.StartAt + lastStat.Frame.Duration - origin
	timelineWidth := float64(timeLineDuration.Milliseconds()) * widthPxPerMs
	fullWidth := (mainPaddingX * 2) + timelineWidth
	timelineY := mainPaddingY + infoHeight + sampleHeight + timeLineMargin
	fullHeight := timelineY + timeLineMargin + mainPaddingY

	dc := gg.NewContext(int(fullWidth), int(fullHeight))

	dc.SetHexColor(colBack)
	dc.Clear()

	// top info
	dc.SetHexColor(colText)
	infoText := fmt.Sprintf("Frame: { lat:%dms, target: %.0f/s, avg: %.1f/s }  Task: { lat:%dms }",
		variant.latencyFrame.Milliseconds(),
		variant.targetFramesPerSecond,
		lastStat.CurrentFPS,
		variant.latencyTask.Milliseconds(),
	)
	dc.DrawStringAnchored(infoText, mainPaddingX, 15, 0, 0)

	// timeline
	dc.SetHexColor(colTimeline)
	dc.DrawLine(mainPaddingX, timelineY, mainPaddingX+timelineWidth, timelineY)
	dc.Stroke()

	drawStroke := func(interval time.Duration, color string, halfHeight float64, withText bool) {
		if interval <= 0 {
			return
		}

		step := float64(interval) / float64(time.Millisecond) * widthPxPerMs
		curTime := time.Duration(0)
		for x := mainPaddingX; x <= mainPaddingX+timelineWidth; x += step {
			dc.SetHexColor(color)
			dc.DrawLine(x, timelineY-halfHeight, x, timelineY+halfHeight)
			dc.Stroke()

			if withText {
				dc.DrawStringAnchored(fmt.Sprintf("%dms", curTime.Milliseconds()), x, timelineY+halfHeight+5, 0.5, 0.5)
			}

			curTime += interval
		}
	}

	drawStroke(time.Millisecond*100, colTimelineStroke100ms, 4, true)
	drawStroke(lastStat.FrameTimeLimit, colTimelineStrokeBudget, 1, false)

	drawBlock := func(block Timings, color string) {
		x := mainPaddingX + float64(block.StartAt-origin)/float64(time.Millisecond)*widthPxPerMs
		width := float64(block.Duration) / float64(time.Millisecond) * widthPxPerMs

		dc.SetHexColor(color)
		dc.DrawRectangle(x, timelineY-timeLineMargin-sampleHeight, width, sampleHeight)
		dc.Fill()
	}

	for _, s := range stats {
		drawBlock(s.Process, colBlockFrame)
		drawBlock(s.Tasks, colBlockTask)
		drawBlock(Timings{
			StartAt:  s.Tasks.StartAt + s.Tasks.Duration,
			Duration: s.ThrottleTime,
		}, colBlockThrottle)
	}

	outputPath := path.Join(outDir, fmt.Sprintf("%s.png", variant.outputName))
	err := dc.SavePNG(outputPath)
	assert.NoError(t, err)
	assert.FileExists(t, outputPath)
}
