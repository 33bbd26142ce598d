package frame

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-glx/framecap/frame/internal/schedule"
)

type (
	// Executor is a game loop driver around Keeper.
	// Every iteration: frame fn, idle tasks in spare budget, then CapFPS.
	Executor struct {
		keeper           Keeper
		logger           logger
		frameErrBehavior ErrBehavior
		isMinimized      func() bool
		onStats          func(Stats)
		tasks            []*Task

		// state
		scheduler      *schedule.Scheduler
		currentFrameID uint64
		frame          timeRange
		process        timeRange
		tasksRun       timeRange
		throttle       timeRange
	}

	mainFn = func() error
)

func NewExecutor(keeper Keeper, initializers ...ExecutorInitializer) *Executor {
	e := &Executor{
		keeper:           keeper,
		logger:           &fallbackLogger{},
		frameErrBehavior: ErrBehaviorExit,
		isMinimized:      func() bool { return false },
		onStats:          func(Stats) {},
	}

	for _, init := range initializers {
		init(e)
	}

	return e
}

// Execute runs fn once per frame, until ctx is done or fn
// returns ErrStopExecution. Context is checked between frames only,
// a frame in progress (including its throttle) is never interrupted.
func (e *Executor) Execute(ctx context.Context, fn mainFn) error {
	e.scheduler = newTaskScheduler(e.keeper, e.tasks)
	e.currentFrameID = 0
	e.keeper.StartTimer()
	e.frame.start(e.keeper)

	for ctx.Err() == nil {
		e.currentFrameID++
		minimized := e.isMinimized()

		e.process.start(e.keeper)
		err := fn()
		e.process.finish(e.keeper)

		if err != nil {
			if errors.Is(err, ErrStopExecution) {
				return nil
			}

			if next := e.handleError(err); next != nil {
				return next
			}
		}

		e.runTasks(minimized)

		e.throttle.start(e.keeper)
		e.keeper.CapFPS(minimized)
		e.throttle.finish(e.keeper)

		e.frame.finish(e.keeper)
		stats := e.stats(minimized)

		// next frame budget starts here, listener time is charged to it
		e.keeper.StartTimer()
		e.frame.start(e.keeper)

		e.onStats(stats)
	}

	return nil
}

// CurrentFrame returns number of the frame in progress, starting from 1
func (e *Executor) CurrentFrame() uint64 {
	return e.currentFrameID
}

func (e *Executor) runTasks(minimized bool) {
	e.tasksRun.start(e.keeper)
	defer e.tasksRun.finish(e.keeper)

	if minimized {
		return
	}

	elapsed := e.keeper.PerformanceMs() - e.frame.from
	e.scheduler.Execute(durationFromMs(e.keeper.NeededTicks() - elapsed))
}

func (e *Executor) stats(minimized bool) Stats {
	process := e.process.timings()
	tasks := e.tasksRun.timings()
	limit := durationFromMs(e.keeper.NeededTicks())
	free := limit - process.Duration - tasks.Duration
	if free < 0 {
		free = 0
	}

	return Stats{
		CurrentFrame:     e.currentFrameID,
		CurrentFPS:       e.keeper.FPS(),
		DeltaTime:        e.keeper.DeltaPerformance() / 1000,
		DeltaTicks:       e.keeper.DeltaTicks(),
		DeltaPerformance: e.keeper.DeltaPerformance(),
		FrameFreeTime:    free,
		FrameTargetFPS:   e.keeper.FPSCap(),
		FrameTimeLimit:   limit,
		ThrottleTime:     e.throttle.timings().Duration,
		Minimized:        minimized,
		Paused:           e.keeper.IsPaused(),
		VSync:            e.keeper.VSync(),
		Frame:            e.frame.timings(),
		Process:          process,
		Tasks:            tasks,
	}
}

func (e *Executor) handleError(err error) error {
	err = fmt.Errorf("error on %d frame: %w", e.currentFrameID, err)

	if e.frameErrBehavior == ErrBehaviorExit {
		return err
	}

	if e.frameErrBehavior == ErrBehaviorLog {
		e.logger.Error("frame failed", "frame", e.currentFrameID, "err", err)
		return nil
	}

	return nil
}
