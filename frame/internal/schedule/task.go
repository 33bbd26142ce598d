package schedule

import "time"

type (
	Task struct {
		priority         Priority      // task schedule priority against another tasks
		runAtLeastOnceIn time.Duration // but anyway it SHOULD be executed at least once per X time
		runAtMostOnceIn  time.Duration // do not run it too often
		taskFn           taskFn

		// stats
		currentPriority float32 // -1; [0..1]; +2
		registered      bool
		registeredAt    time.Duration // clock position when scheduler first saw task
		lastRunAt       time.Duration // clock position of last run
		avgDuration     time.Duration
		runsCount       uint64
	}

	taskFn = func()
)

func NewTask(
	fn taskFn,
	priority Priority,
	runAtLeastOnceIn time.Duration,
	runAtMostOnceIn time.Duration,
) *Task {
	return &Task{
		priority:         priority,
		runAtLeastOnceIn: runAtLeastOnceIn,
		runAtMostOnceIn:  runAtMostOnceIn,
		taskFn:           fn,
	}
}

// RunsCount returns how many times task was executed
func (t *Task) RunsCount() uint64 {
	return t.runsCount
}

// AvgDuration returns mean run time of task
func (t *Task) AvgDuration() time.Duration {
	return t.avgDuration
}
