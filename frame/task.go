package frame

import "time"

type TaskPriority uint

const (
	TaskPriorityLow TaskPriority = iota
	TaskPriorityNormal
	TaskPriorityHigh
)

// Task is an optional job executed in spare time of a frame,
// when frame fn finished before its budget.
type Task struct {
	fn               func()
	priority         TaskPriority  // task schedule priority against another tasks
	runAtLeastOnceIn time.Duration // but anyway it SHOULD be executed at least once per X time
	runAtMostOnceIn  time.Duration // do not run it too often
}

func NewTask(fn func(), options ...TaskInitializer) *Task {
	task := &Task{
		fn:               fn,
		priority:         TaskPriorityNormal,
		runAtLeastOnceIn: time.Minute,
		runAtMostOnceIn:  time.Second,
	}

	for _, init := range options {
		init(task)
	}

	return task
}

type (
	TaskInitializer = func(*Task)
)

func WithRunAtLeastOnceIn(t time.Duration) TaskInitializer {
	return func(task *Task) {
		task.runAtLeastOnceIn = t
	}
}

func WithRunAtMostOnceIn(t time.Duration) TaskInitializer {
	return func(task *Task) {
		task.runAtMostOnceIn = t
	}
}

func WithPriority(p TaskPriority) TaskInitializer {
	return func(task *Task) {
		task.priority = p
	}
}
