package frame

type (
	ExecutorInitializer = func(*Executor)
)

func WithFrameErrorHandleBehavior(behavior ErrBehavior) ExecutorInitializer {
	return func(e *Executor) {
		e.frameErrBehavior = behavior
	}
}

func WithLogger(logger logger) ExecutorInitializer {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithTask adds idle task, executed in frame spare time
func WithTask(task *Task) ExecutorInitializer {
	return func(e *Executor) {
		e.tasks = append(e.tasks, task)
	}
}

// WithMinimizedProbe is asked once per frame, minimized frames
// are not paced and skip idle tasks
func WithMinimizedProbe(isMinimized func() bool) ExecutorInitializer {
	return func(e *Executor) {
		e.isMinimized = isMinimized
	}
}

// WithStatsListener receives stats after every frame
func WithStatsListener(fn func(Stats)) ExecutorInitializer {
	return func(e *Executor) {
		e.onStats = fn
	}
}
