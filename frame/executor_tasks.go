package frame

import (
	"time"

	"github.com/go-glx/framecap/frame/internal/schedule"
)

// newTaskScheduler binds idle tasks to the keeper clock,
// so task timing and frame timing never disagree
func newTaskScheduler(keeper Keeper, tasks []*Task) *schedule.Scheduler {
	innerTasks := make([]*schedule.Task, 0, len(tasks))

	for _, task := range tasks {
		innerTasks = append(innerTasks, schedule.NewTask(
			task.fn,
			taskPriorityToInternal(task.priority),
			task.runAtLeastOnceIn,
			task.runAtMostOnceIn,
		))
	}

	clockPosition := func() time.Duration {
		return durationFromMs(keeper.PerformanceMs())
	}

	return schedule.NewScheduler(schedule.NewPrioritize(clockPosition), innerTasks...)
}

func taskPriorityToInternal(p TaskPriority) schedule.Priority {
	switch p {
	case TaskPriorityLow:
		return schedule.PriorityLow
	case TaskPriorityHigh:
		return schedule.PriorityHigh
	default:
		return schedule.PriorityNormal
	}
}
