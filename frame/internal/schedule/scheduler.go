package schedule

import (
	"sort"
	"time"
)

type Scheduler struct {
	prioritize *Prioritize
	tasks      []*Task
}

func NewScheduler(prioritize *Prioritize, tasks ...*Task) *Scheduler {
	return &Scheduler{
		prioritize: prioritize,
		tasks:      tasks,
	}
}

// Execute runs tasks that fit into capacity and returns time spent
func (s *Scheduler) Execute(capacity time.Duration) time.Duration {
	if len(s.tasks) == 0 {
		return 0
	}

	now := s.prioritize.getTime()
	for _, task := range s.tasks {
		if !task.registered {
			task.registered = true
			task.registeredAt = now
		}

		task.currentPriority = s.prioritize.calculateTaskPriority(task)
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].currentPriority > s.tasks[j].currentPriority
	})

	spent := time.Duration(0)

	for _, task := range s.tasks {
		if task.currentPriority == runPriorityNotNeed {
			// not need run this task right now
			continue
		}

		if task.currentPriority == runPriorityCritical {
			// should be executed right now
			took := s.run(task)
			capacity -= took
			spent += took
			continue
		}

		if capacity <= 0 {
			break
		}

		if task.avgDuration <= 0 {
			// don`t known duration yet, possible > capacity
			// so run only this at current frame
			spent += s.run(task)
			break
		}

		if task.avgDuration > capacity {
			// not have time to it
			continue
		}

		took := s.run(task)
		capacity -= took
		spent += took
	}

	return spent
}

// Run function and return it duration
func (s *Scheduler) run(task *Task) time.Duration {
	task.lastRunAt = s.prioritize.getTime()
	task.taskFn()
	duration := s.prioritize.getTime() - task.lastRunAt

	task.avgDuration = ((task.avgDuration * time.Duration(task.runsCount)) + duration) /
		(time.Duration(task.runsCount) + 1)

	task.runsCount++
	return duration
}
