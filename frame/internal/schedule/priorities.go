package schedule

import "time"

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

type (
	Priority uint8
)

const (
	runPriorityNotNeed  = -1
	runPriorityCritical = 2
)

var priorityAsMultiplier = map[Priority]float32{
	PriorityLow:    0.75,
	PriorityNormal: 1.00,
	PriorityHigh:   1.25,
}

type (
	Prioritize struct {
		// should return current frame clock position,
		// any monotonic source with fixed origin
		getTime timeObtainer
	}

	timeObtainer = func() time.Duration
)

func NewPrioritize(obtainer timeObtainer) *Prioritize {
	return &Prioritize{
		getTime: obtainer,
	}
}

// should return value: -1, [0 to 1.25], +2
// where:
//
//	-1 - task excluded from running at all
//	 0 - the lowest priority
//	 1 - the highest priority
//	 2 - task overdue, should be executed right now, without capacity check
func (p *Prioritize) calculateTaskPriority(task *Task) float32 {
	now := p.getTime()

	if task.runsCount == 0 {
		// never executed, frame clock origin tells nothing about it
		if now-task.registeredAt >= task.runAtLeastOnceIn {
			return runPriorityCritical
		}

		return priorityAsMultiplier[task.priority]
	}

	sinceLast := now - task.lastRunAt

	if sinceLast < task.runAtMostOnceIn {
		// reject task that runs too often
		return runPriorityNotNeed
	}

	if sinceLast >= task.runAtLeastOnceIn {
		// overdue task
		return runPriorityCritical
	}

	// atLeast    = 1s
	// lastRun    = 9.1s
	// current    = 10s (after 900ms)
	// overdue    = 10.1s (left 100ms)
	// currentPos = (10s-9.1s)/(10.1s-9.1s) = 0.9

	// whereIS:
	//        75%  | 100% | 125%
	// p    | low  | med  | hig
	// 0.00 | 0.00 | 0.00 | 0.00
	// 0.25 | 0.19 | 0.25 | 0.31
	// 0.50 | 0.37 | 0.50 | 0.62
	// 0.75 | 0.56 | 0.75 | 0.94
	// 1.00 | 0.75 | 1.00 | 1.25

	currentPos := float64(sinceLast) / float64(task.runAtLeastOnceIn)

	return float32(currentPos) * priorityAsMultiplier[task.priority]
}
