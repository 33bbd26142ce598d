package frame

import (
	"runtime"
	"time"
)

// NewDefaultTaskGarbageCollect moves GC pauses into frame spare time,
// so they not steal budget of the next frame
func NewDefaultTaskGarbageCollect() *Task {
	return NewTask(
		func() {
			runtime.GC()
			runtime.Gosched()
		},
		WithPriority(TaskPriorityLow),
		WithRunAtLeastOnceIn(time.Second*5),
		WithRunAtMostOnceIn(time.Millisecond*100),
	)
}
