package frame

import "errors"

type ErrBehavior uint8

const (
	// ErrBehaviorExit stops execution and returns frame error
	ErrBehaviorExit ErrBehavior = iota

	// ErrBehaviorLog logs frame error and continues with next frame
	ErrBehaviorLog

	// ErrBehaviorIgnore drops frame error silently
	ErrBehaviorIgnore
)

// ErrStopExecution can be returned from frame fn to stop executor
// without error
var ErrStopExecution = errors.New("stop execution")
