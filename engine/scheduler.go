package engine

import "time"

// Scheduler runs callbacks after a delay on a single logical thread
// Implementations guarantee that callbacks never run concurrently with each other
type Scheduler interface {
	TimeProvider

	// After arms fn to run once d has elapsed
	After(d time.Duration, fn func()) TimerID

	// Cancel disarms a pending callback, returns false if it already ran
	Cancel(id TimerID) bool
}
