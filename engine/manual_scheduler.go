package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by explicit Advance calls
// Time only moves when the caller advances it, callbacks run on the caller's goroutine
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	queue *TimerQueue
}

// NewManualScheduler creates a scheduler whose clock starts at startTime
func NewManualScheduler(startTime time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:   startTime,
		queue: NewTimerQueue(),
	}
}

// Now returns the current virtual time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After arms fn relative to the current virtual time
func (m *ManualScheduler) After(d time.Duration, fn func()) TimerID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < 0 {
		d = 0
	}
	return m.queue.Schedule(m.now.Add(d), fn)
}

// Cancel disarms a pending callback
func (m *ManualScheduler) Cancel(id TimerID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Cancel(id)
}

// Pending returns the number of armed callbacks
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queue.Len()
}

// Advance moves virtual time forward by d, firing due callbacks in deadline order
// The clock is stepped to each deadline before its callback runs, so callbacks observe their own fire time
// Returns the number of callbacks fired
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		next, ok := m.queue.Next()
		if !ok || next.After(target) {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		if next.After(m.now) {
			m.now = next
		}
		fn, _ := m.queue.PopDue(m.now)
		m.mu.Unlock()

		fn()
		fired++
	}
}

// RunPending fires everything already due without moving the clock
func (m *ManualScheduler) RunPending() int {
	return m.Advance(0)
}
