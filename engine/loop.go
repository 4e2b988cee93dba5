package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/whack-a-mole/core"
)

// DefaultLoopResolution is the timer polling granularity of a Loop
const DefaultLoopResolution = 5 * time.Millisecond

// postBuffer bounds queued external work (input, lifecycle commands)
const postBuffer = 64

// Loop is the real-time Scheduler: a single goroutine that fires due timers and runs posted work
// Every callback and every posted function executes on the loop goroutine, one at a time
type Loop struct {
	clock      TimeProvider
	resolution time.Duration

	mu    sync.Mutex
	queue *TimerQueue

	posts chan func()

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Iteration counter for debugging and metrics
	tickCount atomic.Uint64
}

// NewLoop creates a loop polling its timers every resolution
func NewLoop(clock TimeProvider, resolution time.Duration) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if resolution <= 0 {
		resolution = DefaultLoopResolution
	}
	return &Loop{
		clock:      clock,
		resolution: resolution,
		queue:      NewTimerQueue(),
		posts:      make(chan func(), postBuffer),
		stopChan:   make(chan struct{}),
	}
}

// Now returns the loop clock time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// After arms fn to run on the loop goroutine once d has elapsed
func (l *Loop) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Schedule(l.clock.Now().Add(d), fn)
}

// Cancel disarms a pending callback
func (l *Loop) Cancel(id TimerID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Cancel(id)
}

// Post queues fn to run on the loop goroutine, returns false once the loop is stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Start begins the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop halts the loop and drops pending timers, blocks until the goroutine exits
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
		}
		l.mu.Lock()
		l.queue.Clear()
		l.mu.Unlock()
	})
}

// Ticks returns the number of loop iterations executed
func (l *Loop) Ticks() uint64 {
	return l.tickCount.Load()
}

// run is the loop body
func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.tickCount.Add(1)
		}
		l.fireDue()
	}
}

// fireDue runs every callback whose deadline has passed
// The mutex is released around each callback so callbacks can re-arm timers
func (l *Loop) fireDue() {
	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		l.mu.Lock()
		fn, ok := l.queue.PopDue(l.clock.Now())
		l.mu.Unlock()
		if !ok {
			return
		}
		fn()
	}
}
