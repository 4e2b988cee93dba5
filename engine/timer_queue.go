package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback, zero is never issued
type TimerID uint64

// timerEntry is a single pending callback
type timerEntry struct {
	id       TimerID
	deadline time.Time
	seq      uint64 // Insertion order, breaks deadline ties FIFO
	fn       func()
	index    int // Heap position
}

// timerHeap orders entries by deadline then insertion order
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// TimerQueue holds deadline-ordered callbacks with O(log n) cancellation
// Not thread-safe: owners serialize access (Loop uses a mutex, ManualScheduler is single-goroutine)
type TimerQueue struct {
	heap    timerHeap
	byID    map[TimerID]*timerEntry
	nextID  TimerID
	nextSeq uint64
}

// NewTimerQueue creates an empty queue
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{
		byID: make(map[TimerID]*timerEntry),
	}
}

// Schedule registers fn to run at deadline and returns its handle
func (q *TimerQueue) Schedule(deadline time.Time, fn func()) TimerID {
	q.nextID++
	q.nextSeq++
	e := &timerEntry{
		id:       q.nextID,
		deadline: deadline,
		seq:      q.nextSeq,
		fn:       fn,
	}
	heap.Push(&q.heap, e)
	q.byID[e.id] = e
	return e.id
}

// Cancel removes a pending callback, returns false if it already fired or was cancelled
func (q *TimerQueue) Cancel(id TimerID) bool {
	e, ok := q.byID[id]
	if !ok {
		return false
	}
	delete(q.byID, id)
	heap.Remove(&q.heap, e.index)
	return true
}

// PopDue removes and returns the earliest callback whose deadline is not after now
func (q *TimerQueue) PopDue(now time.Time) (func(), bool) {
	if len(q.heap) == 0 || q.heap[0].deadline.After(now) {
		return nil, false
	}
	e := heap.Pop(&q.heap).(*timerEntry)
	delete(q.byID, e.id)
	return e.fn, true
}

// Next returns the earliest pending deadline
func (q *TimerQueue) Next() (time.Time, bool) {
	if len(q.heap) == 0 {
		return time.Time{}, false
	}
	return q.heap[0].deadline, true
}

// Len returns the number of pending callbacks
func (q *TimerQueue) Len() int {
	return len(q.heap)
}

// Clear drops every pending callback
func (q *TimerQueue) Clear() {
	q.heap = nil
	q.byID = make(map[TimerID]*timerEntry)
}
