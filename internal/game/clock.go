package game

import (
	"container/heap"
	"time"
)

// The simulation has no runtime timers. Every delayed effect — the next
// tile selection, a warning expiry, the delayed game-over recheck — is
// an entry in this queue, keyed by its fire time on the single
// simulation clock and drained once per tick. Cancellation is removal
// from the queue, so a cancelled or reset timer can never fire late
// against fresh state.

// timerID identifies a scheduled callback for cancellation. Zero is
// never issued.
type timerID uint64

type timerEntry struct {
	id    timerID
	at    time.Duration // simulation time to fire
	fn    func()
	index int // heap index, maintained by timerHeap
}

// timerHeap is a min-heap of entries ordered by fire time, with
// schedule order as the tiebreak so equal deadlines fire FIFO.
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].id < h[j].id
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
	old[n-1] = nil // avoid memory leak
	*h = old[:n-1]
	return e
}

// timerQueue owns the scheduled callbacks. Not safe for concurrent
// use; the simulation mutates it from a single tick loop.
type timerQueue struct {
	entries timerHeap
	byID    map[timerID]*timerEntry
	nextID  timerID
}

func newTimerQueue() *timerQueue {
	return &timerQueue{byID: map[timerID]*timerEntry{}}
}

// schedule registers fn to run once the clock reaches at.
func (q *timerQueue) schedule(at time.Duration, fn func()) timerID {
	q.nextID++
	e := &timerEntry{id: q.nextID, at: at, fn: fn}
	heap.Push(&q.entries, e)
	q.byID[e.id] = e
	return e.id
}

// cancel removes a scheduled callback. Returns false if it already
// fired or was already cancelled.
func (q *timerQueue) cancel(id timerID) bool {
	e, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.entries, e.index)
	delete(q.byID, id)
	return true
}

// clear drops every scheduled callback.
func (q *timerQueue) clear() {
	q.entries = nil
	q.byID = map[timerID]*timerEntry{}
}

// pending returns the number of outstanding callbacks.
func (q *timerQueue) pending() int {
	return len(q.entries)
}

// advance fires every callback due at or before now, in fire-time
// order. Each entry is removed before its callback runs, so callbacks
// may freely schedule or cancel other timers.
func (q *timerQueue) advance(now time.Duration) {
	for len(q.entries) > 0 && q.entries[0].at <= now {
		e := heap.Pop(&q.entries).(*timerEntry)
		delete(q.byID, e.id)
		e.fn()
	}
}
