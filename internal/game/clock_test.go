package game

import (
	"testing"
	"time"
)

func TestTimerQueueFiresInOrder(t *testing.T) {
	q := newTimerQueue()
	var fired []string
	q.schedule(30*time.Millisecond, func() { fired = append(fired, "c") })
	q.schedule(10*time.Millisecond, func() { fired = append(fired, "a") })
	q.schedule(20*time.Millisecond, func() { fired = append(fired, "b") })

	q.advance(5 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("nothing is due at 5ms, fired %v", fired)
	}

	q.advance(25 * time.Millisecond)
	if got := len(fired); got != 2 {
		t.Fatalf("two timers due at 25ms, fired %d", got)
	}
	q.advance(100 * time.Millisecond)
	if want := "abc"; fired[0]+fired[1]+fired[2] != want {
		t.Errorf("fire order %v, want a,b,c", fired)
	}
	if q.pending() != 0 {
		t.Errorf("queue should be empty, %d pending", q.pending())
	}
}

func TestTimerQueueEqualDeadlinesAreFIFO(t *testing.T) {
	q := newTimerQueue()
	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		q.schedule(time.Second, func() { fired = append(fired, i) })
	}
	q.advance(time.Second)
	for i, v := range fired {
		if v != i {
			t.Fatalf("equal-deadline order %v, want schedule order", fired)
		}
	}
}

func TestTimerQueueCancel(t *testing.T) {
	q := newTimerQueue()
	ran := false
	id := q.schedule(time.Second, func() { ran = true })

	if !q.cancel(id) {
		t.Fatal("cancel of a pending timer returned false")
	}
	if q.cancel(id) {
		t.Fatal("second cancel of the same timer returned true")
	}
	q.advance(time.Minute)
	if ran {
		t.Fatal("cancelled timer fired")
	}
}

func TestTimerQueueClear(t *testing.T) {
	q := newTimerQueue()
	count := 0
	for i := 1; i <= 10; i++ {
		q.schedule(time.Duration(i)*time.Millisecond, func() { count++ })
	}
	q.clear()
	q.advance(time.Minute)
	if count != 0 {
		t.Fatalf("%d timers fired after clear", count)
	}
	if q.pending() != 0 {
		t.Fatalf("%d pending after clear", q.pending())
	}
}

func TestTimerQueueCallbackMaySchedule(t *testing.T) {
	// A firing callback rescheduling itself must not fire again in the
	// same advance when its new deadline is later than now.
	q := newTimerQueue()
	deadlines := []time.Duration{100 * time.Millisecond, 250 * time.Millisecond, 450 * time.Millisecond}
	count := 0
	var step func()
	step = func() {
		count++
		if count < len(deadlines) {
			q.schedule(deadlines[count], step)
		}
	}
	q.schedule(deadlines[0], step)

	q.advance(100 * time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d after first advance, want 1", count)
	}
	q.advance(300 * time.Millisecond)
	if count != 2 {
		t.Fatalf("count = %d after second advance, want 2", count)
	}
}

func TestTimerQueueCallbackMayCancelPeer(t *testing.T) {
	q := newTimerQueue()
	var peerRan bool
	var peer timerID
	q.schedule(10*time.Millisecond, func() { q.cancel(peer) })
	peer = q.schedule(20*time.Millisecond, func() { peerRan = true })

	q.advance(time.Second)
	if peerRan {
		t.Fatal("peer fired although an earlier callback cancelled it")
	}
}
