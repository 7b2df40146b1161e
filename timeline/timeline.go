// Package timeline is a simulated clock that runs continuations after
// timed waits. Every timed sequence in combat (wind-ups, wind-downs,
// cooldowns, channel ticks) is a chain of Schedule calls.
package timeline

import "container/heap"

// Handle identifies a scheduled continuation. The zero Handle is never issued.
type Handle uint64

// epsilon absorbs float drift from chained waits so a continuation due at
// 0.15 still fires when the clock reaches 0.1 + 0.05.
const epsilon = 1e-9

type entry struct {
	handle Handle
	due    float64
	seq    uint64
	fn     func()
	index  int
}

type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Timeline is single-threaded; callers advance it from the simulation tick.
type Timeline struct {
	now     float64
	seq     uint64
	pending queue
	live    map[Handle]*entry
}

func New() *Timeline {
	return &Timeline{
		live: make(map[Handle]*entry),
	}
}

// Now returns the simulated time in seconds. Inside a continuation it
// reports that continuation's due time.
func (t *Timeline) Now() float64 {
	return t.now
}

// Schedule runs fn once duration seconds from now. Negative durations are
// treated as zero.
func (t *Timeline) Schedule(duration float64, fn func()) Handle {
	if duration < 0 {
		duration = 0
	}
	t.seq++
	e := &entry{
		handle: Handle(t.seq),
		due:    t.now + duration,
		seq:    t.seq,
		fn:     fn,
	}
	heap.Push(&t.pending, e)
	t.live[e.handle] = e
	return e.handle
}

// Cancel stops a continuation from running. Unknown, fired and already
// cancelled handles are ignored.
func (t *Timeline) Cancel(h Handle) {
	e, ok := t.live[h]
	if !ok {
		return
	}
	delete(t.live, h)
	if e.index >= 0 {
		heap.Remove(&t.pending, e.index)
	}
}

// Pending reports whether h is still waiting to fire.
func (t *Timeline) Pending(h Handle) bool {
	_, ok := t.live[h]
	return ok
}

// Remaining returns the seconds until h fires, or 0 if it is not pending.
func (t *Timeline) Remaining(h Handle) float64 {
	e, ok := t.live[h]
	if !ok {
		return 0
	}
	if r := e.due - t.now; r > 0 {
		return r
	}
	return 0
}

// Len returns the number of pending continuations.
func (t *Timeline) Len() int {
	return len(t.live)
}

// Advance moves the clock forward by dt, firing everything that falls due in
// (due, schedule order). Continuations scheduled while advancing fire in the
// same call if they fall due inside the window.
func (t *Timeline) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	for len(t.pending) > 0 {
		next := t.pending[0]
		if next.due > target+epsilon {
			break
		}
		heap.Pop(&t.pending)
		delete(t.live, next.handle)
		if next.due > t.now {
			t.now = next.due
		}
		next.fn()
	}
	t.now = target
}
