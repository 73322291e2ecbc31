package engine

import "time"

// FrameQueue is a Scheduler fed by the host: the host calls Fire once per
// frame and every callback requested before that call runs with the frame's
// timestamp. Callbacks requested while firing wait for the next Fire.
type FrameQueue struct {
	clock   func() time.Duration
	pending []func(time.Duration)
	spare   []func(time.Duration)
}

func NewFrameQueue(clock func() time.Duration) *FrameQueue {
	return &FrameQueue{clock: clock}
}

func (q *FrameQueue) RequestFrame(cb func(time.Duration)) {
	q.pending = append(q.pending, cb)
}

func (q *FrameQueue) Now() time.Duration { return q.clock() }

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Fire runs the queued callbacks with timestamp ts.
func (q *FrameQueue) Fire(ts time.Duration) {
	batch := q.pending
	q.pending = q.spare[:0]
	for _, cb := range batch {
		cb(ts)
	}
	q.spare = batch[:0]
}

// FireNow runs the queued callbacks with the clock's current time.
func (q *FrameQueue) FireNow() {
	q.Fire(q.clock())
}

// WallClock returns a clock measuring time elapsed since start.
func WallClock(start time.Time) func() time.Duration {
	return func() time.Duration { return time.Since(start) }
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.now }

func (c *ManualClock) Advance(d time.Duration) { c.now += d }
