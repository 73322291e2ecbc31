// Package engine drives a Frame from the host's frame scheduling primitive.
package engine

import "time"

// Frame is what the loop drives each tick.
type Frame interface {
	Update(deltaTime float64)
	Render()
}

// Scheduler is the host's animation-frame primitive: RequestFrame queues cb to
// run once on the next host frame with that frame's timestamp.
type Scheduler interface {
	RequestFrame(cb func(timestamp time.Duration))
	Now() time.Duration
}

// Loop calls Update then Render once per scheduled frame, with deltaTime in
// seconds measured between successive frame timestamps. There is no clamping
// and no catch-up: a slow frame just yields a larger deltaTime.
type Loop struct {
	frame   Frame
	sched   Scheduler
	running bool
	pending bool
	last    time.Duration
	ticks   uint64
}

func NewLoop(frame Frame, sched Scheduler) *Loop {
	return &Loop{frame: frame, sched: sched}
}

// Start begins driving the frame. The first tick measures its delta against
// the moment Start was called. Calling Start while a frame request is still
// outstanding only resets the reference timestamp.
func (l *Loop) Start() {
	l.running = true
	l.last = l.sched.Now()
	if !l.pending {
		l.pending = true
		l.sched.RequestFrame(l.tick)
	}
}

// Stop halts the loop. A frame already queued observes the flag and returns
// without touching state; a tick already in progress still completes.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop is started. Used by tests to inspect the
// lifecycle.
func (l *Loop) Running() bool { return l.running }

// Ticks returns how many ticks have run since the loop was created.
func (l *Loop) Ticks() uint64 { return l.ticks }

func (l *Loop) tick(ts time.Duration) {
	l.pending = false
	if !l.running {
		return
	}

	deltaTime := (ts - l.last).Seconds()
	l.last = ts
	l.ticks++

	l.frame.Update(deltaTime)
	l.frame.Render()

	l.pending = true
	l.sched.RequestFrame(l.tick)
}
