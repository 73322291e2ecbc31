package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-zombie-survival/internal/input"
)

// Terminals report key presses and autorepeats but never releases, so a key
// counts as held until holdFor has passed since its last report.
const holdFor = 150 * time.Millisecond

// mapKey translates a tcell key event to a game key.
func mapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.KeyW, true
		case 'a', 'A':
			return input.KeyA, true
		case 's', 'S':
			return input.KeyS, true
		case 'd', 'D':
			return input.KeyD, true
		case 'r', 'R':
			return input.KeyR, true
		}
	}
	return 0, false
}

// keyHold tracks when each key was last reported.
type keyHold struct {
	seen map[input.Key]time.Time
}

func newKeyHold() *keyHold {
	return &keyHold{seen: make(map[input.Key]time.Time)}
}

// Press records a report of k at now. It returns true when k was not already
// held, i.e. the report is a fresh key-down rather than an autorepeat.
func (h *keyHold) Press(k input.Key, now time.Time) bool {
	last, ok := h.seen[k]
	h.seen[k] = now
	return !ok || now.Sub(last) >= holdFor
}

// Apply writes the held set at now into st and forgets expired keys.
func (h *keyHold) Apply(st *input.State, now time.Time) {
	for k, last := range h.seen {
		held := now.Sub(last) < holdFor
		st.SetKey(k, held)
		if !held {
			delete(h.seen, k)
		}
	}
}
