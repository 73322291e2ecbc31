package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-zombie-survival/internal/input"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
		ok   bool
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.KeyW, true},
		{"shift d", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), input.KeyD, true},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), input.KeyR, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp, true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapKey(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Expected %v/%v, got %v/%v", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestKeyHold(t *testing.T) {
	h := newKeyHold()
	st := input.NewState(100, 100)
	t0 := time.Unix(0, 0)

	if !h.Press(input.KeyW, t0) {
		t.Errorf("Expected first report to be a key-down")
	}
	if h.Press(input.KeyW, t0.Add(50*time.Millisecond)) {
		t.Errorf("Expected autorepeat not to be a key-down")
	}

	h.Apply(st, t0.Add(100*time.Millisecond))
	if !st.Snapshot().Keys.Has(input.KeyW) {
		t.Errorf("Expected W held")
	}

	h.Apply(st, t0.Add(50*time.Millisecond+holdFor))
	if st.Snapshot().Keys.Has(input.KeyW) {
		t.Errorf("Expected W released after the hold window")
	}
	if !h.Press(input.KeyW, t0.Add(time.Second)) {
		t.Errorf("Expected a new key-down after release")
	}
}
