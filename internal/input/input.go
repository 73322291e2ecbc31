// Package input holds the host-written input state the simulation reads once
// per tick.
//
// Host event handlers may only touch the fields exposed through State's
// mutators (pressed keys, pointer position, canvas size). Everything runs on
// the host's frame goroutine, so State carries no lock; hosts that receive
// events on another goroutine must forward them to the frame goroutine first.
package input

// Key is a key binding the simulation or its host cares about.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	keyCount
)

var keyNames = [...]string{"w", "a", "s", "d", "up", "down", "left", "right", "r"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a key name (as printed by String) to a Key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return 0, false
}

// KeySet is a set of pressed keys.
type KeySet uint16

func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

func (s KeySet) With(k Key) KeySet { return s | 1<<k }

func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Snapshot is the input state as seen by one tick.
type Snapshot struct {
	Keys               KeySet
	PointerX, PointerY float64 // canvas-local pixels
	Width, Height      float64 // canvas size in pixels
}

// Source is what the simulation reads input from.
type Source interface {
	Snapshot() Snapshot
}

// State is the live input state written by host event handlers.
type State struct {
	snap Snapshot
}

// NewState returns a State for a canvas of the given size with the pointer at
// the origin and no keys held.
func NewState(width, height float64) *State {
	return &State{snap: Snapshot{Width: width, Height: height}}
}

func (s *State) Press(k Key) { s.snap.Keys = s.snap.Keys.With(k) }

func (s *State) Release(k Key) { s.snap.Keys = s.snap.Keys.Without(k) }

// SetKey presses or releases k.
func (s *State) SetKey(k Key, down bool) {
	if down {
		s.Press(k)
	} else {
		s.Release(k)
	}
}

// MoveTo records the last known pointer position.
func (s *State) MoveTo(x, y float64) {
	s.snap.PointerX, s.snap.PointerY = x, y
}

// Resize records the canvas size.
func (s *State) Resize(width, height float64) {
	s.snap.Width, s.snap.Height = width, height
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot { return s.snap }
