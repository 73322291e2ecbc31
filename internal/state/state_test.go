package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"go-zombie-survival/internal/input"
)

type fakeState struct {
	name string
	log  *[]string
}

func (f *fakeState) Enter() { *f.log = append(*f.log, f.name+":enter") }
func (f *fakeState) Update() { *f.log = append(*f.log, f.name+":update") }
func (f *fakeState) Draw(*ebiten.Image) { *f.log = append(*f.log, f.name+":draw") }
func (f *fakeState) Resize(width, height int) { *f.log = append(*f.log, f.name+":resize") }
func (f *fakeState) Exit() { *f.log = append(*f.log, f.name+":exit") }

func TestStateMachine(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	// No state: calls are ignored.
	sm.Update()
	sm.Draw(nil)
	sm.Resize(1, 1)

	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update()
	sm.Draw(nil)
	sm.Resize(10, 10)
	sm.SetState(b)
	if sm.Current() != b {
		t.Errorf("Expected current state b")
	}
	sm.SetState(nil)

	want := []string{"a:enter", "a:update", "a:draw", "a:resize", "a:exit", "b:enter", "b:exit"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}
}

func TestKeyBindingsCoverAllKeys(t *testing.T) {
	seen := map[input.Key]bool{}
	for _, k := range KeyBindings {
		seen[k] = true
	}
	for _, k := range []input.Key{
		input.KeyW, input.KeyA, input.KeyS, input.KeyD,
		input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight, input.KeyR,
	} {
		if !seen[k] {
			t.Errorf("Expected a binding for %v", k)
		}
	}
}
