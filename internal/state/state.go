// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the windowed host.
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Exit()
}

// StateMachine forwards host callbacks to the current state.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state or nil. Used by tests.
func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func (sm *StateMachine) Resize(width, height int) {
	if sm.current != nil {
		sm.current.Resize(width, height)
	}
}
