package components

import (
	"github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
)

// StateData mirrors the actor's behaviour graph node for systems and logs.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // Seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

// Enter switches to id and restarts the timer. Re-entering the current state
// is a no-op.
func (s *StateData) Enter(id config.StateID) {
	if s.CurrentState == id {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = id
	s.StateTimer = 0
}
