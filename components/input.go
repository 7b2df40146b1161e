package components

import "github.com/yohamta/donburi"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the per-tick input state of a player. Actions are keyed by
// ability name.
type InputData struct {
	MoveAxis float64
	Actions  map[string]ActionState
}

// Press marks name as held, raising JustPressed on the edge.
func (in *InputData) Press(name string) {
	if in.Actions == nil {
		in.Actions = make(map[string]ActionState)
	}
	s := in.Actions[name]
	if !s.Pressed {
		s.JustPressed = true
	}
	s.Pressed = true
	in.Actions[name] = s
}

// Release marks name as up, raising JustReleased on the edge.
func (in *InputData) Release(name string) {
	if in.Actions == nil {
		return
	}
	s := in.Actions[name]
	if s.Pressed {
		s.JustReleased = true
	}
	s.Pressed = false
	in.Actions[name] = s
}

// ClearEdges drops the JustPressed/JustReleased flags at the end of a tick.
func (in *InputData) ClearEdges() {
	for name, s := range in.Actions {
		s.JustPressed = false
		s.JustReleased = false
		in.Actions[name] = s
	}
}

var Input = donburi.NewComponentType[InputData]()
