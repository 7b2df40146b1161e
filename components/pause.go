package components

import "github.com/yohamta/donburi"

// PauseReason records what paused the simulation.
type PauseReason int

const (
	PauseManual PauseReason = iota
	PauseAbilityMenu
)

// PauseData stores the pause state of the simulation.
type PauseData struct {
	IsPaused bool
	Reason   PauseReason
}

var Pause = donburi.NewComponentType[PauseData]()
