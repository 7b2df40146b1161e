package components

import "github.com/yohamta/donburi"

// PitData kills any living thing that touches it.
type PitData struct{}

var Pit = donburi.NewComponentType[PitData]()

// RoomData tracks the enemies placed inside an arena room.
type RoomData struct {
	Name      string
	Remaining int
	Cleared   bool
}

var Room = donburi.NewComponentType[RoomData]()

// TriggerData fires once when the player overlaps it.
type TriggerData struct {
	Name  string
	Fired bool
}

var Trigger = donburi.NewComponentType[TriggerData]()
