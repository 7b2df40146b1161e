package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Index int
}

var Player = donburi.NewComponentType[PlayerData]()
