package components

import (
	"github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grunt", "Flier", "Warden" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Patrol anchor; ground enemies wander back here when they lose the player
	HomeX float64

	// Room the enemy was placed in, empty when outside any room
	Room string
}

var Enemy = donburi.NewComponentType[EnemyData]()

// BossData marks the encounter boss.
type BossData struct {
	Awake bool
}

var Boss = donburi.NewComponentType[BossData]()
