package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Wall       = donburi.NewTag().SetName("Wall")
	Projectile = donburi.NewTag().SetName("Projectile")
	Lance      = donburi.NewTag().SetName("Lance")
	Pit        = donburi.NewTag().SetName("Pit")
	Room       = donburi.NewTag().SetName("Room")
	Trigger    = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for physics collision. The actor tags double as hit layers.
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvLance      = "Lance"
	ResolvPit        = "pit"
	ResolvRoom       = "room"
	ResolvTrigger    = "trigger"
)

// Opponent returns the hit layer an actor on layer attacks.
func Opponent(layer string) string {
	if layer == ResolvPlayer {
		return ResolvEnemy
	}
	return ResolvPlayer
}
