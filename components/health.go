package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HealthData struct {
	Current int
	Max     int
	Alive   bool

	// Blocking is raised by a block ability; incoming attacks from the front
	// are negated while it is set.
	Blocking bool

	// PendingKnockback is consumed by the movement system on the next tick.
	PendingKnockback math.Vec2
	HasKnockback     bool
}

// NewHealth returns a living HealthData at full health.
func NewHealth(max int) HealthData {
	return HealthData{Current: max, Max: max, Alive: true}
}

var Health = donburi.NewComponentType[HealthData]()
