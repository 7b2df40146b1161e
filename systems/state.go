package systems

import (
	"github.com/automoto/doomerang-combat/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateStates advances the time every character has spent in its
// current state.
func NewUpdateStates(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		components.State.Each(ecs.World, func(e *donburi.Entry) {
			components.State.Get(e).StateTimer += dt
		})
	}
}
