package systems

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateActors lets every living character's brain decide what to do
// this tick.
func NewUpdateActors(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		var actors []components.Actor
		components.Brain.Each(ecs.World, func(e *donburi.Entry) {
			if !combat.CheckIsAlive(e) {
				return
			}
			if a := components.Brain.Get(e).Actor; a != nil {
				actors = append(actors, a)
			}
		})
		// Actors may spawn or remove entries, so they run after the query.
		for _, a := range actors {
			a.Update(dt)
		}
	}
}
