package systems

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateDeaths interrupts characters whose health ran out and removes
// defeated enemies once their death timer expires. Players stay in the
// world; the encounter decides what a dead player means.
func NewUpdateDeaths(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		var fallen []*donburi.Entry
		components.Health.Each(ecs.World, func(e *donburi.Entry) {
			if components.Health.Get(e).Alive || e.HasComponent(components.Death) {
				return
			}
			fallen = append(fallen, e)
		})
		for _, e := range fallen {
			startDeath(e)
		}

		var toRemove []*donburi.Entry
		components.Death.Each(ecs.World, func(e *donburi.Entry) {
			if e.HasComponent(tags.Player) {
				return
			}
			death := components.Death.Get(e)
			death.Timer -= dt
			if death.Timer <= 0 {
				toRemove = append(toRemove, e)
			}
		})
		for _, e := range toRemove {
			removeCharacter(ecs, e)
		}
	}
}

func startDeath(e *donburi.Entry) {
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathDelay})

	if e.HasComponent(components.Brain) {
		if actor := components.Brain.Get(e).Actor; actor != nil {
			actor.Interrupt()
		}
	}
	if e.HasComponent(components.State) {
		components.State.Get(e).Enter(cfg.StateDead)
	}
	if e.HasComponent(components.Physics) {
		p := components.Physics.Get(e)
		p.MoveAxis = 0
		p.SetMovementLock(false)
		p.SetFriction(false)
		p.SetGravity(true)
	}
}

func removeCharacter(ecs *ecs.ECS, e *donburi.Entry) {
	if space := factory.GetSpace(ecs.World); space != nil {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
