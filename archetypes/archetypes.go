package archetypes

import (
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Input,
		components.Brain,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Brain,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Boss,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Brain,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Lance = newArchetype(
		tags.Lance,
		components.Lance,
		components.Object,
		components.Physics,
	)
	Pit = newArchetype(
		tags.Pit,
		components.Pit,
		components.Object,
	)
	Room = newArchetype(
		tags.Room,
		components.Room,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.Bounds,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
