package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs.World, player, obj)

	components.Player.SetValue(player, components.PlayerData{Index: 0})
	components.State.SetValue(player, components.StateData{
		CurrentState: cfg.StateIdle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Acceleration:   cfg.Player.Acceleration,
		Gravity:        cfg.Player.Gravity,
		Friction:       cfg.Player.Friction,
		LockedFriction: cfg.Player.LockedFriction,
		MaxSpeed:       cfg.Player.MaxSpeed,
		Facing:         cfg.DirectionRight,
	})
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.Input.SetValue(player, components.InputData{
		Actions: make(map[string]components.ActionState),
	})

	return player
}
