package factory

import (
	"fmt"

	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type at x, y. Boss types get the
// Boss archetype and start dormant.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, exists := cfg.GetEnemyType(enemyTypeName)
	if !exists {
		return nil, fmt.Errorf("unknown enemy type %q", enemyTypeName)
	}

	var enemy *donburi.Entry
	if enemyType.Kind == "boss" {
		enemy = archetypes.Boss.Spawn(ecs)
		components.Boss.SetValue(enemy, components.BossData{})
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	w, h := float64(enemyType.CollisionWidth), float64(enemyType.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	addToSpace(ecs.World, enemy, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType, // Cache the config reference
		HomeX:      x,
	})

	initial := cfg.StatePatrol
	switch enemyType.Kind {
	case "boss":
		initial = cfg.StateDormant
	case "flier":
		initial = cfg.StateChase
	}
	components.State.SetValue(enemy, components.StateData{CurrentState: initial})

	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:    enemyType.Gravity,
		Friction:   enemyType.Friction,
		MaxSpeed:   enemyType.MaxSpeed,
		Facing:     cfg.DirectionLeft, // Start facing left
		GravityOff: enemyType.Gravity == 0,
	})
	components.Health.SetValue(enemy, components.NewHealth(enemyType.Health))

	return enemy, nil
}
