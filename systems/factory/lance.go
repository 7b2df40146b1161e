package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LanceThrow holds the tuning of a single lance throw.
type LanceThrow struct {
	Speed    float64
	Range    float64
	Damage   int
	Stun     float64
	HitLayer string
}

// CreateLance spawns a lance in front of owner, flying the way owner faces.
func CreateLance(ecs *ecs.ECS, owner *donburi.Entry, throw LanceThrow) *donburi.Entry {
	l := archetypes.Lance.Spawn(ecs)

	ownerObj := components.Object.Get(owner).Object
	facing := components.Physics.Get(owner).FacingSign()

	// Start position (offset from owner)
	width, height := 24.0, 6.0
	startX := ownerObj.X + ownerObj.W/2 + facing*10 - width/2
	startY := ownerObj.Y + ownerObj.H/2 - height/2

	obj := resolv.NewObject(startX, startY, width, height, tags.ResolvLance)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	addToSpace(ecs.World, l, obj)

	components.Physics.SetValue(l, components.PhysicsData{
		SpeedX:     throw.Speed * facing,
		MaxSpeed:   throw.Speed,
		Facing:     facing,
		GravityOff: true,
	})

	components.Lance.SetValue(l, components.LanceData{
		Owner:      owner,
		State:      components.LanceOutbound,
		MaxRange:   throw.Range,
		Speed:      throw.Speed,
		Damage:     throw.Damage,
		Stun:       throw.Stun,
		HitLayer:   throw.HitLayer,
		HitEnemies: make(map[*donburi.Entry]struct{}),
	})

	return l
}
