package factory

import (
	"math"

	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectileShot describes one launch of a straight-flying projectile.
type ProjectileShot struct {
	X, Y      float64 // Centre
	VX, VY    float64
	Damage    int
	Knockback dmath.Vec2
	HitLayer  string
	AirTime   float64
}

// CreateProjectile spawns a parked projectile owned by owner. It does not
// collide until launched.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(0, 0, config.Projectile.Width, config.Projectile.Height, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, config.Projectile.Width, config.Projectile.Height))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	components.Projectile.SetValue(p, components.ProjectileData{Owner: owner})
	components.Physics.SetValue(p, components.PhysicsData{GravityOff: true})

	return p
}

// LaunchProjectile activates a parked projectile with shot.
func LaunchProjectile(w donburi.World, p *donburi.Entry, shot ProjectileShot) {
	obj := components.Object.Get(p).Object
	obj.X = shot.X - obj.W/2
	obj.Y = shot.Y - obj.H/2

	airTime := shot.AirTime
	if airTime <= 0 {
		airTime = config.Projectile.AirTime
	}

	data := components.Projectile.Get(p)
	data.Damage = shot.Damage
	data.Knockback = shot.Knockback
	data.HitLayer = shot.HitLayer
	data.Lifetime = airTime

	physics := components.Physics.Get(p)
	physics.SetVelocity(shot.VX, shot.VY)
	physics.MaxSpeed = math.Hypot(shot.VX, shot.VY)
	if shot.VX < 0 {
		physics.Facing = config.DirectionLeft
	} else {
		physics.Facing = config.DirectionRight
	}

	if !data.Active {
		data.Active = true
		if space := GetSpace(w); space != nil {
			space.Add(obj)
		}
	}
	obj.Update()
}

// ParkProjectile takes a projectile out of play so it can be launched again.
func ParkProjectile(w donburi.World, p *donburi.Entry) {
	if !p.Valid() {
		return
	}
	data := components.Projectile.Get(p)
	if !data.Active {
		return
	}
	data.Active = false
	components.Physics.Get(p).SetVelocity(0, 0)
	if space := GetSpace(w); space != nil {
		space.Remove(components.Object.Get(p).Object)
	}
}
