package systems

import (
	"math"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/shared/gamemath"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var characters = donburi.NewQuery(filter.And(
	filter.Or(filter.Contains(tags.Player), filter.Contains(tags.Enemy)),
	filter.Contains(components.Physics, components.Object),
))

// NewUpdateMovement integrates character velocities over a dt-second tick
// and resolves them against solids.
func NewUpdateMovement(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		characters.Each(ecs.World, func(e *donburi.Entry) {
			physics := components.Physics.Get(e)
			obj := components.Object.Get(e).Object
			stepCharacter(e, physics, obj, dt)
		})
	}
}

func stepCharacter(e *donburi.Entry, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	alive := true
	if e.HasComponent(components.Health) {
		hp := components.Health.Get(e)
		alive = hp.Alive
		if kb, ok := combat.ConsumeKnockback(hp); ok {
			physics.SpeedX = kb.X
			physics.SpeedY = kb.Y + cfg.Combat.KnockbackUpwardForce
			physics.OnGround = false
		}
	}

	steer := 0.0
	if alive && !physics.InputLocked {
		steer = physics.MoveAxis
		if steer != 0 {
			physics.Facing = gamemath.Sign(steer)
		}
	}

	// Locked bodies keep the velocity an ability gave them unless the
	// ability asked for friction.
	switch {
	case physics.ExtraFriction:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.LockedFriction*dt)
	case steer != 0:
		physics.SpeedX = gamemath.Accelerate(physics.SpeedX, steer, physics.Acceleration*dt, physics.MaxSpeed*math.Abs(steer))
	case !physics.InputLocked:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction*dt)
	}

	if !physics.GravityOff {
		physics.SpeedY += physics.Gravity * dt
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
	}

	resolveHorizontal(physics, obj, physics.SpeedX*dt)
	resolveVertical(physics, obj, physics.SpeedY*dt)
	obj.Update()
}

func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			// Only walls beside the body stop it; the floor it stands on
			// shares cells but not rows.
			if obj.Y+obj.H > solid.Y && obj.Y < solid.Y+solid.H {
				dx = check.ContactWithObject(solid).X()
				physics.SpeedX = 0
				break
			}
		}
	}
	obj.X += dx
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := obj.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			obj.Y += check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
			physics.OnGround = dy >= 0
			return
		}
	}

	physics.OnGround = false
	obj.Y += dy
}
