package systems

import (
	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/shared/gamemath"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// catchDistance is how close the returning lance must come to its owner's
// centre to be caught even without touching.
const catchDistance = 4.0

// NewUpdateLances flies lances out to their range and back to the thrower,
// dragging whatever they struck along with them.
func NewUpdateLances(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		var caught []*donburi.Entry
		components.Lance.Each(ecs.World, func(e *donburi.Entry) {
			l := components.Lance.Get(e)
			physics := components.Physics.Get(e)
			obj := components.Object.Get(e).Object

			if l.Owner == nil || !l.Owner.Valid() {
				caught = append(caught, e)
				return
			}

			switch l.State {
			case components.LanceOutbound:
				l.DistanceTraveled += l.Speed * dt
				if l.DistanceTraveled >= l.MaxRange {
					switchToInbound(l)
				}
			case components.LanceInbound:
				steerHome(l, physics, obj)
			}

			dx, dy := physics.SpeedX*dt, physics.SpeedY*dt
			obj.X += dx
			obj.Y += dy
			obj.Update()
			drag(l, dx, dy)

			if checkLanceCollisions(ecs.World, e, l, obj) {
				caught = append(caught, e)
			}
		})

		for _, e := range caught {
			destroyLance(ecs, e)
		}
	}
}

func switchToInbound(l *components.LanceData) {
	if l.State == components.LanceInbound {
		return
	}
	l.State = components.LanceInbound
	// Targets already struck stay struck for the rest of the throw.
}

func steerHome(l *components.LanceData, physics *components.PhysicsData, obj *resolv.Object) {
	owner := components.Object.Get(l.Owner)
	target := owner.Center()
	vx, vy := gamemath.HomingVelocity(obj.X+obj.W/2, obj.Y+obj.H/2, target.X, target.Y, l.Speed)
	physics.SetVelocity(vx, vy)
	if vx < 0 {
		physics.Facing = -1
	} else if vx > 0 {
		physics.Facing = 1
	}
}

// drag moves every struck target by the lance's displacement.
func drag(l *components.LanceData, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, t := range l.Dragged {
		if !t.Valid() || !combat.CheckIsAlive(t) {
			continue
		}
		obj := components.Object.Get(t).Object
		obj.X += dx
		obj.Y += dy
		obj.Update()
	}
}

// checkLanceCollisions strikes new targets and reports whether the lance
// was caught.
func checkLanceCollisions(w donburi.World, e *donburi.Entry, l *components.LanceData, obj *resolv.Object) bool {
	owner := components.Object.Get(l.Owner)
	if l.State == components.LanceInbound {
		c := owner.Center()
		if arena.Touching(obj, owner.Object) || gamemath.Distance(obj.X+obj.W/2, obj.Y+obj.H/2, c.X, c.Y) <= catchDistance {
			return true
		}
	}

	check := obj.Check(0, 0, tags.ResolvSolid, l.HitLayer)
	if check == nil {
		return false
	}

	if l.State == components.LanceOutbound {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if arena.Touching(obj, solid) {
				switchToInbound(l)
				break
			}
		}
	}

	for _, target := range check.ObjectsByTags(l.HitLayer) {
		if !arena.Touching(obj, target) {
			continue
		}
		t, ok := target.Data.(*donburi.Entry)
		if !ok || t == nil || !t.Valid() || t == l.Owner {
			continue
		}
		if _, alreadyHit := l.HitEnemies[t]; alreadyHit {
			continue
		}
		l.HitEnemies[t] = struct{}{}

		combat.TakeDamage(w, t, combat.DamageEvent{
			Damage:   l.Damage,
			Attacker: l.Owner,
			Source:   e,
		})
		if !combat.CheckIsAlive(t) {
			continue
		}
		combat.Stagger(w, t, l.Stun)
		if !t.HasComponent(components.Boss) {
			l.Dragged = append(l.Dragged, t)
		}
	}
	return false
}

func destroyLance(ecs *ecs.ECS, e *donburi.Entry) {
	if space := factory.GetSpace(ecs.World); space != nil {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
