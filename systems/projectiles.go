package systems

import (
	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateProjectiles moves every launched projectile and parks the ones
// that hit something, expire or leave the arena.
func NewUpdateProjectiles(dt float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		bounds, hasBounds := factory.GetBounds(ecs.World)

		var toPark []*donburi.Entry
		components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
			data := components.Projectile.Get(e)
			if !data.Active {
				return
			}

			data.Lifetime -= dt
			if data.Lifetime <= 0 {
				toPark = append(toPark, e)
				return
			}

			physics := components.Physics.Get(e)
			obj := components.Object.Get(e).Object
			obj.X += physics.SpeedX * dt
			obj.Y += physics.SpeedY * dt
			obj.Update()

			if hasBounds && bounds.Outside(obj.X, obj.Y, obj.W, obj.H, cfg.Projectile.OffscreenSlack) {
				toPark = append(toPark, e)
				return
			}

			if checkProjectileCollisions(ecs.World, e, data, obj) {
				toPark = append(toPark, e)
			}
		})

		for _, p := range toPark {
			factory.ParkProjectile(ecs.World, p)
		}
	}
}

// checkProjectileCollisions reports whether the projectile is spent.
func checkProjectileCollisions(w donburi.World, e *donburi.Entry, data *components.ProjectileData, obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, data.HitLayer)
	if check == nil {
		return false
	}

	hit := false
	for _, target := range check.ObjectsByTags(data.HitLayer) {
		if !arena.Touching(obj, target) {
			continue
		}
		targetEntry, ok := target.Data.(*donburi.Entry)
		if !ok || targetEntry == nil || !targetEntry.Valid() || targetEntry == data.Owner {
			continue
		}
		if !combat.CheckIsAlive(targetEntry) {
			continue
		}
		combat.TakeDamage(w, targetEntry, combat.DamageEvent{
			Damage:    data.Damage,
			Attacker:  data.Owner,
			Source:    e,
			Knockback: data.Knockback,
		})
		hit = true
	}
	if hit {
		return true
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if arena.Touching(obj, solid) {
			return true
		}
	}
	return false
}
