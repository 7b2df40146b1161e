package abilities

import (
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

// rain drops a curtain of projectiles, either from above the owner or
// sweeping in from behind it. The direction is picked at random.
type rain struct {
	count     int
	offset    float64
	spread    float64
	speed     float64
	damage    int
	knockback float64
	airTime   float64
	pool      pool
}

func (r *rain) activate(a *Ability) {
	c, facing := a.origin()
	fromAbove := a.env.Rand.Intn(2) == 1

	for i := 0; i < r.count; i++ {
		side := 1.0
		if i%2 == 0 {
			side = -1
		}
		fan := side * r.spread * float64(i)

		shot := factory.ProjectileShot{
			Damage:   r.damage,
			HitLayer: a.hitLayer(),
			AirTime:  r.airTime,
		}
		if fromAbove {
			shot.X, shot.Y = c.X+fan, c.Y-r.offset
			shot.VY = r.speed
			shot.Knockback = math.Vec2{Y: r.knockback}
		} else {
			shot.X, shot.Y = c.X-facing*r.offset, c.Y+fan
			shot.VX = facing * r.speed
			shot.Knockback = math.Vec2{X: r.knockback}
		}
		factory.LaunchProjectile(a.env.World(), r.pool.get(a), shot)
	}
	a.finish()
}

func (r *rain) deactivate(*Ability) {}
func (r *rain) cancel(*Ability)     {}
