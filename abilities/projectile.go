package abilities

import (
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// pool reuses parked projectiles instead of spawning new ones.
type pool struct {
	items []*donburi.Entry
}

func (p *pool) get(a *Ability) *donburi.Entry {
	live := p.items[:0]
	var free *donburi.Entry
	for _, e := range p.items {
		if !e.Valid() {
			continue
		}
		live = append(live, e)
		if free == nil && !components.Projectile.Get(e).Active {
			free = e
		}
	}
	p.items = live
	if free != nil {
		return free
	}

	e := factory.CreateProjectile(a.env.ECS, a.owner)
	p.items = append(p.items, e)
	return e
}

// shoot fires one straight projectile the way the owner faces.
type shoot struct {
	speed     float64
	damage    int
	knockback float64
	airTime   float64
	pool      pool
}

func (s *shoot) activate(a *Ability) {
	c, facing := a.origin()
	p := s.pool.get(a)
	factory.LaunchProjectile(a.env.World(), p, factory.ProjectileShot{
		X:         c.X + facing*8,
		Y:         c.Y,
		VX:        s.speed * facing,
		Damage:    s.damage,
		Knockback: math.Vec2{X: s.knockback},
		HitLayer:  a.hitLayer(),
		AirTime:   s.airTime,
	})
	a.finish()
}

func (s *shoot) deactivate(*Ability) {}
func (s *shoot) cancel(*Ability)     {}

// lance throws an out-and-back lance. Only one can be in flight.
type lance struct {
	speed  float64
	rng    float64
	damage int
	stun   float64

	thrown *donburi.Entry
}

func (l *lance) activate(a *Ability) {
	if l.thrown != nil && l.thrown.Valid() {
		return
	}
	l.thrown = factory.CreateLance(a.env.ECS, a.owner, factory.LanceThrow{
		Speed:    l.speed,
		Range:    l.rng,
		Damage:   l.damage,
		Stun:     l.stun,
		HitLayer: a.hitLayer(),
	})
	a.finish()
}

func (l *lance) deactivate(*Ability) {}
func (l *lance) cancel(*Ability)     {}
