package ai

import (
	"math"

	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
)

// spacingTimeout bounds how long an enemy tries to back off before it
// gives up and chases again.
const spacingTimeout = 1.5

// groundGraph: Patrol -> Chase -> Attack -> Spacing -> Chase, with Stunned
// reachable from anywhere.
func (en *Enemy) groundGraph() *Machine {
	m := NewMachine(cfg.StatePatrol)

	m.State(cfg.StatePatrol, Behaviour{
		Update: func(dt float64) {
			if dx, _, ok := en.toTarget(); ok && math.Abs(dx) <= en.typ.ChaseRange {
				m.Fire(cfg.EventPlayerSpotted)
				return
			}
			en.walkHome()
		},
	})

	m.State(cfg.StateChase, Behaviour{
		Update: func(dt float64) {
			dx, _, ok := en.toTarget()
			if !ok || math.Abs(dx) > en.typ.ChaseRange*cfg.Enemy.HysteresisMultiplier {
				m.Fire(cfg.EventPlayerLost)
				return
			}
			if math.Abs(dx) <= en.typ.AttackRange {
				m.Fire(cfg.EventInRange)
				return
			}
			en.steer(dx, en.typ.ChaseSpeed)
		},
		Exit: en.stop,
	})

	m.State(cfg.StateAttack, en.attackState(m, func() int { return 0 }, 0))

	m.State(cfg.StateSpacing, Behaviour{
		Enter: func() {
			en.timer = spacingTimeout
			dx, _, _ := en.toTarget()
			x, _ := en.center()
			// Back off to the side of the target we are already on.
			if dx > 0 {
				en.spacingX = x + dx - en.typ.SpacingDistance
			} else {
				en.spacingX = x + dx + en.typ.SpacingDistance
			}
		},
		Update: func(dt float64) {
			en.timer -= dt
			x, _ := en.center()
			if math.Abs(en.spacingX-x) <= arriveDistance || en.timer <= 0 {
				m.Fire(cfg.EventSpacingIsGood)
				return
			}
			en.steer(en.spacingX-x, en.typ.ChaseSpeed)
		},
		Exit: func() {
			en.stop()
			en.face()
		},
	})

	m.State(cfg.StateStunned, en.stunnedState(m))

	m.On(cfg.StatePatrol, cfg.EventPlayerSpotted, cfg.StateChase).
		On(cfg.StateChase, cfg.EventPlayerLost, cfg.StatePatrol).
		On(cfg.StateChase, cfg.EventInRange, cfg.StateAttack).
		On(cfg.StateAttack, cfg.EventAttackEnded, cfg.StateSpacing).
		On(cfg.StateSpacing, cfg.EventSpacingIsGood, cfg.StateChase).
		On(AnyState, cfg.EventStunned, cfg.StateStunned).
		On(cfg.StateStunned, cfg.EventRecovered, cfg.StateChase)
	return m
}

// walkHome drifts back to the patrol anchor.
func (en *Enemy) walkHome() {
	home := components.Enemy.Get(en.entry).HomeX
	x := components.Object.Get(en.entry).X
	if math.Abs(home-x) <= arriveDistance {
		en.stop()
		return
	}
	en.steer(home-x, en.typ.ChaseSpeed/2)
}

// attackState faces the target, runs the ability chosen by pick and waits
// for it. The wait is never shorter than minWait.
func (en *Enemy) attackState(m *Machine, pick func() int, minWait float64) Behaviour {
	return Behaviour{
		Enter: func() {
			en.stop()
			en.face()
			en.timer = math.Max(en.attack(pick()), minWait)
			en.turn++
		},
		Update: func(dt float64) {
			en.timer -= dt
			if en.timer <= 0 {
				m.Fire(cfg.EventAttackEnded)
			}
		},
	}
}

func (en *Enemy) stunnedState(m *Machine) Behaviour {
	return Behaviour{
		Enter: func() {
			en.stop()
			en.timer = en.stunFor
			p := en.physics()
			if en.typ.StunLift != 0 && p.OnGround {
				p.SpeedY = en.typ.StunLift
			}
		},
		Update: func(dt float64) {
			en.timer -= dt
			if en.timer <= 0 {
				m.Fire(cfg.EventRecovered)
			}
		},
	}
}
