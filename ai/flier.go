package ai

import (
	"math"

	cfg "github.com/automoto/doomerang-combat/config"
)

// flierGraph: Chase <-> Attack, plus Stunned. The flier holds a band of
// distance from the target and only shoots when level with it.
func (en *Enemy) flierGraph() *Machine {
	m := NewMachine(cfg.StateChase)

	m.State(cfg.StateChase, Behaviour{
		Update: func(dt float64) {
			dx, dy, ok := en.toTarget()
			if !ok {
				en.stop()
				return
			}
			if en.flierInRange(dx, dy) {
				m.Fire(cfg.EventInRange)
				return
			}
			en.hover(dx, dy)
		},
		Exit: en.stop,
	})

	m.State(cfg.StateAttack, en.attackState(m, func() int { return 0 }, en.typ.RecoverDelay))
	m.State(cfg.StateStunned, en.stunnedState(m))

	m.On(cfg.StateChase, cfg.EventInRange, cfg.StateAttack).
		On(cfg.StateAttack, cfg.EventAttackEnded, cfg.StateChase).
		On(AnyState, cfg.EventStunned, cfg.StateStunned).
		On(cfg.StateStunned, cfg.EventRecovered, cfg.StateChase)
	return m
}

func (en *Enemy) flierInRange(dx, dy float64) bool {
	dist := math.Hypot(dx, dy)
	return dist <= en.typ.AttackRange &&
		dist >= en.typ.MinAttackRange &&
		math.Abs(dy) <= en.typ.AttackBand
}

// hover closes in when too far, backs off when too close, and otherwise
// lines up vertically with the target.
func (en *Enemy) hover(dx, dy float64) {
	dist := math.Hypot(dx, dy)
	p := en.physics()

	switch {
	case dist > en.typ.AttackRange:
		en.steer(dx, en.typ.ChaseSpeed*math.Abs(dx)/dist)
		p.SpeedY = en.typ.ChaseSpeed * dy / dist
	case dist < en.typ.MinAttackRange:
		en.steer(-dx, en.typ.ChaseSpeed)
		p.SpeedY = clampAbs(dy, en.typ.ChaseSpeed)
	default:
		en.steer(0, 0)
		p.SpeedY = clampAbs(dy*4, en.typ.ChaseSpeed)
	}
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
