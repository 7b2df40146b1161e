package ai

import (
	"log"
	"math"

	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
)

// bossGraph: Dormant -> Rising -> Active <-> Attack. The boss wakes when
// its BossData is marked awake, and cannot be stunned.
func (en *Enemy) bossGraph() *Machine {
	m := NewMachine(cfg.StateDormant)

	m.State(cfg.StateDormant, Behaviour{
		Update: func(dt float64) {
			if en.entry.HasComponent(components.Boss) && components.Boss.Get(en.entry).Awake {
				m.Fire(cfg.EventTriggered)
			}
		},
	})

	m.State(cfg.StateRising, Behaviour{
		Enter: func() {
			en.timer = en.typ.RiseDuration
			log.Printf("%s rises", en.typ.Name)
		},
		Update: func(dt float64) {
			en.timer -= dt
			if en.timer <= 0 {
				m.Fire(cfg.EventRisen)
			}
		},
	})

	m.State(cfg.StateActive, Behaviour{
		Enter: func() {
			en.stop()
			en.face()
			en.timer = en.typ.RecoverDelay
		},
		Update: func(dt float64) {
			en.timer -= dt
			if en.timer <= 0 {
				m.Fire(cfg.EventReady)
			}
		},
	})

	m.State(cfg.StateAttack, en.attackState(m, en.chooseAttack, 0))

	m.On(cfg.StateDormant, cfg.EventTriggered, cfg.StateRising).
		On(cfg.StateRising, cfg.EventRisen, cfg.StateActive).
		On(cfg.StateActive, cfg.EventReady, cfg.StateAttack).
		On(cfg.StateAttack, cfg.EventAttackEnded, cfg.StateActive)
	return m
}

func (en *Enemy) chooseAttack() int {
	names := make([]string, 0, en.ctrl.Set().Len())
	for _, a := range en.ctrl.Set().All() {
		names = append(names, a.Name())
	}
	dx, _, _ := en.toTarget()
	return en.selector.Choose(Choice{
		Options:     names,
		Turn:        en.turn,
		Distance:    math.Abs(dx),
		HealthRatio: en.healthRatio(),
	})
}
