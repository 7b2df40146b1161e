package abilities

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-combat/attack"
	"github.com/automoto/doomerang-combat/combo"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
)

var (
	ErrUnknownAbility = errors.New("unknown ability")
	ErrNoSpawnPoints  = errors.New("no spawn points to summon at")
)

// New builds the ability described by spec.
func New(spec config.AbilitySpec, env *Env) (*Ability, error) {
	if err := config.ValidateAbility(spec); err != nil {
		return nil, fmt.Errorf("ability %q: %w", spec.Name, err)
	}

	a := &Ability{
		name:     spec.Name,
		kind:     spec.Kind,
		cooldown: spec.Cooldown,
		layer:    spec.HitLayer,
		env:      env,
	}

	switch spec.Kind {
	case config.KindMelee:
		m, err := newMeleeCombo(spec, a)
		if err != nil {
			return nil, fmt.Errorf("ability %q: %w", spec.Name, err)
		}
		a.behaviour = m
	case config.KindChannel:
		a.behaviour = &channel{healPerTick: spec.HealPerTick, tickDelay: spec.TickDelay, ticks: spec.Ticks}
	case config.KindDash:
		a.behaviour = &dash{speed: spec.Speed, length: spec.Duration}
	case config.KindBlock:
		a.behaviour = block{}
	case config.KindLance:
		a.behaviour = &lance{speed: spec.Speed, rng: spec.Range, damage: spec.Damage, stun: spec.Stun}
	case config.KindShoot:
		a.behaviour = &shoot{speed: spec.Speed, damage: spec.Damage, knockback: spec.Knockback, airTime: spec.AirTime}
	case config.KindRain:
		a.behaviour = &rain{
			count:     spec.Count,
			offset:    spec.Offset,
			spread:    spec.Spread,
			speed:     spec.Speed,
			damage:    spec.Damage,
			knockback: spec.Knockback,
			airTime:   spec.AirTime,
		}
	case config.KindSpawn:
		if len(env.SpawnPoints) == 0 || env.Spawn == nil {
			return nil, fmt.Errorf("ability %q: %w", spec.Name, ErrNoSpawnPoints)
		}
		a.behaviour = &spawn{enemies: spec.Enemies, points: env.SpawnPoints, count: spec.Count}
	}
	return a, nil
}

func newMeleeCombo(spec config.AbilitySpec, a *Ability) (*meleeCombo, error) {
	head, err := attack.NewChain(spec.Phases)
	if err != nil {
		return nil, err
	}
	if spec.DamageOverride > 0 {
		attack.SetDamage(head, spec.DamageOverride)
	}
	if spec.DurationOverride > 0 {
		attack.SpreadDuration(head, spec.DurationOverride)
	}

	policy := hitreg.PerPhase
	if spec.ComboPolicy() == config.DedupCrossPhase {
		policy = hitreg.CrossPhase
	}
	reset := spec.ResetTimer
	if reset <= 0 {
		reset = config.Combat.ComboResetTimer
	}

	m := &meleeCombo{
		autoChain:  spec.AutoChain,
		lockInput:  spec.LockInput,
		stopMidair: spec.StopMidair,
	}
	m.runner, err = combo.New(head, combo.Options{
		ResetTimeout: reset,
		AutoChain:    spec.AutoChain,
		Policy:       policy,
		OnChainEnd:   func() { m.chainEnded(a) },
		OnReset:      func() { m.timedOut(a) },
		OnStrike: func(s attack.Strike) {
			if a.env.OnStrike != nil {
				a.env.OnStrike(s)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FromBook builds the named abilities, in order.
func FromBook(book *config.AbilityBook, names []string, env *Env) ([]*Ability, error) {
	out := make([]*Ability, 0, len(names))
	for _, name := range names {
		spec, ok := book.Find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAbility, name)
		}
		a, err := New(spec, env)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// NewSetFromBook builds a Set holding the named abilities.
func NewSetFromBook(book *config.AbilityBook, names []string, env *Env) (*Set, error) {
	list, err := FromBook(book, names, env)
	if err != nil {
		return nil, err
	}
	set := NewSet()
	for _, a := range list {
		if err := set.Add(a); err != nil {
			return nil, err
		}
	}
	return set, nil
}
