// Package abilities implements the activate, deactivate and cooldown
// lifecycle shared by every ability, and the behaviours behind each kind.
package abilities

import (
	"math/rand"

	"github.com/automoto/doomerang-combat/attack"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Env is the world abilities act on. One Env is shared by every ability of
// an encounter.
type Env struct {
	ECS      *ecs.ECS
	Timeline *timeline.Timeline
	Registry *hitreg.Registry
	Rand     *rand.Rand

	// Spawn table used by summoning abilities.
	SpawnPoints []math.Vec2
	Spawn       func(x, y float64, enemyType string) (*donburi.Entry, error)

	// OnStrike observes every melee hit check. May be nil.
	OnStrike func(attack.Strike)
}

func (e *Env) World() donburi.World {
	return e.ECS.World
}

// behaviour is what differs between ability kinds.
type behaviour interface {
	activate(a *Ability)
	deactivate(a *Ability)
	cancel(a *Ability)
}

// durationer is implemented by behaviours that can report how long an
// activation lasts.
type durationer interface {
	duration(a *Ability) float64
}

// Ability is idle, active or cooling down. The owner is captured on the
// first activation.
type Ability struct {
	name     string
	kind     config.AbilityKind
	cooldown float64
	layer    string

	env       *Env
	behaviour behaviour
	set       *Set

	owner      *donburi.Entry
	active     bool
	onCooldown bool
	cooldownAt timeline.Handle
}

func (a *Ability) Name() string             { return a.name }
func (a *Ability) Kind() config.AbilityKind { return a.kind }
func (a *Ability) Cooldown() float64        { return a.cooldown }
func (a *Ability) IsOnCooldown() bool       { return a.onCooldown }
func (a *Ability) Owner() *donburi.Entry    { return a.owner }

// Active reports whether an activation has started and not yet ended.
func (a *Ability) Active() bool { return a.active }

// CooldownRemaining returns the seconds left on the cooldown.
func (a *Ability) CooldownRemaining() float64 {
	if !a.onCooldown {
		return 0
	}
	return a.env.Timeline.Remaining(a.cooldownAt)
}

// Activate runs the ability for owner. It does not check the cooldown; use
// Controller.TryActivate for that.
func (a *Ability) Activate(owner *donburi.Entry) {
	if !a.bind(owner) {
		return
	}
	a.active = true
	a.behaviour.activate(a)
}

// Deactivate ends a held ability. It is a no-op for abilities that were not
// activated or cannot be held.
func (a *Ability) Deactivate(owner *donburi.Entry) {
	if a.owner == nil || !a.owner.Valid() {
		return
	}
	a.behaviour.deactivate(a)
}

// Attack activates the ability and returns how long the activation takes.
func (a *Ability) Attack(owner *donburi.Entry) float64 {
	a.Activate(owner)
	if d, ok := a.behaviour.(durationer); ok && a.owner != nil {
		return d.duration(a)
	}
	return 0
}

// Cancel interrupts an activation in progress. No cooldown is started.
func (a *Ability) Cancel() {
	if a.owner == nil {
		return
	}
	a.behaviour.cancel(a)
	a.active = false
}

// Release cancels the ability and drops its cooldown, for when the owner
// is removed from the world.
func (a *Ability) Release() {
	a.Cancel()
	a.env.Timeline.Cancel(a.cooldownAt)
	a.cooldownAt = 0
	a.onCooldown = false
}

// ActivateCooldown puts the ability on cooldown and tells observers. It
// does nothing if the cooldown is already running or zero.
func (a *Ability) ActivateCooldown() {
	if a.onCooldown || a.cooldown <= 0 {
		return
	}
	a.onCooldown = true
	a.cooldownAt = a.env.Timeline.Schedule(a.cooldown, func() {
		a.onCooldown = false
		a.cooldownAt = 0
	})
	if a.set != nil {
		a.set.showCooldown(a)
	}
}

// finish ends the current activation and starts the cooldown. Called once
// per activation by the behaviour, at its natural or early end.
func (a *Ability) finish() {
	if !a.active {
		return
	}
	a.active = false
	a.ActivateCooldown()
}

func (a *Ability) bind(owner *donburi.Entry) bool {
	if a.owner == nil {
		if owner == nil || !owner.Valid() {
			return false
		}
		a.owner = owner
	}
	return a.owner.Valid()
}

// hitLayer is the configured layer, or the opponents of the owner.
func (a *Ability) hitLayer() string {
	if a.layer != "" {
		return a.layer
	}
	if a.owner.HasComponent(components.Player) {
		return tags.ResolvEnemy
	}
	return tags.ResolvPlayer
}

// body is the owner's movement modifier set, nil when it has none.
func (a *Ability) body() *components.PhysicsData {
	if a.owner == nil || !a.owner.Valid() || !a.owner.HasComponent(components.Physics) {
		return nil
	}
	return components.Physics.Get(a.owner)
}

func (a *Ability) origin() (math.Vec2, float64) {
	c, _ := components.CenterOf(a.owner)
	facing := 1.0
	if b := a.body(); b != nil {
		facing = b.FacingSign()
	}
	return c, facing
}
