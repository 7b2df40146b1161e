// Package combat applies damage, healing and death to entities carrying a
// Health component, and publishes the resulting notifications.
package combat

import (
	stdmath "math"

	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DamageEvent describes one hit. Source is the object that physically
// struck (a projectile, say) and may differ from Attacker. Knockback is
// authored as pushing away from the source: positive X moves the target
// away from it.
type DamageEvent struct {
	Damage    int
	Attacker  *donburi.Entry
	Source    *donburi.Entry
	Knockback math.Vec2
}

// Outcome reports what TakeDamage did.
type Outcome int

const (
	Ignored Outcome = iota
	Blocked
	Damaged
	Killed
)

func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Damaged:
		return "damaged"
	case Killed:
		return "killed"
	}
	return "ignored"
}

// TakeDamage applies ev to target. Targets without Health and dead targets
// are ignored. Negative damage counts as none.
func TakeDamage(w donburi.World, target *donburi.Entry, ev DamageEvent) Outcome {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return Ignored
	}
	hp := components.Health.Get(target)
	if !hp.Alive {
		return Ignored
	}

	targetPos, targetOK := components.CenterOf(target)
	sourcePos, sourceOK := sourcePosition(ev)

	if hp.Blocking && targetOK && sourceOK {
		if WithinArc(facingSign(target), targetPos, sourcePos, cfg.Combat.BlockArcDegrees) {
			AttackBlockedEvent.Publish(w, AttackBlocked{Target: target, Event: ev})
			return Blocked
		}
	}

	if ev.Damage > 0 {
		hp.Current -= ev.Damage
	}

	kb := ev.Knockback
	if targetOK && sourceOK {
		kb = OrientKnockback(ev.Knockback, sourcePos.X, targetPos.X)
	}
	if kb.X != 0 || kb.Y != 0 {
		hp.PendingKnockback = kb
		hp.HasKnockback = true
	}

	if hp.Current <= 0 {
		hp.Current = 0
		hp.Alive = false
		hp.Blocking = false
		TookDamageEvent.Publish(w, TookDamage{Target: target, Event: ev, Knockback: kb})
		HasDiedEvent.Publish(w, HasDied{Target: target, Killer: ev.Attacker})
		return Killed
	}

	TookDamageEvent.Publish(w, TookDamage{Target: target, Event: ev, Knockback: kb, Remaining: hp.Current})
	return Damaged
}

// HealHealth restores amount, clamped to max. Dead targets stay dead.
func HealHealth(target *donburi.Entry, amount int) {
	if amount <= 0 || target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(target)
	if !hp.Alive {
		return
	}
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
}

// Kill deals the target's remaining health as unblockable damage.
func Kill(w donburi.World, target *donburi.Entry) Outcome {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return Ignored
	}
	hp := components.Health.Get(target)
	if !hp.Alive {
		return Ignored
	}
	hp.Blocking = false
	return TakeDamage(w, target, DamageEvent{Damage: hp.Current})
}

// SetBlocking raises or lowers target's shield. Dead targets cannot block.
func SetBlocking(target *donburi.Entry, on bool) {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return
	}
	hp := components.Health.Get(target)
	hp.Blocking = on && hp.Alive
}

func IsBlocking(target *donburi.Entry) bool {
	if target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return false
	}
	return components.Health.Get(target).Blocking
}

func GetHealth(e *donburi.Entry) int {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return 0
	}
	return components.Health.Get(e).Current
}

func GetMaxHealth(e *donburi.Entry) int {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return 0
	}
	return components.Health.Get(e).Max
}

func CheckIsAlive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Health) {
		return false
	}
	return components.Health.Get(e).Alive
}

// ConsumeKnockback returns and clears the pending knockback.
func ConsumeKnockback(hp *components.HealthData) (math.Vec2, bool) {
	if !hp.HasKnockback {
		return math.Vec2{}, false
	}
	kb := hp.PendingKnockback
	hp.PendingKnockback = math.Vec2{}
	hp.HasKnockback = false
	return kb, true
}

// OrientKnockback mirrors an away-from-source impulse so it points away from
// sourceX. A source exactly level with the target pushes towards +X.
func OrientKnockback(impulse math.Vec2, sourceX, targetX float64) math.Vec2 {
	if sourceX > targetX {
		impulse.X = -impulse.X
	}
	return impulse
}

// WithinArc reports whether source lies strictly inside an arc of
// arcDegrees centred on the defender's facing direction.
func WithinArc(facing float64, defender, source math.Vec2, arcDegrees float64) bool {
	if arcDegrees <= 0 {
		return false
	}
	dx := (source.X - defender.X) * facing
	dy := source.Y - defender.Y
	if dx == 0 && dy == 0 {
		return true
	}
	angle := stdmath.Atan2(stdmath.Abs(dy), dx) * 180 / stdmath.Pi
	return angle < arcDegrees/2
}

func sourcePosition(ev DamageEvent) (math.Vec2, bool) {
	if p, ok := components.CenterOf(ev.Source); ok {
		return p, true
	}
	return components.CenterOf(ev.Attacker)
}

func facingSign(e *donburi.Entry) float64 {
	if e.HasComponent(components.Physics) {
		return components.Physics.Get(e).FacingSign()
	}
	return 1
}
