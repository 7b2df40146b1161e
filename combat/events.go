package combat

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// TookDamage is published after health was reduced.
type TookDamage struct {
	Target    *donburi.Entry
	Event     DamageEvent
	Knockback math.Vec2 // Knockback as applied, already oriented
	Remaining int
}

// HasDied is published once, when health first reaches zero.
type HasDied struct {
	Target *donburi.Entry
	Killer *donburi.Entry
}

// AttackBlocked is published instead of TookDamage when a block absorbed
// the hit.
type AttackBlocked struct {
	Target *donburi.Entry
	Event  DamageEvent
}

// Staggered asks the target's behaviour to enter its stunned state.
type Staggered struct {
	Target   *donburi.Entry
	Duration float64
}

var (
	TookDamageEvent    = events.NewEventType[TookDamage]()
	HasDiedEvent       = events.NewEventType[HasDied]()
	AttackBlockedEvent = events.NewEventType[AttackBlocked]()
	StaggeredEvent     = events.NewEventType[Staggered]()
)

// Stagger queues a Staggered notification for target.
func Stagger(w donburi.World, target *donburi.Entry, duration float64) {
	if target == nil || !target.Valid() {
		return
	}
	StaggeredEvent.Publish(w, Staggered{Target: target, Duration: duration})
}
