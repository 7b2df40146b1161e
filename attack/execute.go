package attack

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Result is handed to Context.Done when a phase finishes its wind-down.
type Result struct {
	Phase *Phase
	Hits  []*donburi.Entry
	Next  *Phase // nil when the chain is over
}

// Strike describes the moment a phase checked for targets.
type Strike struct {
	Owner  *donburi.Entry
	Phase  *Phase
	Origin math.Vec2
	Hits   []*donburi.Entry
}

// Context is everything a phase needs to run.
type Context struct {
	World    donburi.World
	Timeline *timeline.Timeline
	Registry *hitreg.Registry
	Owner    *donburi.Entry
	Layer    string

	// Exclude lists targets that must not be struck again. May be nil.
	Exclude *hitreg.Set

	OnStrike func(Strike)
	Done     func(Result)
}

// Execution is a running phase.
type Execution struct {
	tl       *timeline.Timeline
	handle   timeline.Handle
	finished bool
	canceled bool
}

// Cancel stops the phase at whichever wait it is in. Done is not called.
func (x *Execution) Cancel() {
	if x == nil || x.finished || x.canceled {
		return
	}
	x.canceled = true
	x.tl.Cancel(x.handle)
}

// Running reports whether the phase has neither finished nor been canceled.
func (x *Execution) Running() bool {
	return x != nil && !x.finished && !x.canceled
}

// Execute waits WindUp, damages every target under the phase's shapes, waits
// WindDown and then reports the hits to ctx.Done.
func (p *Phase) Execute(ctx Context) *Execution {
	x := &Execution{tl: ctx.Timeline}
	x.handle = ctx.Timeline.Schedule(p.WindUp, func() {
		hits := p.strike(ctx)
		x.handle = ctx.Timeline.Schedule(p.WindDown, func() {
			x.finished = true
			if ctx.Done != nil {
				ctx.Done(Result{Phase: p, Hits: hits, Next: p.Next})
			}
		})
	})
	return x
}

func (p *Phase) strike(ctx Context) []*donburi.Entry {
	if ctx.Owner.HasComponent(components.Health) && !combat.CheckIsAlive(ctx.Owner) {
		return nil
	}
	origin, ok := components.CenterOf(ctx.Owner)
	if !ok {
		return nil
	}
	facingRight := true
	if ctx.Owner.HasComponent(components.Physics) {
		facingRight = components.Physics.Get(ctx.Owner).FacingRight()
	}

	targets := ctx.Registry.Query(origin, facingRight, p.Shapes, ctx.Layer, ctx.Exclude)

	var hits []*donburi.Entry
	for _, t := range targets {
		if t == ctx.Owner || !t.HasComponent(components.Health) {
			continue
		}
		combat.TakeDamage(ctx.World, t, combat.DamageEvent{
			Damage:    p.Damage,
			Attacker:  ctx.Owner,
			Source:    ctx.Owner,
			Knockback: p.Knockback,
		})
		hits = append(hits, t)
	}

	if ctx.OnStrike != nil {
		ctx.OnStrike(Strike{Owner: ctx.Owner, Phase: p, Origin: origin, Hits: hits})
	}
	return hits
}
