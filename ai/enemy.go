package ai

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
)

// arriveDistance is how close counts as having reached a destination.
const arriveDistance = 4.0

// Options configures an Enemy.
type Options struct {
	// Target returns the entity to chase. Defaults to the first living
	// player in the world.
	Target func() *donburi.Entry

	// Selector picks boss attacks. Defaults to RoundRobin.
	Selector Selector
}

// Enemy is the brain of one enemy. It implements components.Actor.
type Enemy struct {
	entry    *donburi.Entry
	typ      *config.EnemyTypeConfig
	ctrl     *abilities.Controller
	machine  *Machine
	target   func() *donburi.Entry
	selector Selector

	timer    float64 // Countdown used by timed states
	stunFor  float64
	turn     int
	spacingX float64
}

var _ components.Actor = (*Enemy)(nil)

// New builds the graph for e's enemy kind. e must carry an Enemy component.
func New(e *donburi.Entry, ctrl *abilities.Controller, opts Options) (*Enemy, error) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Enemy) {
		return nil, fmt.Errorf("ai: entry is not an enemy")
	}
	data := components.Enemy.Get(e)
	if data.TypeConfig == nil {
		return nil, fmt.Errorf("ai: enemy %q has no type", data.TypeName)
	}
	if ctrl == nil {
		ctrl = abilities.NewController(nil)
	}

	en := &Enemy{
		entry:    e,
		typ:      data.TypeConfig,
		ctrl:     ctrl,
		target:   opts.Target,
		selector: opts.Selector,
	}
	if en.target == nil {
		en.target = firstLivingPlayer(e.World)
	}
	if en.selector == nil {
		en.selector = RoundRobin{}
	}

	switch en.typ.Kind {
	case "ground":
		en.machine = en.groundGraph()
	case "flier":
		en.machine = en.flierGraph()
	case "boss":
		en.machine = en.bossGraph()
	default:
		return nil, fmt.Errorf("ai: unknown enemy kind %q", en.typ.Kind)
	}
	en.machine.OnTransition = func(from, to config.StateID, ev config.EventID) {
		if e.Valid() && e.HasComponent(components.State) {
			components.State.Get(e).Enter(to)
		}
	}
	return en, nil
}

// Attach stores en as the entry's brain.
func (en *Enemy) Attach() *Enemy {
	components.Brain.SetValue(en.entry, components.BrainData{Actor: en})
	return en
}

func (en *Enemy) Machine() *Machine {
	return en.machine
}

func (en *Enemy) Controller() *abilities.Controller {
	return en.ctrl
}

func (en *Enemy) Update(dt float64) {
	if !en.entry.Valid() || !combat.CheckIsAlive(en.entry) {
		return
	}
	if !en.machine.started {
		en.machine.Start()
		if en.entry.HasComponent(components.State) {
			components.State.Get(en.entry).Enter(en.machine.Current())
		}
	}
	en.machine.Update(dt)
}

// Interrupt cancels every ability in flight.
func (en *Enemy) Interrupt() {
	en.ctrl.CancelAll()
}

// Stagger sends the enemy to its stunned state. Kinds without one, like
// the boss, shrug it off.
func (en *Enemy) Stagger(duration float64) {
	if duration <= 0 {
		duration = en.typ.StunDuration
	}
	if duration <= 0 {
		return
	}
	if _, ok := en.machine.target(config.EventStunned); !ok {
		return
	}
	en.stunFor = duration
	en.Interrupt()
	en.machine.Fire(config.EventStunned)
}

// attack runs the ability at idx and returns how long to wait for it.
func (en *Enemy) attack(idx int) float64 {
	list := en.ctrl.Set().All()
	if idx < 0 || idx >= len(list) {
		return 0
	}
	a := list[idx]
	if a.IsOnCooldown() {
		return 0
	}
	return a.Attack(en.entry)
}

func (en *Enemy) physics() *components.PhysicsData {
	return components.Physics.Get(en.entry)
}

func (en *Enemy) center() (float64, float64) {
	c, _ := components.CenterOf(en.entry)
	return c.X, c.Y
}

// toTarget returns the offset to the target's centre, or false when there
// is nothing to chase.
func (en *Enemy) toTarget() (dx, dy float64, ok bool) {
	t := en.target()
	if t == nil || !combat.CheckIsAlive(t) {
		return 0, 0, false
	}
	tc, ok := components.CenterOf(t)
	if !ok {
		return 0, 0, false
	}
	x, y := en.center()
	return tc.X - x, tc.Y - y, true
}

// steer walks towards dir at speed, expressed as a fraction of MaxSpeed.
func (en *Enemy) steer(dir, speed float64) {
	p := en.physics()
	if dir == 0 || p.MaxSpeed <= 0 {
		p.MoveAxis = 0
		return
	}
	frac := math.Min(1, speed/p.MaxSpeed)
	if dir < 0 {
		frac = -frac
	}
	p.MoveAxis = frac
}

func (en *Enemy) stop() {
	p := en.physics()
	p.MoveAxis = 0
	if p.GravityOff {
		p.SpeedY = 0
	}
}

// face turns towards the target without moving.
func (en *Enemy) face() {
	if dx, _, ok := en.toTarget(); ok && dx != 0 {
		if dx < 0 {
			en.physics().Facing = config.DirectionLeft
		} else {
			en.physics().Facing = config.DirectionRight
		}
	}
}

func (en *Enemy) healthRatio() float64 {
	full := combat.GetMaxHealth(en.entry)
	if full <= 0 {
		return 0
	}
	return float64(combat.GetHealth(en.entry)) / float64(full)
}

func firstLivingPlayer(w donburi.World) func() *donburi.Entry {
	return func() *donburi.Entry {
		var found *donburi.Entry
		tags.Player.Each(w, func(e *donburi.Entry) {
			if found == nil && combat.CheckIsAlive(e) {
				found = e
			}
		})
		return found
	}
}
