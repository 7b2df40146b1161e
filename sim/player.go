package sim

import (
	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/yohamta/donburi"
)

// PlayerController turns the player's input into ability calls. It is the
// player's brain.
type PlayerController struct {
	entry *donburi.Entry
	ctrl  *abilities.Controller
}

var _ components.Actor = (*PlayerController)(nil)

func NewPlayerController(entry *donburi.Entry, ctrl *abilities.Controller) *PlayerController {
	p := &PlayerController{entry: entry, ctrl: ctrl}
	components.Brain.SetValue(entry, components.BrainData{Actor: p})
	return p
}

func (p *PlayerController) Controller() *abilities.Controller {
	return p.ctrl
}

func (p *PlayerController) Update(dt float64) {
	input := components.Input.Get(p.entry)
	physics := components.Physics.Get(p.entry)
	physics.MoveAxis = input.MoveAxis

	// Set order keeps simultaneous presses deterministic.
	for _, a := range p.ctrl.Set().All() {
		action := input.Actions[a.Name()]
		if action.JustPressed {
			p.ctrl.TryActivate(a, p.entry)
		}
		if action.JustReleased {
			p.ctrl.Deactivate(a, p.entry)
		}
	}

	state := components.State.Get(p.entry)
	if p.busy() {
		state.Enter(cfg.StateAttacking)
	} else {
		state.Enter(cfg.StateIdle)
	}
	input.ClearEdges()
}

func (p *PlayerController) busy() bool {
	for _, a := range p.ctrl.Set().All() {
		if a.Active() {
			return true
		}
	}
	return false
}

func (p *PlayerController) Interrupt() {
	p.ctrl.CancelAll()
}

// Stagger only interrupts; the player has no stunned state.
func (p *PlayerController) Stagger(float64) {
	p.Interrupt()
}
