package abilities

import (
	"github.com/automoto/doomerang-combat/combo"
)

// meleeCombo runs an attack chain. The overhead variant locks the owner in
// place until the chain ends.
type meleeCombo struct {
	runner     *combo.Runner
	autoChain  bool
	lockInput  bool
	stopMidair bool
	locked     bool
}

func (m *meleeCombo) activate(a *Ability) {
	if m.lockInput {
		if body := a.body(); body != nil {
			body.SetMovementLock(true)
			body.SpeedX = 0
			if m.stopMidair {
				body.SetGravity(false)
				body.SpeedY = 0
			}
			m.locked = true
		}
	}

	m.runner.Activate(combo.Env{
		World:    a.env.World(),
		Timeline: a.env.Timeline,
		Registry: a.env.Registry,
		Owner:    a.owner,
		Layer:    a.hitLayer(),
	})
}

func (m *meleeCombo) deactivate(*Ability) {}

func (m *meleeCombo) cancel(a *Ability) {
	m.runner.Cancel()
	m.unlock(a)
}

func (m *meleeCombo) chainEnded(a *Ability) {
	m.unlock(a)
	a.finish()
}

// timedOut ends the activation without a cooldown.
func (m *meleeCombo) timedOut(a *Ability) {
	m.unlock(a)
	a.active = false
}

func (m *meleeCombo) unlock(a *Ability) {
	if !m.locked {
		return
	}
	m.locked = false
	if body := a.body(); body != nil {
		body.SetMovementLock(false)
		body.SetGravity(true)
	}
}

// duration is the whole chain for auto-chained combos, otherwise the phase
// that just started.
func (m *meleeCombo) duration(*Ability) float64 {
	if m.autoChain {
		return m.runner.TotalDuration()
	}
	return m.runner.CurrentDuration()
}
