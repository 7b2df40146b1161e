package abilities

import "github.com/automoto/doomerang-combat/combat"

// block raises a shield while held. The owner is planted in place.
type block struct{}

func (block) activate(a *Ability) {
	combat.SetBlocking(a.owner, true)
	if body := a.body(); body != nil {
		body.SetMovementLock(true)
		body.SetFriction(true)
		body.SpeedX = 0
	}
}

// deactivate lowers the shield. The cooldown only starts if the shield was
// actually up.
func (block) deactivate(a *Ability) {
	if !combat.IsBlocking(a.owner) {
		return
	}
	lower(a)
	a.finish()
}

func (block) cancel(a *Ability) {
	if combat.IsBlocking(a.owner) {
		lower(a)
	}
}

func lower(a *Ability) {
	combat.SetBlocking(a.owner, false)
	if body := a.body(); body != nil {
		body.SetMovementLock(false)
		body.SetFriction(false)
	}
}
