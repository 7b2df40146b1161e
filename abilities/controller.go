package abilities

import "github.com/yohamta/donburi"

// Controller is the single entry point characters use to drive abilities.
type Controller struct {
	set *Set
}

func NewController(set *Set) *Controller {
	if set == nil {
		set = NewSet()
	}
	return &Controller{set: set}
}

func (c *Controller) Set() *Set {
	return c.set
}

// TryActivate activates a unless it is cooling down.
func (c *Controller) TryActivate(a *Ability, owner *donburi.Entry) bool {
	if a == nil || a.IsOnCooldown() {
		return false
	}
	a.Activate(owner)
	return true
}

// TryActivateName looks the ability up by name and activates it.
func (c *Controller) TryActivateName(name string, owner *donburi.Entry) bool {
	a, ok := c.set.Get(name)
	if !ok {
		return false
	}
	return c.TryActivate(a, owner)
}

// Deactivate passes a release edge on to a.
func (c *Controller) Deactivate(a *Ability, owner *donburi.Entry) {
	if a == nil {
		return
	}
	a.Deactivate(owner)
}

func (c *Controller) DeactivateName(name string, owner *donburi.Entry) {
	if a, ok := c.set.Get(name); ok {
		a.Deactivate(owner)
	}
}

func (c *Controller) ActivateCooldown(a *Ability) {
	a.ActivateCooldown()
}

// CancelAll interrupts every ability the controller owns.
func (c *Controller) CancelAll() {
	c.set.CancelAll()
}
