package abilities

import (
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/timeline"
)

// channel heals the owner over a number of ticks while it stands still.
// Releasing the input ends it early.
type channel struct {
	healPerTick int
	tickDelay   float64
	ticks       int

	running bool
	done    int
	next    timeline.Handle
}

func (c *channel) activate(a *Ability) {
	if c.running {
		return
	}
	c.running = true
	c.done = 0
	if body := a.body(); body != nil {
		body.SetMovementLock(true)
		body.SpeedX = 0
	}
	c.schedule(a)
}

func (c *channel) schedule(a *Ability) {
	c.next = a.env.Timeline.Schedule(c.tickDelay, func() {
		combat.HealHealth(a.owner, c.healPerTick)
		c.done++
		if c.done >= c.ticks {
			c.stop(a, true)
			return
		}
		c.schedule(a)
	})
}

func (c *channel) deactivate(a *Ability) {
	c.stop(a, true)
}

func (c *channel) cancel(a *Ability) {
	c.stop(a, false)
}

func (c *channel) stop(a *Ability, cooldown bool) {
	if !c.running {
		return
	}
	c.running = false
	a.env.Timeline.Cancel(c.next)
	if body := a.body(); body != nil {
		body.SetMovementLock(false)
	}
	if cooldown {
		a.finish()
	}
}

func (c *channel) duration(*Ability) float64 {
	return float64(c.ticks) * c.tickDelay
}
