package abilities

import "github.com/automoto/doomerang-combat/timeline"

// dash throws the owner forward at a fixed speed, ignoring gravity and
// input until it ends.
type dash struct {
	speed  float64
	length float64

	running bool
	end     timeline.Handle
}

func (d *dash) activate(a *Ability) {
	if d.running {
		return
	}
	body := a.body()
	if body == nil {
		a.finish()
		return
	}
	d.running = true
	body.SetMovementLock(true)
	body.SetGravity(false)
	body.SetVelocity(d.speed*body.FacingSign(), 0)

	d.end = a.env.Timeline.Schedule(d.length, func() {
		d.stop(a)
		a.finish()
	})
}

func (d *dash) deactivate(*Ability) {}

func (d *dash) cancel(a *Ability) {
	if !d.running {
		return
	}
	a.env.Timeline.Cancel(d.end)
	d.stop(a)
}

func (d *dash) stop(a *Ability) {
	d.running = false
	if body := a.body(); body != nil {
		body.SetMovementLock(false)
		body.SetGravity(true)
		body.SetVelocity(0, 0)
	}
}

func (d *dash) duration(*Ability) float64 { return d.length }
