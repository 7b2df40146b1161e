// Package hud keeps the cooldown readout shown next to each ability slot.
package hud

import (
	"math"
	"strings"

	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Icon is the cooldown sweep of one ability slot.
type Icon struct {
	Name    string
	Slot    int
	fill    float32
	cooling bool
	tween   *gween.Tween
}

// Fill is the fraction of the cooldown still to run, 1 right after the
// cooldown starts and 0 when the ability is ready.
func (i *Icon) Fill() float64 {
	return float64(i.fill)
}

func (i *Icon) Cooling() bool {
	return i.cooling
}

// CooldownIcons observes an ability set and sweeps one icon per ability.
type CooldownIcons struct {
	icons  []*Icon
	byName map[string]*Icon
	steps  int
}

func NewCooldownIcons() *CooldownIcons {
	steps := config.HUD.SweepSteps
	if steps < 1 {
		steps = 1
	}
	return &CooldownIcons{byName: make(map[string]*Icon), steps: steps}
}

// AbilitiesChanged rebuilds the icons in set order. Running sweeps are
// dropped.
func (c *CooldownIcons) AbilitiesChanged(list []*abilities.Ability) {
	c.icons = c.icons[:0]
	clear(c.byName)
	for slot, a := range list {
		icon := &Icon{Name: a.Name(), Slot: slot}
		c.icons = append(c.icons, icon)
		c.byName[icon.Name] = icon
	}
}

// ShowCooldown starts the sweep for a. Abilities without an icon are
// ignored.
func (c *CooldownIcons) ShowCooldown(a *abilities.Ability) {
	icon, ok := c.byName[a.Name()]
	if !ok || a.Cooldown() <= 0 {
		return
	}
	icon.tween = gween.New(1, 0, float32(a.Cooldown()), ease.Linear)
	icon.fill = 1
	icon.cooling = true
}

// Update advances every running sweep by dt seconds.
func (c *CooldownIcons) Update(dt float64) {
	for _, icon := range c.icons {
		if !icon.cooling {
			continue
		}
		fill, done := icon.tween.Update(float32(dt))
		icon.fill = fill
		if done {
			icon.fill = 0
			icon.cooling = false
			icon.tween = nil
		}
	}
}

func (c *CooldownIcons) Icons() []*Icon {
	return c.icons
}

// Sweep returns the fill of the named icon and the number of lit segments
// out of config.HUD.SweepSteps. Any remaining cooldown lights at least one.
func (c *CooldownIcons) Sweep(name string) (fill float64, lit int, ok bool) {
	icon, ok := c.byName[name]
	if !ok {
		return 0, 0, false
	}
	fill = icon.Fill()
	if fill <= 0 {
		return 0, 0, true
	}
	lit = int(math.Ceil(fill * float64(c.steps)))
	if lit > c.steps {
		lit = c.steps
	}
	return fill, lit, true
}

// String renders the icons as text, e.g. "Slash[###.....] Heal[........]".
func (c *CooldownIcons) String() string {
	var b strings.Builder
	for i, icon := range c.icons {
		if i > 0 {
			b.WriteByte(' ')
		}
		_, lit, _ := c.Sweep(icon.Name)
		b.WriteString(icon.Name)
		b.WriteByte('[')
		b.WriteString(strings.Repeat("#", lit))
		b.WriteString(strings.Repeat(".", c.steps-lit))
		b.WriteByte(']')
	}
	return b.String()
}
