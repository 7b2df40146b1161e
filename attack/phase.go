// Package attack defines combo phases and runs a single phase against the
// world: wind up, strike everything under the hit shapes, wind down.
package attack

import (
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/yohamta/donburi/features/math"
)

// Phase is one beat of a combo. Phases form a singly linked, acyclic chain;
// the last phase has a nil Next.
type Phase struct {
	Name      string
	Damage    int
	Knockback math.Vec2 // Away from the attacker
	WindUp    float64
	WindDown  float64
	Shapes    []hitreg.Shape
	Next      *Phase
}

// NewChain links specs, in order, into a chain and returns its head.
func NewChain(specs []config.PhaseSpec) (*Phase, error) {
	if len(specs) == 0 {
		return nil, config.ErrEmptyChain
	}

	var next *Phase
	for i := len(specs) - 1; i >= 0; i-- {
		s := specs[i]
		p := &Phase{
			Name:      s.Name,
			Damage:    s.Damage,
			Knockback: math.Vec2{X: s.Knockback.X, Y: s.Knockback.Y},
			WindUp:    s.WindUp,
			WindDown:  s.WindDown,
			Shapes:    make([]hitreg.Shape, len(s.Shapes)),
			Next:      next,
		}
		for j, sh := range s.Shapes {
			p.Shapes[j] = hitreg.Shape{OffsetX: sh.X, OffsetY: sh.Y, Radius: sh.Radius}
		}
		next = p
	}
	return next, nil
}

// Duration is the phase's wind-up plus wind-down.
func (p *Phase) Duration() float64 {
	if p == nil {
		return 0
	}
	return p.WindUp + p.WindDown
}

// Terminal reports whether p ends its chain.
func (p *Phase) Terminal() bool {
	return p.Next == nil
}

// Chain returns head and every phase after it.
func Chain(head *Phase) []*Phase {
	var out []*Phase
	for p := head; p != nil; p = p.Next {
		out = append(out, p)
	}
	return out
}

// TotalDuration sums the durations of every phase from head on.
func TotalDuration(head *Phase) float64 {
	total := 0.0
	for p := head; p != nil; p = p.Next {
		total += p.Duration()
	}
	return total
}

// SetDamage overrides the damage of every phase in the chain.
func SetDamage(head *Phase, damage int) {
	for p := head; p != nil; p = p.Next {
		p.Damage = damage
	}
}

// SpreadDuration sets every phase's wind-down to an equal share of total.
func SpreadDuration(head *Phase, total float64) {
	phases := Chain(head)
	if len(phases) == 0 {
		return
	}
	interval := total / float64(len(phases))
	for _, p := range phases {
		p.WindDown = interval
	}
}
