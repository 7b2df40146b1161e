// Package hitreg finds the targets under an attack's hit shapes and keeps
// track of who was already struck, so nobody is damaged twice in one window.
package hitreg

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Shape is a hit circle relative to the attacker's centre, authored as if
// the attacker faces right.
type Shape struct {
	OffsetX float64
	OffsetY float64
	Radius  float64
}

// Mirror returns the shape as seen by an attacker facing left.
func (s Shape) Mirror() Shape {
	s.OffsetX = -s.OffsetX
	return s
}

// Overlapper is the physics side of a query. It returns every entry on layer
// that overlaps any of shapes placed at origin, possibly with duplicates.
type Overlapper interface {
	OverlapShapes(origin math.Vec2, shapes []Shape, layer string) []*donburi.Entry
}

// Policy selects how long an ability remembers struck targets.
type Policy int

const (
	// PerPhase forgets struck targets when a new phase starts.
	PerPhase Policy = iota
	// CrossPhase remembers struck targets for a whole activation.
	CrossPhase
)

func (p Policy) String() string {
	if p == CrossPhase {
		return "cross-phase"
	}
	return "per-phase"
}

// Set is an already-hit set. The zero value is ready to use.
type Set struct {
	hit map[*donburi.Entry]struct{}
}

func NewSet() *Set {
	return &Set{}
}

// Record adds targets to the set.
func (s *Set) Record(targets ...*donburi.Entry) {
	if s.hit == nil {
		s.hit = make(map[*donburi.Entry]struct{}, len(targets))
	}
	for _, t := range targets {
		if t != nil {
			s.hit[t] = struct{}{}
		}
	}
}

func (s *Set) Has(e *donburi.Entry) bool {
	if s == nil || s.hit == nil {
		return false
	}
	_, ok := s.hit[e]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.hit)
}

func (s *Set) Clear() {
	if s == nil {
		return
	}
	for k := range s.hit {
		delete(s.hit, k)
	}
}

// Registry runs overlap queries against the physics collaborator.
type Registry struct {
	overlap Overlapper
}

func NewRegistry(o Overlapper) *Registry {
	return &Registry{overlap: o}
}

// Query returns every distinct valid target on layer under shapes, in first
// seen order, leaving out anything in exclude. Shapes are mirrored when the
// attacker faces left.
func (r *Registry) Query(origin math.Vec2, facingRight bool, shapes []Shape, layer string, exclude *Set) []*donburi.Entry {
	if r == nil || r.overlap == nil || len(shapes) == 0 {
		return nil
	}

	placed := shapes
	if !facingRight {
		placed = make([]Shape, len(shapes))
		for i, s := range shapes {
			placed[i] = s.Mirror()
		}
	}

	found := r.overlap.OverlapShapes(origin, placed, layer)
	if len(found) == 0 {
		return nil
	}

	seen := make(map[*donburi.Entry]struct{}, len(found))
	out := make([]*donburi.Entry, 0, len(found))
	for _, e := range found {
		if e == nil || !e.Valid() {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		if exclude.Has(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
