// Package arena builds the static world of an encounter from a Tiled layout
// and answers physics overlap queries against it.
package arena

import (
	"math"

	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Overlap answers hit queries against a resolv space. It implements
// hitreg.Overlapper.
type Overlap struct {
	space *resolv.Space
}

func NewOverlap(space *resolv.Space) *Overlap {
	return &Overlap{space: space}
}

// OverlapShapes returns the entries on layer touched by any of shapes
// placed at origin. An entry touched by several shapes is listed once per
// shape.
func (o *Overlap) OverlapShapes(origin dmath.Vec2, shapes []hitreg.Shape, layer string) []*donburi.Entry {
	if o == nil || o.space == nil {
		return nil
	}

	var found []*donburi.Entry
	for _, s := range shapes {
		if s.Radius <= 0 {
			continue
		}
		cx, cy := origin.X+s.OffsetX, origin.Y+s.OffsetY

		// Broadphase through the space cells, then an exact circle test.
		probe := resolv.NewObject(cx-s.Radius, cy-s.Radius, s.Radius*2, s.Radius*2)
		o.space.Add(probe)
		check := probe.Check(0, 0, layer)
		o.space.Remove(probe)
		if check == nil {
			continue
		}

		for _, obj := range check.ObjectsByTags(layer) {
			if !circleTouchesRect(cx, cy, s.Radius, obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			if e, ok := obj.Data.(*donburi.Entry); ok {
				found = append(found, e)
			}
		}
	}
	return found
}

// Touching reports whether the axis-aligned boxes of a and b overlap.
func Touching(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func circleTouchesRect(cx, cy, r, x, y, w, h float64) bool {
	nx := math.Max(x, math.Min(cx, x+w))
	ny := math.Max(y, math.Min(cy, y+h))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
