package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object's bounding box.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()

// BoundsData is the size of the arena in pixels, stored next to the space.
type BoundsData struct {
	Width  float64
	Height float64
}

// Outside reports whether a box lies entirely more than slack pixels beyond
// the bounds.
func (b *BoundsData) Outside(x, y, w, h, slack float64) bool {
	return x+w < -slack || y+h < -slack || x > b.Width+slack || y > b.Height+slack
}

var Bounds = donburi.NewComponentType[BoundsData]()

// CenterOf returns the centre of e's collision object. Entries without one
// report false.
func CenterOf(e *donburi.Entry) (math.Vec2, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(Object) {
		return math.Vec2{}, false
	}
	obj := Object.Get(e)
	if obj.Object == nil {
		return math.Vec2{}, false
	}
	return obj.Center(), true
}
