package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePit creates an invisible zone that kills anything with health that
// touches it.
func CreatePit(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	pit := archetypes.Pit.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPit)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs.World, pit, obj)

	return pit
}
