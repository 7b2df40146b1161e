package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	components.Bounds.SetValue(space, components.BoundsData{
		Width:  float64(width),
		Height: float64(height),
	})
	return space
}

// GetSpace returns the world's collision space, or nil before CreateSpace.
func GetSpace(w donburi.World) *resolv.Space {
	if spaceEntry, ok := components.Space.First(w); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

// GetBounds returns the arena size, or false before CreateSpace.
func GetBounds(w donburi.World) (components.BoundsData, bool) {
	if spaceEntry, ok := components.Space.First(w); ok {
		return *components.Bounds.Get(spaceEntry), true
	}
	return components.BoundsData{}, false
}

// addToSpace links obj to e and inserts it into the space if it exists.
func addToSpace(w donburi.World, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := GetSpace(w); space != nil {
		space.Add(obj)
	}
}
