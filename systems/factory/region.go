package factory

import (
	"github.com/automoto/doomerang-combat/archetypes"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRoom creates a named region. Enemies placed inside it are counted
// towards clearing it.
func CreateRoom(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvRoom)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs.World, room, obj)

	components.Room.SetValue(room, components.RoomData{Name: name})

	return room
}

// CreateTrigger creates a one-shot region fired by the player walking in.
func CreateTrigger(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvTrigger)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs.World, trigger, obj)

	components.Trigger.SetValue(trigger, components.TriggerData{Name: name})

	return trigger
}
