package arena

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/shared/leveldata"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Arena is the static part of an encounter: solids, pits, rooms, triggers
// and the spawn tables read from the layout.
type Arena struct {
	Layout  *leveldata.Layout
	Space   *resolv.Space
	Overlap *Overlap
	Rooms   map[string]*donburi.Entry
}

// Load reads a TMX layout from fsys and builds it into e.
func Load(e *ecs.ECS, fsys fs.FS, path string) (*Arena, error) {
	layout, err := leveldata.LoadLayout(fsys, path)
	if err != nil {
		return nil, err
	}
	return Build(e, layout), nil
}

// Build creates the collision space and every static object of layout.
// Characters are not spawned here.
func Build(e *ecs.ECS, layout *leveldata.Layout) *Arena {
	spaceEntry := factory.CreateSpace(e,
		layout.MapWidth,
		layout.MapHeight,
		cfg.Physics.CellSize, cfg.Physics.CellSize,
	)
	space := components.Space.Get(spaceEntry)

	for _, s := range layout.Solids {
		factory.CreateWall(e, s.X, s.Y, s.W, s.H)
	}
	for _, p := range layout.Pits {
		factory.CreatePit(e, p.X, p.Y, p.W, p.H)
	}

	a := &Arena{
		Layout:  layout,
		Space:   space,
		Overlap: NewOverlap(space),
		Rooms:   make(map[string]*donburi.Entry, len(layout.Rooms)),
	}
	for _, r := range layout.Rooms {
		a.Rooms[r.Name] = factory.CreateRoom(e, r.Name, r.X, r.Y, r.W, r.H)
	}
	for _, t := range layout.Triggers {
		factory.CreateTrigger(e, t.Name, t.X, t.Y, t.W, t.H)
	}

	log.Printf("Arena %q built: %d solids, %d pits, %d rooms, %d triggers",
		layout.Name, len(layout.Solids), len(layout.Pits), len(layout.Rooms), len(layout.Triggers))
	return a
}

// SpawnEnemy creates an enemy and registers it with the room containing it.
func (a *Arena) SpawnEnemy(e *ecs.ECS, x, y float64, enemyType string) (*donburi.Entry, error) {
	enemy, err := factory.CreateEnemy(e, x, y, enemyType)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", enemyType, err)
	}

	obj := components.Object.Get(enemy)
	c := obj.Center()
	if name := a.Layout.RoomAt(c.X, c.Y); name != "" {
		components.Enemy.Get(enemy).Room = name
		if room, ok := a.Rooms[name]; ok {
			data := components.Room.Get(room)
			data.Remaining++
			data.Cleared = false
		}
	}
	return enemy, nil
}

// IsPositionFree reports whether a box at x, y would not overlap any solid.
func (a *Arena) IsPositionFree(x, y, w, h float64) bool {
	tempObj := resolv.NewObject(x, y, w, h)
	a.Space.Add(tempObj)
	defer a.Space.Remove(tempObj)

	check := tempObj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return true
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if Touching(tempObj, solid) {
			return false
		}
	}
	return true
}
