package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var Arenas embed.FS

// DefaultArena is the path of the built-in arena inside Arenas.
const DefaultArena = "arenas/warden_hall.tmx"

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass the embedded arenas or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				layout.Solids = append(layout.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.PlayerSpawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					return nil, fmt.Errorf("%s: enemy object %d has no enemyType", tmxPath, o.ID)
				}
				layout.Enemies = append(layout.Enemies, EnemySpawn{X: o.X, Y: o.Y, EnemyType: enemyType})
			}
		case "SummonPoints":
			for _, o := range og.Objects {
				layout.SpawnPoints = append(layout.SpawnPoints, Point{X: o.X, Y: o.Y})
			}
		case "Pits":
			for _, o := range og.Objects {
				layout.Pits = append(layout.Pits, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Rooms":
			for _, o := range og.Objects {
				layout.Rooms = append(layout.Rooms, Region{Name: o.Name, Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}})
			}
		case "Triggers":
			for _, o := range og.Objects {
				layout.Triggers = append(layout.Triggers, Region{Name: o.Name, Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}})
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: missing PlayerSpawn", tmxPath)
	}

	// Sort left-to-right for a stable spawn order
	sort.Slice(layout.SpawnPoints, func(i, j int) bool {
		return layout.SpawnPoints[i].X < layout.SpawnPoints[j].X
	})

	return layout, nil
}

// RoomAt returns the name of the room containing (x, y), or "".
func (l *Layout) RoomAt(x, y float64) string {
	for _, r := range l.Rooms {
		if r.Contains(x, y) {
			return r.Name
		}
	}
	return ""
}
