// Package leveldata parses arena layouts from TMX files. It has no
// dependencies on donburi or resolv.
package leveldata

// Layout holds everything the simulation needs to build an arena.
type Layout struct {
	Name        string
	MapWidth    int
	MapHeight   int
	Solids      []Rect
	PlayerSpawn Point
	Enemies     []EnemySpawn
	SpawnPoints []Point // Where summoned enemies appear
	Pits        []Rect
	Rooms       []Region
	Triggers    []Region
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Point struct {
	X, Y float64
}

// EnemySpawn places an enemy of a configured type.
type EnemySpawn struct {
	X, Y      float64
	EnemyType string
}

// Region is a named rectangle (a room or a trigger volume).
type Region struct {
	Name string
	Rect
}
