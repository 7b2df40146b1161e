package arena

import (
	"testing"

	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/shared/leveldata"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type marker struct{}

var markerComponent = donburi.NewComponentType[marker]()

func placeBox(w donburi.World, space *resolv.Space, x, y, bw, bh float64, tag string) *donburi.Entry {
	e := w.Entry(w.Create(markerComponent))
	obj := resolv.NewObject(x, y, bw, bh, tag)
	obj.Data = e
	space.Add(obj)
	return e
}

func TestOverlapShapes(t *testing.T) {
	w := donburi.NewWorld()
	space := resolv.NewSpace(320, 240, 16, 16)
	near := placeBox(w, space, 20, 0, 16, 40, tags.ResolvEnemy)
	far := placeBox(w, space, 200, 0, 16, 40, tags.ResolvEnemy)
	ally := placeBox(w, space, 20, 0, 16, 40, tags.ResolvPlayer)
	overlap := NewOverlap(space)
	origin := dmath.Vec2{X: 8, Y: 20}

	tests := []struct {
		name   string
		shapes []hitreg.Shape
		layer  string
		want   []*donburi.Entry
	}{
		{"circle reaches the near box", []hitreg.Shape{{OffsetX: 14, Radius: 10}}, tags.ResolvEnemy, []*donburi.Entry{near}},
		{"layer filters allies", []hitreg.Shape{{OffsetX: 14, Radius: 10}}, tags.ResolvPlayer, []*donburi.Entry{ally}},
		{"short circle misses", []hitreg.Shape{{OffsetX: 0, Radius: 4}}, tags.ResolvEnemy, nil},
		{"two shapes over one target report it twice", []hitreg.Shape{{OffsetX: 14, Radius: 10}, {OffsetX: 16, Radius: 8}}, tags.ResolvEnemy, []*donburi.Entry{near, near}},
		{"far reach", []hitreg.Shape{{OffsetX: 196, Radius: 6}}, tags.ResolvEnemy, []*donburi.Entry{far}},
		{"zero radius ignored", []hitreg.Shape{{OffsetX: 14}}, tags.ResolvEnemy, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlap.OverlapShapes(origin, tt.shapes, tt.layer)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d differs", i)
				}
			}
		})
	}

	if n := len(space.Objects()); n != 3 {
		t.Errorf("probes left in space: %d objects", n)
	}
}

func TestOverlapThroughRegistry(t *testing.T) {
	w := donburi.NewWorld()
	space := resolv.NewSpace(320, 240, 16, 16)
	left := placeBox(w, space, 40, 0, 16, 40, tags.ResolvEnemy)
	placeBox(w, space, 120, 0, 16, 40, tags.ResolvEnemy)
	reg := hitreg.NewRegistry(NewOverlap(space))
	origin := dmath.Vec2{X: 88, Y: 20}
	shapes := []hitreg.Shape{{OffsetX: 30, Radius: 10}, {OffsetX: 34, Radius: 10}}

	got := reg.Query(origin, false, shapes, tags.ResolvEnemy, nil)
	if len(got) != 1 || got[0] != left {
		t.Fatalf("facing left should strike only the left target once, got %d", len(got))
	}
}

func TestBuildDefaultArena(t *testing.T) {
	layout, err := leveldata.LoadLayout(leveldata.Arenas, leveldata.DefaultArena)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	a := Build(e, layout)

	if a.Space == nil || len(a.Rooms) != 1 {
		t.Fatalf("rooms = %d", len(a.Rooms))
	}
	if a.IsPositionFree(0, 500, 16, 40) {
		t.Error("a box sunk into the floor should not be free")
	}
	if !a.IsPositionFree(64, 400, 16, 40) {
		t.Error("open air should be free")
	}

	grunt, err := a.SpawnEnemy(e, 300, 472, "Grunt")
	if err != nil {
		t.Fatal(err)
	}
	if room := components.Enemy.Get(grunt).Room; room != "hall" {
		t.Errorf("grunt room = %q, want hall", room)
	}
	if n := components.Room.Get(a.Rooms["hall"]).Remaining; n != 1 {
		t.Errorf("hall remaining = %d, want 1", n)
	}
	if _, err := a.SpawnEnemy(e, 300, 472, "Nobody"); err == nil {
		t.Error("unknown enemy type should fail")
	}
}
