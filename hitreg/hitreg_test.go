package hitreg

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type dummyData struct{}

var marker = donburi.NewComponentType[dummyData]()

// stubOverlap returns a fixed answer and remembers what it was asked.
type stubOverlap struct {
	result []*donburi.Entry
	shapes []Shape
	layer  string
	calls  int
}

func (s *stubOverlap) OverlapShapes(_ math.Vec2, shapes []Shape, layer string) []*donburi.Entry {
	s.calls++
	s.shapes = shapes
	s.layer = layer
	return s.result
}

func spawn(w donburi.World, n int) []*donburi.Entry {
	out := make([]*donburi.Entry, n)
	for i := range out {
		out[i] = w.Entry(w.Create(marker))
	}
	return out
}

func TestQueryDeduplicates(t *testing.T) {
	w := donburi.NewWorld()
	es := spawn(w, 3)

	tests := []struct {
		name    string
		result  []*donburi.Entry
		exclude []*donburi.Entry
		want    []*donburi.Entry
	}{
		{"no overlap", nil, nil, nil},
		{"duplicates collapse", []*donburi.Entry{es[0], es[1], es[0], es[0], es[1]}, nil, []*donburi.Entry{es[0], es[1]}},
		{"exclusion applied", []*donburi.Entry{es[0], es[1], es[2], es[1]}, []*donburi.Entry{es[1]}, []*donburi.Entry{es[0], es[2]}},
		{"nil entries skipped", []*donburi.Entry{nil, es[2], nil}, nil, []*donburi.Entry{es[2]}},
		{"everything excluded", []*donburi.Entry{es[0], es[0]}, []*donburi.Entry{es[0]}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubOverlap{result: tt.result}
			reg := NewRegistry(stub)
			var exclude *Set
			if tt.exclude != nil {
				exclude = NewSet()
				exclude.Record(tt.exclude...)
			}
			got := reg.Query(math.Vec2{}, true, []Shape{{Radius: 1}}, "Enemy", exclude)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d targets, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("target %d differs", i)
				}
			}
		})
	}
}

func TestQueryMirrorsShapesWhenFacingLeft(t *testing.T) {
	stub := &stubOverlap{}
	reg := NewRegistry(stub)
	shapes := []Shape{{OffsetX: 10, OffsetY: -3, Radius: 4}}

	reg.Query(math.Vec2{}, false, shapes, "Player", nil)
	if stub.layer != "Player" {
		t.Errorf("layer = %q", stub.layer)
	}
	if len(stub.shapes) != 1 || stub.shapes[0].OffsetX != -10 || stub.shapes[0].OffsetY != -3 {
		t.Errorf("mirrored shapes = %+v", stub.shapes)
	}
	if shapes[0].OffsetX != 10 {
		t.Error("query must not mutate the authored shapes")
	}

	reg.Query(math.Vec2{}, true, shapes, "Player", nil)
	if stub.shapes[0].OffsetX != 10 {
		t.Errorf("facing right should keep offsets, got %+v", stub.shapes)
	}
}

func TestQueryWithoutShapesSkipsPhysics(t *testing.T) {
	stub := &stubOverlap{}
	if got := NewRegistry(stub).Query(math.Vec2{}, true, nil, "Enemy", nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if stub.calls != 0 {
		t.Error("physics should not be asked for an empty shape list")
	}
}

func TestQueryDropsRemovedEntries(t *testing.T) {
	w := donburi.NewWorld()
	es := spawn(w, 2)
	w.Remove(es[0].Entity())

	got := NewRegistry(&stubOverlap{result: es}).Query(math.Vec2{}, true, []Shape{{Radius: 1}}, "Enemy", nil)
	if len(got) != 1 || got[0] != es[1] {
		t.Errorf("expected only the live entry, got %d", len(got))
	}
}

func TestSet(t *testing.T) {
	w := donburi.NewWorld()
	es := spawn(w, 2)

	var s Set
	if s.Has(es[0]) || s.Len() != 0 {
		t.Fatal("zero set should be empty")
	}
	s.Record(es[0], es[0], nil)
	if !s.Has(es[0]) || s.Has(es[1]) || s.Len() != 1 {
		t.Errorf("unexpected set state len=%d", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("clear left entries behind")
	}

	var nilSet *Set
	if nilSet.Has(es[0]) || nilSet.Len() != 0 {
		t.Error("nil set should behave as empty")
	}
}
