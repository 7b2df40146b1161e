package systems

import (
	"testing"

	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = 1.0 / 60

// newWorld returns a 640x480 arena with a floor whose top is at y=400.
func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	factory.CreateWall(e, 0, 400, 640, 16)
	return e
}

func run(e *ecs.ECS, system func(*ecs.ECS), ticks int) {
	for i := 0; i < ticks; i++ {
		system(e)
	}
}

func mustEnemy(t *testing.T, e *ecs.ECS, x, y float64, typ string) *donburi.Entry {
	t.Helper()
	enemy, err := factory.CreateEnemy(e, x, y, typ)
	if err != nil {
		t.Fatal(err)
	}
	return enemy
}

// fakeActor records what the systems asked of it.
type fakeActor struct {
	updates    int
	interrupts int
	staggers   []float64
}

func (a *fakeActor) Update(float64)    { a.updates++ }
func (a *fakeActor) Interrupt()        { a.interrupts++ }
func (a *fakeActor) Stagger(d float64) { a.staggers = append(a.staggers, d) }

func attach(e *donburi.Entry, a components.Actor) {
	components.Brain.SetValue(e, components.BrainData{Actor: a})
}
