package abilities

import (
	"math/rand"
	"testing"

	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type rig struct {
	env    *Env
	tl     *timeline.Timeline
	player *donburi.Entry
	spawns []string
}

func newRig(t *testing.T) *rig {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	r := &rig{tl: timeline.New()}
	r.env = &Env{
		ECS:         e,
		Timeline:    r.tl,
		Registry:    hitreg.NewRegistry(arena.NewOverlap(factory.GetSpace(e.World))),
		Rand:        rand.New(rand.NewSource(7)),
		SpawnPoints: []math.Vec2{{X: 300, Y: 100}, {X: 400, Y: 100}},
		Spawn: func(x, y float64, enemyType string) (*donburi.Entry, error) {
			r.spawns = append(r.spawns, enemyType)
			return factory.CreateEnemy(e, x, y, enemyType)
		},
	}
	r.player = factory.CreatePlayer(e, 100, 100)
	return r
}

func (r *rig) build(t *testing.T, spec config.AbilitySpec) *Ability {
	t.Helper()
	a, err := New(spec, r.env)
	if err != nil {
		t.Fatalf("build %s: %v", spec.Name, err)
	}
	return a
}

func (r *rig) fromBook(t *testing.T, name string) *Ability {
	t.Helper()
	book, err := config.DefaultAbilityBook()
	if err != nil {
		t.Fatal(err)
	}
	spec, ok := book.Find(name)
	if !ok {
		t.Fatalf("no %s in default book", name)
	}
	return r.build(t, spec)
}

func (r *rig) enemy(t *testing.T, x, y float64, kind string) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(r.env.ECS, x, y, kind)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func physics(e *donburi.Entry) *components.PhysicsData {
	return components.Physics.Get(e)
}

func health(e *donburi.Entry) *components.HealthData {
	return components.Health.Get(e)
}

// cooldowns records ShowCooldown calls.
type cooldowns struct {
	shown   []string
	changed int
}

func (c *cooldowns) AbilitiesChanged([]*Ability) { c.changed++ }
func (c *cooldowns) ShowCooldown(a *Ability)     { c.shown = append(c.shown, a.Name()) }
