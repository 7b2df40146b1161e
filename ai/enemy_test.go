package ai

import (
	"math/rand"
	"testing"

	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60

type rig struct {
	ecs    *ecs.ECS
	tl     *timeline.Timeline
	env    *abilities.Env
	book   *cfg.AbilityBook
	player *donburi.Entry
}

func newRig(t *testing.T) *rig {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 960, 480, 16, 16)
	book, err := cfg.DefaultAbilityBook()
	if err != nil {
		t.Fatal(err)
	}
	r := &rig{ecs: e, tl: timeline.New(), book: book}
	r.env = &abilities.Env{
		ECS:         e,
		Timeline:    r.tl,
		Registry:    hitreg.NewRegistry(arena.NewOverlap(factory.GetSpace(e.World))),
		Rand:        rand.New(rand.NewSource(3)),
		SpawnPoints: []math.Vec2{{X: 700, Y: 360}},
		Spawn: func(x, y float64, enemyType string) (*donburi.Entry, error) {
			return factory.CreateEnemy(e, x, y, enemyType)
		},
	}
	r.player = factory.CreatePlayer(e, 100, 360)
	return r
}

func (r *rig) enemy(t *testing.T, x, y float64, typ string, opts Options) (*donburi.Entry, *Enemy) {
	t.Helper()
	entry, err := factory.CreateEnemy(r.ecs, x, y, typ)
	if err != nil {
		t.Fatal(err)
	}
	set, err := abilities.NewSetFromBook(r.book, components.Enemy.Get(entry).TypeConfig.Abilities, r.env)
	if err != nil {
		t.Fatal(err)
	}
	en, err := New(entry, abilities.NewController(set), opts)
	if err != nil {
		t.Fatal(err)
	}
	return entry, en.Attach()
}

// step runs the brain and the timeline for seconds of simulated time.
func (r *rig) step(en *Enemy, seconds float64) {
	for n := int(seconds/tick + 0.5); n > 0; n-- {
		en.Update(tick)
		r.tl.Advance(tick)
	}
}

func moveTo(e *donburi.Entry, x float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Update()
}

func TestGroundEnemyChasesAttacksAndBacksOff(t *testing.T) {
	r := newRig(t)
	grunt, en := r.enemy(t, 300, 360, "Grunt", Options{})

	// Spot the player, then start walking.
	r.step(en, 2*tick)
	if got := en.Machine().Current(); got != cfg.StateChase {
		t.Fatalf("state = %s, want chase", got)
	}
	if axis := components.Physics.Get(grunt).MoveAxis; axis >= 0 {
		t.Errorf("MoveAxis = %v, want towards the player", axis)
	}
	if s := components.State.Get(grunt).CurrentState; s != cfg.StateChase {
		t.Errorf("state mirror = %s, want chase", s)
	}

	moveTo(grunt, 120)
	r.step(en, tick)
	if got := en.Machine().Current(); got != cfg.StateAttack {
		t.Fatalf("state = %s, want attack", got)
	}
	if components.Physics.Get(grunt).FacingRight() {
		t.Error("grunt should face the player on its left")
	}

	r.step(en, 0.4)
	if hp := combat.GetHealth(r.player); hp != 92 {
		t.Errorf("player health = %d, want 92", hp)
	}

	r.step(en, 0.5)
	if got := en.Machine().Current(); got != cfg.StateSpacing {
		t.Fatalf("state = %s, want spacing", got)
	}
	r.step(en, tick)
	if axis := components.Physics.Get(grunt).MoveAxis; axis <= 0 {
		t.Errorf("MoveAxis = %v, want backing off to the right", axis)
	}
}

func TestGroundEnemyLosesPlayer(t *testing.T) {
	r := newRig(t)
	grunt, en := r.enemy(t, 300, 360, "Grunt", Options{})
	r.step(en, tick)

	moveTo(grunt, 900)
	r.step(en, tick)

	if got := en.Machine().Current(); got != cfg.StatePatrol {
		t.Errorf("state = %s, want patrol", got)
	}
}

func TestStaggerInterruptsAttack(t *testing.T) {
	r := newRig(t)
	_, en := r.enemy(t, 120, 360, "Grunt", Options{})
	r.step(en, 2*tick)
	if got := en.Machine().Current(); got != cfg.StateAttack {
		t.Fatalf("state = %s, want attack", got)
	}

	en.Stagger(0)
	if got := en.Machine().Current(); got != cfg.StateStunned {
		t.Fatalf("state = %s, want stunned", got)
	}

	r.step(en, 0.3)
	if hp := combat.GetHealth(r.player); hp != 100 {
		t.Errorf("player health = %d, the interrupted swipe should not land", hp)
	}

	r.step(en, 0.2)
	if got := en.Machine().Current(); got == cfg.StateStunned {
		t.Errorf("still stunned after the stun time")
	}
}

func TestBossWakesAndCyclesAttacks(t *testing.T) {
	r := newRig(t)
	boss, en := r.enemy(t, 600, 336, "Warden", Options{})
	typ := components.Enemy.Get(boss).TypeConfig

	r.step(en, 1)
	if got := en.Machine().Current(); got != cfg.StateDormant {
		t.Fatalf("state = %s, want dormant", got)
	}

	components.Boss.Get(boss).Awake = true
	r.step(en, tick)
	if got := en.Machine().Current(); got != cfg.StateRising {
		t.Fatalf("state = %s, want rising", got)
	}

	r.step(en, typ.RiseDuration+tick)
	if got := en.Machine().Current(); got != cfg.StateActive {
		t.Fatalf("state = %s, want active", got)
	}

	r.step(en, typ.RecoverDelay+tick)
	if got := en.Machine().Current(); got != cfg.StateAttack {
		t.Fatalf("state = %s, want attack", got)
	}
	swing, _ := en.Controller().Set().Get("OverheadSwing")
	if !swing.Active() {
		t.Error("first attack should be the overhead swing")
	}

	en.Stagger(2)
	if got := en.Machine().Current(); got != cfg.StateAttack {
		t.Errorf("boss should ignore stagger, state = %s", got)
	}

	// Swing, recover, then rain.
	r.step(en, 1.2+typ.RecoverDelay+0.1)
	active := 0
	components.Projectile.Each(r.ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Active {
			active++
		}
	})
	if active != 10 {
		t.Errorf("active projectiles = %d, want the 10 of the rain", active)
	}
}

type fixedSelector int

func (f fixedSelector) Choose(Choice) int { return int(f) }

func TestBossUsesSelector(t *testing.T) {
	r := newRig(t)
	boss, en := r.enemy(t, 600, 336, "Warden", Options{Selector: fixedSelector(2)})
	typ := components.Enemy.Get(boss).TypeConfig
	components.Boss.Get(boss).Awake = true

	r.step(en, tick+typ.RiseDuration+typ.RecoverDelay+0.1)

	enemies := 0
	components.Enemy.Each(r.ecs.World, func(*donburi.Entry) { enemies++ })
	if enemies != 3 {
		t.Errorf("enemies = %d, want the boss and 2 summons", enemies)
	}
}

func TestFlierShootsWhenLevel(t *testing.T) {
	r := newRig(t)
	flier, en := r.enemy(t, 250, 372, "Flier", Options{})

	r.step(en, tick)
	if got := en.Machine().Current(); got != cfg.StateAttack {
		t.Fatalf("state = %s, want attack", got)
	}
	shots := 0
	components.Projectile.Each(r.ecs.World, func(*donburi.Entry) { shots++ })
	if shots != 1 {
		t.Errorf("shots = %d, want 1", shots)
	}

	moveTo(flier, 600)
	r.step(en, 1+2*tick)
	if got := en.Machine().Current(); got != cfg.StateChase {
		t.Errorf("state = %s, want chase after recovering", got)
	}
	if axis := components.Physics.Get(flier).MoveAxis; axis >= 0 {
		t.Errorf("MoveAxis = %v, want closing in on a distant player", axis)
	}

	moveTo(flier, 130)
	r.step(en, tick)
	if axis := components.Physics.Get(flier).MoveAxis; axis <= 0 {
		t.Errorf("MoveAxis = %v, want backing away from a close player", axis)
	}
}

func TestNewRejectsNonEnemies(t *testing.T) {
	r := newRig(t)
	if _, err := New(r.player, nil, Options{}); err == nil {
		t.Error("expected an error for a player entry")
	}
}
