package systems

import (
	"testing"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestPitKills(t *testing.T) {
	e := newWorld(t)
	factory.CreatePit(e, 200, 390, 32, 16)
	grunt := mustEnemy(t, e, 205, 360, "Grunt")
	bystander := mustEnemy(t, e, 400, 360, "Grunt")

	UpdateHazards(e)

	if combat.CheckIsAlive(grunt) {
		t.Error("grunt in the pit should be dead")
	}
	if !combat.CheckIsAlive(bystander) {
		t.Error("bystander should be alive")
	}
}

func TestBossTriggerFiresOnce(t *testing.T) {
	e := newWorld(t)
	factory.CreateTrigger(e, BossTrigger, 90, 0, 16, 400)
	factory.CreatePlayer(e, 100, 360)
	boss := mustEnemy(t, e, 500, 336, "Warden")

	var fired []string
	TriggerFiredEvent.Subscribe(e.World, func(w donburi.World, ev TriggerFired) {
		fired = append(fired, ev.Name)
	})

	UpdateHazards(e)
	UpdateHazards(e)
	events.ProcessAllEvents(e.World)

	if !components.Boss.Get(boss).Awake {
		t.Error("boss should be awake")
	}
	if len(fired) != 1 || fired[0] != BossTrigger {
		t.Errorf("fired = %v, want one %q", fired, BossTrigger)
	}
}

func TestRoomClearedWhenLastEnemyDies(t *testing.T) {
	e := newWorld(t)
	SubscribeEncounter(e.World)
	room := factory.CreateRoom(e, "hall", 0, 0, 640, 400)

	var enemies []*donburi.Entry
	for _, x := range []float64{200, 300} {
		g := mustEnemy(t, e, x, 360, "Grunt")
		components.Enemy.Get(g).Room = "hall"
		components.Room.Get(room).Remaining++
		enemies = append(enemies, g)
	}

	var cleared []string
	RoomClearedEvent.Subscribe(e.World, func(w donburi.World, ev RoomCleared) {
		cleared = append(cleared, ev.Name)
	})

	combat.Kill(e.World, enemies[0])
	events.ProcessAllEvents(e.World)
	if data := components.Room.Get(room); data.Cleared || data.Remaining != 1 {
		t.Fatalf("room = %+v, want 1 remaining", *data)
	}

	combat.Kill(e.World, enemies[1])
	events.ProcessAllEvents(e.World)
	events.ProcessAllEvents(e.World)
	if data := components.Room.Get(room); !data.Cleared || data.Remaining != 0 {
		t.Errorf("room = %+v, want cleared", *data)
	}
	if len(cleared) != 1 {
		t.Errorf("cleared = %v, want one notification", cleared)
	}
}

func TestHurtEnemiesAreStaggered(t *testing.T) {
	tests := []struct {
		name string
		hit  func(w donburi.World, target *donburi.Entry)
		want []float64
	}{
		{
			name: "damage uses the default stun",
			hit: func(w donburi.World, target *donburi.Entry) {
				combat.TakeDamage(w, target, combat.DamageEvent{Damage: 1})
			},
			want: []float64{0},
		},
		{
			name: "explicit stagger",
			hit: func(w donburi.World, target *donburi.Entry) {
				combat.Stagger(w, target, 0.75)
			},
			want: []float64{0.75},
		},
		{
			name: "killing blow does not stagger",
			hit: func(w donburi.World, target *donburi.Entry) {
				combat.Kill(w, target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newWorld(t)
			SubscribeEncounter(e.World)
			grunt := mustEnemy(t, e, 200, 360, "Grunt")
			actor := &fakeActor{}
			attach(grunt, actor)

			tt.hit(e.World, grunt)
			events.ProcessAllEvents(e.World)

			if len(actor.staggers) != len(tt.want) {
				t.Fatalf("staggers = %v, want %v", actor.staggers, tt.want)
			}
			for i := range tt.want {
				if actor.staggers[i] != tt.want[i] {
					t.Errorf("staggers = %v, want %v", actor.staggers, tt.want)
				}
			}
		})
	}
}

func TestPlayerDamageDoesNotStagger(t *testing.T) {
	e := newWorld(t)
	SubscribeEncounter(e.World)
	p := factory.CreatePlayer(e, 100, 360)
	actor := &fakeActor{}
	attach(p, actor)

	combat.TakeDamage(e.World, p, combat.DamageEvent{Damage: 10})
	events.ProcessAllEvents(e.World)

	if len(actor.staggers) != 0 {
		t.Errorf("staggers = %v, want none", actor.staggers)
	}
}
