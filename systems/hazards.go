package systems

import (
	"log"

	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// BossTrigger is the trigger volume that wakes the encounter boss.
const BossTrigger = "boss"

// RoomCleared is published when the last enemy placed in a room dies.
type RoomCleared struct {
	Name string
}

// TriggerFired is published the first time the player enters a trigger.
type TriggerFired struct {
	Name   string
	Player *donburi.Entry
}

var (
	RoomClearedEvent  = events.NewEventType[RoomCleared]()
	TriggerFiredEvent = events.NewEventType[TriggerFired]()
)

// UpdateHazards kills characters touching a pit and fires the triggers the
// player walks into.
func UpdateHazards(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	characters.Each(ecs.World, func(e *donburi.Entry) {
		if !combat.CheckIsAlive(e) {
			return
		}
		obj := components.Object.Get(e).Object
		check := obj.Check(0, 0, tags.ResolvPit)
		if check == nil {
			return
		}
		for _, pit := range check.ObjectsByTags(tags.ResolvPit) {
			if arena.Touching(obj, pit) {
				doomed = append(doomed, e)
				return
			}
		}
	})
	for _, e := range doomed {
		combat.Kill(ecs.World, e)
	}

	tags.Player.Each(ecs.World, func(p *donburi.Entry) {
		if !combat.CheckIsAlive(p) {
			return
		}
		obj := components.Object.Get(p).Object
		check := obj.Check(0, 0, tags.ResolvTrigger)
		if check == nil {
			return
		}
		for _, t := range check.ObjectsByTags(tags.ResolvTrigger) {
			te, ok := t.Data.(*donburi.Entry)
			if !ok || !te.Valid() || !arena.Touching(obj, t) {
				continue
			}
			fireTrigger(ecs.World, te, p)
		}
	})
}

func fireTrigger(w donburi.World, e, player *donburi.Entry) {
	trigger := components.Trigger.Get(e)
	if trigger.Fired {
		return
	}
	trigger.Fired = true
	if trigger.Name == BossTrigger {
		components.Boss.Each(w, func(b *donburi.Entry) {
			components.Boss.Get(b).Awake = true
		})
	}
	TriggerFiredEvent.Publish(w, TriggerFired{Name: trigger.Name, Player: player})
}

// OnEnemyDied counts a defeated enemy out of its room.
func OnEnemyDied(w donburi.World, ev combat.HasDied) {
	if !ev.Target.Valid() || !ev.Target.HasComponent(components.Enemy) {
		return
	}
	name := components.Enemy.Get(ev.Target).Room
	if name == "" {
		return
	}
	components.Room.Each(w, func(e *donburi.Entry) {
		room := components.Room.Get(e)
		if room.Name != name || room.Cleared {
			return
		}
		room.Remaining--
		if room.Remaining <= 0 {
			room.Remaining = 0
			room.Cleared = true
			log.Printf("Room %q cleared", name)
			RoomClearedEvent.Publish(w, RoomCleared{Name: name})
		}
	})
}

// OnStaggered holds the staggered actor.
func OnStaggered(w donburi.World, ev combat.Staggered) {
	if actor := actorOf(ev.Target); actor != nil {
		actor.Stagger(ev.Duration)
	}
}

// OnEnemyHurt staggers an enemy that took damage for its type's stun time.
func OnEnemyHurt(w donburi.World, ev combat.TookDamage) {
	if ev.Remaining <= 0 || !ev.Target.Valid() || !ev.Target.HasComponent(components.Enemy) {
		return
	}
	if actor := actorOf(ev.Target); actor != nil {
		actor.Stagger(0)
	}
}

// SubscribeEncounter registers the handlers that keep rooms and actors in
// step with combat notifications.
func SubscribeEncounter(w donburi.World) {
	combat.HasDiedEvent.Subscribe(w, OnEnemyDied)
	combat.StaggeredEvent.Subscribe(w, OnStaggered)
	combat.TookDamageEvent.Subscribe(w, OnEnemyHurt)
}

func actorOf(e *donburi.Entry) components.Actor {
	if e == nil || !e.Valid() || !e.HasComponent(components.Brain) {
		return nil
	}
	if !combat.CheckIsAlive(e) {
		return nil
	}
	return components.Brain.Get(e).Actor
}
