package config

// StateID names a node in an actor's behaviour graph.
type StateID string

const (
	StateNone StateID = ""

	// Player
	StateIdle      StateID = "idle"
	StateAttacking StateID = "attacking"

	// Ground enemies
	StatePatrol  StateID = "patrol"
	StateChase   StateID = "chase"
	StateAttack  StateID = "attack"
	StateSpacing StateID = "spacing"
	StateStunned StateID = "stunned"
	StateDead    StateID = "dead"

	// Boss
	StateDormant StateID = "dormant"
	StateRising  StateID = "rising"
	StateActive  StateID = "active"
)

// EventID names a transition trigger in a behaviour graph.
type EventID string

const (
	EventPlayerSpotted EventID = "player_spotted"
	EventPlayerLost    EventID = "player_lost"
	EventInRange       EventID = "in_range"
	EventAttackEnded   EventID = "attack_ended"
	EventSpacingIsGood EventID = "spacing_is_good"
	EventStunned       EventID = "stunned"
	EventRecovered     EventID = "recovered"
	EventDied          EventID = "died"
	EventTriggered     EventID = "triggered"
	EventRisen         EventID = "risen"
	EventReady         EventID = "ready"
)
