package components

import "github.com/yohamta/donburi"

// Actor drives an entity from outside the ECS: the player's input controller
// or an enemy's behaviour graph.
type Actor interface {
	Update(dt float64)

	// Interrupt cancels every in-flight ability the actor owns.
	Interrupt()

	// Stagger interrupts the actor and holds it for duration seconds. A
	// duration of zero or less asks for the actor's own default.
	Stagger(duration float64)
}

type BrainData struct {
	Actor Actor
}

var Brain = donburi.NewComponentType[BrainData]()
