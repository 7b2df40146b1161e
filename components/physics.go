package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is the movement state of a character or projectile. Abilities
// never write these fields directly: they go through the modifier methods,
// which the movement system reads when it integrates.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Acceleration float64
	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	OnGround     bool

	// Facing is -1 or +1. Zero counts as facing right.
	Facing float64

	// MoveAxis is the desired horizontal direction from input or AI, -1..1.
	MoveAxis float64

	// Modifiers
	InputLocked    bool
	ExtraFriction  bool
	GravityOff     bool
	LockedFriction float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// SetMovementLock stops input and AI steering from moving the character.
func (p *PhysicsData) SetMovementLock(locked bool) {
	p.InputLocked = locked
}

// SetFriction switches the heavier friction used while planted.
func (p *PhysicsData) SetFriction(on bool) {
	p.ExtraFriction = on
}

func (p *PhysicsData) SetGravity(on bool) {
	p.GravityOff = !on
}

func (p *PhysicsData) SetVelocity(x, y float64) {
	p.SpeedX = x
	p.SpeedY = y
}

func (p *PhysicsData) Velocity() (float64, float64) {
	return p.SpeedX, p.SpeedY
}

func (p *PhysicsData) FacingRight() bool {
	return p.Facing >= 0
}

// FacingSign returns -1 or +1.
func (p *PhysicsData) FacingSign() float64 {
	if p.FacingRight() {
		return 1
	}
	return -1
}

// Grounded reports whether the body is resting on a solid.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround
}
