package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileData is a straight-flying damaging object. Pooled projectiles are
// parked with Active unset instead of being removed.
type ProjectileData struct {
	Owner     *donburi.Entry
	Damage    int
	Knockback math.Vec2 // Away-from-projectile impulse
	HitLayer  string
	Lifetime  float64 // Seconds left before it expires
	Active    bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()

type LanceState int

const (
	LanceOutbound LanceState = iota
	LanceInbound
)

// LanceData is an out-and-back projectile. Every target is struck once per
// throw and then dragged along until the lance is caught.
type LanceData struct {
	Owner            *donburi.Entry
	State            LanceState
	DistanceTraveled float64
	MaxRange         float64
	Speed            float64
	Damage           int
	Stun             float64
	HitLayer         string
	HitEnemies       map[*donburi.Entry]struct{}
	Dragged          []*donburi.Entry
}

var Lance = donburi.NewComponentType[LanceData]()
