package config

import "github.com/yohamta/donburi/ecs"

// Time values are seconds. Distances are pixels, speeds pixels per second.

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	MaxSpeed     float64

	// Combat
	Health int

	// Physics
	Gravity        float64
	Friction       float64
	LockedFriction float64 // Friction while an ability asks for it (block)

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Abilities every player carries regardless of loadout
	BaseAbilities []string
	LoadoutSlots  int
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name string
	Kind string // "ground", "flier" or "boss"

	Health     int
	ChaseSpeed float64
	ChaseRange float64

	AttackRange     float64
	SpacingDistance float64 // Distance to back off to after an attack
	AttackBand      float64 // Max vertical offset for a flier to start shooting
	MinAttackRange  float64 // A flier closer than this backs off before shooting

	StunDuration float64
	StunLift     float64 // Upward speed applied when stunned

	// Pause after an attack before the next one. Fliers and the boss.
	RecoverDelay float64
	RiseDuration float64

	Abilities []string // Ability book names, in attack selection order

	// Physics
	Gravity  float64
	Friction float64
	MaxSpeed float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	HysteresisMultiplier float64 // For chase range hysteresis
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Incoming attacks whose source lies strictly inside this arc, centred on
	// the defender's facing, are negated while blocking.
	BlockArcDegrees float64

	// Default inactivity window before a melee combo falls back to its head.
	ComboResetTimer float64

	// Upward velocity applied on top of any knockback impulse.
	KnockbackUpwardForce float64

	// Seconds a defeated enemy lingers before it is removed.
	DeathDelay float64

	// Default hit layer filters.
	PlayerHitLayer string
	EnemyHitLayer  string
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64
	CellSize     int
}

// ProjectileConfig contains projectile defaults shared by ranged abilities
type ProjectileConfig struct {
	Width          float64
	Height         float64
	AirTime        float64 // Lifetime when nothing is hit
	OffscreenSlack float64 // Distance outside the arena before a projectile is culled
}

// HUDConfig contains cooldown display configuration
type HUDConfig struct {
	SweepSteps int // Resolution of the cooldown sweep readout
}

// Config holds general simulation configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig
var HUD HUDConfig

// Default is the ECS layer every archetype spawns on.
const Default ecs.LayerID = 0

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 600,
		CellSize:     16,
	}

	Player = PlayerConfig{
		Acceleration:    1800,
		MaxSpeed:        240,
		Health:          100,
		Gravity:         1800,
		Friction:        1200,
		LockedFriction:  3000,
		CollisionWidth:  16,
		CollisionHeight: 40,
		BaseAbilities:   []string{"BasicCombo"},
		LoadoutSlots:    3,
	}

	Combat = CombatConfig{
		BlockArcDegrees:      120,
		ComboResetTimer:      0.5,
		KnockbackUpwardForce: -120,
		DeathDelay:           0.5,
		PlayerHitLayer:       "Enemy",
		EnemyHitLayer:        "Player",
	}

	Projectile = ProjectileConfig{
		Width:          12,
		Height:         6,
		AirTime:        10,
		OffscreenSlack: 100,
	}

	HUD = HUDConfig{
		SweepSteps: 8,
	}

	grunt := EnemyTypeConfig{
		Name:            "Grunt",
		Kind:            "ground",
		Health:          30,
		ChaseSpeed:      90,
		ChaseRange:      240,
		AttackRange:     36,
		SpacingDistance: 60,
		StunDuration:    0.4,
		StunLift:        -180,
		Abilities:       []string{"GruntSwipe"},
		Gravity:         1800,
		Friction:        900,
		MaxSpeed:        180,
		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	flier := EnemyTypeConfig{
		Name:            "Flier",
		Kind:            "flier",
		Health:          20,
		ChaseSpeed:      70,
		ChaseRange:      320,
		AttackRange:     220,
		AttackBand:      24,
		MinAttackRange:  80,
		RecoverDelay:    1.0,
		StunDuration:    0.3,
		Abilities:       []string{"FlierShot"},
		Friction:        600,
		MaxSpeed:        140,
		CollisionWidth:  20,
		CollisionHeight: 16,
	}

	boss := EnemyTypeConfig{
		Name:            "Warden",
		Kind:            "boss",
		Health:          400,
		AttackRange:     80,
		RecoverDelay:    1.0,
		RiseDuration:    1.5,
		Abilities:       []string{"OverheadSwing", "RainBurst", "Summon"},
		Gravity:         1800,
		Friction:        1200,
		MaxSpeed:        120,
		CollisionWidth:  48,
		CollisionHeight: 64,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			grunt.Name: grunt,
			flier.Name: flier,
			boss.Name:  boss,
		},
		HysteresisMultiplier: 1.5,
	}
}

// GetEnemyType returns the named enemy type and whether it exists.
func GetEnemyType(name string) (EnemyTypeConfig, bool) {
	t, ok := Enemy.Types[name]
	return t, ok
}
