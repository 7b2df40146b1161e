package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// AbilityKind selects the behaviour an ability entry is built into.
type AbilityKind string

const (
	KindMelee   AbilityKind = "melee"
	KindChannel AbilityKind = "channel"
	KindDash    AbilityKind = "dash"
	KindBlock   AbilityKind = "block"
	KindLance   AbilityKind = "lance"
	KindShoot   AbilityKind = "shoot"
	KindRain    AbilityKind = "rain"
	KindSpawn   AbilityKind = "spawn"
)

// DedupPolicy names how a melee ability remembers struck targets.
type DedupPolicy string

const (
	DedupPerPhase   DedupPolicy = "per-phase"
	DedupCrossPhase DedupPolicy = "cross-phase"
)

var (
	ErrEmptyChain       = errors.New("combo chain has no phases")
	ErrNegativeCooldown = errors.New("cooldown must not be negative")
)

//go:embed data/abilities.yaml
var defaultData embed.FS

const defaultBookPath = "data/abilities.yaml"

// AbilityBook is the designer-authored list of abilities.
type AbilityBook struct {
	Abilities []AbilitySpec `yaml:"abilities"`
}

// Vec is a plain 2D value as written in YAML.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ShapeSpec is one hit circle relative to the attacker's centre, authored
// facing right.
type ShapeSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// PhaseSpec is one beat of a melee combo.
type PhaseSpec struct {
	Name      string      `yaml:"name"`
	Damage    int         `yaml:"damage"`
	Knockback Vec         `yaml:"knockback"`
	WindUp    float64     `yaml:"windUp"`
	WindDown  float64     `yaml:"windDown"`
	Shapes    []ShapeSpec `yaml:"shapes"`
}

// AbilitySpec is a tagged union: Kind decides which fields are read.
type AbilitySpec struct {
	Name     string      `yaml:"name"`
	Kind     AbilityKind `yaml:"kind"`
	Cooldown float64     `yaml:"cooldown"`
	HitLayer string      `yaml:"hitLayer"`

	// melee
	Phases           []PhaseSpec `yaml:"phases"`
	Dedup            DedupPolicy `yaml:"dedup"`
	ResetTimer       float64     `yaml:"resetTimer"`
	AutoChain        bool        `yaml:"autoChain"`
	LockInput        bool        `yaml:"lockInput"`
	StopMidair       bool        `yaml:"stopMidair"`
	DamageOverride   int         `yaml:"damageOverride"`
	DurationOverride float64     `yaml:"durationOverride"`

	// channel
	HealPerTick int     `yaml:"healPerTick"`
	TickDelay   float64 `yaml:"tickDelay"`
	Ticks       int     `yaml:"ticks"`

	// dash, projectiles
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`

	// projectiles
	Damage    int     `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
	Range     float64 `yaml:"range"`
	Stun      float64 `yaml:"stun"`
	AirTime   float64 `yaml:"airTime"`

	// rain
	Count  int     `yaml:"count"`
	Offset float64 `yaml:"offset"`
	Spread float64 `yaml:"spread"`

	// spawn
	Enemies []string `yaml:"enemies"`
}

// ComboPolicy returns the dedup policy with the per-phase default applied.
func (s AbilitySpec) ComboPolicy() DedupPolicy {
	if s.Dedup == "" {
		return DedupPerPhase
	}
	return s.Dedup
}

// Find returns the ability with the given name.
func (b *AbilityBook) Find(name string) (AbilitySpec, bool) {
	for _, a := range b.Abilities {
		if a.Name == name {
			return a, true
		}
	}
	return AbilitySpec{}, false
}

// Names lists the abilities in authoring order.
func (b *AbilityBook) Names() []string {
	names := make([]string, 0, len(b.Abilities))
	for _, a := range b.Abilities {
		names = append(names, a.Name)
	}
	return names
}

// LoadAbilityBook reads and validates an ability book from fsys.
func LoadAbilityBook(fsys fs.FS, path string) (*AbilityBook, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ability book: %w", err)
	}
	return ParseAbilityBook(data)
}

// LoadAbilityBookFile reads an ability book from the local filesystem.
func LoadAbilityBookFile(path string) (*AbilityBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ability book: %w", err)
	}
	return ParseAbilityBook(data)
}

// DefaultAbilityBook returns the ability book shipped with the binary.
func DefaultAbilityBook() (*AbilityBook, error) {
	return LoadAbilityBook(defaultData, defaultBookPath)
}

// ParseAbilityBook decodes YAML and validates it.
func ParseAbilityBook(data []byte) (*AbilityBook, error) {
	var book AbilityBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse ability book YAML: %w", err)
	}
	if err := validateAbilityBook(&book); err != nil {
		return nil, fmt.Errorf("invalid ability book: %w", err)
	}
	return &book, nil
}

func validateAbilityBook(book *AbilityBook) error {
	if len(book.Abilities) == 0 {
		return fmt.Errorf("abilities cannot be empty")
	}
	seen := make(map[string]bool, len(book.Abilities))
	for _, a := range book.Abilities {
		if a.Name == "" {
			return fmt.Errorf("ability name cannot be empty")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate ability %q", a.Name)
		}
		seen[a.Name] = true
		if err := ValidateAbility(a); err != nil {
			return fmt.Errorf("ability %q: %w", a.Name, err)
		}
	}
	return nil
}

// ValidateAbility checks a single entry for configuration errors.
func ValidateAbility(a AbilitySpec) error {
	if a.Cooldown < 0 {
		return ErrNegativeCooldown
	}
	switch a.Kind {
	case KindMelee:
		if len(a.Phases) == 0 {
			return ErrEmptyChain
		}
		switch a.ComboPolicy() {
		case DedupPerPhase, DedupCrossPhase:
		default:
			return fmt.Errorf("unknown dedup policy %q", a.Dedup)
		}
		if a.ResetTimer < 0 || a.DurationOverride < 0 || a.DamageOverride < 0 {
			return fmt.Errorf("overrides must not be negative")
		}
		for i, p := range a.Phases {
			if p.Damage < 0 {
				return fmt.Errorf("phase %d: damage must not be negative", i)
			}
			if p.WindUp < 0 || p.WindDown < 0 {
				return fmt.Errorf("phase %d: durations must not be negative", i)
			}
			for _, s := range p.Shapes {
				if s.Radius <= 0 {
					return fmt.Errorf("phase %d: shape radius must be positive", i)
				}
			}
		}
	case KindChannel:
		if a.Ticks < 1 {
			return fmt.Errorf("channel needs at least one tick")
		}
		if a.TickDelay < 0 || a.HealPerTick < 0 {
			return fmt.Errorf("channel tick values must not be negative")
		}
	case KindDash:
		if a.Duration < 0 {
			return fmt.Errorf("dash duration must not be negative")
		}
	case KindBlock:
	case KindLance, KindShoot:
		if a.Speed <= 0 {
			return fmt.Errorf("projectile speed must be positive")
		}
		if a.Damage < 0 {
			return fmt.Errorf("damage must not be negative")
		}
	case KindRain:
		if a.Count < 1 {
			return fmt.Errorf("rain needs at least one projectile")
		}
		if a.Speed <= 0 {
			return fmt.Errorf("projectile speed must be positive")
		}
		if a.Damage < 0 {
			return fmt.Errorf("damage must not be negative")
		}
	case KindSpawn:
		if len(a.Enemies) == 0 {
			return fmt.Errorf("spawn needs at least one enemy type")
		}
		if a.Count < 1 {
			return fmt.Errorf("spawn count must be at least one")
		}
	default:
		return fmt.Errorf("unknown ability kind %q", a.Kind)
	}
	return nil
}
