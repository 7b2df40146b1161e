// Package loadout validates the player's ability picks and remembers them
// between runs.
package loadout

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/config"
)

var (
	ErrMissingChoice   = errors.New("loadout: slot left empty")
	ErrDuplicateChoice = errors.New("loadout: ability chosen twice")
	ErrNoLoadout       = errors.New("loadout: no abilities set")
	ErrUnknownChoice   = errors.New("loadout: unknown ability")
)

// Message is the text shown to the player for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingChoice):
		return "Error: Must choose an ability for each dropdown."
	case errors.Is(err, ErrDuplicateChoice):
		return "Error: Each chosen ability must be unique."
	case errors.Is(err, ErrNoLoadout):
		return "Error: You must set your abilities intially."
	case errors.Is(err, ErrUnknownChoice):
		return "Error: That ability is not available."
	default:
		return err.Error()
	}
}

// Validate checks one pick per slot, each from options and none repeated.
// Empty picks are reported before repeats.
func Validate(choices, options []string, slots int) error {
	if len(choices) < slots {
		return ErrMissingChoice
	}
	if len(choices) > slots {
		return fmt.Errorf("%d picks for %d slots: %w", len(choices), slots, ErrDuplicateChoice)
	}
	for _, c := range choices {
		if c == "" {
			return ErrMissingChoice
		}
	}
	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		if seen[c] {
			return fmt.Errorf("%s: %w", c, ErrDuplicateChoice)
		}
		seen[c] = true
		if !slices.Contains(options, c) {
			return fmt.Errorf("%s: %w", c, ErrUnknownChoice)
		}
	}
	return nil
}

// Options lists the abilities a player may pick from book: everything not
// aimed at the player, minus the names in exclude.
func Options(book *config.AbilityBook, playerLayer string, exclude ...string) []string {
	var out []string
	for _, spec := range book.Abilities {
		if spec.HitLayer == playerLayer || slices.Contains(exclude, spec.Name) {
			continue
		}
		out = append(out, spec.Name)
	}
	return out
}

// Build creates the named abilities from book.
func Build(book *config.AbilityBook, env *abilities.Env, names []string) ([]*abilities.Ability, error) {
	out := make([]*abilities.Ability, 0, len(names))
	for _, name := range names {
		spec, ok := book.Find(name)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrUnknownChoice)
		}
		a, err := abilities.New(spec, env)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Menu is the ability selection screen.
type Menu struct {
	options []string
	slots   int
	store   Store
	current []string
}

// NewMenu creates a menu with slots dropdowns over options. store may be nil.
func NewMenu(options []string, slots int, store Store) *Menu {
	return &Menu{options: options, slots: slots, store: store}
}

// Dropdown returns the entries of one dropdown; the first is the empty pick.
func (m *Menu) Dropdown() []string {
	return append([]string{""}, m.options...)
}

func (m *Menu) Slots() int {
	return m.slots
}

// Current is the confirmed loadout, or nil if none has been confirmed.
func (m *Menu) Current() []string {
	return slices.Clone(m.current)
}

// Restore loads the saved loadout. A saved loadout that no longer validates
// is ignored.
func (m *Menu) Restore() error {
	if m.store == nil {
		return nil
	}
	saved, err := m.store.Load()
	if err != nil {
		return err
	}
	if saved == nil {
		return nil
	}
	if err := Validate(saved, m.options, m.slots); err != nil {
		log.Printf("Warning: Ignoring saved loadout %v: %v", saved, err)
		return nil
	}
	m.current = saved
	return nil
}

// Confirm validates choices, makes them current and saves them.
func (m *Menu) Confirm(choices []string) error {
	if err := Validate(choices, m.options, m.slots); err != nil {
		return err
	}
	m.current = slices.Clone(choices)
	if m.store != nil {
		if err := m.store.Save(m.current); err != nil {
			log.Printf("Warning: Could not save loadout: %v", err)
		}
	}
	return nil
}

// Cancel leaves the menu. It fails until a loadout has been confirmed.
func (m *Menu) Cancel() error {
	if len(m.current) == 0 {
		return ErrNoLoadout
	}
	return nil
}
