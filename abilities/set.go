package abilities

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Observer is told when the ability set changes and when a cooldown starts.
type Observer interface {
	AbilitiesChanged(abilities []*Ability)
	ShowCooldown(a *Ability)
}

// Set is the ability set of one character, keyed by display name.
type Set struct {
	abilities []*Ability
	byName    map[string]*Ability
	observers []Observer
}

func NewSet() *Set {
	return &Set{byName: make(map[string]*Ability)}
}

// Add appends a. Names are unique within a set.
func (s *Set) Add(a *Ability) error {
	if _, dup := s.byName[a.name]; dup {
		return fmt.Errorf("ability %q already in set", a.name)
	}
	a.set = s
	s.abilities = append(s.abilities, a)
	s.byName[a.name] = a
	s.notifyChanged()
	return nil
}

func (s *Set) Get(name string) (*Ability, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// All returns the abilities in the order they were added.
func (s *Set) All() []*Ability {
	out := make([]*Ability, len(s.abilities))
	copy(out, s.abilities)
	return out
}

func (s *Set) Len() int {
	return len(s.abilities)
}

// Replace swaps the whole set. Abilities that are dropped are canceled.
func (s *Set) Replace(abilities []*Ability) error {
	byName := make(map[string]*Ability, len(abilities))
	for _, a := range abilities {
		if _, dup := byName[a.name]; dup {
			return fmt.Errorf("ability %q chosen twice", a.name)
		}
		byName[a.name] = a
	}

	for _, old := range s.abilities {
		if byName[old.name] != old {
			old.Cancel()
			old.set = nil
		}
	}
	for _, a := range abilities {
		a.set = s
	}
	s.abilities = append([]*Ability(nil), abilities...)
	s.byName = byName
	s.notifyChanged()
	return nil
}

// Observe registers o and immediately reports the current abilities to it.
func (s *Set) Observe(o Observer) {
	s.observers = append(s.observers, o)
	o.AbilitiesChanged(s.All())
}

// CancelAll interrupts every ability in the set.
func (s *Set) CancelAll() {
	for _, a := range s.abilities {
		a.Cancel()
	}
}

// Release cancels every ability and its cooldown.
func (s *Set) Release() {
	for _, a := range s.abilities {
		a.Release()
	}
}

// Owned reports whether any ability in the set is bound to e.
func (s *Set) Owned(e *donburi.Entry) bool {
	for _, a := range s.abilities {
		if a.owner == e {
			return true
		}
	}
	return false
}

func (s *Set) notifyChanged() {
	if len(s.observers) == 0 {
		return
	}
	all := s.All()
	for _, o := range s.observers {
		o.AbilitiesChanged(all)
	}
}

func (s *Set) showCooldown(a *Ability) {
	for _, o := range s.observers {
		o.ShowCooldown(a)
	}
}
