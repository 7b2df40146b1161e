// Package ai drives enemies with explicit state tables. Each enemy kind is
// a graph of states joined by (state, event) transitions; attack states ask
// the enemy's abilities how long they take and leave when that time is up.
package ai

import (
	"github.com/automoto/doomerang-combat/config"
)

// AnyState matches every state as the source of a transition.
const AnyState config.StateID = "*"

// Behaviour is what a state does. Every hook is optional.
type Behaviour struct {
	Enter  func()
	Update func(dt float64)
	Exit   func()
}

type transitionKey struct {
	from  config.StateID
	event config.EventID
}

// Machine is a finite state machine over config.StateID.
type Machine struct {
	initial config.StateID
	current config.StateID
	started bool

	states      map[config.StateID]Behaviour
	transitions map[transitionKey]config.StateID

	// Events fired while a transition is running are queued and resolved
	// against the state it lands in.
	switching bool
	queue     []config.EventID

	// OnTransition observes every state change. May be nil.
	OnTransition func(from, to config.StateID, ev config.EventID)
}

func NewMachine(initial config.StateID) *Machine {
	return &Machine{
		initial:     initial,
		states:      make(map[config.StateID]Behaviour),
		transitions: make(map[transitionKey]config.StateID),
	}
}

// State registers the behaviour of id.
func (m *Machine) State(id config.StateID, b Behaviour) *Machine {
	m.states[id] = b
	return m
}

// On adds the transition from --ev--> to. from may be AnyState; an exact
// match wins over AnyState.
func (m *Machine) On(from config.StateID, ev config.EventID, to config.StateID) *Machine {
	m.transitions[transitionKey{from, ev}] = to
	return m
}

// Start enters the initial state. Calling it again does nothing.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.current = m.initial
	m.switching = true
	if b := m.states[m.current]; b.Enter != nil {
		b.Enter()
	}
	m.switching = false
	m.drain()
}

func (m *Machine) Current() config.StateID {
	return m.current
}

// Fire applies ev to the current state. It reports whether a transition
// was taken; events without one are dropped. Events fired from an Enter or
// Exit hook are queued and Fire returns false for them.
func (m *Machine) Fire(ev config.EventID) bool {
	if !m.started {
		return false
	}
	if m.switching {
		m.queue = append(m.queue, ev)
		return false
	}
	to, ok := m.target(ev)
	if !ok {
		return false
	}
	m.switchTo(to, ev)
	m.drain()
	return true
}

// Update runs the current state's Update hook.
func (m *Machine) Update(dt float64) {
	if !m.started {
		m.Start()
	}
	if b := m.states[m.current]; b.Update != nil {
		b.Update(dt)
	}
}

func (m *Machine) target(ev config.EventID) (config.StateID, bool) {
	if to, ok := m.transitions[transitionKey{m.current, ev}]; ok {
		return to, true
	}
	to, ok := m.transitions[transitionKey{AnyState, ev}]
	return to, ok
}

func (m *Machine) switchTo(to config.StateID, ev config.EventID) {
	m.switching = true
	from := m.current
	if b := m.states[from]; b.Exit != nil {
		b.Exit()
	}
	m.current = to
	if m.OnTransition != nil {
		m.OnTransition(from, to, ev)
	}
	if b := m.states[to]; b.Enter != nil {
		b.Enter()
	}
	m.switching = false
}

func (m *Machine) drain() {
	for len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		if to, ok := m.target(ev); ok {
			m.switchTo(to, ev)
		}
	}
}
