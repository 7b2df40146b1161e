package ai

import (
	"reflect"
	"testing"

	"github.com/automoto/doomerang-combat/config"
)

const (
	stateA config.StateID = "a"
	stateB config.StateID = "b"
	stateC config.StateID = "c"

	goB   config.EventID = "go_b"
	goC   config.EventID = "go_c"
	reset config.EventID = "reset"
)

type trace struct {
	log []string
}

func (tr *trace) behaviour(name string) Behaviour {
	return Behaviour{
		Enter:  func() { tr.log = append(tr.log, "enter "+name) },
		Update: func(float64) { tr.log = append(tr.log, "update "+name) },
		Exit:   func() { tr.log = append(tr.log, "exit "+name) },
	}
}

func newTestMachine(tr *trace) *Machine {
	m := NewMachine(stateA)
	m.State(stateA, tr.behaviour("a")).
		State(stateB, tr.behaviour("b")).
		State(stateC, tr.behaviour("c"))
	m.On(stateA, goB, stateB).
		On(stateB, goC, stateC).
		On(AnyState, reset, stateA)
	return m
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []config.EventID
		want   config.StateID
		fired  []bool
	}{
		{"follows the table", []config.EventID{goB, goC}, stateC, []bool{true, true}},
		{"drops unknown events", []config.EventID{goC}, stateA, []bool{false}},
		{"any state wildcard", []config.EventID{goB, goC, reset}, stateA, []bool{true, true, true}},
		{"wildcard from the same state re-enters", []config.EventID{reset}, stateA, []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(&trace{})
			m.Start()
			for i, ev := range tt.events {
				if got := m.Fire(ev); got != tt.fired[i] {
					t.Errorf("Fire(%s) = %v, want %v", ev, got, tt.fired[i])
				}
			}
			if m.Current() != tt.want {
				t.Errorf("Current() = %s, want %s", m.Current(), tt.want)
			}
		})
	}
}

func TestMachineHookOrder(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	var changes []string
	m.OnTransition = func(from, to config.StateID, ev config.EventID) {
		changes = append(changes, string(from)+">"+string(to))
	}

	m.Update(0.1)
	m.Fire(goB)
	m.Update(0.1)

	want := []string{"enter a", "update a", "exit a", "enter b", "update b"}
	if !reflect.DeepEqual(tr.log, want) {
		t.Errorf("log = %v, want %v", tr.log, want)
	}
	if !reflect.DeepEqual(changes, []string{"a>b"}) {
		t.Errorf("changes = %v", changes)
	}
}

func TestMachineQueuesEventsFiredDuringEnter(t *testing.T) {
	tr := &trace{}
	m := NewMachine(stateA)
	m.State(stateA, tr.behaviour("a"))
	m.State(stateB, Behaviour{
		Enter: func() {
			tr.log = append(tr.log, "enter b")
			m.Fire(goC)
			tr.log = append(tr.log, "entered b")
		},
		Exit: func() { tr.log = append(tr.log, "exit b") },
	})
	m.State(stateC, tr.behaviour("c"))
	m.On(stateA, goB, stateB).On(stateB, goC, stateC)

	m.Start()
	m.Fire(goB)

	want := []string{"enter a", "exit a", "enter b", "entered b", "exit b", "enter c"}
	if !reflect.DeepEqual(tr.log, want) {
		t.Errorf("log = %v, want %v", tr.log, want)
	}
	if m.Current() != stateC {
		t.Errorf("Current() = %s, want c", m.Current())
	}
}

func TestMachineResolvesQueuedEventsInNewState(t *testing.T) {
	m := NewMachine(stateA)
	var firedDuringExit bool
	m.State(stateA, Behaviour{Exit: func() { firedDuringExit = m.Fire(goC) }})
	m.State(stateB, Behaviour{})
	m.State(stateC, Behaviour{})
	m.On(stateA, goB, stateB).On(stateB, goC, stateC)

	m.Start()
	if !m.Fire(goB) {
		t.Fatal("a --go_b--> b should be taken")
	}
	if firedDuringExit {
		t.Error("an event queued during a transition is not taken yet")
	}
	if m.Current() != stateC {
		t.Errorf("Current() = %s, want c", m.Current())
	}
}

func TestMachineIgnoresEventsBeforeStart(t *testing.T) {
	m := newTestMachine(&trace{})
	if m.Fire(goB) {
		t.Error("Fire before Start should be ignored")
	}
	m.Start()
	if m.Current() != stateA {
		t.Errorf("Current() = %s, want a", m.Current())
	}
}
