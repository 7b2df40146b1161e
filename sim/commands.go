package sim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/automoto/doomerang-combat/config"
)

// Action is what a Command asks the player to do.
type Action string

const (
	ActionMove    Action = "move"    // Arg: axis in -1..1
	ActionPress   Action = "press"   // Arg: ability name
	ActionRelease Action = "release" // Arg: ability name
	ActionMenu    Action = "menu"    // Open the ability menu, pausing the run
	ActionLoadout Action = "loadout" // Arg: comma separated ability names
	ActionCancel  Action = "cancel"  // Leave the ability menu unchanged
	ActionPause   Action = "pause"   // Toggle pause
	ActionReload  Action = "reload"  // Swap in Book; not scriptable
)

// Command is one input for the player.
type Command struct {
	Action  Action
	Ability string
	Axis    float64
	Picks   []string
	Book    *config.AbilityBook
}

// CommandQueue collects commands from any goroutine until the next tick.
type CommandQueue struct {
	mu       sync.Mutex
	commands []Command
}

func (q *CommandQueue) Push(c Command) {
	q.mu.Lock()
	q.commands = append(q.commands, c)
	q.mu.Unlock()
}

// Drain returns the queued commands in arrival order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.commands
	q.commands = nil
	return out
}

// Timed is a command due at At seconds of simulated time.
type Timed struct {
	At float64
	Command
}

// ParseCommand reads one "<time> <action> [arg]" line.
func ParseCommand(line string) (Timed, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Timed{}, fmt.Errorf("script line %q: want <time> <action> [arg]", line)
	}
	at, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || at < 0 {
		return Timed{}, fmt.Errorf("script line %q: bad time %q", line, fields[0])
	}

	t := Timed{At: at, Command: Command{Action: Action(fields[1])}}
	arg := ""
	if len(fields) > 2 {
		arg = strings.Join(fields[2:], " ")
	}

	switch t.Action {
	case ActionMove:
		axis, err := strconv.ParseFloat(arg, 64)
		if err != nil || axis < -1 || axis > 1 {
			return Timed{}, fmt.Errorf("script line %q: axis must be in -1..1", line)
		}
		t.Axis = axis
	case ActionPress, ActionRelease:
		if arg == "" {
			return Timed{}, fmt.Errorf("script line %q: missing ability name", line)
		}
		t.Ability = arg
	case ActionLoadout:
		for _, p := range strings.Split(arg, ",") {
			t.Picks = append(t.Picks, strings.TrimSpace(p))
		}
	case ActionMenu, ActionCancel, ActionPause:
	default:
		return Timed{}, fmt.Errorf("script line %q: unknown action %q", line, fields[1])
	}
	return t, nil
}

// Script replays timed commands into a queue.
type Script struct {
	commands []Timed
	next     int
}

// ParseScript parses every line, sorted by time. Lines with equal times keep
// their order.
func ParseScript(lines []string) (*Script, error) {
	s := &Script{}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		t, err := ParseCommand(line)
		if err != nil {
			return nil, err
		}
		s.commands = append(s.commands, t)
	}
	sort.SliceStable(s.commands, func(i, j int) bool {
		return s.commands[i].At < s.commands[j].At
	})
	return s, nil
}

// Feed pushes every command due by now.
func (s *Script) Feed(now float64, q *CommandQueue) {
	for s.next < len(s.commands) && s.commands[s.next].At <= now {
		q.Push(s.commands[s.next].Command)
		s.next++
	}
}

func (s *Script) Done() bool {
	return s.next >= len(s.commands)
}

func (s *Script) Len() int {
	return len(s.commands)
}
