package ai

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Choice is what a Selector knows when picking the next attack.
type Choice struct {
	Options     []string // Ability names in configured order
	Turn        int      // Attacks made so far
	Distance    float64  // Horizontal distance to the target
	HealthRatio float64  // Remaining health, 0..1
}

// Selector picks which of Options the next attack uses.
type Selector interface {
	Choose(c Choice) int
}

// RoundRobin cycles through the options in order.
type RoundRobin struct{}

func (RoundRobin) Choose(c Choice) int {
	if len(c.Options) == 0 {
		return -1
	}
	return c.Turn % len(c.Options)
}

//go:embed scripts/warden.tengo
var WardenScript []byte

// ScriptSelector runs a tengo script that assigns the chosen index to the
// global `choice`. The script sees `options`, `turn`, `distance` and
// `health`. Out of range or failing choices fall back to round-robin.
type ScriptSelector struct {
	name     string
	compiled *tengo.Compiled
}

// NewScriptSelector compiles src. name is used in error messages.
func NewScriptSelector(name string, src []byte) (*ScriptSelector, error) {
	script := tengo.NewScript(src)
	_ = script.Add("options", []interface{}{})
	_ = script.Add("turn", 0)
	_ = script.Add("distance", 0.0)
	_ = script.Add("health", 1.0)
	_ = script.Add("choice", 0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile selector %s: %w", name, err)
	}
	return &ScriptSelector{name: name, compiled: compiled}, nil
}

// LoadScriptSelector compiles the script at path.
func LoadScriptSelector(path string) (*ScriptSelector, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selector %s: %w", path, err)
	}
	return NewScriptSelector(path, src)
}

func (s *ScriptSelector) Choose(c Choice) int {
	fallback := RoundRobin{}.Choose(c)
	if len(c.Options) == 0 {
		return fallback
	}

	options := make([]interface{}, len(c.Options))
	for i, o := range c.Options {
		options[i] = o
	}

	if err := s.run(options, c); err != nil {
		log.Printf("ai: selector %s: %v", s.name, err)
		return fallback
	}

	idx := s.compiled.Get("choice").Int()
	if idx < 0 || idx >= len(c.Options) {
		return fallback
	}
	return idx
}

func (s *ScriptSelector) run(options []interface{}, c Choice) error {
	if err := s.compiled.Set("options", options); err != nil {
		return err
	}
	if err := s.compiled.Set("turn", c.Turn); err != nil {
		return err
	}
	if err := s.compiled.Set("distance", c.Distance); err != nil {
		return err
	}
	if err := s.compiled.Set("health", c.HealthRatio); err != nil {
		return err
	}
	if err := s.compiled.Set("choice", -1); err != nil {
		return err
	}
	return s.compiled.Run()
}
