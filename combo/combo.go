// Package combo runs a chain of attack phases in response to repeated
// activation, falling back to the first phase after a quiet period.
package combo

import (
	"errors"

	"github.com/automoto/doomerang-combat/attack"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
)

var ErrNoPhases = errors.New("combo needs at least one phase")

// Options tune a Runner.
type Options struct {
	// ResetTimeout is how long a half-finished combo waits for the next
	// activation before starting over.
	ResetTimeout float64

	// AutoChain starts the next phase as soon as the previous one ends.
	AutoChain bool

	Policy hitreg.Policy

	// OnChainEnd runs when the terminal phase completes.
	OnChainEnd func()

	// OnReset runs when a half-finished combo times out and returns to
	// idle. OnChainEnd does not run in that case.
	OnReset func()

	OnStrike func(attack.Strike)
}

// Env is the world a combo strikes into.
type Env struct {
	World    donburi.World
	Timeline *timeline.Timeline
	Registry *hitreg.Registry
	Owner    *donburi.Entry
	Layer    string
}

// Runner is idle when Current is nil. Otherwise Current is the phase that
// is running, or the one the next activation will run.
type Runner struct {
	head *attack.Phase
	opts Options

	current *attack.Phase
	exec    *attack.Execution
	env     Env

	tl         *timeline.Timeline
	resetTimer timeline.Handle

	// Targets struck so far in this pass through the chain. Only used by
	// the cross-phase policy.
	session *hitreg.Set
}

func New(head *attack.Phase, opts Options) (*Runner, error) {
	if head == nil {
		return nil, ErrNoPhases
	}
	return &Runner{head: head, opts: opts}, nil
}

// Activate starts the first phase when idle, or the pending next phase when
// the previous one has completed. It does nothing while a phase is in
// flight. It returns the duration of the phase it started.
func (r *Runner) Activate(env Env) (float64, bool) {
	if r.InFlight() {
		return 0, false
	}
	r.env = env
	r.stopResetTimer()
	if r.current == nil {
		r.current = r.head
		r.session = hitreg.NewSet()
	}
	r.start()
	return r.current.Duration(), true
}

func (r *Runner) start() {
	var exclude *hitreg.Set
	if r.opts.Policy == hitreg.CrossPhase {
		exclude = r.session
	}
	r.tl = r.env.Timeline
	r.exec = r.current.Execute(attack.Context{
		World:    r.env.World,
		Timeline: r.env.Timeline,
		Registry: r.env.Registry,
		Owner:    r.env.Owner,
		Layer:    r.env.Layer,
		Exclude:  exclude,
		OnStrike: r.opts.OnStrike,
		Done:     r.finish,
	})
}

func (r *Runner) finish(res attack.Result) {
	r.exec = nil
	if r.opts.Policy == hitreg.CrossPhase {
		r.session.Record(res.Hits...)
	}
	r.current = res.Next

	if r.current == nil {
		r.session = nil
		if r.opts.OnChainEnd != nil {
			r.opts.OnChainEnd()
		}
		return
	}

	if r.opts.AutoChain {
		r.start()
		return
	}

	r.resetTimer = r.tl.Schedule(r.opts.ResetTimeout, r.reset)
}

func (r *Runner) reset() {
	r.resetTimer = 0
	r.current = nil
	r.session = nil
	if r.opts.OnReset != nil {
		r.opts.OnReset()
	}
}

func (r *Runner) stopResetTimer() {
	if r.resetTimer != 0 && r.tl != nil {
		r.tl.Cancel(r.resetTimer)
	}
	r.resetTimer = 0
}

// Cancel stops the running phase and any pending reset, and returns to idle.
func (r *Runner) Cancel() {
	r.exec.Cancel()
	r.exec = nil
	r.stopResetTimer()
	r.current = nil
	r.session = nil
}

func (r *Runner) Current() *attack.Phase {
	return r.current
}

func (r *Runner) Idle() bool {
	return r.current == nil
}

// InFlight reports whether a phase is between its start and its wind-down
// end.
func (r *Runner) InFlight() bool {
	return r.exec.Running()
}

// CurrentDuration is the duration of the current phase, 0 when idle.
func (r *Runner) CurrentDuration() float64 {
	return r.current.Duration()
}

// TotalDuration is the duration of the whole chain.
func (r *Runner) TotalDuration() float64 {
	return attack.TotalDuration(r.head)
}
