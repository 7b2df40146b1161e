package sim

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop steps a World at its tick rate until the run is over, the
// duration has passed or Stop is called.
type GameLoop struct {
	world    *World
	tickRate int
	script   *Script
	realtime bool
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(world *World, tickRate int) *GameLoop {
	return &GameLoop{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// WithScript replays s into the world as the run clock reaches each line.
func (g *GameLoop) WithScript(s *Script) *GameLoop {
	g.script = s
	return g
}

// Realtime paces ticks with a wall-clock ticker instead of running them
// back to back.
func (g *GameLoop) Realtime(on bool) *GameLoop {
	g.realtime = on
	return g
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Run blocks until the encounter ends, duration seconds of run time pass
// (zero means no limit) or Stop is called.
func (g *GameLoop) Run(duration float64) {
	g.running.Store(true)
	defer g.running.Store(false)

	var tick <-chan time.Time
	if g.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		if tick != nil {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return
			case <-tick:
			}
		} else {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return
			default:
			}
		}

		if g.tick(duration) {
			return
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// tick runs one step and reports whether the run is finished.
func (g *GameLoop) tick(duration float64) bool {
	w := g.world
	if g.script != nil {
		g.script.Feed(w.Clock(), &w.queue)
	}
	w.Step()

	if over, won := w.Over(); over {
		if won {
			log.Printf("Encounter won after %.2fs", w.Elapsed())
		} else {
			log.Printf("Player defeated after %.2fs", w.Elapsed())
		}
		return true
	}
	if duration > 0 && w.Clock() >= duration {
		log.Printf("Run ended after %.2fs", w.Clock())
		return true
	}
	return false
}
