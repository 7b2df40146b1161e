// Package sim assembles a combat encounter and steps it at a fixed rate.
package sim

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"slices"

	"github.com/automoto/doomerang-combat/abilities"
	"github.com/automoto/doomerang-combat/ai"
	"github.com/automoto/doomerang-combat/arena"
	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/hitreg"
	"github.com/automoto/doomerang-combat/hud"
	"github.com/automoto/doomerang-combat/loadout"
	"github.com/automoto/doomerang-combat/shared/leveldata"
	"github.com/automoto/doomerang-combat/systems"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/automoto/doomerang-combat/tags"
	"github.com/automoto/doomerang-combat/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// Options configures NewWorld. Nil fields are resolved from Config.
type Options struct {
	Config   *config.SimConfig
	Book     *config.AbilityBook
	Layout   *leveldata.Layout
	Selector ai.Selector
	Store    loadout.Store
}

// Stats counts what happened during a run.
type Stats struct {
	Hits     int
	Blocks   int
	Kills    int
	Cleared  []string
	Triggers []string
}

// World is one running encounter.
type World struct {
	ECS      *ecs.ECS
	Timeline *timeline.Timeline
	Arena    *arena.Arena
	Env      *abilities.Env
	Book     *config.AbilityBook
	Menu     *loadout.Menu
	HUD      *hud.CooldownIcons
	Player   *donburi.Entry
	Stats    Stats

	player   *PlayerController
	base     []*abilities.Ability // Always in the set, never part of the loadout
	selector ai.Selector
	queue    CommandQueue
	menuOpen bool

	dt      float64
	ticks   int
	elapsed float64
}

// NewWorld builds the arena, the player and every placed enemy.
func NewWorld(opts Options) (*World, error) {
	if opts.Config == nil {
		opts.Config = config.SimDefaults()
	}
	simCfg := opts.Config
	if simCfg.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive")
	}
	if err := resolve(&opts); err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())
	w := &World{
		ECS:      e,
		Timeline: timeline.New(),
		Book:     opts.Book,
		HUD:      hud.NewCooldownIcons(),
		selector: opts.Selector,
		dt:       1 / float64(simCfg.TickRate),
	}
	w.Arena = arena.Build(e, opts.Layout)

	points := make([]math.Vec2, 0, len(opts.Layout.SpawnPoints))
	for _, p := range opts.Layout.SpawnPoints {
		points = append(points, math.Vec2{X: p.X, Y: p.Y})
	}
	w.Env = &abilities.Env{
		ECS:         e,
		Timeline:    w.Timeline,
		Registry:    hitreg.NewRegistry(w.Arena.Overlap),
		Rand:        rand.New(rand.NewSource(simCfg.Seed)),
		SpawnPoints: points,
		Spawn:       w.spawnEnemy,
	}

	if err := w.createPlayer(opts.Layout.PlayerSpawn, simCfg.Loadout, opts.Store); err != nil {
		return nil, err
	}
	for _, spawn := range opts.Layout.Enemies {
		if _, err := w.spawnEnemy(spawn.X, spawn.Y, spawn.EnemyType); err != nil {
			return nil, err
		}
	}

	w.subscribe()
	w.addSystems()
	return w, nil
}

func resolve(opts *Options) error {
	simCfg := opts.Config
	var err error
	if opts.Book == nil {
		if simCfg.AbilityBook != "" {
			opts.Book, err = config.LoadAbilityBookFile(simCfg.AbilityBook)
		} else {
			opts.Book, err = config.DefaultAbilityBook()
		}
		if err != nil {
			return err
		}
	}
	if opts.Layout == nil {
		if simCfg.Arena != "" {
			dir, file := filepath.Split(simCfg.Arena)
			if dir == "" {
				dir = "."
			}
			opts.Layout, err = leveldata.LoadLayout(os.DirFS(dir), file)
		} else {
			opts.Layout, err = leveldata.LoadLayout(leveldata.Arenas, leveldata.DefaultArena)
		}
		if err != nil {
			return err
		}
	}
	if opts.Selector == nil && simCfg.BossScript != "" {
		sel, err := ai.LoadScriptSelector(simCfg.BossScript)
		if err != nil {
			return err
		}
		opts.Selector = sel
	}
	if opts.Store == nil && simCfg.Loadout.Persist {
		store, err := loadout.OpenDataStore(simCfg.Loadout.AppName)
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			opts.Store = store
		}
	}
	return nil
}

func (w *World) createPlayer(spawn leveldata.Point, run config.LoadoutRunConfig, store loadout.Store) error {
	w.Player = factory.CreatePlayer(w.ECS, spawn.X, spawn.Y)

	set, err := abilities.NewSetFromBook(w.Book, config.Player.BaseAbilities, w.Env)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	w.base = set.All()
	set.Observe(w.HUD)
	w.player = NewPlayerController(w.Player, abilities.NewController(set))

	slots := len(run.Abilities)
	if slots == 0 {
		slots = config.Player.LoadoutSlots
	}
	options := loadout.Options(w.Book, tags.ResolvPlayer, config.Player.BaseAbilities...)
	w.Menu = loadout.NewMenu(options, slots, store)
	if err := w.Menu.Restore(); err != nil {
		log.Printf("Warning: Could not load loadout: %v", err)
	}
	if w.Menu.Current() == nil && len(run.Abilities) > 0 {
		if err := w.Menu.Confirm(run.Abilities); err != nil {
			return fmt.Errorf("player loadout %v: %s: %w", run.Abilities, loadout.Message(err), err)
		}
	}
	if w.Menu.Current() == nil {
		log.Println("No loadout set, opening the ability menu")
		w.openMenu()
		return nil
	}
	return w.applyLoadout(w.Menu.Current())
}

func (w *World) applyLoadout(picks []string) error {
	built, err := loadout.Build(w.Book, w.Env, picks)
	if err != nil {
		return err
	}
	all := append(slices.Clone(w.base), built...)
	return w.player.Controller().Set().Replace(all)
}

// reload rebuilds the player's abilities from book. Enemies keep theirs.
func (w *World) reload(book *config.AbilityBook) error {
	base, err := loadout.Build(book, w.Env, config.Player.BaseAbilities)
	if err != nil {
		return err
	}
	picks, err := loadout.Build(book, w.Env, w.Menu.Current())
	if err != nil {
		return err
	}
	w.Book, w.base = book, base
	return w.Abilities().Replace(append(slices.Clone(base), picks...))
}

// spawnEnemy places an enemy and gives it a brain. Summoning abilities spawn
// through here as well.
func (w *World) spawnEnemy(x, y float64, enemyType string) (*donburi.Entry, error) {
	entry, err := w.Arena.SpawnEnemy(w.ECS, x, y, enemyType)
	if err != nil {
		return nil, err
	}
	typ := components.Enemy.Get(entry).TypeConfig
	set, err := abilities.NewSetFromBook(w.Book, typ.Abilities, w.Env)
	if err != nil {
		return nil, fmt.Errorf("%s abilities: %w", enemyType, err)
	}
	brain, err := ai.New(entry, abilities.NewController(set), ai.Options{Selector: w.selector})
	if err != nil {
		return nil, err
	}
	brain.Attach()
	return entry, nil
}

func (w *World) addSystems() {
	dt := w.dt
	gameplay := []ecs.System{
		func(*ecs.ECS) { w.Timeline.Advance(dt) },
		systems.NewUpdateActors(dt),
		systems.NewUpdateMovement(dt),
		systems.NewUpdateProjectiles(dt),
		systems.NewUpdateLances(dt),
		systems.UpdateHazards,
		systems.NewUpdateDeaths(dt),
		systems.NewUpdateStates(dt),
	}

	w.ECS.AddSystem(w.applyCommands)
	for _, s := range gameplay {
		w.ECS.AddSystem(systems.WithPauseCheck(s))
	}
	w.ECS.AddSystem(func(e *ecs.ECS) { events.ProcessAllEvents(e.World) })
	w.ECS.AddSystem(systems.WithPauseCheck(func(*ecs.ECS) {
		w.HUD.Update(dt)
		w.elapsed += dt
	}))
}

// Step runs one tick.
func (w *World) Step() {
	w.ECS.Update()
	w.ticks++
}

// Push queues a command for the next tick. Safe from any goroutine.
func (w *World) Push(c Command) {
	w.queue.Push(c)
}

// Clock is the time since the run started, pauses included.
func (w *World) Clock() float64 {
	return float64(w.ticks) * w.dt
}

// Elapsed is the simulated time, pauses excluded.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

func (w *World) TickDuration() float64 {
	return w.dt
}

func (w *World) Abilities() *abilities.Set {
	return w.player.Controller().Set()
}

func (w *World) MenuOpen() bool {
	return w.menuOpen
}

func (w *World) Paused() bool {
	return systems.IsPaused(w.ECS)
}

// Enemies lists every enemy still in the world, dead or alive.
func (w *World) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w.ECS.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// EnemiesAlive counts living enemies, bosses included.
func (w *World) EnemiesAlive() int {
	n := 0
	tags.Enemy.Each(w.ECS.World, func(e *donburi.Entry) {
		if combat.CheckIsAlive(e) {
			n++
		}
	})
	return n
}

// Over reports whether the player died or every enemy is dead.
func (w *World) Over() (over bool, won bool) {
	if !combat.CheckIsAlive(w.Player) {
		return true, false
	}
	if w.EnemiesAlive() == 0 {
		return true, true
	}
	return false, false
}

func (w *World) applyCommands(e *ecs.ECS) {
	for _, c := range w.queue.Drain() {
		w.apply(c)
	}
}

func (w *World) apply(c Command) {
	input := components.Input.Get(w.Player)
	switch c.Action {
	case ActionMove:
		input.MoveAxis = c.Axis
	case ActionPress:
		input.Press(c.Ability)
	case ActionRelease:
		input.Release(c.Ability)
	case ActionMenu:
		w.openMenu()
	case ActionLoadout:
		if err := w.Menu.Confirm(c.Picks); err != nil {
			log.Println(loadout.Message(err))
			return
		}
		if err := w.applyLoadout(w.Menu.Current()); err != nil {
			log.Printf("Error applying loadout: %v", err)
			return
		}
		log.Printf("Loadout set: %v", w.Menu.Current())
		w.closeMenu()
	case ActionCancel:
		if err := w.Menu.Cancel(); err != nil {
			log.Println(loadout.Message(err))
			return
		}
		w.closeMenu()
	case ActionPause:
		systems.TogglePause(w.ECS, components.PauseManual)
	case ActionReload:
		if c.Book == nil {
			return
		}
		if err := w.reload(c.Book); err != nil {
			log.Printf("Error reloading abilities: %v", err)
			return
		}
		log.Printf("Abilities reloaded: %v", c.Book.Names())
	}
}

func (w *World) openMenu() {
	if w.menuOpen {
		return
	}
	w.menuOpen = true
	if !systems.IsPaused(w.ECS) {
		systems.TogglePause(w.ECS, components.PauseAbilityMenu)
	}
}

func (w *World) closeMenu() {
	if !w.menuOpen {
		return
	}
	w.menuOpen = false
	systems.UnpauseIfPaused(w.ECS)
}

func (w *World) subscribe() {
	world := w.ECS.World
	systems.SubscribeEncounter(world)

	combat.TookDamageEvent.Subscribe(world, func(_ donburi.World, ev combat.TookDamage) {
		w.Stats.Hits++
		log.Printf("%s hit %s for %d (%d left)",
			describe(ev.Event.Attacker), describe(ev.Target), ev.Event.Damage, ev.Remaining)
	})
	combat.AttackBlockedEvent.Subscribe(world, func(_ donburi.World, ev combat.AttackBlocked) {
		w.Stats.Blocks++
		log.Printf("%s blocked %s", describe(ev.Target), describe(ev.Event.Attacker))
	})
	combat.HasDiedEvent.Subscribe(world, func(_ donburi.World, ev combat.HasDied) {
		log.Printf("%s died", describe(ev.Target))
		if !ev.Target.Valid() || !ev.Target.HasComponent(tags.Enemy) {
			return
		}
		w.Stats.Kills++
		if brain := components.Brain.Get(ev.Target); brain.Actor != nil {
			if en, ok := brain.Actor.(*ai.Enemy); ok {
				en.Controller().Set().Release()
			}
		}
	})
	systems.RoomClearedEvent.Subscribe(world, func(_ donburi.World, ev systems.RoomCleared) {
		w.Stats.Cleared = append(w.Stats.Cleared, ev.Name)
	})
	systems.TriggerFiredEvent.Subscribe(world, func(_ donburi.World, ev systems.TriggerFired) {
		w.Stats.Triggers = append(w.Stats.Triggers, ev.Name)
		log.Printf("Trigger %q fired", ev.Name)
	})
}

func describe(e *donburi.Entry) string {
	switch {
	case e == nil || !e.Valid():
		return "something"
	case e.HasComponent(tags.Player):
		return "player"
	case e.HasComponent(components.Enemy):
		return fmt.Sprintf("%s#%d", components.Enemy.Get(e).TypeName, e.Entity().Id())
	}
	return fmt.Sprintf("entity#%d", e.Entity().Id())
}
