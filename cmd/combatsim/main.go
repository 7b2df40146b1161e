package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/sim"
)

func main() {
	configPath := flag.String("config", "", "Simulation settings (TOML)")
	bookPath := flag.String("abilities", "", "Ability book (YAML), overrides the settings file")
	arenaPath := flag.String("arena", "", "Arena layout (TMX), overrides the settings file")
	bossScript := flag.String("boss-script", "", "Boss attack selector (tengo), overrides the settings file")
	duration := flag.Float64("duration", -1, "Seconds to simulate (0 = until the encounter ends)")
	realtime := flag.Bool("realtime", false, "Pace ticks with the wall clock")
	watch := flag.Bool("watch", false, "Reload the ability book when it changes")
	flag.Parse()

	simCfg := config.SimDefaults()
	if *configPath != "" {
		loaded, err := config.LoadSim(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		simCfg = loaded
	}
	if *bookPath != "" {
		simCfg.AbilityBook = *bookPath
	}
	if *arenaPath != "" {
		simCfg.Arena = *arenaPath
	}
	if *bossScript != "" {
		simCfg.BossScript = *bossScript
	}
	if *duration >= 0 {
		simCfg.Duration = *duration
	}
	if *realtime {
		simCfg.Realtime = true
	}

	script, err := sim.ParseScript(simCfg.Player.Script)
	if err != nil {
		log.Fatalf("Failed to parse player script: %v", err)
	}

	world, err := sim.NewWorld(sim.Options{Config: simCfg})
	if err != nil {
		log.Fatalf("Failed to build encounter: %v", err)
	}

	loop := sim.NewGameLoop(world, simCfg.TickRate).WithScript(script).Realtime(simCfg.Realtime)

	if *watch {
		if simCfg.AbilityBook == "" {
			log.Fatalf("-watch needs an ability book file")
		}
		watcher, err := config.NewWatcher(simCfg.AbilityBook)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", simCfg.AbilityBook, err)
		}
		defer watcher.Close()
		go reloadBooks(world, watcher)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Running encounter (tick rate: %d/s, duration: %.1fs, seed: %d)",
		simCfg.TickRate, simCfg.Duration, simCfg.Seed)
	loop.Run(simCfg.Duration)

	s := world.Stats
	log.Printf("Hits: %d, blocks: %d, kills: %d, rooms cleared: %v, enemies left: %d, player health: %d",
		s.Hits, s.Blocks, s.Kills, s.Cleared, world.EnemiesAlive(), combat.GetHealth(world.Player))
	log.Printf("Cooldowns: %s", world.HUD)
}

func reloadBooks(world *sim.World, watcher *config.Watcher) {
	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			book, err := config.LoadAbilityBookFile(path)
			if err != nil {
				log.Printf("Ignoring %s: %v", path, err)
				continue
			}
			world.Push(sim.Command{Action: sim.ActionReload, Book: book})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
