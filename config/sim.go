package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SimConfig holds settings for a headless simulation run.
type SimConfig struct {
	TickRate int     `toml:"tick_rate"`
	Duration float64 `toml:"duration"` // Simulated seconds before the run stops
	Seed     int64   `toml:"seed"`
	Realtime bool    `toml:"realtime"` // Pace ticks with a wall-clock ticker

	Arena       string `toml:"arena"`        // TMX path; empty uses the built-in arena
	AbilityBook string `toml:"ability_book"` // YAML path; empty uses the built-in book
	BossScript  string `toml:"boss_script"`  // Optional tengo attack selector

	Player  PlayerRunConfig  `toml:"player"`
	Loadout LoadoutRunConfig `toml:"loadout"`
}

// PlayerRunConfig drives the scripted player.
type PlayerRunConfig struct {
	Script []string `toml:"script"` // "<time> <action> [arg]" lines
}

// LoadoutRunConfig controls loadout selection and persistence.
type LoadoutRunConfig struct {
	Abilities []string `toml:"abilities"`
	Persist   bool     `toml:"persist"`
	AppName   string   `toml:"app_name"`
}

// LoadSim reads a TOML file over the defaults.
func LoadSim(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sim config %s: %w", path, err)
	}
	cfg := SimDefaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse sim config %s: %w", path, err)
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("sim config %s: tick_rate must be positive", path)
	}
	return cfg, nil
}

// SimDefaults returns the settings used when no file is given.
func SimDefaults() *SimConfig {
	return &SimConfig{
		TickRate: C.TickRate,
		Duration: 20,
		Seed:     1,
		Player: PlayerRunConfig{
			Script: []string{
				"0.5 move 1",
				"2.0 press BasicCombo",
				"2.2 press BasicCombo",
				"2.4 press BasicCombo",
				"3.0 press Dash",
				"4.0 press Block",
				"5.0 release Block",
				"6.0 press Lance",
				"8.0 press Heal",
				"9.0 release Heal",
			},
		},
		Loadout: LoadoutRunConfig{
			Abilities: []string{"Heal", "Dash", "Block"},
			AppName:   "doomerang-combat",
		},
	}
}
