package systems

import (
	"log"

	"github.com/automoto/doomerang-combat/components"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause state. Pausing records reason.
func TogglePause(ecs *ecs.ECS, reason components.PauseReason) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		pause.Reason = reason
		log.Println("Pause enabled")
	} else {
		log.Println("Pause disabled")
	}
}

// UnpauseIfPaused resumes the simulation whatever paused it.
func UnpauseIfPaused(ecs *ecs.ECS) {
	if GetOrCreatePause(ecs).IsPaused {
		TogglePause(ecs, components.PauseManual)
	}
}

func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
