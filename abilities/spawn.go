package abilities

import (
	"log"

	"github.com/yohamta/donburi/features/math"
)

// spawn summons random enemies at random spawn points.
type spawn struct {
	enemies []string
	points  []math.Vec2
	count   int
}

func (s *spawn) activate(a *Ability) {
	for i := 0; i < s.count; i++ {
		kind := s.enemies[a.env.Rand.Intn(len(s.enemies))]
		at := s.points[a.env.Rand.Intn(len(s.points))]
		if _, err := a.env.Spawn(at.X, at.Y, kind); err != nil {
			log.Printf("Summon failed: %v", err)
		}
	}
	a.finish()
}

func (s *spawn) deactivate(*Ability) {}
func (s *spawn) cancel(*Ability)     {}
