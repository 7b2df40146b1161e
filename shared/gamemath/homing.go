package gamemath

import "math"

// HomingVelocity returns velocity components to home toward a target.
func HomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
