package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate adds accel towards dir without pushing past max. A speed that
// already exceeds max (a dash, a knockback) is left to friction.
func Accelerate(speed, dir, accel, max float64) float64 {
	if dir == 0 {
		return speed
	}
	next := speed + dir*accel
	if math.Abs(next) <= max || math.Abs(next) < math.Abs(speed) {
		return next
	}
	if math.Abs(speed) > max {
		return speed
	}
	return ClampSpeed(next, max)
}

// Sign returns -1, 0 or +1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
