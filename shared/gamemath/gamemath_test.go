package gamemath

import (
	"math"
	"testing"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{10, 3, 7},
		{-10, 3, -7},
		{2, 3, 0},
		{-2, 3, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestAccelerate(t *testing.T) {
	tests := []struct {
		name                   string
		speed, dir, accel, max float64
		want                   float64
	}{
		{"from rest", 0, 1, 30, 240, 30},
		{"clamped at max", 230, 1, 30, 240, 240},
		{"no input", 50, 0, 30, 240, 50},
		{"turning around", 100, -1, 30, 240, 70},
		{"over max keeps speed", 400, 1, 30, 240, 400},
		{"over max braking", 400, -1, 30, 240, 370},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accelerate(tt.speed, tt.dir, tt.accel, tt.max); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHomingVelocity(t *testing.T) {
	vx, vy := HomingVelocity(0, 0, 3, 4, 10)
	if math.Abs(vx-6) > 1e-9 || math.Abs(vy-8) > 1e-9 {
		t.Errorf("got (%v, %v), want (6, 8)", vx, vy)
	}
	vx, vy = HomingVelocity(5, 5, 5, 5, 10)
	if vx != 0 || vy != 0 {
		t.Errorf("at target got (%v, %v), want zero", vx, vy)
	}
}
