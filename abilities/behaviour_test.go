package abilities

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-combat/combat"
	"github.com/automoto/doomerang-combat/components"
	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestChannelHeal(t *testing.T) {
	tests := []struct {
		name         string
		stopAt       float64
		stop         func(a *Ability, owner *donburi.Entry)
		wantHealth   int
		wantCooldown bool
	}{
		{"runs every tick", 3, nil, 90, true},
		{"release ends early", .6, func(a *Ability, o *donburi.Entry) { a.Deactivate(o) }, 75, true},
		{"interrupt skips the cooldown", .6, func(a *Ability, _ *donburi.Entry) { a.Cancel() }, 75, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			heal := r.fromBook(t, "Heal")
			health(r.player).Current = 70

			heal.Activate(r.player)
			if !physics(r.player).InputLocked {
				t.Fatal("healing locks input")
			}
			r.tl.Advance(tt.stopAt)
			if tt.stop != nil {
				tt.stop(heal, r.player)
			}
			r.tl.Advance(5)

			if got := health(r.player).Current; got != tt.wantHealth {
				t.Errorf("health = %d, want %d", got, tt.wantHealth)
			}
			if physics(r.player).InputLocked {
				t.Error("input still locked")
			}
			// Cooldown is 8s; 5s have passed since the heal ended.
			if heal.IsOnCooldown() != tt.wantCooldown {
				t.Errorf("on cooldown = %v, want %v", heal.IsOnCooldown(), tt.wantCooldown)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	r := newRig(t)
	block := r.fromBook(t, "Block")

	block.Activate(r.player)
	p := physics(r.player)
	if !combat.IsBlocking(r.player) || !p.InputLocked || !p.ExtraFriction {
		t.Fatal("block should shield and plant the player")
	}

	block.Deactivate(r.player)
	if combat.IsBlocking(r.player) || p.InputLocked || p.ExtraFriction {
		t.Fatal("release should lower the shield")
	}
	if !block.IsOnCooldown() {
		t.Fatal("cooldown starts on release")
	}

	r.tl.Advance(1)
	block.Deactivate(r.player)
	if block.IsOnCooldown() {
		t.Error("a release without a raised shield must not start a cooldown")
	}
}

func TestDash(t *testing.T) {
	r := newRig(t)
	dash := r.fromBook(t, "Dash")
	p := physics(r.player)
	p.Facing = -1

	if d := dash.Attack(r.player); d != .25 {
		t.Errorf("reported duration = %v", d)
	}
	if p.SpeedX != -720 || p.SpeedY != 0 || !p.GravityOff || !p.InputLocked {
		t.Fatalf("dash state %+v", *p)
	}
	dash.Activate(r.player)
	r.tl.Advance(.25)
	if p.SpeedX != 0 || p.GravityOff || p.InputLocked {
		t.Errorf("dash did not end cleanly: %+v", *p)
	}
	if !dash.IsOnCooldown() {
		t.Error("dash cools down when it ends")
	}
}

func TestBasicComboStrikesEnemyInFront(t *testing.T) {
	r := newRig(t)
	combo := r.fromBook(t, "BasicCombo")
	grunt := r.enemy(t, 118, 100, "Grunt")
	behind := r.enemy(t, 70, 100, "Grunt")

	combo.Activate(r.player)
	combo.Activate(r.player)
	r.tl.Advance(.05)

	if got := health(grunt).Current; got != 29 {
		t.Errorf("grunt in front hp = %d, want 29", got)
	}
	if got := health(behind).Current; got != 30 {
		t.Errorf("grunt behind hp = %d, want 30", got)
	}
	if kb := health(grunt).PendingKnockback; kb.X <= 0 {
		t.Errorf("knockback should push the grunt away to the right, got %+v", kb)
	}
}

func TestComboTimeoutEndsActivation(t *testing.T) {
	shape := []config.ShapeSpec{{X: 14, Radius: 10}}
	tests := []struct {
		name string
		spec config.AbilitySpec
	}{
		{"basic", config.AbilitySpec{}},
		{"locked", config.AbilitySpec{
			Name: "Slam", Kind: config.KindMelee, ResetTimer: .5, LockInput: true, StopMidair: true,
			Phases: []config.PhaseSpec{
				{Name: "Raise", Damage: 1, WindUp: .1, WindDown: .1, Shapes: shape},
				{Name: "Drop", Damage: 2, WindUp: .1, WindDown: .1, Shapes: shape},
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			var a *Ability
			if tt.spec.Name == "" {
				a = r.fromBook(t, "BasicCombo")
			} else {
				a = r.build(t, tt.spec)
			}
			d := a.Attack(r.player)
			r.tl.Advance(d)
			if !a.Active() {
				t.Fatal("combo should stay active while the next hit can be chained")
			}

			r.tl.Advance(.5)
			if a.Active() {
				t.Error("combo still active after the reset timeout")
			}
			if a.IsOnCooldown() {
				t.Error("a timed out combo starts no cooldown")
			}
			if p := physics(r.player); p.InputLocked || p.GravityOff {
				t.Errorf("owner still locked after the reset timeout: %+v", *p)
			}
		})
	}
}

func TestOverheadSwingLocksUntilDone(t *testing.T) {
	r := newRig(t)
	swing := r.fromBook(t, "OverheadSwing")
	boss := r.enemy(t, 200, 80, "Warden")
	components.Physics.Get(boss).SpeedY = 50

	d := swing.Attack(boss)
	if d < 1.8-1e-9 || d > 1.8+1e-9 {
		t.Errorf("reported duration = %v, want 1.8", d)
	}
	p := physics(boss)
	if !p.InputLocked || !p.GravityOff || p.SpeedY != 0 {
		t.Fatalf("overhead swing should freeze the boss: %+v", *p)
	}

	r.tl.Advance(d)
	if p.InputLocked || p.GravityOff {
		t.Error("boss still frozen after the swing")
	}
	if swing.Active() {
		t.Error("swing should have finished")
	}
}

func TestRainReusesProjectiles(t *testing.T) {
	r := newRig(t)
	boss := r.enemy(t, 400, 200, "Warden")
	rainAbility := r.fromBook(t, "RainBurst")
	w := r.env.World()
	projectiles := donburi.NewQuery(filter.Contains(components.Projectile))

	rainAbility.Activate(boss)
	if n := projectiles.Count(w); n != 10 {
		t.Fatalf("projectiles = %d, want 10", n)
	}
	active := 0
	projectiles.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Active && p.HitLayer == "Player" && p.Damage == 6 {
			active++
		}
	})
	if active != 10 {
		t.Errorf("active projectiles = %d", active)
	}

	// Firing again while the first volley is airborne grows the pool.
	rainAbility.Activate(boss)
	if n := projectiles.Count(w); n != 20 {
		t.Fatalf("projectiles = %d, want 20", n)
	}

	projectiles.Each(w, func(e *donburi.Entry) {
		factory.ParkProjectile(w, e)
	})
	rainAbility.Activate(boss)
	if n := projectiles.Count(w); n != 20 {
		t.Errorf("parked projectiles should be reused, have %d", n)
	}
}

func TestSpawn(t *testing.T) {
	r := newRig(t)
	boss := r.enemy(t, 400, 200, "Warden")
	summon := r.fromBook(t, "Summon")

	summon.Activate(boss)
	if len(r.spawns) != 2 {
		t.Fatalf("spawned %d enemies, want 2", len(r.spawns))
	}
	for _, kind := range r.spawns {
		if kind != "Grunt" && kind != "Flier" {
			t.Errorf("unexpected enemy %q", kind)
		}
	}

	r.env.SpawnPoints = nil
	book, _ := config.DefaultAbilityBook()
	spec, _ := book.Find("Summon")
	if _, err := New(spec, r.env); !errors.Is(err, ErrNoSpawnPoints) {
		t.Errorf("err = %v, want ErrNoSpawnPoints", err)
	}
}

func TestLanceSingleInFlight(t *testing.T) {
	r := newRig(t)
	lance := r.fromBook(t, "Lance")
	lances := donburi.NewQuery(filter.Contains(components.Lance))

	lance.Activate(r.player)
	lance.Activate(r.player)
	if n := lances.Count(r.env.World()); n != 1 {
		t.Errorf("lances = %d, want 1", n)
	}
	entry, _ := lances.First(r.env.World())
	l := components.Lance.Get(entry)
	if l.HitLayer != "Enemy" || l.Owner != r.player {
		t.Errorf("lance = %+v", *l)
	}
}
