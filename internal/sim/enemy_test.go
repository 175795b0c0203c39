package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
)

func TestMovementOffsets(t *testing.T) {
	const (
		tm    = 0.5
		speed = 2.0
		amp   = 80.0
	)
	a := tm * speed

	tests := []struct {
		pattern  MovementPattern
		expected core.Vec2
	}{
		{MoveStationary, core.V(0, 0)},
		{MoveHorizontal, core.V(math.Sin(a)*amp, 0)},
		{MoveVertical, core.V(0, math.Sin(a)*amp)},
		{MoveCircle, core.V(math.Cos(a)*amp, math.Sin(a)*amp)},
		{MoveFigureEight, core.V(math.Sin(a)*amp, math.Sin(2*a)*amp*0.5)},
	}

	for _, tc := range tests {
		t.Run(tc.pattern.String(), func(t *testing.T) {
			assertVec(t, "Offset()", tc.pattern.Offset(tm, speed, amp), tc.expected)
		})
	}
}

func TestEnemyPositionFollowsPattern(t *testing.T) {
	e := NewEnemy(EnemySpec{
		Pos: core.V(320, 500), Radius: 35,
		Move: MoveCircle, MoveSpeed: 0.8, MoveRange: 60,
		ShootCooldown: 100,
	}, testTuning())

	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}

	expected := core.V(320, 500).Add(MoveCircle.Offset(3.0, 0.8, 60))
	assertVec(t, "Current", e.Current, expected)
	assertVec(t, "Start", e.Start, core.V(320, 500))
}

func TestTryShootCooldown(t *testing.T) {
	e := NewEnemy(EnemySpec{
		Pos: core.V(100, 100), Radius: 35,
		Shoot: ShootCircle, ShootCooldown: 1.0, BulletSpeed: 200, BulletsPerShot: 8,
	}, testTuning())

	e.Update(0.5)
	if b := e.TryShoot(nil, zeroRNG()); b != nil {
		t.Fatalf("TryShoot() before cooldown = %d bullets, expected none", len(b))
	}

	e.Update(0.5)
	bullets := e.TryShoot(nil, zeroRNG())
	if len(bullets) != 8 {
		t.Fatalf("TryShoot() = %d bullets, expected 8", len(bullets))
	}
	if e.ShotReady() {
		t.Error("timer should reset after firing")
	}

	for _, b := range bullets {
		assertVec(t, "spawn", b.Pos, e.Current)
		if b.Radius != 8 || b.Lifetime != 5 || !b.Active() {
			t.Errorf("bullet = r%v life%v active=%v, expected r8 life5 active", b.Radius, b.Lifetime, b.Active())
		}
		if !approx(b.Vel.Len(), 200) {
			t.Errorf("speed = %v, expected 200", b.Vel.Len())
		}
	}
}

func TestCircleVolley(t *testing.T) {
	got := CircleVolley(4, 10)
	expected := []core.Vec2{core.V(10, 0), core.V(0, 10), core.V(-10, 0), core.V(0, -10)}
	if len(got) != len(expected) {
		t.Fatalf("CircleVolley() = %d, expected %d", len(got), len(expected))
	}
	for i := range got {
		assertVec(t, "CircleVolley()", got[i], expected[i])
	}

	if CircleVolley(0, 10) != nil {
		t.Error("CircleVolley(0) should be empty")
	}
}

func TestAimedVolleyAngles(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{"single", 1, []float64{0}},
		{"even four", 4, []float64{0, -15, 0, 15}},
		{"odd five", 5, []float64{0, -15, 0, 15, 30}},
		{"six", 6, []float64{0, -30, -15, 0, 15, 30}},
	}

	aim := core.V(0, 1) // 90 degrees
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AimedVolley(aim.Scale(300), tc.n, 240, 15)
			if len(got) != len(tc.expected) {
				t.Fatalf("AimedVolley() = %d, expected %d", len(got), len(tc.expected))
			}
			for i, v := range got {
				rel := angleDeg(v) - 90
				if !approx(rel, tc.expected[i]) {
					t.Errorf("bullet %d at %.3f deg from aim, expected %v", i, rel, tc.expected[i])
				}
				if !approx(v.Len(), 240) {
					t.Errorf("bullet %d speed %v, expected 240", i, v.Len())
				}
			}
		})
	}
}

func TestAimedShotGuards(t *testing.T) {
	e := NewEnemy(EnemySpec{
		Pos: core.V(500, 500), Radius: 35,
		Shoot: ShootAimed, ShootCooldown: 0.5, BulletSpeed: 200, BulletsPerShot: 5,
	}, testTuning())

	e.Update(1)
	if b := e.TryShoot(nil, zeroRNG()); len(b) != 0 {
		t.Errorf("TryShoot(nil) = %d bullets, expected 0", len(b))
	}
	if e.ShotReady() {
		t.Error("timer should reset even without a target")
	}

	e.Update(1)
	onTop := NewPlayer(e.Current, 25, 0.8)
	if b := e.TryShoot(onTop, zeroRNG()); len(b) != 0 {
		t.Errorf("TryShoot() at zero distance = %d bullets, expected 0", len(b))
	}

	e.Update(1)
	target := NewPlayer(core.V(500, 100), 25, 0.8)
	b := e.TryShoot(target, zeroRNG())
	if len(b) != 5 {
		t.Fatalf("TryShoot() = %d bullets, expected 5", len(b))
	}
	assertVec(t, "aimed", b[0].Vel, core.V(0, -200))
}

func TestRandomVolleySpeeds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	got := RandomVolley(200, 100, 0.7, 0.6, rng)

	if len(got) != 200 {
		t.Fatalf("RandomVolley() = %d, expected 200", len(got))
	}
	for i, v := range got {
		if s := v.Len(); s < 70-eps || s > 130+eps {
			t.Errorf("bullet %d speed %v, expected within [70, 130]", i, s)
		}
	}

	fixed := RandomVolley(1, 100, 0.7, 0.6, &seqRNG{vals: []float64{0.25, 0.5}})
	assertVec(t, "fixed draw", fixed[0], core.V(0, 100))
}
