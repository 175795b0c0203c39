package sim

import (
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
)

func TestBulletLifetime(t *testing.T) {
	w := NewWorld(1280, 720, testTuning())
	b := NewBullet(core.V(640, 360), core.V(0, 0), 8, 5)

	for i := 0; i < 499; i++ {
		b.Update(0.01, w, 20)
	}
	if !approx(b.Age(), 4.99) {
		t.Fatalf("Age() = %v, expected 4.99", b.Age())
	}
	if !b.Active() {
		t.Error("bullet should be active at age 4.99")
	}

	b.Update(0.01, w, 20)
	b.Update(0.01, w, 20)
	if b.Active() {
		t.Errorf("bullet should be inactive at age %.2f", b.Age())
	}
}

func TestBulletLeavesArena(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Vec2
		vel   core.Vec2
		steps []float64
		alive []bool
	}{
		{
			name:  "right edge margin",
			pos:   core.V(1290, 100),
			vel:   core.V(100, 0),
			steps: []float64{0.05, 0.1},
			alive: []bool{true, false},
		},
		{
			name:  "below floor",
			pos:   core.V(640, -10),
			vel:   core.V(0, -200),
			steps: []float64{0.04, 0.02},
			alive: []bool{true, false},
		},
		{
			name:  "above ceiling",
			pos:   core.V(640, 735),
			vel:   core.V(0, 100),
			steps: []float64{0.1},
			alive: []bool{false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(1280, 720, testTuning())
			b := NewBullet(tc.pos, tc.vel, 8, 5)
			for i, dt := range tc.steps {
				b.Update(dt, w, 20)
				if b.Active() != tc.alive[i] {
					t.Errorf("step %d: Active() = %v, expected %v (pos %v)", i, b.Active(), tc.alive[i], b.Pos)
				}
			}
			if b.Age() >= b.Lifetime {
				t.Errorf("bullet culled by lifetime, not bounds")
			}
		})
	}
}

func TestInactiveBulletIsFrozen(t *testing.T) {
	w := NewWorld(1280, 720, testTuning())
	p := NewPlayer(core.V(640, 360), 25, 0.8)
	b := NewBullet(core.V(640, 360), core.V(100, 0), 8, 5)

	if !b.CheckCollision(p) {
		t.Fatal("overlapping active bullet should hit")
	}

	b.Deactivate()
	b.Update(0.1, w, 20)

	assertVec(t, "pos", b.Pos, core.V(640, 360))
	if b.Age() != 0 {
		t.Errorf("Age() = %v, expected 0 for an inactive bullet", b.Age())
	}
	if b.CheckCollision(p) {
		t.Error("inactive bullet must not collide")
	}
}
