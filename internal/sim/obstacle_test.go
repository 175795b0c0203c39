package sim

import (
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
)

func newBouncy(pos core.Vec2, w, h float64) *Obstacle {
	return NewObstacle(ObstacleSpec{Kind: ObstacleBouncy, Pos: pos, Width: w, Height: h}, testTuning(), zeroRNG())
}

func TestObstacleWallReflectionIsElastic(t *testing.T) {
	t.Run("bouncy hits right wall", func(t *testing.T) {
		o := NewObstacle(ObstacleSpec{
			Kind: ObstacleBouncy, Pos: core.V(1200, 360), Width: 128, Height: 30,
			CanMove: true, Speed: 200,
		}, testTuning(), zeroRNG())
		assertVec(t, "initial vel", o.Vel, core.V(200, 0))

		o.Update(0.1, 1280, 720, zeroRNG())

		assertVec(t, "vel", o.Vel, core.V(-200, 0))
		if !approx(o.Pos.X, 1216) {
			t.Errorf("x = %v, expected clamp to 1216", o.Pos.X)
		}
	})

	t.Run("pillar hits left wall", func(t *testing.T) {
		o := NewObstacle(ObstacleSpec{
			Kind: ObstaclePillar, Pos: core.V(20, 360), Radius: 30,
			CanMove: true, Speed: 100,
		}, testTuning(), &seqRNG{vals: []float64{0.5}})

		o.Update(0.1, 1280, 720, zeroRNG())

		if !approx(o.Vel.X, 100) {
			t.Errorf("vx = %v, expected full reflection to 100", o.Vel.X)
		}
		if !approx(o.Pos.X, 30) {
			t.Errorf("x = %v, expected clamp to radius 30", o.Pos.X)
		}
	})

	t.Run("bounce skips direction timer", func(t *testing.T) {
		o := NewObstacle(ObstacleSpec{
			Kind: ObstacleSlowZone, Pos: core.V(40, 360), Width: 70, Height: 70,
			CanMove: true, Speed: 100,
		}, testTuning(), &seqRNG{vals: []float64{0.5}})

		o.Update(2.5, 1280, 720, &seqRNG{vals: []float64{0.25}})

		if o.dirTimer != 0 {
			t.Errorf("dirTimer = %v, expected 0 on a bouncing frame", o.dirTimer)
		}
		if !approx(o.Vel.X, 100) || !approx(o.Vel.Y, 0) {
			t.Errorf("vel = %v, expected reflected (100, 0) without a new direction", o.Vel)
		}
	})
}

func TestObstacleDirectionChange(t *testing.T) {
	o := NewObstacle(ObstacleSpec{
		Kind: ObstacleBouncy, Pos: core.V(640, 360), Width: 70, Height: 70,
		CanMove: true, Speed: 50,
	}, testTuning(), zeroRNG())

	rng := &seqRNG{vals: []float64{0.25}}
	for i := 0; i < 3; i++ {
		o.Update(0.5, 1280, 720, rng)
	}
	assertVec(t, "vel before interval", o.Vel, core.V(50, 0))

	o.Update(0.5, 1280, 720, rng)
	assertVec(t, "vel after interval", o.Vel, core.V(0, 50))
	if o.dirTimer != 0 {
		t.Errorf("dirTimer = %v, expected reset", o.dirTimer)
	}
	if !approx(o.Vel.Len(), 50) {
		t.Errorf("speed = %v, expected 50", o.Vel.Len())
	}
}

func TestObstacleLifecycle(t *testing.T) {
	o := NewObstacle(ObstacleSpec{Kind: ObstacleSlowZone, Pos: core.V(640, 360), Width: 70, Height: 70, Lifetime: 10},
		testTuning(), zeroRNG())

	o.Update(7.9, 1280, 720, zeroRNG())
	if o.Dying() {
		t.Error("age 7.9 of 10 should not be dying")
	}
	if o.Alpha() != 1 {
		t.Errorf("Alpha() = %v, expected 1", o.Alpha())
	}

	o.Update(0.6, 1280, 720, zeroRNG())
	if !o.Dying() {
		t.Error("age 8.5 of 10 should be dying")
	}
	if !approx(o.Alpha(), 0.75) {
		t.Errorf("Alpha() = %v, expected 0.75", o.Alpha())
	}
	if o.Expired() {
		t.Error("age 8.5 of 10 should not be expired")
	}

	o.Update(1.5, 1280, 720, zeroRNG())
	if !o.Expired() {
		t.Errorf("age %v of 10 should be expired", o.Age())
	}
}

func TestPermanentObstacleNeverExpires(t *testing.T) {
	o := newBouncy(core.V(640, 360), 128, 30)
	o.Update(1000, 1280, 720, zeroRNG())

	if o.Expired() || o.Dying() || o.Age() != 0 {
		t.Errorf("permanent obstacle aged: age=%v dying=%v expired=%v", o.Age(), o.Dying(), o.Expired())
	}
	assertVec(t, "static pos", o.Pos, core.V(640, 360))
}

func TestPillarPushOut(t *testing.T) {
	pillar := NewObstacle(ObstacleSpec{Kind: ObstaclePillar, Pos: core.V(500, 500), Radius: 30}, testTuning(), zeroRNG())

	t.Run("overlap", func(t *testing.T) {
		p := NewPlayer(core.V(540, 500), 25, 0.8)
		p.Vel = core.V(-100, 20)

		if c := pillar.HandlePlayer(p); c != ContactPushOut {
			t.Fatalf("HandlePlayer() = %v, expected ContactPushOut", c)
		}
		assertVec(t, "pos", p.Pos, core.V(555, 500))
		assertVec(t, "vel", p.Vel, core.V(-30, 6))
	})

	t.Run("concentric is a no-op", func(t *testing.T) {
		p := NewPlayer(core.V(500, 500), 25, 0.8)
		p.Vel = core.V(10, 10)

		if c := pillar.HandlePlayer(p); c != ContactNone {
			t.Errorf("HandlePlayer() = %v, expected ContactNone", c)
		}
		assertVec(t, "pos", p.Pos, core.V(500, 500))
		assertVec(t, "vel", p.Vel, core.V(10, 10))
	})

	t.Run("no overlap", func(t *testing.T) {
		p := NewPlayer(core.V(556, 500), 25, 0.8)
		if c := pillar.HandlePlayer(p); c != ContactNone {
			t.Errorf("HandlePlayer() = %v, expected ContactNone", c)
		}
	})
}

func TestBouncyReflection(t *testing.T) {
	pad := newBouncy(core.V(500, 500), 100, 20)

	tests := []struct {
		name   string
		pos    core.Vec2
		normal core.Vec2
		vel    core.Vec2
	}{
		{"head-on from above", core.V(500, 530), core.V(0, 1), core.V(0, -100)},
		{"45 degrees from above", core.V(480, 530), core.V(0, 1), core.V(100, -100)},
		{"grazing from above", core.V(520, 530), core.V(0, 1), core.V(-50, -200)},
		{"side face", core.V(570, 500), core.V(1, 0), core.V(-120, 30)},
		{"corner", core.V(562, 526), core.V(0.6, 0.8), core.V(-100, -100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(tc.pos, 25, 0.8)
			p.Vel = tc.vel

			if c := pad.HandlePlayer(p); c != ContactBounce {
				t.Fatalf("HandlePlayer() = %v, expected ContactBounce", c)
			}

			expected := tc.vel.Sub(tc.normal.Scale(2 * tc.vel.Dot(tc.normal))).Scale(1.5)
			assertVec(t, "vel", p.Vel, expected)

			closest := pad.Box().ClosestPoint(p.Pos)
			if !approx(closest.Dist(p.Pos), 25) {
				t.Errorf("distance after push-out = %v, expected radius 25", closest.Dist(p.Pos))
			}
		})
	}
}

func TestBouncyCenterInsideIsNoop(t *testing.T) {
	pad := newBouncy(core.V(500, 500), 100, 20)
	p := NewPlayer(core.V(500, 500), 25, 0.8)
	p.Vel = core.V(30, 40)

	if c := pad.HandlePlayer(p); c != ContactNone {
		t.Errorf("HandlePlayer() = %v, expected ContactNone", c)
	}
	assertVec(t, "vel", p.Vel, core.V(30, 40))
}

func TestSlowZoneEdgeTrigger(t *testing.T) {
	zone := NewObstacle(ObstacleSpec{Kind: ObstacleSlowZone, Pos: core.V(500, 500), Width: 200, Height: 200},
		testTuning(), zeroRNG())
	p := NewPlayer(core.V(500, 500), 25, 0.8)
	p.Vel = core.V(100, 0)

	if c := zone.HandlePlayer(p); c != ContactSlowEnter {
		t.Fatalf("HandlePlayer() = %v, expected ContactSlowEnter", c)
	}
	assertVec(t, "vel after entry", p.Vel, core.V(40, 0))

	for i := 0; i < 10; i++ {
		if c := zone.HandlePlayer(p); c != ContactNone {
			t.Fatalf("frame %d inside: HandlePlayer() = %v, expected ContactNone", i, c)
		}
	}
	assertVec(t, "vel while inside", p.Vel, core.V(40, 0))

	p.Pos = core.V(600, 500) // on the edge counts as outside
	zone.HandlePlayer(p)
	if zone.PlayerInside() {
		t.Error("trigger should re-arm after exit")
	}

	p.Pos = core.V(550, 500)
	if c := zone.HandlePlayer(p); c != ContactSlowEnter {
		t.Fatalf("re-entry: HandlePlayer() = %v, expected ContactSlowEnter", c)
	}
	assertVec(t, "vel after re-entry", p.Vel, core.V(16, 0))
}

func TestObstacleInterceptsBullet(t *testing.T) {
	tun := testTuning()
	tests := []struct {
		name     string
		spec     ObstacleSpec
		bullet   core.Vec2
		expected bool
	}{
		{"pillar hit", ObstacleSpec{Kind: ObstaclePillar, Pos: core.V(0, 0), Radius: 30}, core.V(37, 0), true},
		{"pillar touch", ObstacleSpec{Kind: ObstaclePillar, Pos: core.V(0, 0), Radius: 30}, core.V(38, 0), false},
		{"bouncy hit", ObstacleSpec{Kind: ObstacleBouncy, Pos: core.V(0, 0), Width: 100, Height: 20}, core.V(0, 17), true},
		{"bouncy miss", ObstacleSpec{Kind: ObstacleBouncy, Pos: core.V(0, 0), Width: 100, Height: 20}, core.V(0, 19), false},
		{"slow zone never", ObstacleSpec{Kind: ObstacleSlowZone, Pos: core.V(0, 0), Width: 100, Height: 100}, core.V(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewObstacle(tc.spec, tun, zeroRNG())
			b := NewBullet(tc.bullet, core.Vec2{}, 8, 5)
			if got := o.InterceptsBullet(b); got != tc.expected {
				t.Errorf("InterceptsBullet() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
