package sim

import (
	"math"

	"github.com/vovakirdan/flick-arena/internal/core"
)

// World owns the arena bounds and the player's physics constants.
type World struct {
	Width  float64
	Height float64

	DragK    float64
	MaxSpeed float64

	tuning *Tuning
}

// NewWorld creates an arena of the given size with default drag and max speed.
func NewWorld(width, height float64, t *Tuning) *World {
	return &World{
		Width:    width,
		Height:   height,
		DragK:    t.DefaultDrag,
		MaxSpeed: t.DefaultMaxSpeed,
		tuning:   t,
	}
}

// SetPhysics replaces drag and max speed; the next integration uses them.
func (w *World) SetPhysics(dragK, maxSpeed float64) {
	w.DragK = dragK
	w.MaxSpeed = maxSpeed
}

// IntegratePlayer moves the player, then applies drag, the rest snap and
// the speed cap, in that order.
func (w *World) IntegratePlayer(p *Player, dt float64) {
	p.integrate(dt)

	p.Vel = p.Vel.Sub(p.Vel.Scale(w.DragK * dt))

	if math.Abs(p.Vel.X) < w.tuning.RestSpeed {
		p.Vel.X = 0
	}
	if math.Abs(p.Vel.Y) < w.tuning.RestSpeed {
		p.Vel.Y = 0
	}

	if speed := p.Vel.Len(); speed > w.MaxSpeed {
		p.Vel = p.Vel.Scale(w.MaxSpeed / speed)
	}
}

// ResolveBoundary keeps the player inside the arena with a damped bounce.
// Reports whether any wall was hit.
func (w *World) ResolveBoundary(p *Player) bool {
	r := p.Radius
	k := w.tuning.WallRestitution
	hit := false

	if p.Pos.X-r < 0 {
		p.Pos.X = r
		p.Vel.X = -p.Vel.X * k
		hit = true
	} else if p.Pos.X+r > w.Width {
		p.Pos.X = w.Width - r
		p.Vel.X = -p.Vel.X * k
		hit = true
	}

	if p.Pos.Y-r < 0 {
		p.Pos.Y = r
		p.Vel.Y = -p.Vel.Y * k
		hit = true
	} else if p.Pos.Y+r > w.Height {
		p.Pos.Y = w.Height - r
		p.Vel.Y = -p.Vel.Y * k
		hit = true
	}

	return hit
}

// SpawnRandomObstacle creates a moving bouncy pad or slow zone somewhere in the
// upper arena. A spot too close to the player is mirrored through the arena
// center once; it is not re-sampled.
func (w *World) SpawnRandomObstacle(p *Player, lifetime float64, rng RNG) *Obstacle {
	t := w.tuning

	kind := ObstacleBouncy
	if rng.Float64() >= 0.5 {
		kind = ObstacleSlowZone
	}

	maxX := w.Width - t.SpawnEdgeMargin
	maxY := w.Height - t.SpawnEdgeMargin
	pos := core.V(
		t.SpawnMinX+rng.Float64()*(maxX-t.SpawnMinX),
		t.SpawnMinY+rng.Float64()*(maxY-t.SpawnMinY),
	)
	if p != nil && pos.Dist(p.Pos) < t.SpawnSafeDistance {
		pos = core.V(w.Width-pos.X, w.Height-pos.Y)
	}

	speed := t.SpawnMinSpeed + rng.Float64()*t.SpawnSpeedSpan

	return NewObstacle(ObstacleSpec{
		Kind:     kind,
		Pos:      pos,
		Width:    t.SpawnSize,
		Height:   t.SpawnSize,
		CanMove:  true,
		Speed:    speed,
		Lifetime: lifetime,
	}, t, rng)
}
