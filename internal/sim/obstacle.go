package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// ObstacleKind selects shape and collision response.
type ObstacleKind int

const (
	ObstaclePillar   ObstacleKind = iota // circle, pushes the player out
	ObstacleBouncy                       // rectangle, reflects and amplifies
	ObstacleSlowZone                     // rectangle, slows on entry, no contact
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstaclePillar:
		return "pillar"
	case ObstacleBouncy:
		return "bouncy"
	case ObstacleSlowZone:
		return "slow_zone"
	default:
		return "unknown"
	}
}

// Rectangular reports whether the kind uses width and height instead of a radius.
func (k ObstacleKind) Rectangular() bool {
	switch k {
	case ObstacleBouncy, ObstacleSlowZone:
		return true
	case ObstaclePillar:
		return false
	default:
		return false
	}
}

// Contact is the outcome of an obstacle touching the player this frame.
type Contact int

const (
	ContactNone Contact = iota
	ContactPushOut
	ContactBounce
	ContactSlowEnter
)

// ObstacleSpec describes an obstacle to create.
type ObstacleSpec struct {
	Kind     ObstacleKind
	Pos      core.Vec2
	Width    float64 // bouncy and slow zone
	Height   float64 // bouncy and slow zone
	Radius   float64 // pillar
	CanMove  bool
	Speed    float64
	Lifetime float64 // <= 0 means permanent
}

// Obstacle is a pillar, bouncy pad or slow zone.
type Obstacle struct {
	Body

	Kind     ObstacleKind
	Width    float64
	Height   float64
	CanMove  bool
	Speed    float64
	Lifetime float64

	age          float64
	dirTimer     float64
	playerInside bool

	tuning *Tuning
}

// NewObstacle builds an obstacle from spec. Movable obstacles start in a
// random direction drawn from rng.
func NewObstacle(spec ObstacleSpec, t *Tuning, rng RNG) *Obstacle {
	o := &Obstacle{
		Body:     Body{Pos: spec.Pos, Radius: spec.Radius},
		Kind:     spec.Kind,
		Width:    spec.Width,
		Height:   spec.Height,
		CanMove:  spec.CanMove,
		Speed:    spec.Speed,
		Lifetime: spec.Lifetime,
		tuning:   t,
	}
	if o.CanMove {
		o.pickDirection(rng)
	}
	return o
}

func (o *Obstacle) pickDirection(rng RNG) {
	o.Vel = core.FromAngle(rng.Float64()*360, o.Speed)
}

// Box returns the rectangle of a bouncy pad or slow zone.
func (o *Obstacle) Box() core.Box {
	return core.BoxFromSize(o.Pos, o.Width, o.Height)
}

// halfExtent is the distance from center to the wall-contact edge per axis.
func (o *Obstacle) halfExtent() core.Vec2 {
	if o.Kind.Rectangular() {
		return core.V(o.Width/2, o.Height/2)
	}
	return core.V(o.Radius, o.Radius)
}

// Update ages the obstacle and moves it in a random walk that reflects
// elastically off the arena walls.
func (o *Obstacle) Update(dt, width, height float64, rng RNG) {
	if o.Lifetime > 0 {
		o.age += dt
	}
	if !o.CanMove {
		return
	}

	o.integrate(dt)

	if bounced := o.reflectOffWalls(width, height); bounced {
		return
	}

	o.dirTimer += dt
	if o.dirTimer >= o.tuning.DirectionChangeInterval {
		o.pickDirection(rng)
		o.dirTimer = 0
	}
}

func (o *Obstacle) reflectOffWalls(width, height float64) bool {
	h := o.halfExtent()
	bounced := false

	if o.Pos.X-h.X < 0 || o.Pos.X+h.X > width {
		o.Vel.X = -o.Vel.X
		o.Pos.X = core.ClampF(o.Pos.X, h.X, width-h.X)
		bounced = true
	}
	if o.Pos.Y-h.Y < 0 || o.Pos.Y+h.Y > height {
		o.Vel.Y = -o.Vel.Y
		o.Pos.Y = core.ClampF(o.Pos.Y, h.Y, height-h.Y)
		bounced = true
	}

	return bounced
}

// Age returns the seconds the obstacle has been alive. Permanent obstacles
// do not age.
func (o *Obstacle) Age() float64 {
	return o.age
}

// Expired reports whether a timed obstacle reached its lifetime.
func (o *Obstacle) Expired() bool {
	return o.Lifetime > 0 && o.age >= o.Lifetime
}

// Dying reports whether a timed obstacle is in its final fade window.
func (o *Obstacle) Dying() bool {
	return o.Lifetime > 0 && o.age > o.tuning.DyingFraction*o.Lifetime
}

// Alpha returns the render opacity, fading to 0 over the dying window.
func (o *Obstacle) Alpha() float64 {
	if !o.Dying() {
		return 1
	}
	window := (1 - o.tuning.DyingFraction) * o.Lifetime
	return core.ClampF((o.Lifetime-o.age)/window, 0, 1)
}

// PlayerInside reports the slow zone edge-trigger state.
func (o *Obstacle) PlayerInside() bool {
	return o.playerInside
}

// touchesPlayer is the per-kind overlap test.
func (o *Obstacle) touchesPlayer(p *Player) bool {
	switch o.Kind {
	case ObstaclePillar:
		return p.CollidesWithCircle(o.Pos, o.Radius)
	case ObstacleBouncy:
		return o.Box().OverlapsCircle(p.Pos, p.Radius)
	case ObstacleSlowZone:
		return o.Box().ContainsStrict(p.Pos)
	default:
		return false
	}
}

// HandlePlayer resolves contact with the player and reports what happened.
// Any frame without overlap re-arms the slow zone trigger.
func (o *Obstacle) HandlePlayer(p *Player) Contact {
	if !o.touchesPlayer(p) {
		o.playerInside = false
		return ContactNone
	}

	switch o.Kind {
	case ObstaclePillar:
		if o.pushOut(p) {
			return ContactPushOut
		}
	case ObstacleBouncy:
		if o.bounce(p) {
			return ContactBounce
		}
	case ObstacleSlowZone:
		if !o.playerInside {
			o.playerInside = true
			p.Vel = p.Vel.Scale(o.tuning.SlowMultiplier)
			return ContactSlowEnter
		}
	}
	return ContactNone
}

// pushOut separates the player from a pillar by the penetration depth and
// damps its velocity. A player centered exactly on the pillar is left alone.
func (o *Obstacle) pushOut(p *Player) bool {
	d := p.Pos.Sub(o.Pos)
	dist := d.Len()
	reach := o.Radius + p.Radius
	if dist >= reach || dist <= 0 {
		return false
	}

	n := d.Scale(1 / dist)
	p.Pos = p.Pos.Add(n.Scale(reach - dist))
	p.Vel = p.Vel.Scale(o.tuning.PushOutDamping)
	return true
}

// bounce separates the player from a pad along the contact normal, reflects
// the velocity about it and amplifies the result. A player whose center is
// on or inside the pad has no usable normal and is left alone.
func (o *Obstacle) bounce(p *Player) bool {
	d := p.Pos.Sub(o.Box().ClosestPoint(p.Pos))
	dist := d.Len()
	if dist >= p.Radius || dist <= 0 {
		return false
	}

	n := d.Scale(1 / dist)
	p.Pos = p.Pos.Add(n.Scale(p.Radius - dist))
	p.Vel = p.Vel.Reflect(n).Scale(o.tuning.BounceStrength)
	return true
}

// InterceptsBullet reports whether the obstacle blocks b. Slow zones never do.
func (o *Obstacle) InterceptsBullet(b *Bullet) bool {
	switch o.Kind {
	case ObstaclePillar:
		return core.CirclesOverlap(o.Pos, o.Radius, b.Pos, b.Radius)
	case ObstacleBouncy:
		return o.Box().OverlapsCircle(b.Pos, b.Radius)
	case ObstacleSlowZone:
		return false
	default:
		return false
	}
}
