package sim

import (
	"math"

	"github.com/vovakirdan/flick-arena/internal/core"
)

// MovementPattern is how an enemy drifts around its start position.
type MovementPattern int

const (
	MoveStationary MovementPattern = iota
	MoveHorizontal
	MoveVertical
	MoveCircle
	MoveFigureEight
)

// String returns the pattern name.
func (m MovementPattern) String() string {
	switch m {
	case MoveStationary:
		return "stationary"
	case MoveHorizontal:
		return "horizontal"
	case MoveVertical:
		return "vertical"
	case MoveCircle:
		return "circle"
	case MoveFigureEight:
		return "figure_eight"
	default:
		return "unknown"
	}
}

// Offset returns the displacement from the start position after t seconds.
func (m MovementPattern) Offset(t, speed, amp float64) core.Vec2 {
	a := t * speed
	switch m {
	case MoveStationary:
		return core.Vec2{}
	case MoveHorizontal:
		return core.V(math.Sin(a)*amp, 0)
	case MoveVertical:
		return core.V(0, math.Sin(a)*amp)
	case MoveCircle:
		return core.V(math.Cos(a)*amp, math.Sin(a)*amp)
	case MoveFigureEight:
		return core.V(math.Sin(a)*amp, math.Sin(2*a)*amp*0.5)
	default:
		return core.Vec2{}
	}
}

// ShootPattern is the shape of one volley.
type ShootPattern int

const (
	ShootCircle ShootPattern = iota
	ShootAimed
	ShootRandom
)

// String returns the pattern name.
func (s ShootPattern) String() string {
	switch s {
	case ShootCircle:
		return "circle"
	case ShootAimed:
		return "aimed"
	case ShootRandom:
		return "random"
	default:
		return "unknown"
	}
}

// EnemySpec describes an enemy to create.
type EnemySpec struct {
	Pos    core.Vec2
	Radius float64

	Shoot          ShootPattern
	ShootCooldown  float64
	BulletSpeed    float64
	BulletsPerShot int

	Move      MovementPattern
	MoveSpeed float64
	MoveRange float64
}

// Enemy is a turret that drifts on a fixed path and fires volleys.
type Enemy struct {
	EnemySpec

	Start   core.Vec2
	Current core.Vec2

	shootTimer float64
	moveTime   float64
	pulseTime  float64
	spin       float64

	tuning *Tuning
}

// NewEnemy places an enemy at spec.Pos with its timers at zero.
func NewEnemy(spec EnemySpec, t *Tuning) *Enemy {
	return &Enemy{
		EnemySpec: spec,
		Start:     spec.Pos,
		Current:   spec.Pos,
		tuning:    t,
	}
}

// enemySpinRate is the cosmetic spin in degrees per second.
const enemySpinRate = 30

// Update advances the shoot timer and moves the enemy along its path.
func (e *Enemy) Update(dt float64) {
	e.shootTimer += dt
	e.moveTime += dt
	e.pulseTime += dt
	e.spin = math.Mod(e.spin+enemySpinRate*dt, 360)

	e.Current = e.Start.Add(e.Move.Offset(e.moveTime, e.MoveSpeed, e.MoveRange))
}

// Scale is the cosmetic pulse factor.
func (e *Enemy) Scale() float64 {
	return 1 + math.Sin(e.pulseTime*3)*0.15
}

// Spin is the cosmetic rotation in degrees.
func (e *Enemy) Spin() float64 {
	return e.spin
}

// ShotReady reports whether the next TryShoot will fire.
func (e *Enemy) ShotReady() bool {
	return e.shootTimer >= e.ShootCooldown
}

// TryShoot fires a volley if the cooldown elapsed. target may be nil, in
// which case aimed volleys produce nothing but the timer still resets.
func (e *Enemy) TryShoot(target *Player, rng RNG) []*Bullet {
	if e.shootTimer < e.ShootCooldown {
		return nil
	}
	e.shootTimer = 0

	var dirs []core.Vec2
	switch e.Shoot {
	case ShootCircle:
		dirs = CircleVolley(e.BulletsPerShot, e.BulletSpeed)
	case ShootAimed:
		if target != nil {
			dirs = AimedVolley(target.Pos.Sub(e.Current), e.BulletsPerShot, e.BulletSpeed, e.tuning.AimedSpreadDeg)
		}
	case ShootRandom:
		dirs = RandomVolley(e.BulletsPerShot, e.BulletSpeed, e.tuning.RandomSpeedMin, e.tuning.RandomSpeedSpan, rng)
	}

	bullets := make([]*Bullet, 0, len(dirs))
	for _, v := range dirs {
		b := NewBullet(e.Current, v, e.tuning.BulletRadius, e.tuning.BulletLifetime)
		b.Pattern = e.Shoot
		bullets = append(bullets, b)
	}
	return bullets
}

// CircleVolley returns n velocities evenly spaced from angle 0.
func CircleVolley(n int, speed float64) []core.Vec2 {
	if n <= 0 {
		return nil
	}
	step := 360 / float64(n)
	out := make([]core.Vec2, n)
	for i := range out {
		out[i] = core.FromAngle(float64(i)*step, speed)
	}
	return out
}

// AimedVolley returns n velocities: the first along toward, the rest rotated
// by (i - n/2) * spreadDeg with integer division. A zero toward yields none.
func AimedVolley(toward core.Vec2, n int, speed, spreadDeg float64) []core.Vec2 {
	dir, ok := toward.Normalize()
	if !ok || n <= 0 {
		return nil
	}

	out := make([]core.Vec2, 0, n)
	out = append(out, dir.Scale(speed))
	for i := 1; i < n; i++ {
		angle := float64(i-n/2) * spreadDeg
		out = append(out, dir.Rotate(angle).Scale(speed))
	}
	return out
}

// RandomVolley returns n velocities at uniform random angles with speeds in
// [minMul, minMul+spanMul] times speed.
func RandomVolley(n int, speed, minMul, spanMul float64, rng RNG) []core.Vec2 {
	if n <= 0 {
		return nil
	}
	out := make([]core.Vec2, n)
	for i := range out {
		angle := rng.Float64() * 360
		s := speed * (minMul + rng.Float64()*spanMul)
		out[i] = core.FromAngle(angle, s)
	}
	return out
}
