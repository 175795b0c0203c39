package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// Bullet is a timed projectile fired by an enemy.
type Bullet struct {
	Body

	Lifetime float64
	Pattern  ShootPattern // pattern that fired it, for coloring

	age    float64
	active bool
}

// NewBullet creates an active bullet at pos.
func NewBullet(pos, vel core.Vec2, radius, lifetime float64) *Bullet {
	return &Bullet{
		Body:     Body{Pos: pos, Vel: vel, Radius: radius},
		Lifetime: lifetime,
		active:   true,
	}
}

// Update ages and moves the bullet, deactivating it once its lifetime is
// exceeded or it flies more than margin outside the arena.
func (b *Bullet) Update(dt float64, w *World, margin float64) {
	if !b.active {
		return
	}

	b.age += dt
	if b.age > b.Lifetime {
		b.active = false
		return
	}

	b.integrate(dt)
	if b.outside(w.Width, w.Height, margin) {
		b.active = false
	}
}

// CheckCollision reports whether an active bullet overlaps the player.
func (b *Bullet) CheckCollision(p *Player) bool {
	if !b.active {
		return false
	}
	return p.CollidesWithCircle(b.Pos, b.Radius)
}

// Active reports whether the bullet is still in play.
func (b *Bullet) Active() bool {
	return b.active
}

// Deactivate removes the bullet from play at the end of the frame.
func (b *Bullet) Deactivate() {
	b.active = false
}

// Age returns the seconds since the bullet was fired.
func (b *Bullet) Age() float64 {
	return b.age
}
