package sim

import (
	"math"

	"github.com/vovakirdan/flick-arena/internal/core"
)

// minRollDistance is the per-frame travel below which the ball does not roll.
const minRollDistance = 0.1

// Player is the flick-launched ball.
type Player struct {
	Body

	// Cooldown is the time between accepted impulses.
	Cooldown float64

	cooldownTimer float64
	rotation      float64
	prevPos       core.Vec2
}

// NewPlayer creates a resting player at start.
func NewPlayer(start core.Vec2, radius, cooldown float64) *Player {
	return &Player{
		Body:     Body{Pos: start, Radius: radius},
		Cooldown: cooldown,
		prevPos:  start,
	}
}

// AddImpulse adds i to the velocity unless the cooldown is still running.
// Reports whether the impulse was applied.
func (p *Player) AddImpulse(i core.Vec2) bool {
	if p.cooldownTimer > 0 {
		return false
	}
	p.Vel = p.Vel.Add(i)
	p.cooldownTimer = p.Cooldown
	return true
}

// Update ticks the cooldown and the rolling rotation.
func (p *Player) Update(dt float64) {
	p.cooldownTimer = math.Max(0, p.cooldownTimer-dt)

	dist := p.Pos.Dist(p.prevPos)
	if dist > minRollDistance && p.Radius > 0 {
		p.rotation += dist / (2 * math.Pi * p.Radius) * 360
		p.rotation = math.Mod(p.rotation, 360)
	}
	p.prevPos = p.Pos
}

// CollidesWithCircle reports a strict overlap with a circle at c.
func (p *Player) CollidesWithCircle(c core.Vec2, r float64) bool {
	return core.CirclesOverlap(p.Pos, p.Radius, c, r)
}

// CooldownReady reports whether the next impulse will be accepted.
func (p *Player) CooldownReady() bool {
	return p.cooldownTimer <= 0
}

// CooldownRemaining returns the seconds until the next impulse is accepted.
func (p *Player) CooldownRemaining() float64 {
	return p.cooldownTimer
}

// CooldownPercent returns the remaining cooldown as 0..100.
func (p *Player) CooldownPercent() float64 {
	if p.Cooldown <= 0 {
		return 0
	}
	return p.cooldownTimer / p.Cooldown * 100
}

// Rotation returns the cosmetic rolling angle in degrees.
func (p *Player) Rotation() float64 {
	return p.rotation
}
