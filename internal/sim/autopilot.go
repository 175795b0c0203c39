package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// Autopilot picks flicks for headless runs. It dodges the closest bullet
// that is heading toward the ball and otherwise drifts back to the center.
type Autopilot struct {
	Strength  float64 // impulse magnitude
	Threat    float64 // bullets farther than this are ignored
	WallGuard float64 // distance from a wall that triggers a recentering flick
}

// DefaultAutopilot returns settings tuned for the classic pack.
func DefaultAutopilot() Autopilot {
	return Autopilot{
		Strength:  450,
		Threat:    220,
		WallGuard: 80,
	}
}

// Decide returns the impulse to apply for s, or false when the ball
// should be left alone.
func (a Autopilot) Decide(s Snapshot) (core.Vec2, bool) {
	if s.State != StateRunning || !s.CooldownReady {
		return core.Vec2{}, false
	}

	me := s.Player.Pos
	best := a.Threat
	var threat *BulletView
	for i := range s.Bullets {
		b := &s.Bullets[i]
		toMe := me.Sub(b.Pos)
		d := toMe.Len()
		if d >= best || b.Vel.Dot(toMe) <= 0 {
			continue
		}
		best = d
		threat = b
	}

	if threat != nil {
		// sidestep perpendicular to the bullet path, away from its line
		side := core.V(-threat.Vel.Y, threat.Vel.X)
		if side.Dot(me.Sub(threat.Pos)) < 0 {
			side = side.Scale(-1)
		}
		if dir, ok := side.Normalize(); ok {
			return dir.Scale(a.Strength), true
		}
	}

	center := core.V(s.Width/2, s.Height/2)
	nearWall := me.X < a.WallGuard || me.X > s.Width-a.WallGuard ||
		me.Y < a.WallGuard || me.Y > s.Height-a.WallGuard
	if nearWall {
		if dir, ok := center.Sub(me).Normalize(); ok {
			return dir.Scale(a.Strength * 0.5), true
		}
	}
	return core.Vec2{}, false
}
