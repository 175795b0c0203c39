package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// Body is the kinematic state shared by the player, bullets and obstacles.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// integrate advances the position by velocity over dt.
func (b *Body) integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// outside reports whether the center left the arena grown by margin on every side.
func (b *Body) outside(w, h, margin float64) bool {
	return b.Pos.X < -margin || b.Pos.X > w+margin ||
		b.Pos.Y < -margin || b.Pos.Y > h+margin
}
