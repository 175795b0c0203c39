package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// Arena size used when a level does not set one.
const (
	DefaultArenaWidth  = 1280
	DefaultArenaHeight = 720
)

// SpawnPolicy controls dynamic obstacle spawning.
type SpawnPolicy struct {
	Enabled  bool
	Interval float64
	Max      int // cap on all obstacles, static ones included
	Lifetime float64
}

// Level is the immutable description of one stage.
type Level struct {
	Name string

	Width  float64
	Height float64

	DragK         float64
	MaxSpeed      float64
	FlickCooldown float64
	SurvivalTime  float64
	PlayerStart   core.Vec2

	// BulletDensity divides every enemy's shoot cooldown.
	BulletDensity float64

	Enemies   []EnemySpec
	Obstacles []ObstacleSpec
	Spawn     SpawnPolicy
}

// withDefaults fills unset arena size and density.
func (l Level) withDefaults(t *Tuning) Level {
	if l.Width <= 0 {
		l.Width = DefaultArenaWidth
	}
	if l.Height <= 0 {
		l.Height = DefaultArenaHeight
	}
	if l.BulletDensity <= 0 {
		l.BulletDensity = 1
	}
	if l.DragK < 0 {
		l.DragK = t.DefaultDrag
	}
	if l.MaxSpeed <= 0 {
		l.MaxSpeed = t.DefaultMaxSpeed
	}
	return l
}

// enemyCooldown applies the level's bullet density to an authored cooldown.
func (l Level) enemyCooldown(authored float64) float64 {
	return authored / l.BulletDensity
}
