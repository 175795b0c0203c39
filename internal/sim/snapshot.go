package sim

import "github.com/vovakirdan/flick-arena/internal/core"

// PlayerView is the render state of the ball.
type PlayerView struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Rotation float64
}

// EnemyView is the render state of one enemy.
type EnemyView struct {
	Pos    core.Vec2
	Radius float64
	Scale  float64
	Spin   float64
	Shoot  ShootPattern
	Move   MovementPattern
}

// ObstacleView is the render state of one obstacle.
type ObstacleView struct {
	Kind   ObstacleKind
	Pos    core.Vec2
	Vel    core.Vec2
	Width  float64
	Height float64
	Radius float64
	Alpha  float64
	Dying  bool
}

// BulletView is the render state of one bullet.
type BulletView struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Radius  float64
	Pattern ShootPattern
}

// Snapshot is a read-only copy of the arena taken between frames.
type Snapshot struct {
	Frame uint64
	State State

	Level     int // 1-based
	Levels    int
	LevelName string

	Width  float64
	Height float64

	TimeRemaining     float64
	CooldownReady     bool
	CooldownPercent   float64
	CooldownRemaining float64

	Player    PlayerView
	Enemies   []EnemyView
	Obstacles []ObstacleView
	Bullets   []BulletView
}

// Snapshot copies the current arena state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Frame:             e.frame,
		State:             e.machine.State(),
		Level:             e.LevelNumber(),
		Levels:            e.LevelCount(),
		LevelName:         e.level.Name,
		Width:             e.world.Width,
		Height:            e.world.Height,
		TimeRemaining:     e.TimeRemaining(),
		CooldownReady:     e.player.CooldownReady(),
		CooldownPercent:   e.player.CooldownPercent(),
		CooldownRemaining: e.player.CooldownRemaining(),
		Player: PlayerView{
			Pos:      e.player.Pos,
			Vel:      e.player.Vel,
			Radius:   e.player.Radius,
			Rotation: e.player.Rotation(),
		},
		Enemies:   make([]EnemyView, 0, len(e.enemies)),
		Obstacles: make([]ObstacleView, 0, len(e.obstacles)),
		Bullets:   make([]BulletView, 0, len(e.bullets)),
	}

	for _, en := range e.enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			Pos:    en.Current,
			Radius: en.Radius,
			Scale:  en.Scale(),
			Spin:   en.Spin(),
			Shoot:  en.Shoot,
			Move:   en.Move,
		})
	}
	for _, o := range e.obstacles {
		s.Obstacles = append(s.Obstacles, ObstacleView{
			Kind:   o.Kind,
			Pos:    o.Pos,
			Vel:    o.Vel,
			Width:  o.Width,
			Height: o.Height,
			Radius: o.Radius,
			Alpha:  o.Alpha(),
			Dying:  o.Dying(),
		})
	}
	for _, b := range e.bullets {
		if !b.Active() {
			continue
		}
		s.Bullets = append(s.Bullets, BulletView{
			Pos:     b.Pos,
			Vel:     b.Vel,
			Radius:  b.Radius,
			Pattern: b.Pattern,
		})
	}

	return s
}
