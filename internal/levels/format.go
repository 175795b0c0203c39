// Package levels loads level packs from YAML.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

// Pack is an ordered sequence of levels played one after another.
type Pack struct {
	ID          string
	Name        string
	Description string
	Levels      []sim.Level
	FilePath    string
}

// YAMLPack represents the YAML structure of a pack file.
type YAMLPack struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Levels      []YAMLLevel `yaml:"levels"`
}

// YAMLVec is a point or velocity in world units.
type YAMLVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLSize is a width and height in world units.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLLevel is one level of a pack.
type YAMLLevel struct {
	Name          string         `yaml:"name"`
	Arena         *YAMLSize      `yaml:"arena,omitempty"`
	Drag          *float64       `yaml:"drag,omitempty"` // nil uses the tuning default
	MaxSpeed      float64        `yaml:"max_speed,omitempty"`
	FlickCooldown float64        `yaml:"flick_cooldown"`
	SurvivalTime  float64        `yaml:"survival_time"`
	Start         YAMLVec        `yaml:"start"`
	BulletDensity float64        `yaml:"bullet_density,omitempty"`
	Enemies       []YAMLEnemy    `yaml:"enemies,omitempty"`
	Obstacles     []YAMLObstacle `yaml:"obstacles,omitempty"`
	Spawn         *YAMLSpawn     `yaml:"spawn,omitempty"`
}

// YAMLEnemy is a stationary or patrolling shooter.
type YAMLEnemy struct {
	Pos         YAMLVec `yaml:"pos"`
	Radius      float64 `yaml:"radius"`
	Shoot       string  `yaml:"shoot"`
	Cooldown    float64 `yaml:"cooldown"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Bullets     int     `yaml:"bullets"`
	Move        string  `yaml:"move,omitempty"`
	MoveSpeed   float64 `yaml:"move_speed,omitempty"`
	MoveRange   float64 `yaml:"move_range,omitempty"`
}

// YAMLObstacle describes a pillar (radius) or a box obstacle (size).
type YAMLObstacle struct {
	Kind     string    `yaml:"kind"`
	Pos      YAMLVec   `yaml:"pos"`
	Size     *YAMLSize `yaml:"size,omitempty"`
	Radius   float64   `yaml:"radius,omitempty"`
	Moving   bool      `yaml:"moving,omitempty"`
	Speed    float64   `yaml:"speed,omitempty"`
	Lifetime float64   `yaml:"lifetime,omitempty"`
}

// YAMLSpawn enables timed obstacle spawning.
type YAMLSpawn struct {
	Interval float64 `yaml:"interval"`
	Max      int     `yaml:"max"`
	Lifetime float64 `yaml:"lifetime"`
}

// ParseYAML parses a pack file. Unknown pattern or obstacle names are
// errors; range checks are left to Validate.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Levels:      make([]sim.Level, 0, len(yp.Levels)),
	}
	if pack.Name == "" {
		pack.Name = pack.ID
	}

	for i, yl := range yp.Levels {
		lv, err := yl.toLevel(i)
		if err != nil {
			return Pack{}, fmt.Errorf("level %d: %w", i+1, err)
		}
		pack.Levels = append(pack.Levels, lv)
	}

	return pack, nil
}

func (v YAMLVec) vec() core.Vec2 {
	return core.V(v.X, v.Y)
}

func (yl YAMLLevel) toLevel(i int) (sim.Level, error) {
	lv := sim.Level{
		Name:          yl.Name,
		DragK:         -1,
		MaxSpeed:      yl.MaxSpeed,
		FlickCooldown: yl.FlickCooldown,
		SurvivalTime:  yl.SurvivalTime,
		PlayerStart:   yl.Start.vec(),
		BulletDensity: yl.BulletDensity,
	}
	if lv.Name == "" {
		lv.Name = fmt.Sprintf("Level %d", i+1)
	}
	if yl.Arena != nil {
		lv.Width, lv.Height = yl.Arena.W, yl.Arena.H
	}
	if yl.Drag != nil {
		lv.DragK = *yl.Drag
	}

	for j, ye := range yl.Enemies {
		shoot, ok := sim.ParseShootPattern(ye.Shoot)
		if !ok {
			return sim.Level{}, ValidationError{
				Code:    "UNKNOWN_PATTERN",
				Message: fmt.Sprintf("enemy %d: unknown shoot pattern %q", j+1, ye.Shoot),
			}
		}
		move, ok := sim.ParseMovementPattern(ye.Move)
		if !ok {
			return sim.Level{}, ValidationError{
				Code:    "UNKNOWN_PATTERN",
				Message: fmt.Sprintf("enemy %d: unknown movement pattern %q", j+1, ye.Move),
			}
		}
		lv.Enemies = append(lv.Enemies, sim.EnemySpec{
			Pos:            ye.Pos.vec(),
			Radius:         ye.Radius,
			Shoot:          shoot,
			ShootCooldown:  ye.Cooldown,
			BulletSpeed:    ye.BulletSpeed,
			BulletsPerShot: ye.Bullets,
			Move:           move,
			MoveSpeed:      ye.MoveSpeed,
			MoveRange:      ye.MoveRange,
		})
	}

	for j, yo := range yl.Obstacles {
		kind, ok := sim.ParseObstacleKind(yo.Kind)
		if !ok {
			return sim.Level{}, ValidationError{
				Code:    "UNKNOWN_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d: unknown kind %q", j+1, yo.Kind),
			}
		}
		spec := sim.ObstacleSpec{
			Kind:     kind,
			Pos:      yo.Pos.vec(),
			Radius:   yo.Radius,
			CanMove:  yo.Moving,
			Speed:    yo.Speed,
			Lifetime: yo.Lifetime,
		}
		if yo.Size != nil {
			spec.Width, spec.Height = yo.Size.W, yo.Size.H
		}
		lv.Obstacles = append(lv.Obstacles, spec)
	}

	if yl.Spawn != nil {
		lv.Spawn = sim.SpawnPolicy{
			Enabled:  true,
			Interval: yl.Spawn.Interval,
			Max:      yl.Spawn.Max,
			Lifetime: yl.Spawn.Lifetime,
		}
	}

	return lv, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
