// Package sim implements the flick arena simulation: a drag-launched ball
// dodging enemy bullet patterns among pillars, bouncy pads and slow zones.
//
// The package is pure logic. It has no knowledge of terminals, audio or files;
// those collaborators talk to it through Engine's input methods, the EventSink
// interface and read-only snapshots taken between frames.
package sim

// Tuning holds every gameplay constant the engine uses.
// Values are world units and seconds unless noted.
type Tuning struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // dt upper bound per Step

	PlayerRadius    float64 `yaml:"player_radius"`
	RestSpeed       float64 `yaml:"rest_speed"`       // per-axis speed snapped to zero
	WallRestitution float64 `yaml:"wall_restitution"` // player wall bounce factor

	PushOutDamping float64 `yaml:"push_out_damping"` // velocity factor after a pillar push-out
	BounceStrength float64 `yaml:"bounce_strength"`  // velocity factor after a bouncy reflection
	SlowMultiplier float64 `yaml:"slow_multiplier"`  // velocity factor on slow zone entry

	DirectionChangeInterval float64 `yaml:"direction_change_interval"`
	DyingFraction           float64 `yaml:"dying_fraction"` // share of lifetime before fading starts

	BulletRadius     float64 `yaml:"bullet_radius"`
	BulletLifetime   float64 `yaml:"bullet_lifetime"`
	BulletCullMargin float64 `yaml:"bullet_cull_margin"`
	AimedSpreadDeg   float64 `yaml:"aimed_spread_deg"`
	RandomSpeedMin   float64 `yaml:"random_speed_min"` // multiplier of bullet speed
	RandomSpeedSpan  float64 `yaml:"random_speed_span"`

	SpawnSize         float64 `yaml:"spawn_size"`
	SpawnMinX         float64 `yaml:"spawn_min_x"`
	SpawnMinY         float64 `yaml:"spawn_min_y"`
	SpawnEdgeMargin   float64 `yaml:"spawn_edge_margin"`
	SpawnSafeDistance float64 `yaml:"spawn_safe_distance"`
	SpawnMinSpeed     float64 `yaml:"spawn_min_speed"`
	SpawnSpeedSpan    float64 `yaml:"spawn_speed_span"`

	DefaultDrag     float64 `yaml:"default_drag"`
	DefaultMaxSpeed float64 `yaml:"default_max_speed"`
}

// DefaultTuning returns the stock arcade tuning.
func DefaultTuning() Tuning {
	return Tuning{
		MaxFrameDelta: 1.0 / 30,

		PlayerRadius:    25,
		RestSpeed:       5,
		WallRestitution: 0.5,

		PushOutDamping: 0.3,
		BounceStrength: 1.5,
		SlowMultiplier: 0.4,

		DirectionChangeInterval: 2.0,
		DyingFraction:           0.8,

		BulletRadius:     8,
		BulletLifetime:   5,
		BulletCullMargin: 20,
		AimedSpreadDeg:   15,
		RandomSpeedMin:   0.7,
		RandomSpeedSpan:  0.6,

		SpawnSize:         70,
		SpawnMinX:         150,
		SpawnMinY:         300,
		SpawnEdgeMargin:   50,
		SpawnSafeDistance: 200,
		SpawnMinSpeed:     60,
		SpawnSpeedSpan:    80,

		DefaultDrag:     1.0,
		DefaultMaxSpeed: 800,
	}
}

// RNG is the single random source the simulation draws from.
// *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}
