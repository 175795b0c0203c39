package sim

import (
	"errors"
	"math"

	"github.com/vovakirdan/flick-arena/internal/core"
)

// ErrNoLevels is returned when an engine is built without any level.
var ErrNoLevels = errors.New("sim: no levels")

// StepResult summarizes one Step.
type StepResult struct {
	State  State
	Events []Event
}

// Engine runs the arena: a level sequence, the state machine and all
// live entities. It is not safe for concurrent use; read snapshots
// between Step calls.
type Engine struct {
	tuning  Tuning
	levels  []Level
	index   int
	machine *Machine
	rng     RNG
	sink    EventSink

	level     Level
	world     *World
	player    *Player
	enemies   []*Enemy
	obstacles []*Obstacle
	bullets   []*Bullet

	survival   float64
	spawnTimer float64
	frame      uint64

	events []Event
}

// NewEngine creates an engine on the first level.
// A nil sink discards events.
func NewEngine(levels []Level, t Tuning, rng RNG, sink EventSink) (*Engine, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if sink == nil {
		sink = NopSink{}
	}

	e := &Engine{
		tuning:  t,
		levels:  levels,
		machine: NewMachine(),
		rng:     rng,
		sink:    sink,
	}
	e.load(0)
	return e, nil
}

// load resets every entity from levels[i].
func (e *Engine) load(i int) {
	e.index = i
	e.level = e.levels[i].withDefaults(&e.tuning)
	lv := e.level

	e.world = NewWorld(lv.Width, lv.Height, &e.tuning)
	e.world.SetPhysics(lv.DragK, lv.MaxSpeed)

	e.player = NewPlayer(lv.PlayerStart, e.tuning.PlayerRadius, lv.FlickCooldown)

	e.enemies = make([]*Enemy, 0, len(lv.Enemies))
	for _, spec := range lv.Enemies {
		spec.ShootCooldown = lv.enemyCooldown(spec.ShootCooldown)
		e.enemies = append(e.enemies, NewEnemy(spec, &e.tuning))
	}

	e.obstacles = make([]*Obstacle, 0, len(lv.Obstacles))
	for _, spec := range lv.Obstacles {
		e.obstacles = append(e.obstacles, NewObstacle(spec, &e.tuning, e.rng))
	}

	e.bullets = nil
	e.survival = 0
	e.spawnTimer = 0
}

// LoadLevel jumps to level i (0-based) in the running state.
// Out-of-range indexes are clamped.
func (e *Engine) LoadLevel(i int) {
	e.load(core.Clamp(i, 0, len(e.levels)-1))
	e.machine.Reset()
}

// TogglePause switches between running and paused. Other states ignore it.
func (e *Engine) TogglePause() bool {
	return e.machine.Fire(TriggerTogglePause)
}

// ApplyImpulse flicks the player while running. Reports whether the
// impulse was accepted by the cooldown.
func (e *Engine) ApplyImpulse(v core.Vec2) bool {
	if e.machine.State() != StateRunning {
		return false
	}
	return e.player.AddImpulse(v)
}

// Advance is the context action for the end states: it reloads the level
// after game over, moves on after a level is cleared and starts over after
// the last one. It does nothing while running or paused.
func (e *Engine) Advance() bool {
	next := e.index
	switch e.machine.State() {
	case StateGameOver:
	case StateLevelComplete:
		next = core.Min(e.index+1, len(e.levels)-1)
	case StateGameComplete:
		next = 0
	case StateRunning, StatePaused:
		return false
	}

	if !e.machine.Fire(TriggerAdvance) {
		return false
	}
	e.load(next)
	return true
}

// Step advances one frame. dt is clamped to the tuning's MaxFrameDelta.
// Outside the running state nothing moves.
func (e *Engine) Step(dt float64) StepResult {
	e.events = e.events[:0]

	if e.machine.State() != StateRunning {
		return e.result()
	}
	dt = core.ClampF(dt, 0, e.tuning.MaxFrameDelta)
	e.frame++

	e.survival += dt

	e.stepPlayer(dt)
	e.stepObstacles(dt)
	e.resolveObstacleContacts()
	e.stepEnemies(dt)
	hit := e.stepBullets(dt)

	switch {
	case hit:
		e.machine.Fire(TriggerPlayerHit)
		e.emit(EventGameOver)
	case e.survival >= e.level.SurvivalTime:
		if e.IsLastLevel() {
			e.machine.Fire(TriggerSurvivedFinal)
			e.emit(EventGameComplete)
		} else {
			e.machine.Fire(TriggerSurvived)
			e.emit(EventLevelComplete)
		}
	}

	return e.result()
}

func (e *Engine) result() StepResult {
	var evs []Event
	if len(e.events) > 0 {
		evs = make([]Event, len(e.events))
		copy(evs, e.events)
	}
	return StepResult{State: e.machine.State(), Events: evs}
}

func (e *Engine) emit(kind EventKind) {
	ev := Event{Kind: kind, Level: e.index + 1, Time: e.survival}
	e.events = append(e.events, ev)
	e.sink.Emit(ev)
}

func (e *Engine) stepPlayer(dt float64) {
	e.world.IntegratePlayer(e.player, dt)
	if e.world.ResolveBoundary(e.player) {
		e.emit(EventWallBounce)
	}
	e.player.Update(dt)
}

func (e *Engine) stepObstacles(dt float64) {
	for _, o := range e.obstacles {
		o.Update(dt, e.world.Width, e.world.Height, e.rng)
	}
	e.obstacles = compact(e.obstacles, func(o *Obstacle) bool { return !o.Expired() })

	sp := e.level.Spawn
	if !sp.Enabled {
		return
	}
	e.spawnTimer += dt
	if e.spawnTimer >= sp.Interval && len(e.obstacles) < sp.Max {
		e.spawnTimer = 0
		e.obstacles = append(e.obstacles, e.world.SpawnRandomObstacle(e.player, sp.Lifetime, e.rng))
	}
}

func (e *Engine) resolveObstacleContacts() {
	for _, o := range e.obstacles {
		switch o.HandlePlayer(e.player) {
		case ContactBounce:
			e.emit(EventObstacleBounce)
		case ContactSlowEnter:
			e.emit(EventSlowZoneEnter)
		case ContactPushOut, ContactNone:
		}
	}
}

func (e *Engine) stepEnemies(dt float64) {
	for _, en := range e.enemies {
		en.Update(dt)
		e.bullets = append(e.bullets, en.TryShoot(e.player, e.rng)...)
	}
}

// stepBullets moves bullets and resolves obstacle interception before the
// player test. It stops at the first bullet that reaches the player and
// reports the hit; later bullets are left untouched this frame.
func (e *Engine) stepBullets(dt float64) bool {
	hit := false
	for _, b := range e.bullets {
		b.Update(dt, e.world, e.tuning.BulletCullMargin)
		if !b.Active() {
			continue
		}

		if e.intercepted(b) {
			b.Deactivate()
			continue
		}

		if b.CheckCollision(e.player) {
			hit = true
			break
		}
	}
	e.bullets = compact(e.bullets, (*Bullet).Active)
	return hit
}

func (e *Engine) intercepted(b *Bullet) bool {
	for _, o := range e.obstacles {
		if o.InterceptsBullet(b) {
			return true
		}
	}
	return false
}

// compact keeps the elements for which keep is true, preserving order.
func compact[T any](xs []T, keep func(T) bool) []T {
	n := 0
	for _, x := range xs {
		if keep(x) {
			xs[n] = x
			n++
		}
	}
	clear(xs[n:])
	return xs[:n]
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.machine.State()
}

// TimeRemaining returns the seconds left to survive, never negative.
func (e *Engine) TimeRemaining() float64 {
	return math.Max(0, e.level.SurvivalTime-e.survival)
}

// LevelNumber returns the 1-based current level.
func (e *Engine) LevelNumber() int {
	return e.index + 1
}

// LevelCount returns the number of levels.
func (e *Engine) LevelCount() int {
	return len(e.levels)
}

// IsLastLevel reports whether the current level is the final one.
func (e *Engine) IsLastLevel() bool {
	return e.index == len(e.levels)-1
}

// CooldownReady reports whether the player can flick.
func (e *Engine) CooldownReady() bool {
	return e.player.CooldownReady()
}

// CooldownPercent returns the remaining flick cooldown as 0..100.
func (e *Engine) CooldownPercent() float64 {
	return e.player.CooldownPercent()
}

// Level returns the current level with defaults applied.
func (e *Engine) Level() Level {
	return e.level
}

// Frame returns the number of running frames simulated.
func (e *Engine) Frame() uint64 {
	return e.frame
}
