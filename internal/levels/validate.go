package levels

import (
	"fmt"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a pack and returns every problem found, in level order.
// An empty result means the pack is playable.
func Validate(p Pack) []ValidationError {
	var errs []ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if p.ID == "" {
		add("MISSING_ID", "pack has no id")
	}
	if len(p.Levels) == 0 {
		add("EMPTY_PACK", "pack %q has no levels", p.ID)
	}

	for i, lv := range p.Levels {
		where := fmt.Sprintf("level %d (%s)", i+1, lv.Name)
		for _, e := range validateLevel(lv) {
			e.Message = where + ": " + e.Message
			errs = append(errs, e)
		}
	}

	return errs
}

func validateLevel(lv sim.Level) []ValidationError {
	var errs []ValidationError
	add := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	w, h := lv.Width, lv.Height
	if w == 0 {
		w = sim.DefaultArenaWidth
	}
	if h == 0 {
		h = sim.DefaultArenaHeight
	}
	inside := func(x, y float64) bool {
		return x >= 0 && x <= w && y >= 0 && y <= h
	}

	if w < 0 || h < 0 {
		add("BAD_ARENA", "arena %vx%v must be positive", lv.Width, lv.Height)
	}
	if lv.SurvivalTime <= 0 {
		add("BAD_SURVIVAL", "survival time %v must be positive", lv.SurvivalTime)
	}
	if lv.FlickCooldown < 0 {
		add("BAD_COOLDOWN", "flick cooldown %v is negative", lv.FlickCooldown)
	}
	if lv.BulletDensity < 0 {
		add("BAD_DENSITY", "bullet density %v is negative", lv.BulletDensity)
	}
	if lv.MaxSpeed < 0 {
		add("BAD_PHYSICS", "max speed %v is negative", lv.MaxSpeed)
	}
	if !inside(lv.PlayerStart.X, lv.PlayerStart.Y) {
		add("START_OUTSIDE", "player start %v is outside the arena", lv.PlayerStart)
	}

	for j, en := range lv.Enemies {
		switch {
		case en.Radius <= 0:
			add("BAD_ENEMY", "enemy %d radius %v must be positive", j+1, en.Radius)
		case en.ShootCooldown <= 0:
			add("BAD_ENEMY", "enemy %d cooldown %v must be positive", j+1, en.ShootCooldown)
		case en.BulletSpeed <= 0:
			add("BAD_ENEMY", "enemy %d bullet speed %v must be positive", j+1, en.BulletSpeed)
		case en.BulletsPerShot < 1:
			add("BAD_ENEMY", "enemy %d fires %d bullets per shot", j+1, en.BulletsPerShot)
		}
		if !inside(en.Pos.X, en.Pos.Y) {
			add("ENEMY_OUTSIDE", "enemy %d at %v is outside the arena", j+1, en.Pos)
		}
	}

	for j, ob := range lv.Obstacles {
		if ob.Kind.Rectangular() {
			if ob.Width <= 0 || ob.Height <= 0 {
				add("BAD_OBSTACLE", "obstacle %d (%s) needs a positive size", j+1, ob.Kind)
			}
		} else if ob.Radius <= 0 {
			add("BAD_OBSTACLE", "obstacle %d (%s) needs a positive radius", j+1, ob.Kind)
		}
		if ob.CanMove && ob.Speed <= 0 {
			add("BAD_OBSTACLE", "moving obstacle %d has speed %v", j+1, ob.Speed)
		}
		if ob.Lifetime < 0 {
			add("BAD_OBSTACLE", "obstacle %d lifetime %v is negative", j+1, ob.Lifetime)
		}
	}

	if sp := lv.Spawn; sp.Enabled {
		if sp.Interval <= 0 || sp.Max < 1 || sp.Lifetime <= 0 {
			add("BAD_SPAWN", "spawn needs positive interval, max and lifetime (got %v, %d, %v)",
				sp.Interval, sp.Max, sp.Lifetime)
		}
	}

	return errs
}
