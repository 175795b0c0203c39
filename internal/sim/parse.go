package sim

import "strings"

// ParseObstacleKind converts a name like "slow_zone" to an ObstacleKind.
// Returns ObstaclePillar and false if the name is not recognized.
func ParseObstacleKind(s string) (ObstacleKind, bool) {
	switch normalizeName(s) {
	case "pillar":
		return ObstaclePillar, true
	case "bouncy":
		return ObstacleBouncy, true
	case "slow_zone", "slow":
		return ObstacleSlowZone, true
	default:
		return ObstaclePillar, false
	}
}

// ParseShootPattern converts a name to a ShootPattern.
func ParseShootPattern(s string) (ShootPattern, bool) {
	for _, p := range []ShootPattern{ShootCircle, ShootAimed, ShootRandom} {
		if p.String() == normalizeName(s) {
			return p, true
		}
	}
	return ShootCircle, false
}

// ParseMovementPattern converts a name to a MovementPattern. An empty
// name means stationary.
func ParseMovementPattern(s string) (MovementPattern, bool) {
	name := normalizeName(s)
	if name == "" {
		return MoveStationary, true
	}
	for _, m := range []MovementPattern{MoveStationary, MoveHorizontal, MoveVertical, MoveCircle, MoveFigureEight} {
		if m.String() == name {
			return m, true
		}
	}
	return MoveStationary, false
}

// normalizeName lowercases and maps "figure-eight" or "figure eight" to
// "figure_eight".
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
