package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
)

const eps = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func assertVec(t *testing.T, name string, got, expected core.Vec2) {
	t.Helper()
	if !approx(got.X, expected.X) || !approx(got.Y, expected.Y) {
		t.Errorf("%s = (%.6f, %.6f), expected (%.6f, %.6f)", name, got.X, got.Y, expected.X, expected.Y)
	}
}

// seqRNG replays fixed values, cycling when exhausted.
type seqRNG struct {
	vals []float64
	i    int
}

func (r *seqRNG) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func zeroRNG() *seqRNG {
	return &seqRNG{vals: []float64{0}}
}

func testTuning() *Tuning {
	t := DefaultTuning()
	return &t
}

// angleDeg returns the direction of v in degrees, in (-180, 180].
func angleDeg(v core.Vec2) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
