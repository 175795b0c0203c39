package builtin_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/levels"
	_ "github.com/vovakirdan/flick-arena/internal/levels/builtin"
	"github.com/vovakirdan/flick-arena/internal/registry"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

func TestBuiltinPacksAreValid(t *testing.T) {
	for _, id := range []string{"classic", "training"} {
		t.Run(id, func(t *testing.T) {
			p, err := registry.Create(id)
			if err != nil {
				t.Fatalf("Create(%s) error = %v", id, err)
			}
			if errs := levels.Validate(p); len(errs) > 0 {
				t.Errorf("Validate(%s) = %v", id, errs)
			}
		})
	}
}

func TestClassicPack(t *testing.T) {
	p, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("Create(classic) error = %v", err)
	}
	if len(p.Levels) != 3 {
		t.Fatalf("classic has %d levels, expected 3", len(p.Levels))
	}

	tests := []struct {
		drag, maxSpeed, cooldown, survival, density float64
		enemies, obstacles                          int
		spawn                                       bool
	}{
		{1.2, 800, 0.6, 30, 1.0, 2, 0, false},
		{1.0, 900, 0.8, 45, 1.25, 2, 4, false},
		{0.8, 1000, 1.0, 60, 1.5, 2, 0, true},
	}

	for i, tc := range tests {
		lv := p.Levels[i]
		if lv.DragK != tc.drag || lv.MaxSpeed != tc.maxSpeed || lv.FlickCooldown != tc.cooldown ||
			lv.SurvivalTime != tc.survival || lv.BulletDensity != tc.density {
			t.Errorf("level %d physics = %v %v %v %v %v", i+1, lv.DragK, lv.MaxSpeed, lv.FlickCooldown, lv.SurvivalTime, lv.BulletDensity)
		}
		if lv.PlayerStart != core.V(640, 150) || lv.Width != 1280 || lv.Height != 720 {
			t.Errorf("level %d start %v arena %vx%v", i+1, lv.PlayerStart, lv.Width, lv.Height)
		}
		if len(lv.Enemies) != tc.enemies || len(lv.Obstacles) != tc.obstacles || lv.Spawn.Enabled != tc.spawn {
			t.Errorf("level %d has %d enemies, %d obstacles, spawn %v", i+1, len(lv.Enemies), len(lv.Obstacles), lv.Spawn.Enabled)
		}
	}

	storm := p.Levels[2].Spawn
	if storm.Interval != 1.5 || storm.Max != 8 || storm.Lifetime != 4 {
		t.Errorf("level 3 spawn = %+v", storm)
	}
}

func TestClassicRunsOnEngine(t *testing.T) {
	p, err := registry.Create("classic")
	if err != nil {
		t.Fatal(err)
	}

	e, err := sim.NewEngine(p.Levels, sim.DefaultTuning(), rand.New(rand.NewSource(3)), nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.LoadLevel(1)

	s := e.Snapshot()
	if s.LevelName != "Clouds" || s.Levels != 3 || len(s.Obstacles) != 4 {
		t.Errorf("snapshot = %q %d levels %d obstacles", s.LevelName, s.Levels, len(s.Obstacles))
	}
	for i := 0; i < 120; i++ {
		e.Step(1.0 / 60)
	}
	if e.Frame() == 0 {
		t.Error("engine did not step")
	}
}

func TestCreateReturnsFreshCopies(t *testing.T) {
	a, _ := registry.Create("classic")
	a.Levels[0].SurvivalTime = 1

	b, _ := registry.Create("classic")
	if b.Levels[0].SurvivalTime != 30 {
		t.Errorf("SurvivalTime = %v, expected untouched 30", b.Levels[0].SurvivalTime)
	}
}
