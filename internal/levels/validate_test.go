package levels

import (
	"testing"

	"github.com/vovakirdan/flick-arena/internal/core"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

func validLevel() sim.Level {
	return sim.Level{
		Name:          "ok",
		FlickCooldown: 0.5,
		SurvivalTime:  30,
		PlayerStart:   core.V(640, 150),
		Enemies: []sim.EnemySpec{
			{Pos: core.V(320, 500), Radius: 35, ShootCooldown: 2, BulletSpeed: 200, BulletsPerShot: 6},
		},
		Obstacles: []sim.ObstacleSpec{
			{Kind: sim.ObstaclePillar, Pos: core.V(500, 400), Radius: 30},
			{Kind: sim.ObstacleBouncy, Pos: core.V(800, 400), Width: 128, Height: 30, CanMove: true, Speed: 80},
		},
	}
}

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Pack)
		codes  []string
	}{
		{"valid", func(p *Pack) {}, nil},
		{"missing id", func(p *Pack) { p.ID = "" }, []string{"MISSING_ID"}},
		{"empty", func(p *Pack) { p.Levels = nil }, []string{"EMPTY_PACK"}},
		{"no survival time", func(p *Pack) { p.Levels[0].SurvivalTime = 0 }, []string{"BAD_SURVIVAL"}},
		{"negative cooldown", func(p *Pack) { p.Levels[0].FlickCooldown = -1 }, []string{"BAD_COOLDOWN"}},
		{"start outside", func(p *Pack) { p.Levels[0].PlayerStart = core.V(2000, 100) }, []string{"START_OUTSIDE"}},
		{"start outside custom arena", func(p *Pack) {
			p.Levels[0].Width, p.Levels[0].Height = 600, 400
			p.Levels[0].Enemies = nil
			p.Levels[0].Obstacles = nil
		}, []string{"START_OUTSIDE"}},
		{"zero bullets", func(p *Pack) { p.Levels[0].Enemies[0].BulletsPerShot = 0 }, []string{"BAD_ENEMY"}},
		{"enemy outside", func(p *Pack) { p.Levels[0].Enemies[0].Pos = core.V(-5, 10) }, []string{"ENEMY_OUTSIDE"}},
		{"box without size", func(p *Pack) { p.Levels[0].Obstacles[1].Height = 0 }, []string{"BAD_OBSTACLE"}},
		{"pillar without radius", func(p *Pack) { p.Levels[0].Obstacles[0].Radius = 0 }, []string{"BAD_OBSTACLE"}},
		{"still mover", func(p *Pack) { p.Levels[0].Obstacles[1].Speed = 0 }, []string{"BAD_OBSTACLE"}},
		{"bad spawn", func(p *Pack) {
			p.Levels[0].Spawn = sim.SpawnPolicy{Enabled: true, Interval: 1, Max: 0, Lifetime: 3}
		}, []string{"BAD_SPAWN"}},
		{"several problems", func(p *Pack) {
			p.Levels[0].SurvivalTime = -1
			p.Levels[0].Enemies[0].Radius = 0
		}, []string{"BAD_SURVIVAL", "BAD_ENEMY"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Pack{ID: "test", Levels: []sim.Level{validLevel()}}
			tc.mutate(&p)

			got := codes(Validate(p))
			if len(got) != len(tc.codes) {
				t.Fatalf("Validate() = %v, expected %v", got, tc.codes)
			}
			for i := range got {
				if got[i] != tc.codes[i] {
					t.Errorf("Validate()[%d] = %s, expected %s", i, got[i], tc.codes[i])
				}
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	p := Pack{ID: "test", Levels: []sim.Level{validLevel()}}
	p.Levels[0].SurvivalTime = 0

	errs := Validate(p)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %d errors, expected 1", len(errs))
	}
	expected := "[BAD_SURVIVAL] level 1 (ok): survival time 0 must be positive"
	if errs[0].Error() != expected {
		t.Errorf("Error() = %q, expected %q", errs[0].Error(), expected)
	}
}
