package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flick-arena/internal/levels"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

func fixedPack(id string, n int) Factory {
	return func() (levels.Pack, error) {
		return levels.Pack{ID: id, Name: "Pack " + id, Levels: make([]sim.Level, n)}, nil
	}
}

func TestRegisterAndList(t *testing.T) {
	Register("zz-test", fixedPack("zz-test", 2))
	Register("aa-test", fixedPack("aa-test", 1))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	if !Exists("zz-test") || Exists("nope") {
		t.Error("Exists() mismatch")
	}

	var found bool
	for _, info := range list {
		if info.ID == "zz-test" {
			found = true
			if info.Title != "Pack zz-test" || info.Levels != 2 {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("zz-test missing from List()")
	}

	p, err := Create("aa-test")
	if err != nil || len(p.Levels) != 1 {
		t.Errorf("Create(aa-test) = %d levels, err %v", len(p.Levels), err)
	}
	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("dup-test", fixedPack("dup-test", 1))

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "dup-test", fixedPack("dup-test", 1)},
		{"failing factory", "broken-test", func() (levels.Pack, error) {
			return levels.Pack{}, errors.New("boom")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%s) did not panic", tc.id)
				}
			}()
			Register(tc.id, tc.f)
		})
	}
}
