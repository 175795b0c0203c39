package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flick-arena/internal/levels"
	"github.com/vovakirdan/flick-arena/internal/levels/builtin"
	"github.com/vovakirdan/flick-arena/internal/registry"
)

// loadPack resolves a pack by ID. With --levels set it is looked up on
// disk, otherwise among the built-in packs. An empty ID picks the default
// pack, or the first pack found on disk.
func loadPack(id, levelsPath string, logger *log.Logger) (levels.Pack, error) {
	if levelsPath == "" {
		if id == "" {
			id = builtin.DefaultPack
		}
		if !registry.Exists(id) {
			return levels.Pack{}, fmt.Errorf("unknown pack %q (run 'flick list' to see available packs)", id)
		}
		return registry.Create(id)
	}

	loader := levels.NewLoader(levelsPath)
	loader.Logger = logger
	if id != "" {
		return loader.LoadByID(id)
	}

	packs, err := loader.LoadAll()
	if err != nil {
		return levels.Pack{}, err
	}
	if len(packs) == 0 {
		return levels.Pack{}, fmt.Errorf("no valid level packs in %s", levelsPath)
	}
	return packs[0], nil
}

// newRNG seeds the simulation RNG. Seed 0 means the current time.
func newRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
