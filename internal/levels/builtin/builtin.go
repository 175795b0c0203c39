// Package builtin registers the level packs embedded in the binary.
// Import it for side effects.
package builtin

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/flick-arena/internal/levels"
	"github.com/vovakirdan/flick-arena/internal/registry"
)

//go:embed packs/*.yaml
var packFS embed.FS

// DefaultPack is played when no pack is named.
const DefaultPack = "classic"

func init() {
	registry.Register("classic", embedded("packs/classic.yaml"))
	registry.Register("training", embedded("packs/training.yaml"))
}

func embedded(name string) registry.Factory {
	return func() (levels.Pack, error) {
		data, err := packFS.ReadFile(name)
		if err != nil {
			return levels.Pack{}, fmt.Errorf("failed to read embedded pack %s: %w", name, err)
		}
		p, err := levels.ParseYAML(data)
		if err != nil {
			return levels.Pack{}, fmt.Errorf("embedded pack %s: %w", name, err)
		}
		p.FilePath = "embedded:" + name
		return p, nil
	}
}
