package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader handles loading packs from a file or a directory tree.
type Loader struct {
	Root string

	// Logger receives a warning for every skipped file. Nil is silent.
	Logger *log.Logger
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads Root if it is a file, or recursively scans it if it is a
// directory. Files that fail to parse or validate are skipped.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pack, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read level pack %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		p, err := l.loadValid(l.Root)
		if err != nil {
			return nil, err
		}
		return []Pack{p}, nil
	}

	var packs []Pack
	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		p, err := l.loadValid(path)
		if err != nil {
			l.warn("skipping level pack", "path", path, "err", err)
			return nil
		}
		packs = append(packs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// LoadFile parses a single pack file without validating it.
func (l *Loader) LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("failed to read level pack %s: %w", path, err)
	}

	p, err := ParseYAML(data)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}

	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}

	return Pack{}, fmt.Errorf("level pack not found: %s", id)
}

func (l *Loader) loadValid(path string) (Pack, error) {
	p, err := l.LoadFile(path)
	if err != nil {
		return Pack{}, err
	}
	if errs := Validate(p); len(errs) > 0 {
		return Pack{}, fmt.Errorf("invalid level pack %s: %w", path, errs[0])
	}
	return p, nil
}

func (l *Loader) warn(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Warn(msg, keyvals...)
	}
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
