package spectrum

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	legendscaleerrors "github.com/mbeaudin/legendscale/pkg/errors"
)

// Registry holds the palettes available to a run. Names are matched
// case-insensitively but keep their registered spelling.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry creates a registry seeded with the builtin palettes.
func NewRegistry() *Registry {
	r := &Registry{palettes: make(map[string]Palette, len(builtins))}
	for _, p := range builtins {
		r.palettes[strings.ToLower(p.Name)] = p
	}
	return r
}

// Register adds a palette. The palette is probed for structural problems
// before it becomes visible, and names must be unique, builtins included.
func (r *Registry) Register(p Palette) error {
	if p.Name == "" {
		return legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("palette name is empty"))
	}
	if _, err := p.Table(3, false); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(p.Name)
	if _, exists := r.palettes[key]; exists {
		return legendscaleerrors.NewPaletteError(p.Name, fmt.Errorf("palette already registered"))
	}

	r.palettes[key] = p
	return nil
}

// Lookup retrieves a palette by name, ignoring case.
func (r *Registry) Lookup(name string) (Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.palettes[strings.ToLower(name)]
	if !ok {
		return Palette{}, legendscaleerrors.NewPaletteError(name, fmt.Errorf("no palette registered"))
	}

	return p, nil
}

// Names returns the registered palette names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.palettes))
	for _, p := range r.palettes {
		names = append(names, p.Name)
	}
	sort.Strings(names)

	return names
}
