// Package registry provides a global registry of named view presets.
// Presets register themselves in init() functions, allowing the CLI and the
// SSH preset picker to discover them without hardcoded lists.
package registry

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/engine"
)

// ErrInvalid is returned by Preset.Validate.
var ErrInvalid = errors.New("registry: invalid preset")

// Palette replaces the sky gradient and ground color.
type Palette struct {
	SkyTop    core.RGB
	SkyBottom core.RGB
	Ground    core.RGB
}

// Preset is a named set of camera, movement and color overrides applied on
// top of the loaded configuration. Zero fields keep the configured value.
type Preset struct {
	ID          string
	Title       string
	Description string
	FOVDegrees  float64
	Depth       float64
	MoveSpeed   float64
	Palette     *Palette
}

// Validate checks the overrides that are set.
func (p Preset) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalid)
	case p.FOVDegrees < 0 || p.FOVDegrees >= 180:
		return fmt.Errorf("%w: %s: fov %v out of range", ErrInvalid, p.ID, p.FOVDegrees)
	case p.Depth < 0:
		return fmt.Errorf("%w: %s: negative depth", ErrInvalid, p.ID)
	case p.MoveSpeed < 0:
		return fmt.Errorf("%w: %s: negative move speed", ErrInvalid, p.ID)
	}
	return nil
}

// Apply writes the preset's overrides into opts. The map and start are
// never touched.
func (p Preset) Apply(opts *engine.Options) {
	if p.FOVDegrees > 0 {
		opts.Render.FOV = p.FOVDegrees * math.Pi / 180
	}
	if p.Depth > 0 {
		opts.Render.Depth = p.Depth
		if opts.Render.Step > p.Depth {
			opts.Render.Step = p.Depth
		}
	}
	if p.MoveSpeed > 0 {
		opts.Move.Speed = p.MoveSpeed
	}
	if p.Palette != nil {
		opts.Render.SkyTop = p.Palette.SkyTop
		opts.Render.SkyBottom = p.Palette.SkyBottom
		opts.Render.Ground = p.Palette.Ground
	}
}

// Info contains metadata about a registered preset.
type Info struct {
	ID          string
	Title       string
	Description string
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if the preset is invalid or its ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// List returns information about all registered presets, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(presets))
	for id, p := range presets {
		result = append(result, Info{
			ID:          id,
			Title:       p.Title,
			Description: p.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset registered under id.
// Returns an error if the preset ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
