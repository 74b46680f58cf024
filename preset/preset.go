// SPDX-License-Identifier: MIT
// Package: lvnoise/preset
//
// preset.go — registry and entry points.

package preset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvnoise/module"
)

// Preset names accepted by New.
const (
	Clouds  = "clouds"
	Granite = "granite"
	Marble  = "marble"
	Planet  = "planet"
	Terrain = "terrain"
	Wood    = "wood"
)

type buildFunc func(Params) (module.Module, error)

var registry = map[string]buildFunc{
	Clouds:  clouds,
	Granite: granite,
	Marble:  marble,
	Planet:  planet,
	Terrain: terrain,
	Wood:    wood,
}

// Names returns the preset names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a fresh module graph for the named preset. Each call returns
// an independent graph.
func New(name string, p Params) (module.Module, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownPreset)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}
	root, err := build(p)
	if err != nil {
		return nil, fmt.Errorf("preset: New(%q): %w", name, err)
	}
	return root, nil
}
