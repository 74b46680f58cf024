// SPDX-License-Identifier: MIT
// Package: lvnoise/preset
//
// params.go — tuning knobs shared by every preset.

package preset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnoise/module"
)

// Defaults returned by DefaultParams.
const (
	DefaultSeed      int32 = 0
	DefaultFrequency       = 1.0
	DefaultOctaves         = 6
)

// Params tunes a preset. The zero value is invalid; start from
// DefaultParams.
type Params struct {
	// Seed offsets every internal generator seed.
	Seed int32 `yaml:"seed"`
	// Frequency multiplies every base frequency of the preset.
	Frequency float64 `yaml:"frequency"`
	// Octaves is the octave count of the primary fractal generator.
	Octaves int `yaml:"octaves"`
}

// DefaultParams returns seed 0, frequency ×1 and 6 octaves.
func DefaultParams() Params {
	return Params{Seed: DefaultSeed, Frequency: DefaultFrequency, Octaves: DefaultOctaves}
}

// Validate reports ErrInvalidParams for a non-positive or non-finite
// Frequency, or Octaves outside [1, module.MaxOctaves].
func (p Params) Validate() error {
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) || p.Frequency <= 0 {
		return fmt.Errorf("Params.Validate: frequency %g: %w", p.Frequency, ErrInvalidParams)
	}
	if p.Octaves < 1 || p.Octaves > module.MaxOctaves {
		return fmt.Errorf("Params.Validate: octaves %d not in [1, %d]: %w", p.Octaves, module.MaxOctaves, ErrInvalidParams)
	}
	return nil
}

// seed returns the seed for the k-th generator of a preset.
func (p Params) seed(k int32) int32 { return p.Seed + k }

// freq scales a base frequency.
func (p Params) freq(base float64) float64 { return base * p.Frequency }

// octaves caps the primary octave count for secondary generators.
func (p Params) octaves(limit int) int { return min(p.Octaves, limit) }
