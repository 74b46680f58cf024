// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// transformer_turbulence.go — pseudo-random displacement of the sample point.

package module

import "fmt"

// Turbulence defaults.
const (
	DefaultTurbulenceFrequency = 1.0
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3
)

// Fixed sample offsets (in 1/65536 units) that decorrelate the three
// distortion lookups.
var turbulenceOffsets = [3][3]float64{
	{12414.0 / 65536.0, 65124.0 / 65536.0, 31337.0 / 65536.0},
	{26519.0 / 65536.0, 18128.0 / 65536.0, 60493.0 / 65536.0},
	{53820.0 / 65536.0, 11213.0 / 65536.0, 44845.0 / 65536.0},
}

// Turbulence jitters the sample point with three internal Perlin modules
// (one per axis) before evaluating its source. Frequency, roughness
// (octave count) and seed are kept in lockstep across the three; the y and
// z distortions use seed+1 and seed+2.
type Turbulence struct {
	single
	power float64
	seed  int32
	dist  [3]*Perlin
}

var _ Module = (*Turbulence)(nil)

// NewTurbulence returns a Turbulence with frequency 1, power 1, roughness 3
// and seed 0, then applies opts.
func NewTurbulence(src Module, opts ...Option) (*Turbulence, error) {
	s, err := newSingle("NewTurbulence", src)
	if err != nil {
		return nil, err
	}
	t := &Turbulence{single: s, power: DefaultTurbulencePower}
	for i := range t.dist {
		if t.dist[i], err = NewPerlin(
			WithFrequency(DefaultTurbulenceFrequency),
			WithOctaveCount(DefaultTurbulenceRoughness),
		); err != nil {
			return nil, wrapf("NewTurbulence", err)
		}
	}
	t.SetSeed(DefaultSeed)
	if err = Apply(t, opts...); err != nil {
		return nil, wrapf("NewTurbulence", err)
	}
	return t, nil
}

// Frequency returns the frequency of the distortion noise.
func (t *Turbulence) Frequency() float64 { return t.dist[0].Frequency() }

// SetFrequency sets the frequency of all three distortion modules.
func (t *Turbulence) SetFrequency(f float64) {
	for _, p := range t.dist {
		p.SetFrequency(f)
	}
}

// Power returns the distortion scale.
func (t *Turbulence) Power() float64 { return t.power }

// SetPower sets the distortion scale.
func (t *Turbulence) SetPower(p float64) { t.power = p; touch() }

// Roughness returns the octave count of the distortion noise.
func (t *Turbulence) Roughness() int { return t.dist[0].OctaveCount() }

// SetRoughness sets the octave count of all three distortion modules.
func (t *Turbulence) SetRoughness(n int) error {
	if n < 1 || n > MaxOctaves {
		return fmt.Errorf("Turbulence.SetRoughness(%d): %w", n, ErrInvalidParameter)
	}
	for _, p := range t.dist {
		if err := p.SetOctaveCount(n); err != nil {
			return err
		}
	}
	return nil
}

// Seed returns the seed of the x distortion module.
func (t *Turbulence) Seed() int32 { return t.seed }

// SetSeed seeds the x, y and z distortion modules with seed, seed+1 and
// seed+2.
func (t *Turbulence) SetSeed(seed int32) {
	t.seed = seed
	for i, p := range t.dist {
		p.SetSeed(seed + int32(i))
	}
}

// GetValue implements Module.
func (t *Turbulence) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("Turbulence.GetValue", t.source); err != nil {
		return 0, err
	}
	if t.dist[0] == nil {
		return 0, wrapf("Turbulence.GetValue", ErrMissingSourceModule)
	}

	var d [3]float64
	for i, p := range t.dist {
		o := turbulenceOffsets[i]
		v, err := p.GetValue(x+o[0], y+o[1], z+o[2])
		if err != nil {
			return 0, err
		}
		d[i] = v
	}
	return t.source.GetValue(x+d[0]*t.power, y+d[1]*t.power, z+d[2]*t.power)
}
