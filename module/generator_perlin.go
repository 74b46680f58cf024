// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_perlin.go — fractal sum of gradient coherent noise.

package module

import "github.com/katalvlaran/lvnoise/noisegen"

// Perlin sums octaves of gradient coherent noise. Each octave doubles (by
// lacunarity) the frequency and halves (by persistence) the amplitude of the
// previous one.
//
// Output is the raw sum; with the defaults it mostly lies in [-1, 1] but is
// not clamped.
type Perlin struct {
	octaves
	persistence
}

var _ Module = (*Perlin)(nil)

// NewPerlin returns a Perlin generator with frequency 1, lacunarity 2,
// 6 octaves, persistence 0.5, seed 0 and Standard quality, then applies opts.
func NewPerlin(opts ...Option) (*Perlin, error) {
	p := &Perlin{
		octaves:     defaultOctaves(),
		persistence: persistence{DefaultPersistence},
	}
	if err := Apply(p, opts...); err != nil {
		return nil, wrapf("NewPerlin", err)
	}
	return p, nil
}

// SourceModules returns nil; Perlin is a generator.
func (p *Perlin) SourceModules() []Module { return nil }

// GetValue implements Module.
func (p *Perlin) GetValue(x, y, z float64) (float64, error) {
	var (
		value float64
		amp   = 1.0
	)
	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	for o := 0; o < p.count; o++ {
		nx, ny, nz := fold(x, y, z)
		seed := p.seed + int32(o)
		value += noisegen.GradientCoherentNoise3D(nx, ny, nz, seed, p.quality) * amp

		x *= p.lacunarity
		y *= p.lacunarity
		z *= p.lacunarity
		amp *= p.persistence.persistence
	}
	return value, nil
}
