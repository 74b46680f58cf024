// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_billow.go — fractal sum of folded gradient noise.

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/noisegen"
)

// Billow is Perlin with each octave folded through 2|n|-1, which gives
// rounded, cloud-like lumps. The sum is shifted up by 0.5.
type Billow struct {
	octaves
	persistence
}

var _ Module = (*Billow)(nil)

// NewBillow returns a Billow generator with the same defaults as Perlin.
func NewBillow(opts ...Option) (*Billow, error) {
	b := &Billow{
		octaves:     defaultOctaves(),
		persistence: persistence{DefaultPersistence},
	}
	if err := Apply(b, opts...); err != nil {
		return nil, wrapf("NewBillow", err)
	}
	return b, nil
}

// SourceModules returns nil; Billow is a generator.
func (b *Billow) SourceModules() []Module { return nil }

// GetValue implements Module.
func (b *Billow) GetValue(x, y, z float64) (float64, error) {
	var (
		value float64
		amp   = 1.0
	)
	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	for o := 0; o < b.count; o++ {
		nx, ny, nz := fold(x, y, z)
		signal := noisegen.GradientCoherentNoise3D(nx, ny, nz, b.seed+int32(o), b.quality)
		value += (2.0*math.Abs(signal) - 1.0) * amp

		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
		amp *= b.persistence.persistence
	}
	return value + 0.5, nil
}
