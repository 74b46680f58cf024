// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_classicperlin.go — Ken Perlin's permutation-table noise as a module.

package module

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// ClassicPerlin defaults.
const (
	DefaultClassicAlpha   = 2.0
	DefaultClassicBeta    = 2.0
	DefaultClassicOctaves = 3
)

// ClassicPerlin evaluates permutation-table Perlin noise. Alpha is the
// amplitude divisor and beta the frequency multiplier between octaves.
// Unlike Perlin, the lattice is built from a shuffled permutation, so
// changing the seed changes every octave at once. Use NewClassicPerlin; the
// zero value fails with ErrInvalidParameter.
type ClassicPerlin struct {
	alpha     float64
	beta      float64
	count     int
	seed      int32
	frequency float64
	gen       *perlin.Perlin
}

var _ Module = (*ClassicPerlin)(nil)

// NewClassicPerlin returns a ClassicPerlin generator with alpha 2, beta 2,
// 3 octaves, seed 0 and frequency 1.
func NewClassicPerlin(opts ...Option) (*ClassicPerlin, error) {
	c := &ClassicPerlin{
		alpha:     DefaultClassicAlpha,
		beta:      DefaultClassicBeta,
		count:     DefaultClassicOctaves,
		seed:      DefaultSeed,
		frequency: DefaultFrequency,
	}
	c.rebuild()
	if err := Apply(c, opts...); err != nil {
		return nil, wrapf("NewClassicPerlin", err)
	}
	return c, nil
}

func (c *ClassicPerlin) rebuild() {
	c.gen = perlin.NewPerlin(c.alpha, c.beta, int32(c.count), int64(c.seed))
	touch()
}

// Alpha returns the amplitude divisor between octaves.
func (c *ClassicPerlin) Alpha() float64 { return c.alpha }

// SetAlpha sets the amplitude divisor between octaves.
func (c *ClassicPerlin) SetAlpha(a float64) { c.alpha = a; c.rebuild() }

// Beta returns the frequency multiplier between octaves.
func (c *ClassicPerlin) Beta() float64 { return c.beta }

// SetBeta sets the frequency multiplier between octaves.
func (c *ClassicPerlin) SetBeta(b float64) { c.beta = b; c.rebuild() }

// OctaveCount returns the number of octaves.
func (c *ClassicPerlin) OctaveCount() int { return c.count }

// SetOctaveCount sets the number of octaves; n must be in [1, MaxOctaves].
func (c *ClassicPerlin) SetOctaveCount(n int) error {
	if n < 1 || n > MaxOctaves {
		return fmt.Errorf("ClassicPerlin.SetOctaveCount(%d): %w", n, ErrInvalidParameter)
	}
	c.count = n
	c.rebuild()
	return nil
}

// Seed returns the permutation seed.
func (c *ClassicPerlin) Seed() int32 { return c.seed }

// SetSeed reshuffles the permutation table.
func (c *ClassicPerlin) SetSeed(s int32) { c.seed = s; c.rebuild() }

// Frequency returns the input scale.
func (c *ClassicPerlin) Frequency() float64 { return c.frequency }

// SetFrequency sets the input scale.
func (c *ClassicPerlin) SetFrequency(f float64) { c.frequency = f; touch() }

// SourceModules returns nil.
func (c *ClassicPerlin) SourceModules() []Module { return nil }

// GetValue implements Module.
func (c *ClassicPerlin) GetValue(x, y, z float64) (float64, error) {
	if c.gen == nil {
		return 0, wrapf("ClassicPerlin.GetValue", ErrInvalidParameter)
	}
	return c.gen.Noise3D(x*c.frequency, y*c.frequency, z*c.frequency), nil
}
