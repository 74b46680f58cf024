// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_fractal.go — parameters shared by octave-summing generators.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/noisegen"
)

// Defaults shared by Perlin, Billow and RidgedMulti.
const (
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0
	DefaultOctaveCount = 6
	DefaultPersistence = 0.5
	DefaultSeed        = 0
)

// octaves holds the frequency, lacunarity, octave count, seed and quality of
// a fractal generator. It is embedded so the setters are promoted.
type octaves struct {
	frequency  float64
	lacunarity float64
	count      int
	seed       int32
	quality    noisegen.Quality
}

func defaultOctaves() octaves {
	return octaves{
		frequency:  DefaultFrequency,
		lacunarity: DefaultLacunarity,
		count:      DefaultOctaveCount,
		seed:       DefaultSeed,
		quality:    noisegen.DefaultQuality,
	}
}

// Frequency returns the frequency of the first octave.
func (o *octaves) Frequency() float64 { return o.frequency }

// SetFrequency sets the frequency of the first octave.
func (o *octaves) SetFrequency(f float64) { o.frequency = f; touch() }

// Lacunarity returns the frequency multiplier between octaves.
func (o *octaves) Lacunarity() float64 { return o.lacunarity }

// SetLacunarity sets the frequency multiplier between octaves.
// Values near 2.0 work best.
func (o *octaves) SetLacunarity(l float64) { o.lacunarity = l; touch() }

// OctaveCount returns the number of octaves summed.
func (o *octaves) OctaveCount() int { return o.count }

// SetOctaveCount sets the number of octaves; n must be in [1, MaxOctaves].
func (o *octaves) SetOctaveCount(n int) error {
	if n < 1 || n > MaxOctaves {
		return fmt.Errorf("SetOctaveCount(%d): %w", n, ErrInvalidParameter)
	}
	o.count = n
	touch()
	return nil
}

// Seed returns the seed of the first octave.
func (o *octaves) Seed() int32 { return o.seed }

// SetSeed sets the seed of the first octave. Octave i uses seed+i.
func (o *octaves) SetSeed(seed int32) { o.seed = seed; touch() }

// Quality returns the coherent-noise interpolation quality.
func (o *octaves) Quality() noisegen.Quality { return o.quality }

// SetQuality sets the coherent-noise interpolation quality.
func (o *octaves) SetQuality(q noisegen.Quality) error {
	if !q.Valid() {
		return fmt.Errorf("SetQuality(%d): %w", int(q), ErrInvalidParameter)
	}
	o.quality = q
	touch()
	return nil
}

// persistence is the amplitude multiplier shared by Perlin and Billow.
type persistence struct {
	persistence float64
}

// Persistence returns the amplitude multiplier between octaves.
func (p *persistence) Persistence() float64 { return p.persistence }

// SetPersistence sets the amplitude multiplier between octaves.
func (p *persistence) SetPersistence(v float64) { p.persistence = v; touch() }

// fold maps a coordinate triple into the int32-safe range.
func fold(x, y, z float64) (float64, float64, float64) {
	return noisegen.MakeInt32Range(x), noisegen.MakeInt32Range(y), noisegen.MakeInt32Range(z)
}
