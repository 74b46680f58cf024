// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_ridgedmulti.go — ridged multifractal noise.

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/noisegen"
)

// RidgedMulti defaults beyond the shared fractal ones.
const (
	DefaultRidgedOffset = 1.0
	DefaultRidgedGain   = 2.0
)

// RidgedMulti produces sharp ridges: each octave is offset-|n|, squared and
// weighted by feedback from the previous octave, so detail piles up on the
// ridges and fades in the valleys.
//
// With one octave and offset 1 the output lies in [-1, 0.25].
type RidgedMulti struct {
	octaves
	offset  float64
	gain    float64
	weights [MaxOctaves]float64
}

var _ Module = (*RidgedMulti)(nil)

// NewRidgedMulti returns a RidgedMulti generator with frequency 1,
// lacunarity 2, 6 octaves, seed 0, Standard quality, offset 1 and gain 2.
func NewRidgedMulti(opts ...Option) (*RidgedMulti, error) {
	r := &RidgedMulti{
		octaves: defaultOctaves(),
		offset:  DefaultRidgedOffset,
		gain:    DefaultRidgedGain,
	}
	r.computeWeights()
	if err := Apply(r, opts...); err != nil {
		return nil, wrapf("NewRidgedMulti", err)
	}
	return r, nil
}

// SetLacunarity sets the frequency multiplier and recomputes the spectral
// weights.
func (r *RidgedMulti) SetLacunarity(l float64) {
	r.octaves.SetLacunarity(l)
	r.computeWeights()
}

// Offset returns the ridge offset.
func (r *RidgedMulti) Offset() float64 { return r.offset }

// SetOffset sets the ridge offset.
func (r *RidgedMulti) SetOffset(o float64) { r.offset = o; touch() }

// Gain returns the feedback gain.
func (r *RidgedMulti) Gain() float64 { return r.gain }

// SetGain sets the feedback gain.
func (r *RidgedMulti) SetGain(g float64) { r.gain = g; touch() }

// SpectralWeights returns a copy of the per-octave weights f_i^-1.
func (r *RidgedMulti) SpectralWeights() []float64 {
	out := make([]float64, MaxOctaves)
	copy(out, r.weights[:])
	return out
}

// computeWeights fills weights[i] = f_i^-1 with f_0 = 1, f_{i+1} = f_i·lacunarity.
func (r *RidgedMulti) computeWeights() {
	f := 1.0
	for i := range r.weights {
		r.weights[i] = math.Pow(f, -1.0)
		f *= r.lacunarity
	}
}

// SourceModules returns nil; RidgedMulti is a generator.
func (r *RidgedMulti) SourceModules() []Module { return nil }

// GetValue implements Module.
func (r *RidgedMulti) GetValue(x, y, z float64) (float64, error) {
	var (
		value  float64
		weight = 1.0
	)
	x *= r.frequency
	y *= r.frequency
	z *= r.frequency

	for o := 0; o < r.count; o++ {
		nx, ny, nz := fold(x, y, z)
		seed := (r.seed + int32(o)) & 0x7fffffff
		signal := noisegen.GradientCoherentNoise3D(nx, ny, nz, seed, r.quality)

		// Ridge, sharpen, then weight by the previous octave.
		signal = r.offset - math.Abs(signal)
		signal *= signal
		signal *= weight

		weight = signal * r.gain
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}

		value += signal * r.weights[o]

		x *= r.lacunarity
		y *= r.lacunarity
		z *= r.lacunarity
	}
	return value*1.25 - 1.0, nil
}
