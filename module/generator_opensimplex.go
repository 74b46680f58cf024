// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_opensimplex.go — OpenSimplex noise as a module.

package module

import (
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex wraps an OpenSimplex noise source. Use NewOpenSimplex; the
// zero value has no permutation tables and fails with ErrInvalidParameter.
// Output is in about [-1, 1]
// and has fewer axis-aligned artefacts than gradient lattice noise.
type OpenSimplex struct {
	frequency float64
	seed      int32
	noise     opensimplex.Noise
}

var _ Module = (*OpenSimplex)(nil)

// NewOpenSimplex returns an OpenSimplex generator with frequency 1 and seed 0.
func NewOpenSimplex(opts ...Option) (*OpenSimplex, error) {
	o := &OpenSimplex{frequency: DefaultFrequency}
	o.SetSeed(DefaultSeed)
	if err := Apply(o, opts...); err != nil {
		return nil, wrapf("NewOpenSimplex", err)
	}
	return o, nil
}

// Frequency returns the input scale.
func (o *OpenSimplex) Frequency() float64 { return o.frequency }

// SetFrequency sets the input scale.
func (o *OpenSimplex) SetFrequency(f float64) { o.frequency = f; touch() }

// Seed returns the permutation seed.
func (o *OpenSimplex) Seed() int32 { return o.seed }

// SetSeed rebuilds the permutation tables for seed.
func (o *OpenSimplex) SetSeed(seed int32) {
	o.seed = seed
	o.noise = opensimplex.New(int64(seed))
	touch()
}

// SourceModules returns nil.
func (o *OpenSimplex) SourceModules() []Module { return nil }

// GetValue implements Module.
func (o *OpenSimplex) GetValue(x, y, z float64) (float64, error) {
	if o.noise == nil {
		return 0, wrapf("OpenSimplex.GetValue", ErrInvalidParameter)
	}
	return o.noise.Eval3(x*o.frequency, y*o.frequency, z*o.frequency), nil
}
