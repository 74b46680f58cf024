// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_voronoi.go — cellular noise.

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/noisegen"
)

// Voronoi defaults.
const (
	DefaultVoronoiFrequency    = 1.0
	DefaultVoronoiDisplacement = 1.0
)

// sqrt3 scales the nearest-seed distance so the distance term spans ~[-1, 1].
var sqrt3 = math.Sqrt(3)

// Voronoi divides space into cells around pseudo-random seed points, one
// jittered point per unit cube. Every point in a cell gets that cell's
// value, a pseudo-random number in [-displacement, displacement].
// When the distance term is enabled, the distance to the seed point is added.
type Voronoi struct {
	frequency    float64
	displacement float64
	distance     bool
	seed         int32
}

var _ Module = (*Voronoi)(nil)

// NewVoronoi returns a Voronoi generator with frequency 1, displacement 1,
// distance disabled and seed 0.
func NewVoronoi(opts ...Option) (*Voronoi, error) {
	v := &Voronoi{
		frequency:    DefaultVoronoiFrequency,
		displacement: DefaultVoronoiDisplacement,
		seed:         DefaultSeed,
	}
	if err := Apply(v, opts...); err != nil {
		return nil, wrapf("NewVoronoi", err)
	}
	return v, nil
}

// Frequency returns the number of cells per unit.
func (v *Voronoi) Frequency() float64 { return v.frequency }

// SetFrequency sets the number of cells per unit.
func (v *Voronoi) SetFrequency(f float64) { v.frequency = f; touch() }

// Displacement returns the cell value range.
func (v *Voronoi) Displacement() float64 { return v.displacement }

// SetDisplacement sets the cell value range.
func (v *Voronoi) SetDisplacement(d float64) { v.displacement = d; touch() }

// DistanceEnabled reports whether the distance term is added.
func (v *Voronoi) DistanceEnabled() bool { return v.distance }

// EnableDistance toggles the distance term.
func (v *Voronoi) EnableDistance(on bool) { v.distance = on; touch() }

// Seed returns the seed used to place cell points.
func (v *Voronoi) Seed() int32 { return v.seed }

// SetSeed sets the seed used to place cell points.
func (v *Voronoi) SetSeed(s int32) { v.seed = s; touch() }

// SourceModules returns nil.
func (v *Voronoi) SourceModules() []Module { return nil }

// GetValue implements Module. Scaled coordinates are folded into int32 range
// before the cell search, as the gradient generators do.
func (v *Voronoi) GetValue(x, y, z float64) (float64, error) {
	x = noisegen.MakeInt32Range(x * v.frequency)
	y = noisegen.MakeInt32Range(y * v.frequency)
	z = noisegen.MakeInt32Range(z * v.frequency)

	xi, yi, zi := lowerLattice(x), lowerLattice(y), lowerLattice(z)

	// 1) Nearest jittered seed point in the 5x5x5 neighbourhood.
	minDist := math.MaxInt32 * 1.0
	var cx, cy, cz float64
	for zc := zi - 2; zc <= zi+2; zc++ {
		for yc := yi - 2; yc <= yi+2; yc++ {
			for xc := xi - 2; xc <= xi+2; xc++ {
				ix, iy, iz := int32(xc), int32(yc), int32(zc)
				px := float64(xc) + noisegen.ValueNoise3D(ix, iy, iz, v.seed)
				py := float64(yc) + noisegen.ValueNoise3D(ix, iy, iz, v.seed+1)
				pz := float64(zc) + noisegen.ValueNoise3D(ix, iy, iz, v.seed+2)
				dx, dy, dz := px-x, py-y, pz-z
				if d := dx*dx + dy*dy + dz*dz; d < minDist {
					minDist = d
					cx, cy, cz = px, py, pz
				}
			}
		}
	}

	// 2) Optional distance term.
	var value float64
	if v.distance {
		dx, dy, dz := cx-x, cy-y, cz-z
		value = math.Sqrt(dx*dx+dy*dy+dz*dz)*sqrt3 - 1.0
	}

	// 3) Cell value.
	cell := noisegen.ValueNoise3D(
		int32(math.Floor(cx)), int32(math.Floor(cy)), int32(math.Floor(cz)), 0)
	return value + v.displacement*cell, nil
}

// lowerLattice returns the lattice coordinate below v: trunc(v) for v > 0
// and trunc(v)-1 otherwise. The loop counters built on it are plain ints so
// the ±2 neighbourhood can never wrap.
func lowerLattice(v float64) int {
	if v > 0 {
		return int(int32(v))
	}
	return int(int32(v)) - 1
}
