// SPDX-License-Identifier: MIT
// Package: lvnoise/noisegen
//
// noisegen.go — lattice hashing and coherent noise evaluation.

package noisegen

import (
	"math"

	"github.com/katalvlaran/lvnoise/interp"
)

// Lattice hash multipliers. They are coprime and chosen to spread
// neighbouring lattice points across the hash space.
const (
	XNoiseGen     int32 = 1619
	YNoiseGen     int32 = 31337
	ZNoiseGen     int32 = 6971
	SeedNoiseGen  int32 = 1013
	ShiftNoiseGen       = 8
)

// int32Half is 2^30, the folding modulus used by MakeInt32Range.
const int32Half = 1073741824.0

// gradientScale maps the dot product of a unit gradient and an offset inside
// the unit cube onto roughly [-1, 1].
const gradientScale = 2.12

// CornerFunc samples the lattice point (ix, iy, iz). CoherentNoise3D calls
// it for all eight corners of the unit cube around the input point.
type CornerFunc func(ix, iy, iz int32) float64

// MakeInt32Range folds n into the open interval (-2^30, 2^30) so that
// later conversion to int32 lattice coordinates cannot overflow.
// Values already inside the interval are returned unchanged.
func MakeInt32Range(n float64) float64 {
	switch {
	case n >= int32Half:
		return 2.0*math.Mod(n, int32Half) - int32Half
	case n <= -int32Half:
		return 2.0*math.Mod(n, int32Half) + int32Half
	default:
		return n
	}
}

// IntValueNoise3D hashes a lattice point and seed into [0, 2^31).
func IntValueNoise3D(x, y, z, seed int32) int32 {
	n := (XNoiseGen*x + YNoiseGen*y + ZNoiseGen*z + SeedNoiseGen*seed) & 0x7fffffff
	n = (n >> 13) ^ n

	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D maps IntValueNoise3D onto [-1, 1].
func ValueNoise3D(x, y, z, seed int32) float64 {
	return 1.0 - float64(IntValueNoise3D(x, y, z, seed))/int32Half
}

// GradientNoise3D returns the scaled dot product of the pseudo-random
// gradient attached to lattice point (ix, iy, iz) and the offset from that
// point to (fx, fy, fz).
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	i := XNoiseGen*ix + YNoiseGen*iy + ZNoiseGen*iz + SeedNoiseGen*seed
	i ^= i >> ShiftNoiseGen
	i &= 0xff

	g := &randomVectors[i]
	dx := fx - float64(ix)
	dy := fy - float64(iy)
	dz := fz - float64(iz)

	return (g[0]*dx + g[1]*dy + g[2]*dz) * gradientScale
}

// CoherentNoise3D locates the unit cube containing (x, y, z), eases the
// fractional offsets with the curve selected by q, samples the eight
// corners through corner and blends them trilinearly.
//
// Errors:
//   - ErrNilCornerFunc if corner is nil.
//   - ErrUnknownQuality if q is not Fast, Standard or Best.
func CoherentNoise3D(x, y, z float64, q Quality, corner CornerFunc) (float64, error) {
	if corner == nil {
		return 0, ErrNilCornerFunc
	}
	if !q.Valid() {
		return 0, ErrUnknownQuality
	}
	return coherent(x, y, z, q, corner), nil
}

// ValueCoherentNoise3D is coherent noise built from ValueNoise3D corners.
func ValueCoherentNoise3D(x, y, z float64, seed int32, q Quality) float64 {
	return coherent(x, y, z, q, func(ix, iy, iz int32) float64 {
		return ValueNoise3D(ix, iy, iz, seed)
	})
}

// GradientCoherentNoise3D is coherent noise built from GradientNoise3D
// corners. This is the basis of the Perlin family of generators.
func GradientCoherentNoise3D(x, y, z float64, seed int32, q Quality) float64 {
	return coherent(x, y, z, q, func(ix, iy, iz int32) float64 {
		return GradientNoise3D(x, y, z, ix, iy, iz, seed)
	})
}

// lowerCorner returns the lattice coordinate at or below v.
func lowerCorner(v float64) int32 {
	if v > 0 {
		return int32(v)
	}
	return int32(v) - 1
}

func coherent(x, y, z float64, q Quality, corner CornerFunc) float64 {
	// 1) Unit cube that contains the point.
	x0, y0, z0 := lowerCorner(x), lowerCorner(y), lowerCorner(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	// 2) Eased interpolation weights.
	xs := q.ease(x - float64(x0))
	ys := q.ease(y - float64(y0))
	zs := q.ease(z - float64(z0))

	// 3) Blend along x on four edges, along y on two faces, then along z.
	ix0 := interp.Linear(corner(x0, y0, z0), corner(x1, y0, z0), xs)
	ix1 := interp.Linear(corner(x0, y1, z0), corner(x1, y1, z0), xs)
	iy0 := interp.Linear(ix0, ix1, ys)

	ix0 = interp.Linear(corner(x0, y0, z1), corner(x1, y0, z1), xs)
	ix1 = interp.Linear(corner(x0, y1, z1), corner(x1, y1, z1), xs)
	iy1 := interp.Linear(ix0, ix1, ys)

	return interp.Linear(iy0, iy1, zs)
}
