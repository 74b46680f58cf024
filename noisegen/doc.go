// SPDX-License-Identifier: MIT
// Package: lvnoise/noisegen
//
// Package noisegen is the coherent-noise kernel: integer lattice hashing,
// gradient lookup, and trilinear evaluation of the eight corners of the unit
// cube that contains a point.
//
// Arithmetic contract:
//   - All lattice arithmetic is int32 with two's-complement wraparound.
//     Go defines signed overflow as wrapping, so the hash reproduces the
//     classic 32-bit behaviour without masking tricks.
//   - The lower lattice corner of x is int32(x) for x > 0 and int32(x)-1
//     otherwise. Inputs are expected to be folded into the int32-safe range
//     first (see MakeInt32Range).
//
// Output ranges:
//   - ValueNoise3D is in [-1, 1].
//   - ValueCoherentNoise3D is in [-1, 1].
//   - GradientCoherentNoise3D stays within about ±1.05 for the overwhelming
//     majority of inputs and never exceeds ±2.12·√3/2.
//
// Complexity quicksheet:
//   - IntValueNoise3D / ValueNoise3D / GradientNoise3D: O(1).
//   - *CoherentNoise3D: 8 corner samples + 7 linear blends.
package noisegen
