// SPDX-License-Identifier: MIT
// Package: lvnoise/interp
//
// Package interp provides the scalar interpolation and easing primitives
// shared by the noise kernel, the modifiers, and the selectors.
//
// All functions are pure, allocation-free, and defined for any real alpha;
// callers are expected to pass alpha in [0,1] but values outside that range
// extrapolate rather than fail.
//
// Complexity quicksheet:
//   - Linear, Cubic, CubicSCurve, QuinticSCurve: O(1).
package interp
