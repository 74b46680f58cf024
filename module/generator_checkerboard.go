// SPDX-License-Identifier: MIT
// Package: lvnoise/module

package module

import "math"

// Checkerboard alternates between -1 and +1 on unit cubes.
type Checkerboard struct{}

var _ Module = (*Checkerboard)(nil)

// NewCheckerboard returns a Checkerboard generator.
func NewCheckerboard() *Checkerboard { return &Checkerboard{} }

// SourceModules returns nil.
func (*Checkerboard) SourceModules() []Module { return nil }

// GetValue returns -1 when the floored coordinates have odd parity, else +1.
func (*Checkerboard) GetValue(x, y, z float64) (float64, error) {
	fx, fy, fz := fold(x, y, z)
	ix := int32(math.Floor(fx))
	iy := int32(math.Floor(fy))
	iz := int32(math.Floor(fz))
	if (ix&1)^(iy&1)^(iz&1) != 0 {
		return -1.0, nil
	}
	return 1.0, nil
}
