// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// transformer_rotate.go — rotate the sample point about the origin.

package module

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotatePoint rotates the sample point by x, y and z angles in degrees
// before evaluating its source. The rotation matrix is rebuilt whenever an
// angle changes.
type RotatePoint struct {
	single
	ax, ay, az float64
	m          mgl64.Mat3
}

var _ Module = (*RotatePoint)(nil)

// NewRotatePoint returns a RotatePoint with zero angles, then applies opts.
func NewRotatePoint(src Module, opts ...Option) (*RotatePoint, error) {
	s, err := newSingle("NewRotatePoint", src)
	if err != nil {
		return nil, err
	}
	r := &RotatePoint{single: s}
	r.SetAngles(0, 0, 0)
	if err = Apply(r, opts...); err != nil {
		return nil, wrapf("NewRotatePoint", err)
	}
	return r, nil
}

// Angles returns the x, y and z rotation angles in degrees.
func (r *RotatePoint) Angles() (float64, float64, float64) { return r.ax, r.ay, r.az }

// SetAngles sets all three rotation angles in degrees.
func (r *RotatePoint) SetAngles(x, y, z float64) {
	sx, cx := math.Sincos(mgl64.DegToRad(x))
	sy, cy := math.Sincos(mgl64.DegToRad(y))
	sz, cz := math.Sincos(mgl64.DegToRad(z))

	r.m = mgl64.Mat3FromRows(
		mgl64.Vec3{sy*sx*sz + cy*cz, cx * sz, sy*cz - cy*sx*sz},
		mgl64.Vec3{sy*sx*cz - cy*sz, cx * cz, -cy*sx*cz - sy*sz},
		mgl64.Vec3{-sy * cx, sx, cy * cx},
	)
	r.ax, r.ay, r.az = x, y, z
	touch()
}

// SetXAngle sets the x rotation angle in degrees.
func (r *RotatePoint) SetXAngle(a float64) { r.SetAngles(a, r.ay, r.az) }

// SetYAngle sets the y rotation angle in degrees.
func (r *RotatePoint) SetYAngle(a float64) { r.SetAngles(r.ax, a, r.az) }

// SetZAngle sets the z rotation angle in degrees.
func (r *RotatePoint) SetZAngle(a float64) { r.SetAngles(r.ax, r.ay, a) }

// Matrix returns the current rotation matrix.
func (r *RotatePoint) Matrix() mgl64.Mat3 { return r.m }

// GetValue implements Module.
func (r *RotatePoint) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("RotatePoint.GetValue", r.source); err != nil {
		return 0, err
	}
	p := r.m.Mul3x1(mgl64.Vec3{x, y, z})
	return r.source.GetValue(p[0], p[1], p[2])
}
