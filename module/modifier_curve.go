// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// modifier_curve.go — remap source values through a cubic spline.

package module

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvnoise/interp"
)

// MinCurvePoints is the number of control points a Curve needs to evaluate.
const MinCurvePoints = 4

// ControlPoint maps an input value onto an output value.
type ControlPoint struct {
	Input  float64
	Output float64
}

// Curve remaps the source through a cubic spline defined by control points
// kept sorted by input. Source values outside the control range take the
// output of the nearest end point.
type Curve struct {
	single
	points []ControlPoint
}

var _ Module = (*Curve)(nil)

// NewCurve returns a Curve with no control points. At least MinCurvePoints
// must be added before GetValue succeeds.
func NewCurve(src Module, points ...ControlPoint) (*Curve, error) {
	s, err := newSingle("NewCurve", src)
	if err != nil {
		return nil, err
	}
	c := &Curve{single: s}
	for _, p := range points {
		if err = c.AddControlPoint(p.Input, p.Output); err != nil {
			return nil, wrapf("NewCurve", err)
		}
	}
	return c, nil
}

// AddControlPoint inserts (input, output) keeping the points sorted.
// An existing point with the same input yields ErrDuplicateControlPoint.
func (c *Curve) AddControlPoint(input, output float64) error {
	if err := checkFinite("Curve.AddControlPoint", input, output); err != nil {
		return err
	}
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].Input >= input })
	if i < len(c.points) && c.points[i].Input == input {
		return fmt.Errorf("Curve.AddControlPoint(%g): %w", input, ErrDuplicateControlPoint)
	}
	c.points = append(c.points, ControlPoint{})
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = ControlPoint{Input: input, Output: output}
	touch()
	return nil
}

// ControlPoints returns a copy of the control points in input order.
func (c *Curve) ControlPoints() []ControlPoint {
	return append([]ControlPoint(nil), c.points...)
}

// ClearControlPoints removes every control point.
func (c *Curve) ClearControlPoints() {
	c.points = nil
	touch()
}

// GetValue implements Module.
func (c *Curve) GetValue(x, y, z float64) (float64, error) {
	// 1) Preconditions.
	if len(c.points) < MinCurvePoints {
		return 0, fmt.Errorf("Curve.GetValue: %d points: %w", len(c.points), ErrInsufficientControlPoints)
	}
	v, err := c.eval("Curve.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}

	// 2) First point whose input exceeds the source value.
	n := len(c.points)
	pos := sort.Search(n, func(i int) bool { return c.points[i].Input > v })

	// 3) Four neighbours, clamped to the ends.
	i0 := clampIndex(pos-2, n)
	i1 := clampIndex(pos-1, n)
	i2 := clampIndex(pos, n)
	i3 := clampIndex(pos+1, n)

	// Outside the range the spline collapses onto an end point.
	if i1 == i2 {
		return c.points[i1].Output, nil
	}

	// 4) Cubic spline between points i1 and i2.
	in0, in1 := c.points[i1].Input, c.points[i2].Input
	alpha := (v - in0) / (in1 - in0)
	return interp.Cubic(
		c.points[i0].Output, c.points[i1].Output,
		c.points[i2].Output, c.points[i3].Output, alpha), nil
}

// clampIndex limits i to [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
