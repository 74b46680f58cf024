// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// modifier_terrace.go — terrace-forming curve.

package module

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvnoise/interp"
)

// MinTerracePoints is the number of control points a Terrace needs.
const MinTerracePoints = 2

// Terrace maps the source onto a stepped curve. Between two adjacent control
// values the curve rises slowly and then steeply (or the reverse when
// inverted), which gives flat terraces with steep risers.
type Terrace struct {
	single
	points   []float64
	inverted bool
}

var _ Module = (*Terrace)(nil)

// NewTerrace returns a Terrace seeded with values, then applies opts.
func NewTerrace(src Module, values []float64, opts ...Option) (*Terrace, error) {
	s, err := newSingle("NewTerrace", src)
	if err != nil {
		return nil, err
	}
	t := &Terrace{single: s}
	for _, v := range values {
		if err = t.AddControlPoint(v); err != nil {
			return nil, wrapf("NewTerrace", err)
		}
	}
	if err = Apply(t, opts...); err != nil {
		return nil, wrapf("NewTerrace", err)
	}
	return t, nil
}

// AddControlPoint inserts v keeping the points sorted ascending.
func (t *Terrace) AddControlPoint(v float64) error {
	if err := checkFinite("Terrace.AddControlPoint", v); err != nil {
		return err
	}
	i := sort.SearchFloat64s(t.points, v)
	if i < len(t.points) && t.points[i] == v {
		return fmt.Errorf("Terrace.AddControlPoint(%g): %w", v, ErrDuplicateControlPoint)
	}
	t.points = append(t.points, 0)
	copy(t.points[i+1:], t.points[i:])
	t.points[i] = v
	touch()
	return nil
}

// MakeControlPoints replaces the control points with n values spaced evenly
// across [-1, 1]. n must be at least MinTerracePoints.
func (t *Terrace) MakeControlPoints(n int) error {
	if n < MinTerracePoints {
		return fmt.Errorf("Terrace.MakeControlPoints(%d): %w", n, ErrInvalidParameter)
	}
	step := 2.0 / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = -1.0 + float64(i)*step
	}
	t.points = pts
	touch()
	return nil
}

// ControlPoints returns a copy of the control values in ascending order.
func (t *Terrace) ControlPoints() []float64 {
	return append([]float64(nil), t.points...)
}

// ClearControlPoints removes every control point.
func (t *Terrace) ClearControlPoints() {
	t.points = nil
	touch()
}

// Inverted reports whether the terrace curve is inverted.
func (t *Terrace) Inverted() bool { return t.inverted }

// SetInverted toggles the inversion of the terrace curve.
func (t *Terrace) SetInverted(on bool) { t.inverted = on; touch() }

// GetValue implements Module.
func (t *Terrace) GetValue(x, y, z float64) (float64, error) {
	if len(t.points) < MinTerracePoints {
		return 0, fmt.Errorf("Terrace.GetValue: %d points: %w", len(t.points), ErrInsufficientControlPoints)
	}
	v, err := t.eval("Terrace.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}

	// Bracket the source value.
	n := len(t.points)
	pos := sort.Search(n, func(i int) bool { return t.points[i] > v })
	i0 := clampIndex(pos-1, n)
	i1 := clampIndex(pos, n)
	if i0 == i1 {
		return t.points[i1], nil
	}

	v0, v1 := t.points[i0], t.points[i1]
	alpha := (v - v0) / (v1 - v0)
	if t.inverted {
		alpha = 1.0 - alpha
		v0, v1 = v1, v0
	}
	alpha *= alpha

	return interp.Linear(v0, v1, alpha), nil
}
