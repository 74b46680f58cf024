// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// selector.go — Blend and Select: choose between two sources by a control module.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/interp"
)

// triple holds two sources and a control module.
type triple struct {
	pair
	control Module
}

// Control returns the control module.
func (t *triple) Control() Module { return t.control }

// SetControl replaces the control module; nil is rejected.
func (t *triple) SetControl(m Module) error {
	if isNil(m) {
		return wrapf("SetControl", ErrMissingSourceModule)
	}
	t.control = m
	touch()
	return nil
}

// SourceModules returns [A, B, control].
func (t *triple) SourceModules() []Module { return []Module{t.a, t.b, t.control} }

func newTriple(method string, a, b, control Module) (triple, error) {
	if err := requireSources(method, a, b, control); err != nil {
		return triple{}, err
	}
	return triple{pair: pair{a: a, b: b}, control: control}, nil
}

// Blend mixes A and B with weight (control+1)/2: control -1 gives A,
// control +1 gives B.
type Blend struct{ triple }

var _ Module = (*Blend)(nil)

// NewBlend returns a Blend of a and b driven by control.
func NewBlend(a, b, control Module) (*Blend, error) {
	t, err := newTriple("NewBlend", a, b, control)
	if err != nil {
		return nil, err
	}
	return &Blend{t}, nil
}

// GetValue implements Module.
func (m *Blend) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("Blend.GetValue", m.a, m.b, m.control); err != nil {
		return 0, err
	}
	a, err := m.a.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	b, err := m.b.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	c, err := m.control.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	return interp.Linear(a, b, (c+1.0)/2.0), nil
}

// Select outputs B where the control lies inside [lower, upper] and A
// elsewhere. A non-zero edge falloff smooths the two transitions with a
// cubic S-curve over [bound-falloff, bound+falloff].
type Select struct {
	triple
	bounds
	falloff float64
}

var _ Module = (*Select)(nil)

// NewSelect returns a Select with bounds [-1, 1] and no falloff, then
// applies opts. Apply WithBounds before WithEdgeFalloff, as the falloff is
// capped at half the bound range.
func NewSelect(a, b, control Module, opts ...Option) (*Select, error) {
	t, err := newTriple("NewSelect", a, b, control)
	if err != nil {
		return nil, err
	}
	s := &Select{triple: t, bounds: bounds{DefaultLowerBound, DefaultUpperBound}}
	if err = Apply(s, opts...); err != nil {
		return nil, wrapf("NewSelect", err)
	}
	return s, nil
}

// SetBounds sets both bounds at once and re-caps the falloff.
func (s *Select) SetBounds(lower, upper float64) error {
	if err := s.set("Select.SetBounds", lower, upper); err != nil {
		return err
	}
	s.capFalloff()
	return nil
}

// SetLowerBound changes only the lower bound.
func (s *Select) SetLowerBound(lower float64) error {
	return s.SetBounds(lower, s.upper)
}

// SetUpperBound changes only the upper bound.
func (s *Select) SetUpperBound(upper float64) error {
	return s.SetBounds(s.lower, upper)
}

// EdgeFalloff returns the transition half-width.
func (s *Select) EdgeFalloff() float64 { return s.falloff }

// SetEdgeFalloff sets the transition half-width. Negative and non-finite
// values are rejected; values above half the bound range are capped.
func (s *Select) SetEdgeFalloff(e float64) error {
	if err := checkFinite("Select.SetEdgeFalloff", e); err != nil {
		return err
	}
	if e < 0 {
		return fmt.Errorf("Select.SetEdgeFalloff(%g): %w", e, ErrInvalidParameter)
	}
	s.falloff = e
	s.capFalloff()
	touch()
	return nil
}

func (s *Select) capFalloff() {
	if half := (s.upper - s.lower) / 2.0; s.falloff > half {
		s.falloff = half
	}
}

// GetValue implements Module. Only the sources needed at the point are
// evaluated.
func (s *Select) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("Select.GetValue", s.a, s.b, s.control); err != nil {
		return 0, err
	}
	c, err := s.control.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}

	e := s.falloff
	if e <= 0 {
		if c < s.lower || c > s.upper {
			return s.a.GetValue(x, y, z)
		}
		return s.b.GetValue(x, y, z)
	}

	switch {
	case c < s.lower-e:
		return s.a.GetValue(x, y, z)
	case c < s.lower+e:
		return s.blend(s.a, s.b, c, s.lower-e, s.lower+e, x, y, z)
	case c < s.upper-e:
		return s.b.GetValue(x, y, z)
	case c < s.upper+e:
		return s.blend(s.b, s.a, c, s.upper-e, s.upper+e, x, y, z)
	default:
		return s.a.GetValue(x, y, z)
	}
}

// blend eases from -> to as c moves across [lo, hi].
func (s *Select) blend(from, to Module, c, lo, hi, x, y, z float64) (float64, error) {
	v0, err := from.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	v1, err := to.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	alpha := interp.CubicSCurve((c - lo) / (hi - lo))
	return interp.Linear(v0, v1, alpha), nil
}
