// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// modifier.go — single-source value modifiers: Abs, Invert, ScaleBias, Exponent.

package module

import "math"

// single holds the source of a one-input module.
type single struct {
	source Module
}

// Source returns the input module.
func (s *single) Source() Module { return s.source }

// SetSource replaces the input module; nil is rejected.
func (s *single) SetSource(m Module) error {
	if isNil(m) {
		return wrapf("SetSource", ErrMissingSourceModule)
	}
	s.source = m
	touch()
	return nil
}

// SourceModules returns [source].
func (s *single) SourceModules() []Module { return []Module{s.source} }

// eval evaluates the source at (x, y, z).
func (s *single) eval(method string, x, y, z float64) (float64, error) {
	if err := requireSources(method, s.source); err != nil {
		return 0, err
	}
	return s.source.GetValue(x, y, z)
}

func newSingle(method string, src Module) (single, error) {
	if err := requireSources(method, src); err != nil {
		return single{}, err
	}
	return single{source: src}, nil
}

// Abs outputs |source|.
type Abs struct{ single }

// NewAbs returns |src|.
func NewAbs(src Module) (*Abs, error) {
	s, err := newSingle("NewAbs", src)
	if err != nil {
		return nil, err
	}
	return &Abs{s}, nil
}

// GetValue implements Module.
func (m *Abs) GetValue(x, y, z float64) (float64, error) {
	v, err := m.eval("Abs.GetValue", x, y, z)
	return math.Abs(v), err
}

// Invert outputs -source.
type Invert struct{ single }

// NewInvert returns -src.
func NewInvert(src Module) (*Invert, error) {
	s, err := newSingle("NewInvert", src)
	if err != nil {
		return nil, err
	}
	return &Invert{s}, nil
}

// GetValue implements Module.
func (m *Invert) GetValue(x, y, z float64) (float64, error) {
	v, err := m.eval("Invert.GetValue", x, y, z)
	return -v, err
}

// ScaleBias defaults.
const (
	DefaultScale = 1.0
	DefaultBias  = 0.0
)

// ScaleBias outputs source*scale + bias.
type ScaleBias struct {
	single
	scale float64
	bias  float64
}

// NewScaleBias returns src*1 + 0, then applies opts.
func NewScaleBias(src Module, opts ...Option) (*ScaleBias, error) {
	s, err := newSingle("NewScaleBias", src)
	if err != nil {
		return nil, err
	}
	m := &ScaleBias{single: s, scale: DefaultScale, bias: DefaultBias}
	if err = Apply(m, opts...); err != nil {
		return nil, wrapf("NewScaleBias", err)
	}
	return m, nil
}

// Scale returns the multiplier.
func (m *ScaleBias) Scale() float64 { return m.scale }

// SetScale sets the multiplier.
func (m *ScaleBias) SetScale(k float64) { m.scale = k; touch() }

// Bias returns the additive term.
func (m *ScaleBias) Bias() float64 { return m.bias }

// SetBias sets the additive term.
func (m *ScaleBias) SetBias(b float64) { m.bias = b; touch() }

// GetValue implements Module.
func (m *ScaleBias) GetValue(x, y, z float64) (float64, error) {
	v, err := m.eval("ScaleBias.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}
	return v*m.scale + m.bias, nil
}

// DefaultExponent leaves the source unchanged.
const DefaultExponent = 1.0

// Exponent maps the source from [-1, 1] to [0, 1], raises it to the
// exponent and maps it back: pow(|(v+1)/2|, e)*2 - 1.
type Exponent struct {
	single
	exponent float64
}

// NewExponent returns an Exponent with exponent 1, then applies opts.
func NewExponent(src Module, opts ...Option) (*Exponent, error) {
	s, err := newSingle("NewExponent", src)
	if err != nil {
		return nil, err
	}
	m := &Exponent{single: s, exponent: DefaultExponent}
	if err = Apply(m, opts...); err != nil {
		return nil, wrapf("NewExponent", err)
	}
	return m, nil
}

// Exponent returns the exponent.
func (m *Exponent) Exponent() float64 { return m.exponent }

// SetExponent sets the exponent.
func (m *Exponent) SetExponent(e float64) { m.exponent = e; touch() }

// GetValue implements Module.
func (m *Exponent) GetValue(x, y, z float64) (float64, error) {
	v, err := m.eval("Exponent.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}
	return math.Pow(math.Abs((v+1.0)/2.0), m.exponent)*2.0 - 1.0, nil
}

var (
	_ Module = (*Abs)(nil)
	_ Module = (*Invert)(nil)
	_ Module = (*ScaleBias)(nil)
	_ Module = (*Exponent)(nil)
)
