// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// combiner.go — binary arithmetic over two source modules.

package module

import "math"

// pair holds the two sources of a combiner.
type pair struct {
	a, b Module
}

// SourceA returns the first source.
func (p *pair) SourceA() Module { return p.a }

// SourceB returns the second source.
func (p *pair) SourceB() Module { return p.b }

// SetSourceA replaces the first source; nil is rejected.
func (p *pair) SetSourceA(m Module) error {
	if isNil(m) {
		return wrapf("SetSourceA", ErrMissingSourceModule)
	}
	p.a = m
	touch()
	return nil
}

// SetSourceB replaces the second source; nil is rejected.
func (p *pair) SetSourceB(m Module) error {
	if isNil(m) {
		return wrapf("SetSourceB", ErrMissingSourceModule)
	}
	p.b = m
	touch()
	return nil
}

// SourceModules returns [A, B].
func (p *pair) SourceModules() []Module { return []Module{p.a, p.b} }

// eval evaluates both sources at the same point.
func (p *pair) eval(method string, x, y, z float64) (float64, float64, error) {
	if err := requireSources(method, p.a, p.b); err != nil {
		return 0, 0, err
	}
	a, err := p.a.GetValue(x, y, z)
	if err != nil {
		return 0, 0, err
	}
	b, err := p.b.GetValue(x, y, z)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func newPair(method string, a, b Module) (pair, error) {
	if err := requireSources(method, a, b); err != nil {
		return pair{}, err
	}
	return pair{a: a, b: b}, nil
}

// Add outputs A + B.
type Add struct{ pair }

// NewAdd returns A + B.
func NewAdd(a, b Module) (*Add, error) {
	p, err := newPair("NewAdd", a, b)
	if err != nil {
		return nil, err
	}
	return &Add{p}, nil
}

// GetValue implements Module.
func (m *Add) GetValue(x, y, z float64) (float64, error) {
	a, b, err := m.eval("Add.GetValue", x, y, z)
	return a + b, err
}

// Max outputs max(A, B).
type Max struct{ pair }

// NewMax returns max(A, B).
func NewMax(a, b Module) (*Max, error) {
	p, err := newPair("NewMax", a, b)
	if err != nil {
		return nil, err
	}
	return &Max{p}, nil
}

// GetValue implements Module.
func (m *Max) GetValue(x, y, z float64) (float64, error) {
	a, b, err := m.eval("Max.GetValue", x, y, z)
	return math.Max(a, b), err
}

// Min outputs min(A, B).
type Min struct{ pair }

// NewMin returns min(A, B).
func NewMin(a, b Module) (*Min, error) {
	p, err := newPair("NewMin", a, b)
	if err != nil {
		return nil, err
	}
	return &Min{p}, nil
}

// GetValue implements Module.
func (m *Min) GetValue(x, y, z float64) (float64, error) {
	a, b, err := m.eval("Min.GetValue", x, y, z)
	return math.Min(a, b), err
}

// Multiply outputs A * B.
type Multiply struct{ pair }

// NewMultiply returns A * B.
func NewMultiply(a, b Module) (*Multiply, error) {
	p, err := newPair("NewMultiply", a, b)
	if err != nil {
		return nil, err
	}
	return &Multiply{p}, nil
}

// GetValue implements Module.
func (m *Multiply) GetValue(x, y, z float64) (float64, error) {
	a, b, err := m.eval("Multiply.GetValue", x, y, z)
	return a * b, err
}

// Power outputs A raised to B. Negative bases with fractional exponents give
// NaN, as math.Pow does.
type Power struct{ pair }

// NewPower returns A^B.
func NewPower(a, b Module) (*Power, error) {
	p, err := newPair("NewPower", a, b)
	if err != nil {
		return nil, err
	}
	return &Power{p}, nil
}

// GetValue implements Module.
func (m *Power) GetValue(x, y, z float64) (float64, error) {
	a, b, err := m.eval("Power.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}
	return math.Pow(a, b), nil
}

var (
	_ Module = (*Add)(nil)
	_ Module = (*Max)(nil)
	_ Module = (*Min)(nil)
	_ Module = (*Multiply)(nil)
	_ Module = (*Power)(nil)
)
