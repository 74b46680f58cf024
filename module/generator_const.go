// SPDX-License-Identifier: MIT
// Package: lvnoise/module

package module

// Const outputs the same value everywhere. Default 0.
type Const struct {
	value float64
}

var _ Module = (*Const)(nil)

// NewConst returns a Const module with value 0, then applies opts.
func NewConst(opts ...Option) (*Const, error) {
	c := &Const{}
	if err := Apply(c, opts...); err != nil {
		return nil, wrapf("NewConst", err)
	}
	return c, nil
}

// ConstValue is shorthand for a Const fixed at v.
func ConstValue(v float64) *Const { return &Const{value: v} }

// Value returns the constant output.
func (c *Const) Value() float64 { return c.value }

// SetValue sets the constant output.
func (c *Const) SetValue(v float64) { c.value = v; touch() }

// SourceModules returns nil.
func (c *Const) SourceModules() []Module { return nil }

// GetValue implements Module.
func (c *Const) GetValue(_, _, _ float64) (float64, error) { return c.value, nil }
