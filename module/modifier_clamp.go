// SPDX-License-Identifier: MIT
// Package: lvnoise/module

package module

import "fmt"

// Default bounds for Clamp and Select.
const (
	DefaultLowerBound = -1.0
	DefaultUpperBound = 1.0
)

// bounds keeps lower <= upper across every assignment.
type bounds struct {
	lower, upper float64
}

// LowerBound returns the lower bound.
func (b *bounds) LowerBound() float64 { return b.lower }

// UpperBound returns the upper bound.
func (b *bounds) UpperBound() float64 { return b.upper }

func (b *bounds) set(method string, lower, upper float64) error {
	if err := checkFinite(method, lower, upper); err != nil {
		return err
	}
	if lower > upper {
		return fmt.Errorf("%s(%g, %g): %w", method, lower, upper, ErrInvalidBounds)
	}
	b.lower, b.upper = lower, upper
	touch()
	return nil
}

// Clamp limits the source to [lower, upper]. Defaults -1 and 1.
type Clamp struct {
	single
	bounds
}

var _ Module = (*Clamp)(nil)

// NewClamp returns a Clamp with bounds [-1, 1], then applies opts.
func NewClamp(src Module, opts ...Option) (*Clamp, error) {
	s, err := newSingle("NewClamp", src)
	if err != nil {
		return nil, err
	}
	c := &Clamp{single: s, bounds: bounds{DefaultLowerBound, DefaultUpperBound}}
	if err = Apply(c, opts...); err != nil {
		return nil, wrapf("NewClamp", err)
	}
	return c, nil
}

// SetBounds sets both bounds at once; lower must not exceed upper.
func (c *Clamp) SetBounds(lower, upper float64) error {
	return c.set("Clamp.SetBounds", lower, upper)
}

// SetLowerBound changes only the lower bound; it must not exceed the
// current upper bound.
func (c *Clamp) SetLowerBound(lower float64) error {
	return c.set("Clamp.SetLowerBound", lower, c.upper)
}

// SetUpperBound changes only the upper bound; it must not be below the
// current lower bound.
func (c *Clamp) SetUpperBound(upper float64) error {
	return c.set("Clamp.SetUpperBound", c.lower, upper)
}

// GetValue implements Module.
func (c *Clamp) GetValue(x, y, z float64) (float64, error) {
	v, err := c.eval("Clamp.GetValue", x, y, z)
	if err != nil {
		return 0, err
	}
	switch {
	case v < c.lower:
		return c.lower, nil
	case v > c.upper:
		return c.upper, nil
	default:
		return v, nil
	}
}
