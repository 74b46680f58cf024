// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// generator_shells.go — concentric cylinders and spheres.

package module

import "math"

// Defaults for the shell generators.
const (
	DefaultCylindersFrequency = 1.0
	DefaultSpheresFrequency   = 4.0
)

// shellValue maps a distance from the origin onto a triangle wave that is
// +1 on each shell and -1 halfway between shells.
func shellValue(dist float64) float64 {
	inner := dist - math.Floor(dist)
	outer := 1.0 - inner
	return 1.0 - math.Min(inner, outer)*4.0
}

// Cylinders outputs concentric cylinders centred on the y axis, one unit
// apart at frequency 1.
type Cylinders struct {
	frequency float64
}

var _ Module = (*Cylinders)(nil)

// NewCylinders returns a Cylinders generator with frequency 1.
func NewCylinders(opts ...Option) (*Cylinders, error) {
	c := &Cylinders{frequency: DefaultCylindersFrequency}
	if err := Apply(c, opts...); err != nil {
		return nil, wrapf("NewCylinders", err)
	}
	return c, nil
}

// Frequency returns the number of cylinders per unit.
func (c *Cylinders) Frequency() float64 { return c.frequency }

// SetFrequency sets the number of cylinders per unit.
func (c *Cylinders) SetFrequency(f float64) { c.frequency = f; touch() }

// SourceModules returns nil.
func (c *Cylinders) SourceModules() []Module { return nil }

// GetValue implements Module. The y coordinate is ignored.
func (c *Cylinders) GetValue(x, _, z float64) (float64, error) {
	x *= c.frequency
	z *= c.frequency
	return shellValue(math.Sqrt(x*x + z*z)), nil
}

// Spheres outputs concentric spheres centred on the origin.
type Spheres struct {
	frequency float64
}

var _ Module = (*Spheres)(nil)

// NewSpheres returns a Spheres generator with frequency 4.
func NewSpheres(opts ...Option) (*Spheres, error) {
	s := &Spheres{frequency: DefaultSpheresFrequency}
	if err := Apply(s, opts...); err != nil {
		return nil, wrapf("NewSpheres", err)
	}
	return s, nil
}

// Frequency returns the number of spheres per unit.
func (s *Spheres) Frequency() float64 { return s.frequency }

// SetFrequency sets the number of spheres per unit.
func (s *Spheres) SetFrequency(f float64) { s.frequency = f; touch() }

// SourceModules returns nil.
func (s *Spheres) SourceModules() []Module { return nil }

// GetValue implements Module.
func (s *Spheres) GetValue(x, y, z float64) (float64, error) {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency
	return shellValue(math.Sqrt(x*x + y*y + z*z)), nil
}
