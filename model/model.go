// SPDX-License-Identifier: MIT
// Package: lvnoise/model
//
// model.go — surface models over a noise module.

package model

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/lvnoise/module"
)

// source is embedded by every model.
type source struct {
	src module.Module
}

// Module returns the source module.
func (s *source) Module() module.Module { return s.src }

// SetModule replaces the source module.
func (s *source) SetModule(m module.Module) error {
	if missing(m) {
		return fmt.Errorf("SetModule: %w", ErrMissingSourceModule)
	}
	s.src = m
	return nil
}

func (s *source) eval(method string, x, y, z float64) (float64, error) {
	if missing(s.src) {
		return 0, fmt.Errorf("%s: %w", method, ErrMissingSourceModule)
	}
	return s.src.GetValue(x, y, z)
}

// Plane samples the y = 0 plane.
type Plane struct{ source }

// NewPlane returns a Plane over m.
func NewPlane(m module.Module) (*Plane, error) {
	if missing(m) {
		return nil, fmt.Errorf("NewPlane: %w", ErrMissingSourceModule)
	}
	return &Plane{source{m}}, nil
}

// GetValue returns source(x, 0, z).
func (p *Plane) GetValue(x, z float64) (float64, error) {
	return p.eval("Plane.GetValue", x, 0, z)
}

// Cylinder samples a unit-radius cylinder around the y axis.
type Cylinder struct{ source }

// NewCylinder returns a Cylinder over m.
func NewCylinder(m module.Module) (*Cylinder, error) {
	if missing(m) {
		return nil, fmt.Errorf("NewCylinder: %w", ErrMissingSourceModule)
	}
	return &Cylinder{source{m}}, nil
}

// GetValue samples the point at angle degrees around the axis and height h.
func (c *Cylinder) GetValue(angle, height float64) (float64, error) {
	s, co := math.Sincos(mgl64.DegToRad(angle))
	return c.eval("Cylinder.GetValue", co, height, s)
}

// Sphere samples a unit sphere centred on the origin.
type Sphere struct{ source }

// NewSphere returns a Sphere over m.
func NewSphere(m module.Module) (*Sphere, error) {
	if missing(m) {
		return nil, fmt.Errorf("NewSphere: %w", ErrMissingSourceModule)
	}
	return &Sphere{source{m}}, nil
}

// LatLonToXYZ converts latitude and longitude in degrees to a point on the
// unit sphere. Latitude +90 is +y; longitude 0 lies on +x.
func LatLonToXYZ(lat, lon float64) (x, y, z float64) {
	sinLat, cosLat := math.Sincos(mgl64.DegToRad(lat))
	sinLon, cosLon := math.Sincos(mgl64.DegToRad(lon))
	return cosLon * cosLat, sinLat, sinLon * cosLat
}

// GetValue samples the point at lat, lon degrees.
func (s *Sphere) GetValue(lat, lon float64) (float64, error) {
	x, y, z := LatLonToXYZ(lat, lon)
	return s.eval("Sphere.GetValue", x, y, z)
}

// Line samples a segment between two points. With attenuation on (the
// default) the output is scaled by 4p(1-p), which is 0 at both ends and 1
// in the middle.
type Line struct {
	source
	start, end mgl64.Vec3
	attenuate  bool
}

// NewLine returns a Line over m from (0,0,0) to (1,1,1) with attenuation.
func NewLine(m module.Module) (*Line, error) {
	if missing(m) {
		return nil, fmt.Errorf("NewLine: %w", ErrMissingSourceModule)
	}
	return &Line{source: source{m}, end: mgl64.Vec3{1, 1, 1}, attenuate: true}, nil
}

// Attenuate reports whether the output is attenuated toward the ends.
func (l *Line) Attenuate() bool { return l.attenuate }

// SetAttenuate toggles end attenuation.
func (l *Line) SetAttenuate(on bool) { l.attenuate = on }

// SetStartPoint sets the point sampled at p = 0.
func (l *Line) SetStartPoint(x, y, z float64) { l.start = mgl64.Vec3{x, y, z} }

// SetEndPoint sets the point sampled at p = 1.
func (l *Line) SetEndPoint(x, y, z float64) { l.end = mgl64.Vec3{x, y, z} }

// Points returns the start and end points.
func (l *Line) Points() (start, end mgl64.Vec3) { return l.start, l.end }

// GetValue samples the line at parameter p. p is not clamped.
func (l *Line) GetValue(p float64) (float64, error) {
	pt := l.end.Sub(l.start).Mul(p).Add(l.start)
	v, err := l.eval("Line.GetValue", pt[0], pt[1], pt[2])
	if err != nil {
		return 0, err
	}
	if l.attenuate {
		return p * (1.0 - p) * 4.0 * v, nil
	}
	return v, nil
}
