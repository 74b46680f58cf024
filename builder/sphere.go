// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// sphere.go — Sphere builder: samples model.Sphere over latitude × longitude.

package builder

import (
	"github.com/katalvlaran/lvnoise/model"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Sphere builds a noise map from the surface of a unit sphere. Rows run
// south to north, columns west to east; all bounds are in degrees.
type Sphere struct {
	base
	south, north float64
	west, east   float64
}

// NewSphere returns a Sphere builder over src covering the whole globe.
func NewSphere(src module.Module, opts ...BuilderOption) (*Sphere, error) {
	b, err := newBase(src, opts)
	if err != nil {
		return nil, err
	}
	return &Sphere{
		base:  b,
		south: DefaultSphereSouth,
		north: DefaultSphereNorth,
		west:  DefaultSphereWest,
		east:  DefaultSphereEast,
	}, nil
}

// Bounds returns the latitude and longitude ranges.
func (s *Sphere) Bounds() (south, north, west, east float64) {
	return s.south, s.north, s.west, s.east
}

// SetBounds sets both ranges atomically. It requires south < north and
// west < east.
func (s *Sphere) SetBounds(south, north, west, east float64) error {
	if err := validateRange(MethodSphereBounds, "latitude", south, north); err != nil {
		return err
	}
	if err := validateRange(MethodSphereBounds, "longitude", west, east); err != nil {
		return err
	}
	s.south, s.north, s.west, s.east = south, north, west, east
	return nil
}

// Build samples the source module onto a fresh noise map.
func (s *Sphere) Build() (*noisemap.NoiseMap, error) {
	sph, err := model.NewSphere(s.src)
	if err != nil {
		return nil, builderErrorf(MethodSphere, ErrMissingSourceModule)
	}

	lonDelta := (s.east - s.west) / float64(s.cfg.width)
	latDelta := (s.north - s.south) / float64(s.cfg.height)

	return s.run(KindSphere, MethodSphere, func(y int, row []float64) error {
		lat := s.south + float64(y)*latDelta
		for x := range row {
			v, err := sph.GetValue(lat, s.west+float64(x)*lonDelta)
			if err != nil {
				return err
			}
			row[x] = v
		}
		return nil
	})
}
