// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// cylinder.go — Cylinder builder: samples model.Cylinder over angle × height.

package builder

import (
	"github.com/katalvlaran/lvnoise/model"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Cylinder builds a noise map from the surface of a unit cylinder. The
// horizontal axis is the angle in degrees, the vertical axis the height.
type Cylinder struct {
	base
	lowerAngle, upperAngle   float64
	lowerHeight, upperHeight float64
}

// NewCylinder returns a Cylinder builder over src covering a full turn and
// heights [-1, 1].
func NewCylinder(src module.Module, opts ...BuilderOption) (*Cylinder, error) {
	b, err := newBase(src, opts)
	if err != nil {
		return nil, err
	}
	return &Cylinder{
		base:        b,
		lowerAngle:  DefaultCylinderLowerAngle,
		upperAngle:  DefaultCylinderUpperAngle,
		lowerHeight: DefaultCylinderLowerHeight,
		upperHeight: DefaultCylinderUpperHeight,
	}, nil
}

// Bounds returns the angle and height ranges.
func (c *Cylinder) Bounds() (lowerAngle, upperAngle, lowerHeight, upperHeight float64) {
	return c.lowerAngle, c.upperAngle, c.lowerHeight, c.upperHeight
}

// SetBounds sets both ranges atomically; each must satisfy lower < upper.
func (c *Cylinder) SetBounds(lowerAngle, upperAngle, lowerHeight, upperHeight float64) error {
	if err := validateRange(MethodCylinderBounds, "angle", lowerAngle, upperAngle); err != nil {
		return err
	}
	if err := validateRange(MethodCylinderBounds, "height", lowerHeight, upperHeight); err != nil {
		return err
	}
	c.lowerAngle, c.upperAngle = lowerAngle, upperAngle
	c.lowerHeight, c.upperHeight = lowerHeight, upperHeight
	return nil
}

// Build samples the source module onto a fresh noise map.
func (c *Cylinder) Build() (*noisemap.NoiseMap, error) {
	cyl, err := model.NewCylinder(c.src)
	if err != nil {
		return nil, builderErrorf(MethodCylinder, ErrMissingSourceModule)
	}

	angleDelta := (c.upperAngle - c.lowerAngle) / float64(c.cfg.width)
	heightDelta := (c.upperHeight - c.lowerHeight) / float64(c.cfg.height)

	return c.run(KindCylinder, MethodCylinder, func(y int, row []float64) error {
		curHeight := c.lowerHeight + float64(y)*heightDelta
		for x := range row {
			v, err := cyl.GetValue(c.lowerAngle+float64(x)*angleDelta, curHeight)
			if err != nil {
				return err
			}
			row[x] = v
		}
		return nil
	})
}
