// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// plane.go — Plane builder: samples model.Plane over an x/z rectangle.

package builder

import (
	"github.com/katalvlaran/lvnoise/interp"
	"github.com/katalvlaran/lvnoise/model"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Plane builds a noise map from the x/z plane (y = 0).
//
// Cell (x, y) samples the point
//
//	(lowerX + x·(upperX-lowerX)/width, 0, lowerZ + y·(upperZ-lowerZ)/height).
//
// With WithSeamless(true), each cell blends four samples taken one extent
// apart along x and z so the left/right and top/bottom edges match.
type Plane struct {
	base
	lowerX, upperX float64
	lowerZ, upperZ float64
}

// NewPlane returns a Plane builder over src with bounds [0,1]×[0,1].
func NewPlane(src module.Module, opts ...BuilderOption) (*Plane, error) {
	b, err := newBase(src, opts)
	if err != nil {
		return nil, err
	}
	return &Plane{
		base:   b,
		lowerX: DefaultPlaneLowerX,
		upperX: DefaultPlaneUpperX,
		lowerZ: DefaultPlaneLowerZ,
		upperZ: DefaultPlaneUpperZ,
	}, nil
}

// Bounds returns the x and z ranges.
func (p *Plane) Bounds() (lowerX, upperX, lowerZ, upperZ float64) {
	return p.lowerX, p.upperX, p.lowerZ, p.upperZ
}

// SetBounds sets both ranges atomically. Each must satisfy lower < upper;
// on error the previous bounds are kept.
func (p *Plane) SetBounds(lowerX, upperX, lowerZ, upperZ float64) error {
	if err := validateRange(MethodPlaneBounds, "x", lowerX, upperX); err != nil {
		return err
	}
	if err := validateRange(MethodPlaneBounds, "z", lowerZ, upperZ); err != nil {
		return err
	}
	p.lowerX, p.upperX, p.lowerZ, p.upperZ = lowerX, upperX, lowerZ, upperZ
	return nil
}

// Seamless reports whether edge blending is enabled.
func (p *Plane) Seamless() bool { return p.cfg.seamless }

// SetSeamless toggles edge blending.
func (p *Plane) SetSeamless(on bool) { p.cfg.seamless = on }

// Build samples the source module onto a fresh noise map.
func (p *Plane) Build() (*noisemap.NoiseMap, error) {
	plane, err := model.NewPlane(p.src)
	if err != nil {
		return nil, builderErrorf(MethodPlane, ErrMissingSourceModule)
	}

	xExtent := p.upperX - p.lowerX
	zExtent := p.upperZ - p.lowerZ
	xDelta := xExtent / float64(p.cfg.width)
	zDelta := zExtent / float64(p.cfg.height)
	seamless := p.cfg.seamless

	return p.run(KindPlane, MethodPlane, func(y int, row []float64) error {
		curZ := p.lowerZ + float64(y)*zDelta
		zBlend := 1 - (curZ-p.lowerZ)/zExtent
		for x := range row {
			curX := p.lowerX + float64(x)*xDelta
			if !seamless {
				v, err := plane.GetValue(curX, curZ)
				if err != nil {
					return err
				}
				row[x] = v
				continue
			}

			sw, err := plane.GetValue(curX, curZ)
			if err != nil {
				return err
			}
			se, err := plane.GetValue(curX+xExtent, curZ)
			if err != nil {
				return err
			}
			nw, err := plane.GetValue(curX, curZ+zExtent)
			if err != nil {
				return err
			}
			ne, err := plane.GetValue(curX+xExtent, curZ+zExtent)
			if err != nil {
				return err
			}
			xBlend := 1 - (curX-p.lowerX)/xExtent
			z0 := interp.Linear(sw, se, xBlend)
			z1 := interp.Linear(nw, ne, xBlend)
			row[x] = interp.Linear(z0, z1, zBlend)
		}
		return nil
	})
}
