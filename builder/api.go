// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// api.go — shared builder state and the row-fill driver.

package builder

import (
	"time"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Builder is implemented by Plane, Cylinder and Sphere.
type Builder interface {
	// Build samples the source module onto a fresh noise map.
	Build() (*noisemap.NoiseMap, error)
	// SourceModule returns the module being sampled.
	SourceModule() module.Module
	// SetSourceModule replaces the module being sampled.
	SetSourceModule(m module.Module) error
	// Size returns the destination width and height.
	Size() (width, height int)
	// SetSize changes the destination width and height.
	SetSize(width, height int) error
}

var (
	_ Builder = (*Plane)(nil)
	_ Builder = (*Cylinder)(nil)
	_ Builder = (*Sphere)(nil)
)

// base is embedded by every builder.
type base struct {
	cfg builderConfig
	src module.Module
}

func newBase(src module.Module, opts []BuilderOption) (base, error) {
	if missing(src) {
		return base{}, builderErrorf("New", ErrMissingSourceModule)
	}
	return base{cfg: newBuilderConfig(opts...), src: src}, nil
}

// SourceModule returns the module being sampled.
func (b *base) SourceModule() module.Module { return b.src }

// SetSourceModule replaces the module being sampled.
func (b *base) SetSourceModule(m module.Module) error {
	if missing(m) {
		return builderErrorf(MethodSetSource, ErrMissingSourceModule)
	}
	b.src = m
	return nil
}

// Size returns the destination width and height.
func (b *base) Size() (width, height int) { return b.cfg.width, b.cfg.height }

// SetSize changes the destination width and height.
func (b *base) SetSize(width, height int) error {
	if err := validateSize(width, height); err != nil {
		return err
	}
	b.cfg.width, b.cfg.height = width, height
	return nil
}

// rowFunc fills row y of the destination. len(row) is the map width.
type rowFunc func(y int, row []float64) error

// run allocates the destination and drives fill over every row.
//
// Sequential runs stop at the first failing row. Parallel runs let every
// row finish and report the failure with the lowest row index, so both paths
// return the same error for the same graph.
func (b *base) run(kind, method string, fill rowFunc) (*noisemap.NoiseMap, error) {
	start := time.Now()
	nm, err := b.fill(method, fill)
	b.cfg.metrics.observe(kind, b.cfg.width*b.cfg.height, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return nm, nil
}

func (b *base) fill(method string, fill rowFunc) (*noisemap.NoiseMap, error) {
	if missing(b.src) {
		return nil, builderErrorf(method, ErrMissingSourceModule)
	}
	nm, err := noisemap.New(b.cfg.width, b.cfg.height)
	if err != nil {
		return nil, builderErrorf(method, err)
	}

	height := nm.Height()
	if !b.cfg.parallel {
		for y := 0; y < height; y++ {
			row, _ := nm.Row(y) // y is in range
			if err := fill(y, row); err != nil {
				return nil, buildErrorf(method, y, err)
			}
		}
		return nm, nil
	}

	// One slot per row: goroutines never share a slot, so no lock is needed.
	errs := make([]error, height)
	parallel.For(height, func(y, _ int) {
		row, _ := nm.Row(y)
		errs[y] = fill(y, row)
	})
	for y, err := range errs {
		if err != nil {
			return nil, buildErrorf(method, y, err)
		}
	}
	return nm, nil
}
