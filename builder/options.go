// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "fmt"

// BuilderOption customizes a builder by mutating a builderConfig instance
// before the builder is returned.
type BuilderOption func(*builderConfig)

// WithSize sets the destination width and height in cells.
// Panics if either is not positive.
func WithSize(width, height int) BuilderOption {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("builder: WithSize(%d, %d): dimensions must be positive", width, height))
	}
	return func(c *builderConfig) {
		c.width = width
		c.height = height
	}
}

// WithSeamless toggles edge blending. Only Plane honours it; the cylinder
// and sphere surfaces already wrap in angle and longitude.
func WithSeamless(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.seamless = on
	}
}

// WithParallel fills rows concurrently with go-parallel. The resulting map
// is identical to a sequential build.
func WithParallel() BuilderOption {
	return func(c *builderConfig) {
		c.parallel = true
	}
}

// WithMetrics records every Build into m. Panics on nil.
func WithMetrics(m *Metrics) BuilderOption {
	if m == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) {
		c.metrics = m
	}
}
