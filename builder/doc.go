// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// Package builder samples a module graph onto a 2D noisemap.NoiseMap through
// one of the surface models in package model.
//
// The package offers the following key components:
//
//   - Builders:
//     – Plane:     samples model.Plane over an x/z rectangle, optionally
//     blending the four edges so the result tiles seamlessly.
//     – Cylinder:  samples model.Cylinder over angle (degrees) × height.
//     – Sphere:    samples model.Sphere over latitude × longitude (degrees).
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSize, WithSeamless, WithParallel, WithMetrics.
//   - Observability:
//     – Metrics:  Prometheus counters and a duration histogram per builder
//     kind, registered on a caller-supplied prometheus.Registerer.
//   - Shared constants:
//     – DefaultWidth, DefaultHeight and the default bounds per builder.
//     – MethodPlane, MethodCylinder, MethodSphere tokens for error context.
//
// Guarantees:
//
//   - Build returns a fresh NoiseMap on success and nil on any error.
//   - Every cell (x, y) is sampled at lower + x·(extent/width) along the
//     horizontal axis and lower + y·(extent/height) along the vertical axis,
//     so the output does not depend on row order or WithParallel.
//   - Bounds are strict: lower < upper on both axes, or ErrInvalidBounds.
//   - The first evaluation error (lowest row) aborts the build and is
//     returned wrapped as "builder: <Kind>.Build: <cause>".
//   - Option constructors panic on meaningless inputs; Build never panics.
//
// Concurrency:
//
//   - A builder is not safe for concurrent mutation. Build itself may fan rows
//     out over goroutines (WithParallel); the module graph must then be free
//     of concurrent parameter changes for the duration of the call.
//
// Example:
//
//	p, _ := builder.NewPlane(perlin, builder.WithSize(512, 256))
//	_ = p.SetBounds(2, 6, 1, 5)
//	m, err := p.Build()
package builder
