// Package lvnoise is a coherent-noise toolkit: composable 3D noise modules
// plus builders that sample them onto 2D maps for textures, terrain and
// planets.
//
// What is in the box?
//
//	• Noise kernel: integer hashing, value and gradient lattice noise with
//	  three interpolation qualities (Fast, Standard, Best).
//	• Modules: generators (Perlin, Billow, RidgedMulti, Voronoi, OpenSimplex,
//	  ClassicPerlin, Const, Checkerboard, Cylinders, Spheres), modifiers
//	  (Abs, Clamp, Curve, Terrace, ScaleBias, Exponent, Invert, Cache),
//	  combiners (Add, Max, Min, Multiply, Power), selectors (Blend, Select)
//	  and transformers (Displace, RotatePoint, ScalePoint, TranslatePoint,
//	  Turbulence).
//	• Models and builders: plane, cylinder and sphere surfaces sampled into a
//	  NoiseMap, optionally seamless and in parallel, with Prometheus metrics.
//	• Presets: ready-made graphs (terrain, clouds, granite, wood, marble,
//	  planet) and the noisemap command that renders them to PNG.
//
// Why lvnoise?
//
//   - Explicit errors: every evaluation returns (float64, error); a missing
//     source or bad parameter is a sentinel error, never a panic.
//   - Deterministic: the same graph and seed give bit-identical output on
//     every platform, sequential or parallel.
//   - Composable: modules form a DAG; shared sub-graphs are evaluated through
//     plain references, and Cache memoises the hot ones.
//
// Packages:
//
//	interp/    — linear and cubic interpolation, S-curves
//	noisegen/  — lattice noise kernel and Quality
//	module/    — the Module interface, options and every module type
//	noisemap/  — the 2D float64 grid, statistics and PNG export
//	model/     — plane, cylinder, sphere and line surface models
//	builder/   — noise map builders, parallel row fill, metrics
//	preset/    — named module graphs
//	cmd/noisemap — command-line renderer
//
// Quick start:
//
//	perlin, _ := module.NewPerlin(module.WithSeed(42))
//	p, _ := builder.NewPlane(perlin, builder.WithSize(512, 512))
//	m, err := p.Build()
//	if err != nil { /* handle */ }
//	_ = m.WritePNG(f, -1, 1)
package lvnoise
