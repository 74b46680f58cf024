// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// Package module defines the Module contract and every noise module family:
// generators, combiners, modifiers, selectors and transformers.
//
// A Module maps a point (x, y, z) to a scalar. Modules that consume other
// modules hold plain references to them, so a single module may feed any
// number of parents and graphs form a DAG with fan-in:
//
//	base, _ := module.NewPerlin(module.WithOctaveCount(4))
//	hills, _ := module.NewScaleBias(base, module.WithScale(0.5), module.WithBias(-0.25))
//	peaks, _ := module.NewRidgedMulti(module.WithSeed(7))
//	ctrl, _ := module.NewPerlin(module.WithFrequency(0.5), module.WithSeed(3))
//	land, _ := module.NewSelect(hills, peaks, ctrl, module.WithBounds(0, 1000), module.WithEdgeFalloff(0.125))
//	v, err := land.GetValue(1.25, 0, -3.5)
//
// Contract (strict):
//   - GetValue never panics on user input. A missing source, too few
//     control points, or an invalid parameter is reported as an error that
//     matches one of the sentinels in errors.go via errors.Is.
//   - Constructors apply documented defaults first and options second, so an
//     explicit zero (WithSeed(0), WithBias(0)) is always honoured.
//   - Bound pairs keep lower <= upper at every assignment. A rejected
//     assignment leaves the module unchanged.
//   - Every setter advances a package-wide parameter epoch; Cache modules
//     compare against it and drop stale memoised values.
//
// Concurrency:
//   - Evaluation is read-only for every module except Cache, which guards its
//     memo with a mutex. A fully configured graph may be evaluated from many
//     goroutines at once. Mutating parameters while evaluating is a data race.
//
// Families:
//   - Generators: Perlin, Billow, RidgedMulti, Const, Checkerboard,
//     Cylinders, Spheres, Voronoi, OpenSimplex, ClassicPerlin.
//   - Combiners: Add, Max, Min, Multiply, Power.
//   - Modifiers: Abs, Clamp, Curve, Exponent, Invert, ScaleBias, Terrace, Cache.
//   - Selectors: Blend, Select.
//   - Transformers: Displace, RotatePoint, ScalePoint, TranslatePoint, Turbulence.
//
// Graph utilities: Walk visits each distinct module once and CheckGraph
// rejects cycles and unset sources before a graph is handed to a builder.
package module
