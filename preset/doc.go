// SPDX-License-Identifier: MIT
// Package: lvnoise/preset
//
// Package preset assembles named, ready-to-render module graphs.
//
// Each preset is a small composition of generators, modifiers, selectors and
// transformers from package module, tuned to produce a recognisable texture
// or landscape:
//
//   - "clouds":  billow noise with OpenSimplex detail, squared and clamped.
//   - "granite": billow grain plus inverted Voronoi cells, then turbulence.
//   - "marble":  ClassicPerlin veins reshaped through a curve, then turbulence.
//   - "planet":  continents from a curved Perlin field; hills and terraced
//     ridges rise above sea level only.
//   - "terrain": flat billow lowlands and ridged mountains chosen by a
//     Perlin control field, then turbulence.
//   - "wood":    concentric cylinders with stretched grain, tilted and
//     perturbed twice.
//
// Params scales every preset uniformly: Seed offsets all internal seeds,
// Frequency multiplies all base frequencies and Octaves drives the primary
// fractal generator.
//
// Example:
//
//	root, err := preset.New("terrain", preset.DefaultParams())
//	if err != nil { /* unknown name or bad params */ }
//	p, _ := builder.NewPlane(root)
package preset
