// SPDX-License-Identifier: MIT
// Package: lvnoise/preset
//
// graphs.go — the module graphs behind each preset name.

package preset

import (
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisegen"
)

// terrain selects between flat billow lowlands and ridged mountains with a
// low-frequency Perlin control, then roughens the seams with turbulence.
func terrain(p Params) (module.Module, error) {
	mountains, err := module.NewRidgedMulti(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(1)),
		module.WithOctaveCount(p.Octaves),
	)
	if err != nil {
		return nil, err
	}
	lowBase, err := module.NewBillow(
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(2)),
		module.WithOctaveCount(p.octaves(6)),
	)
	if err != nil {
		return nil, err
	}
	lowlands, err := module.NewScaleBias(lowBase, module.WithScale(0.125), module.WithBias(-0.75))
	if err != nil {
		return nil, err
	}
	control, err := module.NewPerlin(
		module.WithSeed(p.seed(2)),
		module.WithFrequency(p.freq(0.5)),
		module.WithPersistence(0.25),
		module.WithOctaveCount(p.octaves(6)),
	)
	if err != nil {
		return nil, err
	}
	cached, err := module.NewCache(control)
	if err != nil {
		return nil, err
	}
	selected, err := module.NewSelect(lowlands, mountains, cached,
		module.WithBounds(0, 1000),
		module.WithEdgeFalloff(0.125),
	)
	if err != nil {
		return nil, err
	}
	root, err := module.NewTurbulence(selected,
		module.WithSeed(p.seed(3)),
		module.WithFrequency(p.freq(4)),
		module.WithPower(0.125),
	)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// clouds layers fine OpenSimplex detail over soft billows, squares the
// result to open up clear sky and clamps it to [-1, 1].
func clouds(p Params) (module.Module, error) {
	billow, err := module.NewBillow(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(2)),
		module.WithPersistence(0.5),
		module.WithOctaveCount(p.Octaves),
	)
	if err != nil {
		return nil, err
	}
	simplex, err := module.NewOpenSimplex(
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(8)),
	)
	if err != nil {
		return nil, err
	}
	detail, err := module.NewScaleBias(simplex, module.WithScale(0.25))
	if err != nil {
		return nil, err
	}
	sum, err := module.NewAdd(billow, detail)
	if err != nil {
		return nil, err
	}
	shaped, err := module.NewExponent(sum, module.WithExponent(2))
	if err != nil {
		return nil, err
	}
	root, err := module.NewClamp(shaped, module.WithBounds(-1, 1))
	if err != nil {
		return nil, err
	}
	return root, nil
}

// granite adds inverted Voronoi cells to high-frequency billow grain and
// perturbs the sum.
func granite(p Params) (module.Module, error) {
	grain, err := module.NewBillow(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(8)),
		module.WithPersistence(0.625),
		module.WithLacunarity(2.18359375),
		module.WithOctaveCount(p.Octaves),
		module.WithQuality(noisegen.Standard),
	)
	if err != nil {
		return nil, err
	}
	cells, err := module.NewVoronoi(
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(16)),
		module.WithDistance(true),
	)
	if err != nil {
		return nil, err
	}
	inverted, err := module.NewScaleBias(cells, module.WithScale(-0.5), module.WithBias(0))
	if err != nil {
		return nil, err
	}
	sum, err := module.NewAdd(grain, inverted)
	if err != nil {
		return nil, err
	}
	root, err := module.NewTurbulence(sum,
		module.WithSeed(p.seed(2)),
		module.WithFrequency(p.freq(4)),
		module.WithPower(1.0/8),
		module.WithRoughness(6),
	)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// marble folds ClassicPerlin noise into sharp veins, reshapes them with a
// curve and bends them with turbulence.
func marble(p Params) (module.Module, error) {
	base, err := module.NewClassicPerlin(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(2)),
		module.WithOctaveCount(p.octaves(8)),
	)
	if err != nil {
		return nil, err
	}
	folded, err := module.NewAbs(base)
	if err != nil {
		return nil, err
	}
	veins, err := module.NewScaleBias(folded, module.WithScale(-2), module.WithBias(1))
	if err != nil {
		return nil, err
	}
	curved, err := module.NewCurve(veins,
		module.ControlPoint{Input: -1, Output: -1},
		module.ControlPoint{Input: 0, Output: -0.6},
		module.ControlPoint{Input: 0.6, Output: 0.2},
		module.ControlPoint{Input: 0.9, Output: 0.8},
		module.ControlPoint{Input: 1, Output: 1},
	)
	if err != nil {
		return nil, err
	}
	root, err := module.NewTurbulence(curved,
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(3)),
		module.WithPower(0.25),
		module.WithRoughness(4),
	)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// planet shapes a continent field through a sea-level curve. Above sea
// level, a blend of billowy hills and terraced ridges is added on top.
func planet(p Params) (module.Module, error) {
	continentBase, err := module.NewPerlin(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(1)),
		module.WithPersistence(0.5),
		module.WithLacunarity(2.208984375),
		module.WithOctaveCount(p.Octaves),
	)
	if err != nil {
		return nil, err
	}
	continents, err := module.NewCurve(continentBase,
		module.ControlPoint{Input: -2, Output: -1.625},
		module.ControlPoint{Input: -1, Output: -1.375},
		module.ControlPoint{Input: 0, Output: -0.375},
		module.ControlPoint{Input: 0.0625, Output: 0.125},
		module.ControlPoint{Input: 0.125, Output: 0.25},
		module.ControlPoint{Input: 0.25, Output: 1},
		module.ControlPoint{Input: 0.5, Output: 0.25},
		module.ControlPoint{Input: 0.75, Output: 0.25},
		module.ControlPoint{Input: 1, Output: 0.5},
		module.ControlPoint{Input: 2, Output: 0.5},
	)
	if err != nil {
		return nil, err
	}
	shelf, err := module.NewCache(continents)
	if err != nil {
		return nil, err
	}

	ridges, err := module.NewRidgedMulti(
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(4)),
		module.WithLacunarity(2.142578125),
		module.WithOctaveCount(p.octaves(8)),
	)
	if err != nil {
		return nil, err
	}
	terraced, err := module.NewTerrace(ridges, []float64{-1, -0.25, 0.25, 0.5, 1})
	if err != nil {
		return nil, err
	}
	hillBase, err := module.NewBillow(
		module.WithSeed(p.seed(2)),
		module.WithFrequency(p.freq(8)),
		module.WithOctaveCount(p.octaves(4)),
	)
	if err != nil {
		return nil, err
	}
	hills, err := module.NewScaleBias(hillBase, module.WithScale(0.5), module.WithBias(0.5))
	if err != nil {
		return nil, err
	}
	mix, err := module.NewPerlin(
		module.WithSeed(p.seed(3)),
		module.WithFrequency(p.freq(2)),
		module.WithOctaveCount(p.octaves(3)),
	)
	if err != nil {
		return nil, err
	}
	highlands, err := module.NewBlend(hills, terraced, mix)
	if err != nil {
		return nil, err
	}
	relief, err := module.NewScaleBias(highlands, module.WithScale(0.25))
	if err != nil {
		return nil, err
	}
	land, err := module.NewAdd(shelf, relief)
	if err != nil {
		return nil, err
	}

	surface, err := module.NewSelect(shelf, land, shelf,
		module.WithBounds(0, 1000),
		module.WithEdgeFalloff(0.0625),
	)
	if err != nil {
		return nil, err
	}
	root, err := module.NewClamp(surface, module.WithBounds(-2, 2))
	if err != nil {
		return nil, err
	}
	return root, nil
}

// wood carves concentric rings from Cylinders, streaks them with stretched
// Perlin grain, then tilts the log and perturbs it twice.
func wood(p Params) (module.Module, error) {
	rings, err := module.NewCylinders(module.WithFrequency(p.freq(16)))
	if err != nil {
		return nil, err
	}
	grainBase, err := module.NewPerlin(
		module.WithSeed(p.seed(0)),
		module.WithFrequency(p.freq(48)),
		module.WithPersistence(0.5),
		module.WithLacunarity(2.20703125),
		module.WithOctaveCount(p.octaves(3)),
	)
	if err != nil {
		return nil, err
	}
	stretched, err := module.NewScalePoint(grainBase, module.WithScales(1, 0.25, 1))
	if err != nil {
		return nil, err
	}
	grain, err := module.NewScaleBias(stretched, module.WithScale(0.25), module.WithBias(0.125))
	if err != nil {
		return nil, err
	}
	log, err := module.NewAdd(rings, grain)
	if err != nil {
		return nil, err
	}
	jittered, err := module.NewTurbulence(log,
		module.WithSeed(p.seed(1)),
		module.WithFrequency(p.freq(4)),
		module.WithPower(1.0/256),
		module.WithRoughness(4),
	)
	if err != nil {
		return nil, err
	}
	shifted, err := module.NewTranslatePoint(jittered, module.WithTranslation(0, 0, 1.48))
	if err != nil {
		return nil, err
	}
	tilted, err := module.NewRotatePoint(shifted, module.WithAngles(84, 0, 0))
	if err != nil {
		return nil, err
	}
	root, err := module.NewTurbulence(tilted,
		module.WithSeed(p.seed(2)),
		module.WithFrequency(p.freq(2)),
		module.WithPower(1.0/64),
		module.WithRoughness(4),
	)
	if err != nil {
		return nil, err
	}
	return root, nil
}
