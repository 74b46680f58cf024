// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// stats.go — summary statistics over all samples.

package noisemap

import (
	"fmt"
	"math"
)

// Stats summarises a map.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
	NaNs   int     // samples skipped because they are NaN
}

// Stats computes min, max, mean and standard deviation in two passes.
// NaN samples are counted and skipped. A map holding only NaNs reports
// NaN for every statistic.
func (m *NoiseMap) Stats() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}

	// Pass 1: range and mean.
	var sum float64
	for _, v := range m.data {
		if math.IsNaN(v) {
			s.NaNs++
			continue
		}
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	n := len(m.data) - s.NaNs
	if n == 0 {
		nan := math.NaN()
		return Stats{Min: nan, Max: nan, Mean: nan, StdDev: nan, NaNs: s.NaNs}
	}
	s.Mean = sum / float64(n)

	// Pass 2: spread around the mean.
	var sq float64
	for _, v := range m.data {
		if math.IsNaN(v) {
			continue
		}
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(n))
	return s
}

// Normalized returns a copy rescaled so that lower maps to 0 and upper to 1.
// Values outside [lower, upper] are clamped.
func (m *NoiseMap) Normalized(lower, upper float64) (*NoiseMap, error) {
	if !(lower < upper) {
		return nil, fmt.Errorf("NoiseMap.Normalized(%g,%g): %w", lower, upper, ErrInvalidRange)
	}
	out := m.Clone()
	span := upper - lower
	for i, v := range out.data {
		out.data[i] = clamp01((v - lower) / span)
	}
	return out, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
