// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// module.go — the Module contract and the parameter epoch.

package module

import (
	"math"
	"sync/atomic"
)

// Module produces a scalar for any point in 3D space.
type Module interface {
	// GetValue evaluates the module at (x, y, z).
	GetValue(x, y, z float64) (float64, error)

	// SourceModules returns the module's inputs in a fixed order. Generators
	// return nil. Unset slots are reported as nil entries.
	SourceModules() []Module
}

// MaxOctaves is the upper bound for every octave count parameter.
const MaxOctaves = 30

// paramEpoch advances on every parameter mutation in the package.
var paramEpoch atomic.Uint64

// touch marks all memoised values as stale.
func touch() { paramEpoch.Add(1) }

// checkFinite rejects NaN and ±Inf with ErrInvalidParameter.
func checkFinite(method string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return wrapf(method, ErrInvalidParameter)
		}
	}
	return nil
}
