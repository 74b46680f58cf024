// SPDX-License-Identifier: MIT
// Package: lvnoise/noisegen
//
// quality.go — interpolation quality levels for coherent noise.

package noisegen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnoise/interp"
)

// Quality selects the easing curve applied to the fractional lattice
// offsets before the trilinear blend.
type Quality int

const (
	// Fast uses the raw fractional offset (plain trilinear interpolation).
	Fast Quality = iota
	// Standard eases offsets with the cubic S-curve.
	Standard
	// Best eases offsets with the quintic S-curve.
	Best
)

// DefaultQuality is used by every generator unless overridden.
const DefaultQuality = Standard

var qualityNames = [...]string{"fast", "standard", "best"}

// String returns the lower-case name of q.
func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// Valid reports whether q is one of Fast, Standard or Best.
func (q Quality) Valid() bool {
	return q >= Fast && q <= Best
}

// ParseQuality maps a case-insensitive name onto a Quality.
func ParseQuality(name string) (Quality, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range qualityNames {
		if s == n {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("ParseQuality(%q): %w", name, ErrUnknownQuality)
}

// ease applies the curve of q to a fractional offset in [0,1].
// Unknown qualities fall back to Standard; callers validate beforehand.
func (q Quality) ease(a float64) float64 {
	switch q {
	case Fast:
		return a
	case Best:
		return interp.QuinticSCurve(a)
	default:
		return interp.CubicSCurve(a)
	}
}
