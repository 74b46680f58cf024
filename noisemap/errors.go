// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// errors.go — sentinel errors for the noisemap package.

package noisemap

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates a non-positive width or height.
var ErrInvalidDimensions = errors.New("noisemap: invalid dimensions")

// ErrOutOfRange indicates an (x, y) outside the map.
var ErrOutOfRange = errors.New("noisemap: point out of range")

// ErrInvalidRange indicates an export range with lower >= upper.
var ErrInvalidRange = errors.New("noisemap: invalid value range")

// mapErrorf wraps err with method context and coordinates.
func mapErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("NoiseMap.%s(%d,%d): %w", method, x, y, err)
}
