// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// validators.go — argument checks shared by the builders.

package builder

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/lvnoise/module"
)

// validateRange ensures lower and upper are finite and lower < upper.
func validateRange(method, axis string, lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("%s: %s [%g, %g] not finite: %w", method, axis, lower, upper, ErrInvalidBounds)
	}
	if !(lower < upper) {
		return fmt.Errorf("%s: %s lower %g must be below upper %g: %w", method, axis, lower, upper, ErrInvalidBounds)
	}
	return nil
}

// validateSize ensures both dimensions are positive.
func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%s(%d, %d): %w", MethodSetSize, width, height, ErrInvalidSize)
	}
	return nil
}

// missing reports a nil or typed-nil module.
func missing(m module.Module) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
