// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Raising sites attach "<Kind>.<Method>" context with %w.
//   • Module evaluation errors are propagated unchanged under that context,
//     so module sentinels (module.ErrInvalidBounds, …) still match.
//   • Build MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnoise/model"
)

// ErrInvalidBounds indicates that a bound pair is not finite or does not
// satisfy lower < upper.
// Usage: if errors.Is(err, ErrInvalidBounds) { /* fix SetBounds arguments */ }.
var ErrInvalidBounds = errors.New("builder: invalid bounds")

// ErrInvalidSize indicates a non-positive destination width or height passed
// to SetSize.
var ErrInvalidSize = errors.New("builder: invalid size")

// ErrMissingSourceModule indicates a builder without a source module.
// It wraps model.ErrMissingSourceModule, and therefore also
// module.ErrMissingSourceModule.
var ErrMissingSourceModule = fmt.Errorf("builder: %w", model.ErrMissingSourceModule)

// builderErrorf wraps err with "<method>: " context.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// buildErrorf wraps an evaluation failure raised while filling row y.
func buildErrorf(method string, y int, err error) error {
	return fmt.Errorf("builder: %s: row %d: %w", method, y, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail in Build):
//   • ErrMissingSourceModule: source presence first.
//   • noisemap.ErrInvalidDimensions: never reached through the public API,
//     since WithSize panics and SetSize rejects non-positive sizes.
//   • module errors: surfaced from the first failing row.
