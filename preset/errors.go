// SPDX-License-Identifier: MIT
// Package: lvnoise/preset
//
// errors.go — sentinel errors for the preset package.

package preset

import "errors"

// ErrUnknownPreset indicates a name not listed by Names.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// ErrInvalidParams indicates a Params value that fails Validate.
var ErrInvalidParams = errors.New("preset: invalid params")
