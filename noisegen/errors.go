// SPDX-License-Identifier: MIT
// Package: lvnoise/noisegen
//
// errors.go — sentinel errors for the noise kernel.

package noisegen

import "errors"

// ErrNilCornerFunc is returned by CoherentNoise3D when no corner sampler
// is supplied.
var ErrNilCornerFunc = errors.New("noisegen: nil corner function")

// ErrUnknownQuality indicates a Quality value (or name) outside
// Fast/Standard/Best.
var ErrUnknownQuality = errors.New("noisegen: unknown quality")
