// SPDX-License-Identifier: MIT
// Package: lvnoise/model
//
// errors.go — sentinel errors for the model package.

package model

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvnoise/module"
)

// ErrMissingSourceModule indicates a model without a source module.
// It wraps module.ErrMissingSourceModule so either sentinel matches.
var ErrMissingSourceModule = fmt.Errorf("model: %w", module.ErrMissingSourceModule)

func missing(m module.Module) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
