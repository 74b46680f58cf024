// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// errors.go — sentinel errors for the module package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Raising sites wrap with "<Type>.<Method>: %w". Parents propagate child
//     errors unchanged so the innermost context survives.
//   • Option constructors do not panic here: a bad option surfaces as an
//     error from the module constructor that applied it.

package module

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrMissingSourceModule indicates that a required source, control or
// displacement module is nil.
var ErrMissingSourceModule = errors.New("module: missing source module")

// ErrInvalidBounds indicates that a bound assignment would break lower <= upper.
var ErrInvalidBounds = errors.New("module: invalid bounds")

// ErrInsufficientControlPoints indicates that a Curve has fewer than four or
// a Terrace fewer than two control points at evaluation time.
var ErrInsufficientControlPoints = errors.New("module: insufficient control points")

// ErrDuplicateControlPoint indicates that a control point with the same
// input (Curve) or value (Terrace) already exists.
var ErrDuplicateControlPoint = errors.New("module: duplicate control point")

// ErrInvalidParameter indicates an out-of-range scalar parameter, such as an
// octave count outside [1, MaxOctaves] or a NaN frequency.
var ErrInvalidParameter = errors.New("module: invalid parameter")

// ErrUnsupportedOption indicates that an option was applied to a module type
// that has no such parameter.
var ErrUnsupportedOption = errors.New("module: unsupported option")

// ErrCycle indicates that a module graph references itself.
var ErrCycle = errors.New("module: cycle in module graph")

// ErrUncomparableModule indicates a Module value that cannot serve as a graph
// node key, such as a struct value holding a slice. Implement Module on a
// pointer receiver instead.
var ErrUncomparableModule = errors.New("module: uncomparable module value")

// wrapf attaches "<method>: " context to a sentinel.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// isNil reports whether m is nil or a typed nil pointer.
func isNil(m Module) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// requireSources returns ErrMissingSourceModule wrapped with method when any
// of srcs is nil.
func requireSources(method string, srcs ...Module) error {
	for _, s := range srcs {
		if isNil(s) {
			return wrapf(method, ErrMissingSourceModule)
		}
	}
	return nil
}
