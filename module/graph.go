// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// graph.go — traversal and validation of module graphs.
//
// Walk and CheckGraph key visited modules by interface identity. A module
// whose dynamic value is not comparable is reported as ErrUncomparableModule.

package module

import (
	"fmt"
	"reflect"
)

// Visitation colours for the depth-first search.
const (
	white = iota // not yet reached
	gray         // on the current DFS path
	black        // fully explored
)

// Walk visits root and every module reachable from it, depth-first in
// pre-order, calling fn once per distinct module. Nil source slots are
// skipped. The first error returned by fn stops the walk.
// A cycle is reported as ErrCycle instead of looping forever.
func Walk(root Module, fn func(Module) error) error {
	if isNil(root) {
		return wrapf("Walk", ErrMissingSourceModule)
	}
	state := make(map[Module]int)
	if err := walkVisit(root, state, fn, false); err != nil {
		return fmt.Errorf("Walk: %w", err)
	}
	return nil
}

// CheckGraph validates a module graph before evaluation.
//
// Errors:
//   - ErrCycle if any module is reachable from itself.
//   - ErrMissingSourceModule if any reachable module has an unset source.
func CheckGraph(root Module) error {
	if isNil(root) {
		return wrapf("CheckGraph", ErrMissingSourceModule)
	}
	state := make(map[Module]int)
	if err := walkVisit(root, state, nil, true); err != nil {
		return fmt.Errorf("CheckGraph: %w", err)
	}
	return nil
}

// checkComparable rejects modules that would panic as map keys.
func checkComparable(m Module) error {
	if !reflect.ValueOf(m).Comparable() {
		return fmt.Errorf("%T: %w", m, ErrUncomparableModule)
	}
	return nil
}

func walkVisit(m Module, state map[Module]int, fn func(Module) error, strict bool) error {
	// 1) Enter: mark gray and report.
	if err := checkComparable(m); err != nil {
		return err
	}
	state[m] = gray
	if fn != nil {
		if err := fn(m); err != nil {
			return err
		}
	}

	// 2) Descend into sources in declaration order.
	for i, src := range m.SourceModules() {
		if isNil(src) {
			if strict {
				return fmt.Errorf("%T source %d: %w", m, i, ErrMissingSourceModule)
			}
			continue
		}
		if err := checkComparable(src); err != nil {
			return err
		}
		switch state[src] {
		case white:
			if err := walkVisit(src, state, fn, strict); err != nil {
				return err
			}
		case gray:
			return fmt.Errorf("%T -> %T: %w", m, src, ErrCycle)
		}
	}

	// 3) Leave.
	state[m] = black
	return nil
}

// Count returns the number of distinct modules reachable from root.
func Count(root Module) (int, error) {
	n := 0
	err := Walk(root, func(Module) error {
		n++
		return nil
	})
	return n, err
}
