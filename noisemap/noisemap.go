// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// noisemap.go — dense row-major storage and safe accessors.

package noisemap

import "fmt"

// Method tags used in error wrappers.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAdd      = "AddValue"
	ctxSubtract = "SubtractValue"
	ctxRow      = "Row"
)

// NoiseMap is a width×height grid of noise samples.
type NoiseMap struct {
	w, h int
	data []float64 // len == w*h, row-major
}

// New allocates a zero-filled width×height map.
func New(width, height int) (*NoiseMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	return &NoiseMap{w: width, h: height, data: make([]float64, width*height)}, nil
}

// Width returns the number of columns.
func (m *NoiseMap) Width() int { return m.w }

// Height returns the number of rows.
func (m *NoiseMap) Height() int { return m.h }

// SetSize reallocates the map to width×height and clears it.
func (m *NoiseMap) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("NoiseMap.SetSize(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	m.w, m.h = width, height
	m.data = make([]float64, width*height)
	return nil
}

func (m *NoiseMap) inside(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// At returns the value at column x, row y.
func (m *NoiseMap) At(x, y int) (float64, error) {
	if !m.inside(x, y) {
		return 0, mapErrorf(ctxAt, x, y, ErrOutOfRange)
	}
	return m.data[y*m.w+x], nil
}

// Set stores v at column x, row y.
func (m *NoiseMap) Set(x, y int, v float64) error {
	if !m.inside(x, y) {
		return mapErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	m.data[y*m.w+x] = v
	return nil
}

// AddValue adds v to the value at (x, y).
func (m *NoiseMap) AddValue(x, y int, v float64) error {
	if !m.inside(x, y) {
		return mapErrorf(ctxAdd, x, y, ErrOutOfRange)
	}
	m.data[y*m.w+x] += v
	return nil
}

// SubtractValue subtracts v from the value at (x, y).
func (m *NoiseMap) SubtractValue(x, y int, v float64) error {
	if !m.inside(x, y) {
		return mapErrorf(ctxSubtract, x, y, ErrOutOfRange)
	}
	m.data[y*m.w+x] -= v
	return nil
}

// Row returns row y as a live view of length Width. Writes through the
// view update the map.
func (m *NoiseMap) Row(y int) ([]float64, error) {
	if y < 0 || y >= m.h {
		return nil, mapErrorf(ctxRow, 0, y, ErrOutOfRange)
	}
	off := y * m.w
	return m.data[off : off+m.w : off+m.w], nil
}

// Values returns a copy of all samples in row-major order.
func (m *NoiseMap) Values() []float64 {
	return append([]float64(nil), m.data...)
}

// Clone returns a deep copy.
func (m *NoiseMap) Clone() *NoiseMap {
	return &NoiseMap{w: m.w, h: m.h, data: m.Values()}
}

// Fill sets every sample to v.
func (m *NoiseMap) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}
