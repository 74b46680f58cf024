// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// image.go — grayscale rendering and PNG export.

package noisemap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Image renders the map as 16-bit grayscale: lower maps to black, upper to
// white, values outside are clamped and NaN renders black. Row 0 of the map
// is the top row of the image.
func (m *NoiseMap) Image(lower, upper float64) (*image.Gray16, error) {
	if !(lower < upper) {
		return nil, fmt.Errorf("NoiseMap.Image(%g,%g): %w", lower, upper, ErrInvalidRange)
	}
	img := image.NewGray16(image.Rect(0, 0, m.w, m.h))
	span := upper - lower
	for y := 0; y < m.h; y++ {
		row := m.data[y*m.w : (y+1)*m.w]
		for x, v := range row {
			g := 0.0
			if !math.IsNaN(v) {
				g = clamp01((v - lower) / span)
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(g * math.MaxUint16))})
		}
	}
	return img, nil
}

// WritePNG encodes Image(lower, upper) as PNG to w.
func (m *NoiseMap) WritePNG(w io.Writer, lower, upper float64) error {
	img, err := m.Image(lower, upper)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("NoiseMap.WritePNG: %w", err)
	}
	return nil
}
