package noisemap_test

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/katalvlaran/lvnoise/noisemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects non-positive sizes.
func TestNewInvalidDimensions(t *testing.T) {
	for _, d := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := noisemap.New(d[0], d[1])
		require.ErrorIs(t, err, noisemap.ErrInvalidDimensions)
	}
}

// TestAtSet checks storage, row-major layout and bounds.
func TestAtSet(t *testing.T) {
	m, err := noisemap.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())

	require.NoError(t, m.Set(2, 1, 7.5))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 7.5}, m.Values())

	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, noisemap.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, noisemap.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), noisemap.ErrOutOfRange)
	assert.ErrorIs(t, m.AddValue(0, 2, 1), noisemap.ErrOutOfRange)
	assert.ErrorIs(t, m.SubtractValue(9, 9, 1), noisemap.ErrOutOfRange)
}

// TestAddSubtract checks in-place arithmetic.
func TestAddSubtract(t *testing.T) {
	m, err := noisemap.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.AddValue(1, 1, 2))
	require.NoError(t, m.AddValue(1, 1, 0.5))
	require.NoError(t, m.SubtractValue(1, 1, 1))
	v, _ := m.At(1, 1)
	assert.Equal(t, 1.5, v)
}

// TestRowView checks rows are live and capacity-limited.
func TestRowView(t *testing.T) {
	m, err := noisemap.New(4, 3)
	require.NoError(t, err)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 4)
	row[3] = 9
	v, _ := m.At(3, 1)
	assert.Equal(t, 9.0, v)

	// Appending must not spill into the next row.
	row = append(row, 42)
	v, _ = m.At(0, 2)
	assert.Equal(t, 0.0, v)

	_, err = m.Row(3)
	assert.ErrorIs(t, err, noisemap.ErrOutOfRange)
}

// TestSetSizeAndClone checks reallocation and deep copies.
func TestSetSizeAndClone(t *testing.T) {
	m, err := noisemap.New(2, 2)
	require.NoError(t, err)
	m.Fill(3)
	c := m.Clone()
	require.NoError(t, m.SetSize(5, 1))
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, m.Values())
	assert.Equal(t, []float64{3, 3, 3, 3}, c.Values())
	assert.ErrorIs(t, m.SetSize(0, 1), noisemap.ErrInvalidDimensions)
}

// TestStats checks min/max/mean/stddev and NaN handling.
func TestStats(t *testing.T) {
	m, err := noisemap.New(2, 2)
	require.NoError(t, err)
	for i, v := range []float64{-1, 1, 3, math.NaN()} {
		require.NoError(t, m.Set(i%2, i/2, v))
	}
	s := m.Stats()
	assert.Equal(t, -1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.InDelta(t, 1.0, s.Mean, 1e-15)
	assert.InDelta(t, math.Sqrt(8.0/3.0), s.StdDev, 1e-15)
	assert.Equal(t, 1, s.NaNs)

	m.Fill(math.NaN())
	s = m.Stats()
	assert.True(t, math.IsNaN(s.Mean))
	assert.Equal(t, 4, s.NaNs)
}

// TestNormalized checks rescaling and clamping.
func TestNormalized(t *testing.T) {
	m, err := noisemap.New(3, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, -2))
	require.NoError(t, m.Set(1, 0, 0))
	require.NoError(t, m.Set(2, 0, 0.5))
	n, err := m.Normalized(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0.75}, n.Values())

	_, err = m.Normalized(1, 1)
	assert.ErrorIs(t, err, noisemap.ErrInvalidRange)
}

// TestImageAndPNG checks gray levels and a PNG round trip.
func TestImageAndPNG(t *testing.T) {
	m, err := noisemap.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, -1))
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(2, 0, 5))
	require.NoError(t, m.Set(0, 1, math.NaN()))

	img, err := m.Image(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), img.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(math.MaxUint16), img.Gray16At(1, 0).Y)
	assert.Equal(t, uint16(math.MaxUint16), img.Gray16At(2, 0).Y)
	assert.Equal(t, uint16(0), img.Gray16At(0, 1).Y)
	assert.Equal(t, uint16(32768), img.Gray16At(1, 1).Y)

	var buf bytes.Buffer
	require.NoError(t, m.WritePNG(&buf, -1, 1))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())

	assert.ErrorIs(t, m.WritePNG(&buf, 1, -1), noisemap.ErrInvalidRange)
}
