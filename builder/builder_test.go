// Package builder_test exercises the Plane, Cylinder and Sphere builders
// through the public API only.
package builder_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

var errBoom = errors.New("boom")

// axis returns one input coordinate unchanged.
type axis int

func (a axis) GetValue(x, y, z float64) (float64, error) {
	return [3]float64{x, y, z}[a], nil
}
func (axis) SourceModules() []module.Module { return nil }

// planar returns x + 100·z so a cell identifies its sample point.
type planar struct{}

func (planar) GetValue(x, _, z float64) (float64, error) { return x + 100*z, nil }
func (planar) SourceModules() []module.Module            { return nil }

// failAbove fails for every z >= limit.
type failAbove float64

func (f failAbove) GetValue(_, _, z float64) (float64, error) {
	if z >= float64(f) {
		return 0, errBoom
	}
	return z, nil
}
func (failAbove) SourceModules() []module.Module { return nil }

func cell(t *testing.T, m *noisemap.NoiseMap, x, y int) float64 {
	t.Helper()
	v, err := m.At(x, y)
	require.NoError(t, err)
	return v
}

func TestNew_MissingSource(t *testing.T) {
	t.Parallel()

	var typedNil *module.Perlin
	for name, ctor := range map[string]func(module.Module) error{
		"plane":    func(m module.Module) error { _, err := builder.NewPlane(m); return err },
		"cylinder": func(m module.Module) error { _, err := builder.NewCylinder(m); return err },
		"sphere":   func(m module.Module) error { _, err := builder.NewSphere(m); return err },
	} {
		err := ctor(nil)
		assert.ErrorIs(t, err, builder.ErrMissingSourceModule, name)
		assert.ErrorIs(t, err, module.ErrMissingSourceModule, name)
		assert.ErrorIs(t, ctor(typedNil), builder.ErrMissingSourceModule, name)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	src := module.ConstValue(0)

	p, err := builder.NewPlane(src)
	require.NoError(t, err)
	w, h := p.Size()
	assert.Equal(t, builder.DefaultWidth, w)
	assert.Equal(t, builder.DefaultHeight, h)
	lx, ux, lz, uz := p.Bounds()
	assert.Equal(t, [4]float64{0, 1, 0, 1}, [4]float64{lx, ux, lz, uz})
	assert.False(t, p.Seamless())
	assert.Same(t, src, p.SourceModule())

	c, err := builder.NewCylinder(src)
	require.NoError(t, err)
	la, ua, lh, uh := c.Bounds()
	assert.Equal(t, [4]float64{-180, 180, -1, 1}, [4]float64{la, ua, lh, uh})

	s, err := builder.NewSphere(src)
	require.NoError(t, err)
	so, no, we, ea := s.Bounds()
	assert.Equal(t, [4]float64{-90, 90, -180, 180}, [4]float64{so, no, we, ea})
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithSize(0, 10) })
	assert.Panics(t, func() { builder.WithSize(10, -1) })
	assert.Panics(t, func() { builder.WithMetrics(nil) })
	assert.NotPanics(t, func() { builder.WithSize(1, 1) })
}

func TestSetBounds_Strict(t *testing.T) {
	t.Parallel()

	p, err := builder.NewPlane(module.ConstValue(0))
	require.NoError(t, err)

	cases := []struct {
		name           string
		lx, ux, lz, uz float64
	}{
		{"equal x", 1, 1, 0, 1},
		{"reversed z", 0, 1, 2, 1},
		{"nan", math.NaN(), 1, 0, 1},
		{"inf", 0, math.Inf(1), 0, 1},
	}
	for _, tc := range cases {
		err := p.SetBounds(tc.lx, tc.ux, tc.lz, tc.uz)
		assert.ErrorIs(t, err, builder.ErrInvalidBounds, tc.name)
	}
	lx, ux, lz, uz := p.Bounds()
	assert.Equal(t, [4]float64{0, 1, 0, 1}, [4]float64{lx, ux, lz, uz}, "failed SetBounds must not change state")

	c, _ := builder.NewCylinder(module.ConstValue(0))
	assert.ErrorIs(t, c.SetBounds(10, -10, 0, 1), builder.ErrInvalidBounds)
	s, _ := builder.NewSphere(module.ConstValue(0))
	assert.ErrorIs(t, s.SetBounds(-90, 90, 20, 20), builder.ErrInvalidBounds)
	require.NoError(t, s.SetBounds(-45, 45, -90, 90))
}

func TestSetSizeAndSource(t *testing.T) {
	t.Parallel()

	p, err := builder.NewPlane(module.ConstValue(0), builder.WithSize(8, 4))
	require.NoError(t, err)
	assert.ErrorIs(t, p.SetSize(0, 4), builder.ErrInvalidSize)
	require.NoError(t, p.SetSize(3, 2))
	w, h := p.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	assert.ErrorIs(t, p.SetSourceModule(nil), builder.ErrMissingSourceModule)
	require.NoError(t, p.SetSourceModule(module.ConstValue(7)))

	m, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, []float64{7, 7, 7, 7, 7, 7}, m.Values())
}

func TestZeroValueBuilders(t *testing.T) {
	t.Parallel()

	for name, b := range map[string]builder.Builder{
		"plane":    &builder.Plane{},
		"cylinder": &builder.Cylinder{},
		"sphere":   &builder.Sphere{},
	} {
		m, err := b.Build()
		assert.Nil(t, m, name)
		assert.ErrorIs(t, err, builder.ErrMissingSourceModule, name)
	}
}

func TestPlane_SamplePoints(t *testing.T) {
	t.Parallel()

	p, err := builder.NewPlane(planar{}, builder.WithSize(4, 4))
	require.NoError(t, err)
	require.NoError(t, p.SetBounds(0, 4, 0, 8))

	m, err := p.Build()
	require.NoError(t, err)
	// x step 1, z step 2.
	assert.Equal(t, 0.0, cell(t, m, 0, 0))
	assert.Equal(t, 3.0+100*4, cell(t, m, 3, 2))
	assert.Equal(t, 1.0+100*6, cell(t, m, 1, 3))
}

func TestPlane_SeamlessLinearFieldIsFlat(t *testing.T) {
	t.Parallel()

	// For f(x) = x the blend of f(x) and f(x+extent) weighted by
	// 1-(x-lower)/extent equals upper everywhere.
	p, err := builder.NewPlane(axis(0), builder.WithSize(16, 8), builder.WithSeamless(true))
	require.NoError(t, err)
	require.NoError(t, p.SetBounds(0, 4, -2, 2))
	assert.True(t, p.Seamless())

	m, err := p.Build()
	require.NoError(t, err)
	for _, v := range m.Values() {
		assert.InDelta(t, 4.0, v, 1e-9)
	}

	p.SetSeamless(false)
	m, err = p.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, cell(t, m, 0, 0))
	assert.Equal(t, 3.75, cell(t, m, 15, 0))
}

func TestCylinder_SamplePoints(t *testing.T) {
	t.Parallel()

	c, err := builder.NewCylinder(axis(0), builder.WithSize(4, 4))
	require.NoError(t, err)
	m, err := c.Build()
	require.NoError(t, err)
	// Angles -180, -90, 0, 90 → x = cos(angle).
	want := []float64{-1, 0, 1, 0}
	for x, w := range want {
		assert.InDelta(t, w, cell(t, m, x, 0), 1e-12)
	}

	c2, err := builder.NewCylinder(axis(1), builder.WithSize(2, 4))
	require.NoError(t, err)
	m, err = c2.Build()
	require.NoError(t, err)
	// Heights -1, -0.5, 0, 0.5.
	for y, w := range []float64{-1, -0.5, 0, 0.5} {
		assert.Equal(t, w, cell(t, m, 1, y))
	}
}

func TestSphere_SamplePoints(t *testing.T) {
	t.Parallel()

	s, err := builder.NewSphere(axis(1), builder.WithSize(2, 4))
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)
	// Rows start at the south pole: latitudes -90, -45, 0, 45 → y = sin(lat).
	for y, lat := range []float64{-90, -45, 0, 45} {
		assert.InDelta(t, math.Sin(lat*math.Pi/180), cell(t, m, 0, y), 1e-12)
	}

	require.NoError(t, s.SetBounds(0, 10, -180, 180))
	m, err = s.Build()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cell(t, m, 0, 0), 1e-12)
	assert.InDelta(t, math.Sin(7.5*math.Pi/180), cell(t, m, 1, 3), 1e-12)
}

func TestBuild_PropagatesFirstRowError(t *testing.T) {
	t.Parallel()

	for _, opts := range [][]builder.BuilderOption{
		{builder.WithSize(4, 8)},
		{builder.WithSize(4, 8), builder.WithParallel()},
	} {
		p, err := builder.NewPlane(failAbove(0.5), opts...)
		require.NoError(t, err)

		m, err := p.Build()
		assert.Nil(t, m)
		require.ErrorIs(t, err, errBoom)
		// z = y/8 reaches 0.5 at row 4.
		assert.Contains(t, err.Error(), "builder: Plane.Build: row 4")
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	perlin, err := module.NewPerlin(module.WithSeed(7), module.WithFrequency(3))
	require.NoError(t, err)

	seq, err := builder.NewSphere(perlin, builder.WithSize(48, 24))
	require.NoError(t, err)
	par, err := builder.NewSphere(perlin, builder.WithSize(48, 24), builder.WithParallel())
	require.NoError(t, err)

	a, err := seq.Build()
	require.NoError(t, err)
	b, err := par.Build()
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
}

func TestBuild_ReturnsFreshMap(t *testing.T) {
	t.Parallel()

	p, err := builder.NewPlane(module.ConstValue(1), builder.WithSize(2, 2))
	require.NoError(t, err)
	a, err := p.Build()
	require.NoError(t, err)
	b, err := p.Build()
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 9))
	assert.Equal(t, 1.0, cell(t, b, 0, 0))
}
