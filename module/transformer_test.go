package module_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDisplace checks each axis is offset by its own module.
func TestDisplace(t *testing.T) {
	for ax, want := range []float64{1.5, 2.5, 3.5} {
		d, err := module.NewDisplace(axis(ax), mustConst(1), mustConst(2), mustConst(3))
		require.NoError(t, err)
		v, err := d.GetValue(0.5, 0.5, 0.5)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err := module.NewDisplace(identity, mustConst(1), nil, mustConst(3))
	assert.ErrorIs(t, err, module.ErrMissingSourceModule)

	d, err := module.NewDisplace(identity, mustConst(0), mustConst(0), failing{})
	require.NoError(t, err)
	_, err = d.GetValue(0, 0, 0)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, d.SetDisplaceModules(nil, nil, nil), module.ErrMissingSourceModule)
	assert.Len(t, d.SourceModules(), 4)

	var zero module.Displace
	_, err = zero.GetValue(0, 0, 0)
	assert.ErrorIs(t, err, module.ErrMissingSourceModule)
}

// TestRotatePoint checks identity and a quarter turn about z.
func TestRotatePoint(t *testing.T) {
	r, err := module.NewRotatePoint(axis(0))
	require.NoError(t, err)
	v, err := r.GetValue(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	require.NoError(t, module.Apply(r, module.WithAngles(0, 0, 90)))
	x, y, z := r.Angles()
	assert.Equal(t, [3]float64{0, 0, 90}, [3]float64{x, y, z})

	v, err = r.GetValue(1, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)

	ry, err := module.NewRotatePoint(axis(1), module.WithAngles(0, 0, 90))
	require.NoError(t, err)
	v, err = ry.GetValue(1, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, v, 1e-12)

	rz, err := module.NewRotatePoint(axis(2), module.WithAngles(0, 0, 90))
	require.NoError(t, err)
	v, err = rz.GetValue(1, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)

	// Single-axis setters keep the other angles.
	rz.SetXAngle(30)
	x, y, z = rz.Angles()
	assert.Equal(t, [3]float64{30, 0, 90}, [3]float64{x, y, z})
}

// TestRotatePreservesLength checks the matrix is orthonormal.
func TestRotatePreservesLength(t *testing.T) {
	r, err := module.NewRotatePoint(identity, module.WithAngles(17, -43, 120))
	require.NoError(t, err)
	m := r.Matrix()
	p := m.Mul3x1([3]float64{1, 2, 3})
	assert.InDelta(t, 14.0, p.Dot(p), 1e-12)
	assert.InDelta(t, 1.0, m.Det(), 1e-12)
}

// TestScaleAndTranslatePoint checks per-axis scaling and offsets.
func TestScaleAndTranslatePoint(t *testing.T) {
	s, err := module.NewScalePoint(axis(1), module.WithScales(2, 3, 4))
	require.NoError(t, err)
	v, _ := s.GetValue(1, 1, 1)
	assert.Equal(t, 3.0, v)
	s.SetScale(0.5)
	v, _ = s.GetValue(1, 1, 1)
	assert.Equal(t, 0.5, v)
	s.SetYScale(10)
	x, y, z := s.Scales()
	assert.Equal(t, [3]float64{0.5, 10, 0.5}, [3]float64{x, y, z})

	tp, err := module.NewTranslatePoint(axis(2), module.WithTranslation(1, 2, 3))
	require.NoError(t, err)
	v, _ = tp.GetValue(0, 0, 0)
	assert.Equal(t, 3.0, v)
	tp.SetTranslation(-1)
	v, _ = tp.GetValue(0, 0, 0)
	assert.Equal(t, -1.0, v)
	tp.SetZTranslation(0)
	v, _ = tp.GetValue(0, 0, 7)
	assert.Equal(t, 7.0, v)

	_, err = module.NewScalePoint(nil)
	assert.ErrorIs(t, err, module.ErrMissingSourceModule)
}

// TestTurbulence checks defaults, lockstep parameters and recorded offsets.
func TestTurbulence(t *testing.T) {
	want := []float64{-0.34600391243327633, -0.8025501412248215, -0.012510335062369649}
	for ax := range want {
		tb, err := module.NewTurbulence(axis(ax))
		require.NoError(t, err)
		v, err := tb.GetValue(0.1, 0.2, 0.3)
		require.NoError(t, err)
		assert.InDelta(t, want[ax], v, fixtureDelta, "axis %d", ax)
	}

	tb, err := module.NewTurbulence(identity)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tb.Frequency())
	assert.Equal(t, 1.0, tb.Power())
	assert.Equal(t, 3, tb.Roughness())
	assert.Equal(t, int32(0), tb.Seed())
	assert.Equal(t, []module.Module{identity}, tb.SourceModules())

	require.NoError(t, module.Apply(tb, module.WithFrequency(2), module.WithRoughness(5), module.WithSeed(9)))
	assert.Equal(t, 2.0, tb.Frequency())
	assert.Equal(t, 5, tb.Roughness())
	assert.Equal(t, int32(9), tb.Seed())
	assert.ErrorIs(t, tb.SetRoughness(0), module.ErrInvalidParameter)

	// Zero power leaves the point untouched.
	tb.SetPower(0)
	v, err := tb.GetValue(0.1, 0.2, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.1, v)
}
