package model_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/model"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe returns a fixed linear combination of the input point so tests can
// recover which coordinates a model produced.
type probe struct{ kx, ky, kz float64 }

func (p probe) GetValue(x, y, z float64) (float64, error) { return p.kx*x + p.ky*y + p.kz*z, nil }
func (probe) SourceModules() []module.Module            { return nil }

var (
	px = probe{kx: 1}
	py = probe{ky: 1}
	pz = probe{kz: 1}
)

// TestPlane checks the y = 0 mapping.
func TestPlane(t *testing.T) {
	for _, c := range []struct {
		m    probe
		want float64
	}{{px, 2}, {py, 0}, {pz, -3}} {
		p, err := model.NewPlane(c.m)
		require.NoError(t, err)
		v, err := p.GetValue(2, -3)
		require.NoError(t, err)
		assert.Equal(t, c.want, v)
	}
}

// TestCylinder checks angle and height mapping.
func TestCylinder(t *testing.T) {
	cases := []struct {
		m            probe
		angle, h, want float64
	}{
		{px, 0, 5, 1}, {pz, 0, 5, 0}, {py, 0, 5, 5},
		{px, 90, 0, 0}, {pz, 90, 0, 1}, {px, 180, 0, -1},
	}
	for _, c := range cases {
		cyl, err := model.NewCylinder(c.m)
		require.NoError(t, err)
		v, err := cyl.GetValue(c.angle, c.h)
		require.NoError(t, err)
		assert.InDelta(t, c.want, v, 1e-12)
	}
}

// TestSphere checks poles, the prime meridian and unit radius.
func TestSphere(t *testing.T) {
	cases := []struct {
		m              probe
		lat, lon, want float64
	}{
		{py, 90, 0, 1}, {py, -90, 33, -1}, {px, 0, 0, 1}, {pz, 0, 90, 1}, {px, 0, 180, -1},
	}
	for _, c := range cases {
		s, err := model.NewSphere(c.m)
		require.NoError(t, err)
		v, err := s.GetValue(c.lat, c.lon)
		require.NoError(t, err)
		assert.InDelta(t, c.want, v, 1e-12, "lat=%g lon=%g", c.lat, c.lon)
	}

	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 20 {
			x, y, z := model.LatLonToXYZ(lat, lon)
			assert.InDelta(t, 1.0, x*x+y*y+z*z, 1e-12)
		}
	}
}

// TestLine checks interpolation between end points and attenuation.
func TestLine(t *testing.T) {
	one := module.ConstValue(1)
	l, err := model.NewLine(one)
	require.NoError(t, err)
	assert.True(t, l.Attenuate())

	for _, c := range []struct{ p, want float64 }{{0, 0}, {0.5, 1}, {1, 0}, {0.25, 0.75}} {
		v, err := l.GetValue(c.p)
		require.NoError(t, err)
		assert.InDelta(t, c.want, v, 1e-15)
	}

	l2, err := model.NewLine(px)
	require.NoError(t, err)
	l2.SetAttenuate(false)
	l2.SetStartPoint(2, 0, 0)
	l2.SetEndPoint(4, 0, 0)
	v, err := l2.GetValue(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-15)
	start, end := l2.Points()
	assert.Equal(t, 2.0, start[0])
	assert.Equal(t, 4.0, end[0])
}

// TestMissingModule checks models refuse nil sources.
func TestMissingModule(t *testing.T) {
	_, err := model.NewPlane(nil)
	assert.ErrorIs(t, err, model.ErrMissingSourceModule)
	assert.ErrorIs(t, err, module.ErrMissingSourceModule)

	var typedNil *module.Perlin
	_, err = model.NewSphere(typedNil)
	assert.ErrorIs(t, err, model.ErrMissingSourceModule)

	var zero model.Cylinder
	_, err = zero.GetValue(0, 0)
	assert.ErrorIs(t, err, model.ErrMissingSourceModule)

	p, err := model.NewPlane(px)
	require.NoError(t, err)
	assert.ErrorIs(t, p.SetModule(nil), model.ErrMissingSourceModule)
	assert.Equal(t, module.Module(px), p.Module())
}
