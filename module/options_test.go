package module_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptionsApplied checks every option reaches its setter.
func TestOptionsApplied(t *testing.T) {
	p, err := module.NewPerlin(
		module.WithFrequency(0),
		module.WithLacunarity(2.5),
		module.WithOctaveCount(3),
		module.WithPersistence(0),
		module.WithSeed(-4),
		module.WithQuality(noisegen.Fast),
	)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Frequency())
	assert.Equal(t, 2.5, p.Lacunarity())
	assert.Equal(t, 3, p.OctaveCount())
	assert.Equal(t, 0.0, p.Persistence())
	assert.Equal(t, int32(-4), p.Seed())
	assert.Equal(t, noisegen.Fast, p.Quality())

	r, err := module.NewRidgedMulti(module.WithOffset(0.8), module.WithGain(1.5))
	require.NoError(t, err)
	assert.Equal(t, 0.8, r.Offset())
	assert.Equal(t, 1.5, r.Gain())

	e, err := module.NewExponent(identity, module.WithExponent(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Exponent())

	c, err := module.NewConst(module.WithValue(-0.5))
	require.NoError(t, err)
	assert.Equal(t, -0.5, c.Value())
}

// TestOptionsRejected checks unsupported targets and bad values.
func TestOptionsRejected(t *testing.T) {
	cases := []struct {
		name string
		err  error
		ctor func() error
	}{
		{"persistence on ridged", module.ErrUnsupportedOption, func() error {
			_, err := module.NewRidgedMulti(module.WithPersistence(0.5))
			return err
		}},
		{"seed on const", module.ErrUnsupportedOption, func() error {
			_, err := module.NewConst(module.WithSeed(1))
			return err
		}},
		{"bounds on scalebias", module.ErrUnsupportedOption, func() error {
			_, err := module.NewScaleBias(identity, module.WithBounds(0, 1))
			return err
		}},
		{"nan frequency", module.ErrInvalidParameter, func() error {
			_, err := module.NewPerlin(module.WithFrequency(math.NaN()))
			return err
		}},
		{"inf bias", module.ErrInvalidParameter, func() error {
			_, err := module.NewScaleBias(identity, module.WithBias(math.Inf(1)))
			return err
		}},
		{"bad quality", module.ErrInvalidParameter, func() error {
			_, err := module.NewBillow(module.WithQuality(noisegen.Quality(9)))
			return err
		}},
		{"negative falloff", module.ErrInvalidParameter, func() error {
			_, err := module.NewSelect(identity, identity, identity, module.WithEdgeFalloff(-0.1))
			return err
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, c.ctor(), c.err)
		})
	}
}

// TestApplySkipsNil checks nil options are ignored.
func TestApplySkipsNil(t *testing.T) {
	p, err := module.NewPerlin(nil, module.WithSeed(3), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), p.Seed())
}
