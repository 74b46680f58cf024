package preset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/preset"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"clouds", "granite", "marble", "planet", "terrain", "wood"}, preset.Names())

	// Names returns a fresh slice each call.
	names := preset.Names()
	names[0] = "x"
	assert.Equal(t, "clouds", preset.Names()[0])
}

func TestNew_UnknownPreset(t *testing.T) {
	t.Parallel()

	root, err := preset.New("lava", preset.DefaultParams())
	assert.Nil(t, root)
	assert.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, preset.DefaultParams().Validate())

	bad := map[string]preset.Params{
		"zero value":    {},
		"zero freq":     {Frequency: 0, Octaves: 3},
		"negative freq": {Frequency: -1, Octaves: 3},
		"nan freq":      {Frequency: math.NaN(), Octaves: 3},
		"inf freq":      {Frequency: math.Inf(1), Octaves: 3},
		"zero octaves":  {Frequency: 1, Octaves: 0},
		"many octaves":  {Frequency: 1, Octaves: module.MaxOctaves + 1},
	}
	for name, p := range bad {
		assert.ErrorIs(t, p.Validate(), preset.ErrInvalidParams, name)
		_, err := preset.New(preset.Terrain, p)
		assert.ErrorIs(t, err, preset.ErrInvalidParams, name)
	}
}

// sample sums the root over a small fixed lattice.
func sample(t *testing.T, root module.Module) float64 {
	t.Helper()
	sum := 0.0
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			x, y, z := float64(i)*0.37-0.9, float64(j)*0.21+0.05, float64(i+j)*0.13-0.4
			v, err := root.GetValue(x, y, z)
			require.NoError(t, err)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite output at (%g,%g,%g)", x, y, z)
			sum += v
		}
	}
	return sum
}

func TestEveryPreset(t *testing.T) {
	t.Parallel()

	for _, name := range preset.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := preset.DefaultParams()
			p.Octaves = 4

			a, err := preset.New(name, p)
			require.NoError(t, err)
			require.NoError(t, module.CheckGraph(a))

			b, err := preset.New(name, p)
			require.NoError(t, err)
			assert.NotSame(t, a, b, "each call builds an independent graph")
			assert.Equal(t, sample(t, a), sample(t, b), "same params give the same field")

			p.Seed = 42
			c, err := preset.New(name, p)
			require.NoError(t, err)
			assert.NotEqual(t, sample(t, a), sample(t, c), "seed must change the field")
		})
	}
}

func TestClouds_Clamped(t *testing.T) {
	t.Parallel()

	root, err := preset.New(preset.Clouds, preset.DefaultParams())
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.173
		v, err := root.GetValue(x, -x*0.5, x*0.25)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestPreset_RendersThroughBuilder(t *testing.T) {
	t.Parallel()

	root, err := preset.New(preset.Planet, preset.DefaultParams())
	require.NoError(t, err)

	s, err := builder.NewSphere(root, builder.WithSize(16, 8), builder.WithParallel())
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)

	st := m.Stats()
	assert.Zero(t, st.NaNs)
	assert.GreaterOrEqual(t, st.Min, -2.0)
	assert.LessOrEqual(t, st.Max, 2.0)
	assert.Less(t, st.Min, st.Max)
}
