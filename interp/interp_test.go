package interp_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/interp"
	"github.com/stretchr/testify/assert"
)

// TestLinearEndpoints checks that Linear returns the exact endpoints.
func TestLinearEndpoints(t *testing.T) {
	cases := []struct{ a, b float64 }{
		{0, 1}, {-3.5, 2.25}, {1e9, -1e9}, {0.1, 0.7},
	}
	for _, c := range cases {
		assert.Equal(t, c.a, interp.Linear(c.a, c.b, 0))
		assert.Equal(t, c.b, interp.Linear(c.a, c.b, 1))
	}
	assert.InDelta(t, 0.5, interp.Linear(0, 1, 0.5), 1e-15)
}

// TestCubicEndpoints checks that Cubic passes through n1 and n2.
func TestCubicEndpoints(t *testing.T) {
	n0, n1, n2, n3 := -1.0, 0.25, 0.75, 2.0
	assert.InDelta(t, n1, interp.Cubic(n0, n1, n2, n3, 0), 1e-15)
	assert.InDelta(t, n2, interp.Cubic(n0, n1, n2, n3, 1), 1e-15)

	// Collinear samples give a straight line.
	assert.InDelta(t, 1.5, interp.Cubic(0, 1, 2, 3, 0.5), 1e-12)
}

// TestSCurves checks endpoints, midpoint symmetry and flat tangents.
func TestSCurves(t *testing.T) {
	const h = 1e-6
	for name, f := range map[string]func(float64) float64{
		"cubic":   interp.CubicSCurve,
		"quintic": interp.QuinticSCurve,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, f(0))
			assert.Equal(t, 1.0, f(1))
			assert.InDelta(t, 0.5, f(0.5), 1e-15)

			// Numerical derivative at both ends is ~0.
			assert.InDelta(t, 0, (f(h)-f(0))/h, 1e-5)
			assert.InDelta(t, 0, (f(1)-f(1-h))/h, 1e-5)

			// Monotone on [0,1].
			prev := f(0)
			for i := 1; i <= 100; i++ {
				cur := f(float64(i) / 100)
				assert.GreaterOrEqual(t, cur, prev)
				prev = cur
			}
		})
	}
}
