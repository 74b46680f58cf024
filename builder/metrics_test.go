// Package builder contains internal tests for Metrics and builderConfig.
package builder

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/module"
)

type failing struct{}

func (failing) GetValue(_, _, _ float64) (float64, error) { return 0, errors.New("boom") }
func (failing) SourceModules() []module.Module          { return nil }

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, DefaultWidth, cfg.width)
	assert.Equal(t, DefaultHeight, cfg.height)
	assert.False(t, cfg.seamless)
	assert.False(t, cfg.parallel)
	assert.Nil(t, cfg.metrics)

	// Later options override earlier ones; nil options are skipped.
	cfg = newBuilderConfig(WithSize(4, 2), nil, WithSize(8, 3), WithParallel(), WithSeamless(true))
	assert.Equal(t, 8, cfg.width)
	assert.Equal(t, 3, cfg.height)
	assert.True(t, cfg.parallel)
	assert.True(t, cfg.seamless)
}

func TestMetrics_ObserveBuilds(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	p, err := NewPlane(module.ConstValue(1), WithSize(4, 3), WithMetrics(m))
	require.NoError(t, err)
	_, err = p.Build()
	require.NoError(t, err)
	_, err = p.Build()
	require.NoError(t, err)

	require.NoError(t, p.SetSourceModule(failing{}))
	_, err = p.Build()
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.builds.WithLabelValues(KindPlane, ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.builds.WithLabelValues(KindPlane, ResultError)))
	assert.Equal(t, 24.0, testutil.ToFloat64(m.points.WithLabelValues(KindPlane)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.points.WithLabelValues(KindSphere)))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, n) // builds{ok,error} + points{plane,sphere} + duration{plane}
}

func TestMetrics_ReuseOnSameRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a, err := NewMetrics(reg)
	require.NoError(t, err)
	b, err := NewMetrics(reg)
	require.NoError(t, err)
	assert.Same(t, a.builds, b.builds)
	assert.Same(t, a.duration, b.duration)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() { m.observe(KindPlane, 10, time.Millisecond, nil) })
}
