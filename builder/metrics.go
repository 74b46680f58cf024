// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// metrics.go — Prometheus instrumentation for Build.

package builder

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for the builds counter.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics groups the collectors updated by Build. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	builds   *prometheus.CounterVec   // labels: kind, result
	points   *prometheus.CounterVec   // labels: kind
	duration *prometheus.HistogramVec // labels: kind
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// means prometheus.DefaultRegisterer. Collectors already registered under
// the same names are reused, so two builders sharing a registry report into
// the same series.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvnoise",
			Subsystem: "builder",
			Name:      "builds_total",
			Help:      "Noise map builds by builder kind and result.",
		}, []string{"kind", "result"}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvnoise",
			Subsystem: "builder",
			Name:      "points_total",
			Help:      "Noise map cells written by successful builds.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvnoise",
			Subsystem: "builder",
			Name:      "build_duration_seconds",
			Help:      "Wall time of Build calls.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"kind"}),
	}

	var err error
	if m.builds, err = register(reg, m.builds); err != nil {
		return nil, err
	}
	if m.points, err = register(reg, m.points); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, returning the existing collector on a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("builder: NewMetrics: %w", err)
	}
	return c, nil
}

// observe records one Build of the given kind.
func (m *Metrics) observe(kind string, points int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.builds.WithLabelValues(kind, result).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if err == nil {
		m.points.WithLabelValues(kind).Add(float64(points))
	}
}
