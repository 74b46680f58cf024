// SPDX-License-Identifier: MIT
// Package: lvnoise/cmd/noisemap
//
// Command noisemap renders a preset module graph to a greyscale PNG.
//
// Usage:
//
//	noisemap [-config file.yaml] [-preset name] [-output file.png]
//
// Without -config, $LVNOISE_CONFIG is consulted; without either the
// built-in defaults render the "terrain" preset onto a 256×256 plane.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/internal/config"
	"github.com/katalvlaran/lvnoise/internal/logging"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/preset"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logging.Error("noisemap: %v", err)
		}
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("noisemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file (default $"+config.EnvPath+")")
	presetName := fs.String("preset", "", "preset to render, overrides the config")
	output := fs.String("output", "", "PNG output path, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *presetName != "" {
		cfg.Preset.Name = *presetName
	}
	if *output != "" {
		cfg.Output = *output
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := logging.New(stderr, cfg.Level())
	if cfg.LogFile != "" {
		if err = log.OpenFile(cfg.LogFile, logging.TRACE); err != nil {
			return err
		}
		defer log.Close()
	}
	logging.SetDefault(log)

	root, err := preset.New(cfg.Preset.Name, cfg.Preset.Params)
	if err != nil {
		return err
	}
	if err = module.CheckGraph(root); err != nil {
		return err
	}
	n, err := module.Count(root)
	if err != nil {
		return err
	}
	log.Debugf("preset %s: %d modules, seed %d, frequency ×%g, %d octaves",
		cfg.Preset.Name, n, cfg.Preset.Seed, cfg.Preset.Frequency, cfg.Preset.Octaves)

	reg := prometheus.NewRegistry()
	metrics, err := builder.NewMetrics(reg)
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg, root, metrics)
	if err != nil {
		return err
	}

	log.Infof("rendering %s on a %s, %dx%d", cfg.Preset.Name, cfg.Builder.Kind, cfg.Builder.Width, cfg.Builder.Height)
	nm, err := b.Build()
	if err != nil {
		return err
	}

	st := nm.Stats()
	log.Infof("stats: min %.4f, max %.4f, mean %.4f, stddev %.4f", st.Min, st.Max, st.Mean, st.StdDev)
	if st.Min < cfg.Image.Lower || st.Max > cfg.Image.Upper {
		log.Warnf("values outside image range [%g, %g] are clipped", cfg.Image.Lower, cfg.Image.Upper)
	}

	if err = writePNG(cfg, nm.WritePNG); err != nil {
		return err
	}
	log.Infof("wrote %s", cfg.Output)

	if cfg.Metrics {
		return logMetrics(log, reg)
	}
	return nil
}

// newBuilder creates the builder named by cfg.Builder.Kind.
func newBuilder(cfg *config.Config, root module.Module, m *builder.Metrics) (builder.Builder, error) {
	opts := []builder.BuilderOption{
		builder.WithSize(cfg.Builder.Width, cfg.Builder.Height),
		builder.WithMetrics(m),
		builder.WithSeamless(cfg.Builder.Seamless),
	}
	if cfg.Builder.Parallel {
		opts = append(opts, builder.WithParallel())
	}
	bb := cfg.Builder.Bounds

	switch cfg.Builder.Kind {
	case config.KindCylinder:
		c, err := builder.NewCylinder(root, opts...)
		if err == nil && len(bb) == 4 {
			err = c.SetBounds(bb[0], bb[1], bb[2], bb[3])
		}
		return c, err
	case config.KindSphere:
		s, err := builder.NewSphere(root, opts...)
		if err == nil && len(bb) == 4 {
			err = s.SetBounds(bb[0], bb[1], bb[2], bb[3])
		}
		return s, err
	default:
		p, err := builder.NewPlane(root, opts...)
		if err == nil && len(bb) == 4 {
			err = p.SetBounds(bb[0], bb[1], bb[2], bb[3])
		}
		return p, err
	}
}

func writePNG(cfg *config.Config, write func(io.Writer, float64, float64) error) (err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err = write(w, cfg.Image.Lower, cfg.Image.Upper); err != nil {
		return err
	}
	return w.Flush()
}

// logMetrics prints every gathered sample at INFO.
func logMetrics(log *logging.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			log.Infof("metric %s%s = %s", mf.GetName(), labels(m), value(mf.GetType(), m))
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	s := "{"
	for i, lp := range m.GetLabel() {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return s + "}"
}

func value(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count %d, sum %.6fs", h.GetSampleCount(), h.GetSampleSum())
	default:
		return t.String()
	}
}
