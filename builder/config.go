// SPDX-License-Identifier: MIT
// Package: lvnoise/builder
//
// config.go — resolved builder configuration.

package builder

// builderConfig holds the resolved options shared by every builder kind.
type builderConfig struct {
	width    int      // destination width in cells
	height   int      // destination height in cells
	seamless bool     // Plane only: blend opposite edges
	parallel bool     // fill rows via parallel.For
	metrics  *Metrics // nil disables instrumentation
}

// newBuilderConfig applies defaults, then each non-nil option in order.
// Later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
