// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// options.go — functional options shared by all module constructors.
//
// Contract:
//   • Option is func(Module) error. Each WithX asserts the target exposes the
//     matching setter and returns ErrUnsupportedOption otherwise.
//   • Non-finite numbers are rejected with ErrInvalidParameter before the
//     setter runs.
//   • Constructors set defaults first and then apply options in order; the
//     first failing option aborts construction.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/noisegen"
)

// Option configures a module during construction.
type Option func(Module) error

// Apply runs opts against m in order. It is what every constructor uses, and
// may also be used to reconfigure an existing module in one call.
func Apply(m Module, opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(m); err != nil {
			return err
		}
	}
	return nil
}

func unsupported(option string, m Module) error {
	return fmt.Errorf("%s on %T: %w", option, m, ErrUnsupportedOption)
}

// floatOption builds an option for a single float setter.
func floatOption[S any](name string, v float64, set func(S, float64) error) Option {
	return func(m Module) error {
		if err := checkFinite(name, v); err != nil {
			return err
		}
		s, ok := m.(S)
		if !ok {
			return unsupported(name, m)
		}
		return set(s, v)
	}
}

// WithFrequency sets the base frequency of a generator or Turbulence.
func WithFrequency(f float64) Option {
	return floatOption("WithFrequency", f, func(s interface{ SetFrequency(float64) }, v float64) error {
		s.SetFrequency(v)
		return nil
	})
}

// WithLacunarity sets the per-octave frequency multiplier.
func WithLacunarity(l float64) Option {
	return floatOption("WithLacunarity", l, func(s interface{ SetLacunarity(float64) }, v float64) error {
		s.SetLacunarity(v)
		return nil
	})
}

// WithPersistence sets the per-octave amplitude multiplier.
func WithPersistence(p float64) Option {
	return floatOption("WithPersistence", p, func(s interface{ SetPersistence(float64) }, v float64) error {
		s.SetPersistence(v)
		return nil
	})
}

// WithOctaveCount sets the number of octaves, 1..MaxOctaves.
func WithOctaveCount(n int) Option {
	return func(m Module) error {
		s, ok := m.(interface{ SetOctaveCount(int) error })
		if !ok {
			return unsupported("WithOctaveCount", m)
		}
		return s.SetOctaveCount(n)
	}
}

// WithSeed sets the seed of a generator or Turbulence.
func WithSeed(seed int32) Option {
	return func(m Module) error {
		s, ok := m.(interface{ SetSeed(int32) })
		if !ok {
			return unsupported("WithSeed", m)
		}
		s.SetSeed(seed)
		return nil
	}
}

// WithQuality sets the coherent-noise interpolation quality.
func WithQuality(q noisegen.Quality) Option {
	return func(m Module) error {
		s, ok := m.(interface {
			SetQuality(noisegen.Quality) error
		})
		if !ok {
			return unsupported("WithQuality", m)
		}
		return s.SetQuality(q)
	}
}

// WithOffset sets the ridge offset of RidgedMulti.
func WithOffset(o float64) Option {
	return floatOption("WithOffset", o, func(s interface{ SetOffset(float64) }, v float64) error {
		s.SetOffset(v)
		return nil
	})
}

// WithGain sets the feedback gain of RidgedMulti.
func WithGain(g float64) Option {
	return floatOption("WithGain", g, func(s interface{ SetGain(float64) }, v float64) error {
		s.SetGain(v)
		return nil
	})
}

// WithDisplacement sets the per-cell value range of Voronoi.
func WithDisplacement(d float64) Option {
	return floatOption("WithDisplacement", d, func(s interface{ SetDisplacement(float64) }, v float64) error {
		s.SetDisplacement(v)
		return nil
	})
}

// WithDistance toggles the distance term of Voronoi.
func WithDistance(enabled bool) Option {
	return func(m Module) error {
		s, ok := m.(interface{ EnableDistance(bool) })
		if !ok {
			return unsupported("WithDistance", m)
		}
		s.EnableDistance(enabled)
		return nil
	}
}

// WithBounds sets both bounds of Clamp or Select atomically.
func WithBounds(lower, upper float64) Option {
	return func(m Module) error {
		if err := checkFinite("WithBounds", lower, upper); err != nil {
			return err
		}
		s, ok := m.(interface{ SetBounds(float64, float64) error })
		if !ok {
			return unsupported("WithBounds", m)
		}
		return s.SetBounds(lower, upper)
	}
}

// WithEdgeFalloff sets the transition width of Select.
func WithEdgeFalloff(e float64) Option {
	return floatOption("WithEdgeFalloff", e, func(s interface{ SetEdgeFalloff(float64) error }, v float64) error {
		return s.SetEdgeFalloff(v)
	})
}

// WithExponent sets the exponent of Exponent.
func WithExponent(e float64) Option {
	return floatOption("WithExponent", e, func(s interface{ SetExponent(float64) }, v float64) error {
		s.SetExponent(v)
		return nil
	})
}

// WithScale sets the multiplier of ScaleBias, or all three axis scales of
// ScalePoint.
func WithScale(k float64) Option {
	return floatOption("WithScale", k, func(s interface{ SetScale(float64) }, v float64) error {
		s.SetScale(v)
		return nil
	})
}

// WithScales sets per-axis scales of ScalePoint.
func WithScales(x, y, z float64) Option {
	return func(m Module) error {
		if err := checkFinite("WithScales", x, y, z); err != nil {
			return err
		}
		s, ok := m.(interface{ SetScales(float64, float64, float64) })
		if !ok {
			return unsupported("WithScales", m)
		}
		s.SetScales(x, y, z)
		return nil
	}
}

// WithBias sets the additive term of ScaleBias.
func WithBias(b float64) Option {
	return floatOption("WithBias", b, func(s interface{ SetBias(float64) }, v float64) error {
		s.SetBias(v)
		return nil
	})
}

// WithPower sets the distortion scale of Turbulence.
func WithPower(p float64) Option {
	return floatOption("WithPower", p, func(s interface{ SetPower(float64) }, v float64) error {
		s.SetPower(v)
		return nil
	})
}

// WithRoughness sets the octave count of the Turbulence distortion noise.
func WithRoughness(r int) Option {
	return func(m Module) error {
		s, ok := m.(interface{ SetRoughness(int) error })
		if !ok {
			return unsupported("WithRoughness", m)
		}
		return s.SetRoughness(r)
	}
}

// WithAngles sets the rotation of RotatePoint in degrees.
func WithAngles(x, y, z float64) Option {
	return func(m Module) error {
		if err := checkFinite("WithAngles", x, y, z); err != nil {
			return err
		}
		s, ok := m.(interface{ SetAngles(float64, float64, float64) })
		if !ok {
			return unsupported("WithAngles", m)
		}
		s.SetAngles(x, y, z)
		return nil
	}
}

// WithTranslation sets per-axis offsets of TranslatePoint.
func WithTranslation(x, y, z float64) Option {
	return func(m Module) error {
		if err := checkFinite("WithTranslation", x, y, z); err != nil {
			return err
		}
		s, ok := m.(interface{ SetTranslations(float64, float64, float64) })
		if !ok {
			return unsupported("WithTranslation", m)
		}
		s.SetTranslations(x, y, z)
		return nil
	}
}

// WithInverted toggles terrace inversion.
func WithInverted(inverted bool) Option {
	return func(m Module) error {
		s, ok := m.(interface{ SetInverted(bool) })
		if !ok {
			return unsupported("WithInverted", m)
		}
		s.SetInverted(inverted)
		return nil
	}
}

// WithValue sets the output of Const.
func WithValue(c float64) Option {
	return floatOption("WithValue", c, func(s interface{ SetValue(float64) }, v float64) error {
		s.SetValue(v)
		return nil
	})
}
