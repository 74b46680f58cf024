// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// transformer.go — modules that move the sample point before evaluating
// their source: Displace, ScalePoint and TranslatePoint.

package module

// Displace offsets each coordinate by the output of its own displacement
// module, all sampled at the original point.
type Displace struct {
	source  Module
	x, y, z Module
}

var _ Module = (*Displace)(nil)

// NewDisplace returns a Displace. All four modules are required.
func NewDisplace(src, dx, dy, dz Module) (*Displace, error) {
	if err := requireSources("NewDisplace", src, dx, dy, dz); err != nil {
		return nil, err
	}
	return &Displace{source: src, x: dx, y: dy, z: dz}, nil
}

// Source returns the displaced module.
func (d *Displace) Source() Module { return d.source }

// SetSource replaces the displaced module.
func (d *Displace) SetSource(m Module) error {
	if isNil(m) {
		return wrapf("Displace.SetSource", ErrMissingSourceModule)
	}
	d.source = m
	touch()
	return nil
}

// DisplaceModules returns the x, y and z displacement modules.
func (d *Displace) DisplaceModules() (Module, Module, Module) { return d.x, d.y, d.z }

// SetDisplaceModules replaces all three displacement modules at once.
func (d *Displace) SetDisplaceModules(dx, dy, dz Module) error {
	if err := requireSources("Displace.SetDisplaceModules", dx, dy, dz); err != nil {
		return err
	}
	d.x, d.y, d.z = dx, dy, dz
	touch()
	return nil
}

// SourceModules returns [source, x, y, z].
func (d *Displace) SourceModules() []Module { return []Module{d.source, d.x, d.y, d.z} }

// GetValue implements Module.
func (d *Displace) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("Displace.GetValue", d.source, d.x, d.y, d.z); err != nil {
		return 0, err
	}
	ox, err := d.x.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	oy, err := d.y.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	oz, err := d.z.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	return d.source.GetValue(x+ox, y+oy, z+oz)
}

// ScalePoint multiplies each coordinate by a per-axis factor. Default 1.
type ScalePoint struct {
	single
	sx, sy, sz float64
}

var _ Module = (*ScalePoint)(nil)

// NewScalePoint returns a ScalePoint with unit scales, then applies opts.
func NewScalePoint(src Module, opts ...Option) (*ScalePoint, error) {
	s, err := newSingle("NewScalePoint", src)
	if err != nil {
		return nil, err
	}
	m := &ScalePoint{single: s, sx: 1, sy: 1, sz: 1}
	if err = Apply(m, opts...); err != nil {
		return nil, wrapf("NewScalePoint", err)
	}
	return m, nil
}

// Scales returns the x, y and z factors.
func (m *ScalePoint) Scales() (float64, float64, float64) { return m.sx, m.sy, m.sz }

// SetScale sets all three factors to k.
func (m *ScalePoint) SetScale(k float64) { m.SetScales(k, k, k) }

// SetScales sets the x, y and z factors.
func (m *ScalePoint) SetScales(x, y, z float64) {
	m.sx, m.sy, m.sz = x, y, z
	touch()
}

// SetXScale sets the x factor.
func (m *ScalePoint) SetXScale(k float64) { m.sx = k; touch() }

// SetYScale sets the y factor.
func (m *ScalePoint) SetYScale(k float64) { m.sy = k; touch() }

// SetZScale sets the z factor.
func (m *ScalePoint) SetZScale(k float64) { m.sz = k; touch() }

// GetValue implements Module.
func (m *ScalePoint) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("ScalePoint.GetValue", m.source); err != nil {
		return 0, err
	}
	return m.source.GetValue(x*m.sx, y*m.sy, z*m.sz)
}

// TranslatePoint adds a per-axis offset to each coordinate. Default 0.
type TranslatePoint struct {
	single
	tx, ty, tz float64
}

var _ Module = (*TranslatePoint)(nil)

// NewTranslatePoint returns a TranslatePoint with zero offsets, then applies opts.
func NewTranslatePoint(src Module, opts ...Option) (*TranslatePoint, error) {
	s, err := newSingle("NewTranslatePoint", src)
	if err != nil {
		return nil, err
	}
	m := &TranslatePoint{single: s}
	if err = Apply(m, opts...); err != nil {
		return nil, wrapf("NewTranslatePoint", err)
	}
	return m, nil
}

// Translations returns the x, y and z offsets.
func (m *TranslatePoint) Translations() (float64, float64, float64) { return m.tx, m.ty, m.tz }

// SetTranslation sets all three offsets to t.
func (m *TranslatePoint) SetTranslation(t float64) { m.SetTranslations(t, t, t) }

// SetTranslations sets the x, y and z offsets.
func (m *TranslatePoint) SetTranslations(x, y, z float64) {
	m.tx, m.ty, m.tz = x, y, z
	touch()
}

// SetXTranslation sets the x offset.
func (m *TranslatePoint) SetXTranslation(t float64) { m.tx = t; touch() }

// SetYTranslation sets the y offset.
func (m *TranslatePoint) SetYTranslation(t float64) { m.ty = t; touch() }

// SetZTranslation sets the z offset.
func (m *TranslatePoint) SetZTranslation(t float64) { m.tz = t; touch() }

// GetValue implements Module.
func (m *TranslatePoint) GetValue(x, y, z float64) (float64, error) {
	if err := requireSources("TranslatePoint.GetValue", m.source); err != nil {
		return 0, err
	}
	return m.source.GetValue(x+m.tx, y+m.ty, z+m.tz)
}
