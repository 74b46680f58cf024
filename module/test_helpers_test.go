package module_test

import (
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/lvnoise/module"
)

var errBoom = errors.New("boom")

// failing always returns errBoom.
type failing struct{}

func (failing) GetValue(_, _, _ float64) (float64, error) { return 0, errBoom }
func (failing) SourceModules() []module.Module          { return nil }

// counting returns x+y+z and counts evaluations.
type counting struct {
	calls atomic.Int64
}

func (c *counting) GetValue(x, y, z float64) (float64, error) {
	c.calls.Add(1)
	return x + y + z, nil
}
func (c *counting) SourceModules() []module.Module { return nil }

// axis returns one input coordinate unchanged.
type axis int

func (a axis) GetValue(x, y, z float64) (float64, error) {
	return [3]float64{x, y, z}[a], nil
}
func (axis) SourceModules() []module.Module { return nil }

// identity returns its x input, so a Const-free source can be steered by x.
var identity = axis(0)

func mustConst(v float64) *module.Const { return module.ConstValue(v) }
