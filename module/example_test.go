package module_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnoise/module"
)

// ExampleNewAdd composes two constants.
func ExampleNewAdd() {
	sum, err := module.NewAdd(module.ConstValue(2), module.ConstValue(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := sum.GetValue(0, 0, 0)
	fmt.Println(v)
	// Output: 5
}

// ExampleNewClamp shows bound validation surfacing as a sentinel error.
func ExampleNewClamp() {
	_, err := module.NewClamp(module.ConstValue(0), module.WithBounds(2, 1))
	fmt.Println(errors.Is(err, module.ErrInvalidBounds))
	// Output: true
}

// ExampleNewSelect builds a small terrain-like graph and checks it.
func ExampleNewSelect() {
	hills, _ := module.NewBillow(module.WithFrequency(2))
	flat, _ := module.NewScaleBias(hills, module.WithScale(0.125), module.WithBias(-0.75))
	mountains, _ := module.NewRidgedMulti()
	ctrl, _ := module.NewPerlin(module.WithFrequency(0.5), module.WithPersistence(0.25))
	terrain, _ := module.NewSelect(flat, mountains, ctrl,
		module.WithBounds(0, 1000), module.WithEdgeFalloff(0.125))

	n, _ := module.Count(terrain)
	fmt.Println(n, module.CheckGraph(terrain))
	// Output: 5 <nil>
}
