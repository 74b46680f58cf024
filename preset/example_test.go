package preset_test

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/preset"
)

func ExampleNames() {
	for _, name := range preset.Names() {
		fmt.Println(name)
	}
	// Output:
	// clouds
	// granite
	// marble
	// planet
	// terrain
	// wood
}

func ExampleNew() {
	p := preset.DefaultParams()
	p.Seed = 7

	root, err := preset.New(preset.Granite, p)
	if err != nil {
		fmt.Println(err)
		return
	}
	plane, _ := builder.NewPlane(root, builder.WithSize(32, 32))
	m, err := plane.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Width(), m.Height())
	// Output: 32 32
}
