package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvnoise/builder"
	"github.com/katalvlaran/lvnoise/module"
)

func benchPlane(b *testing.B, opts ...builder.BuilderOption) {
	perlin, err := module.NewPerlin(module.WithSeed(3))
	if err != nil {
		b.Fatal(err)
	}
	p, err := builder.NewPlane(perlin, append([]builder.BuilderOption{builder.WithSize(128, 128)}, opts...)...)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPlane_Sequential(b *testing.B) { benchPlane(b) }

func BenchmarkPlane_Parallel(b *testing.B) { benchPlane(b, builder.WithParallel()) }

func BenchmarkPlane_Seamless(b *testing.B) { benchPlane(b, builder.WithSeamless(true)) }
