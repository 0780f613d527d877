// Package vec2d_test provides benchmarks for Vec2D construction and row access.
package vec2d_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgrid/vec2d"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{128, 512, 2002}

// sinks to defeat dead-code elimination
var (
	sinkG *vec2d.Vec2D[float64]
	sinkF float64
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkG = vec2d.New[float64](n, n)
			}
		})
	}
}

// BenchmarkRowSweep reads every cell through row views.
func BenchmarkRowSweep(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := vec2d.New[float64](n, n)
			g.Fill(1)
			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				var s float64
				for j := 0; j < g.Rows(); j++ {
					for _, v := range g.Row(j) {
						s += v
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	x := vec2d.New[float64](2002, 2002)
	y := vec2d.New[float64](2002, 2002)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
	sinkG = x
}
