package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// BenchmarkFind_FCC measures the full search on the four-atom
// conventional fcc cell.
func BenchmarkFind_FCC(b *testing.B) {
	c, err := cell.New(
		geom.Mat3{{4.05, 0, 0}, {0, 4.05, 0}, {0, 0, 4.05}},
		[]geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
		[]int{13, 13, 13, 13})
	if err != nil {
		b.Fatal(err)
	}
	opts := symmetry.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symmetry.Find(c, opts); err != nil {
			b.Fatal(err)
		}
	}
}
