package mesh_test

import (
	"testing"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/mesh"
)

// BenchmarkIrreducible_Cubic16 folds a 16³ grid with the full cubic
// holohedry.
func BenchmarkIrreducible_Cubic16(b *testing.B) {
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	if err != nil {
		b.Fatal(err)
	}
	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{16, 16, 16}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mesh.Irreducible(c, opts); err != nil {
			b.Fatal(err)
		}
	}
}
