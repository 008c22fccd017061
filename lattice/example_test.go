package lattice_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/lattice"
)

// ExampleNiggliReduce straightens a heavily sheared description of a
// cubic lattice.
func ExampleNiggliReduce() {
	c, _ := cell.New(
		geom.Mat3{{4, 0, 0}, {8, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})

	red, _ := lattice.NiggliReduce(c, 1e-5)
	lat := red.Lattice()
	fmt.Printf("norms: %.0f %.0f %.0f, volume %.0f\n",
		geom.Norm(lat[0]), geom.Norm(lat[1]), geom.Norm(lat[2]), math.Abs(red.Volume()))
	// Output: norms: 4 4 4, volume 64
}
