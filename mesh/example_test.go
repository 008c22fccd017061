package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/mesh"
)

// ExampleIrreducible folds an 8×8×8 Γ-centered grid over simple
// cubic polonium.
func ExampleIrreducible() {
	lat := geom.Mat3{{3.36, 0, 0}, {0, 3.36, 0}, {0, 0, 3.36}}
	c, _ := cell.New(lat, []geom.Vec3{{0, 0, 0}}, []int{84})

	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{8, 8, 8}
	res, _ := mesh.Irreducible(c, opts)
	fmt.Printf("%d of %d points are irreducible\n", res.NumIrreducible, len(res.Mapping))
	// Output: 35 of 512 points are irreducible
}
