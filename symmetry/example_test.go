package symmetry_test

import (
	"fmt"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// ExampleFind derives the operations of body-centered iron.
func ExampleFind() {
	lat := geom.Mat3{{2.87, 0, 0}, {0, 2.87, 0}, {0, 0, 2.87}}
	pos := []geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}

	c, _ := cell.New(lat, pos, []int{26, 26})
	ops, _ := symmetry.Find(c, symmetry.DefaultOptions())
	fmt.Printf("%d operations, %d distinct rotations, %d pure translations\n",
		len(ops), len(symmetry.PointGroupRotations(ops)), len(symmetry.PureTranslations(ops)))
	// Output: 96 operations, 48 distinct rotations, 1 pure translations
}
