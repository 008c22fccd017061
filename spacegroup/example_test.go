package spacegroup_test

import (
	"fmt"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/spacegroup"
	"github.com/katalvlaran/latsym/symmetry"
)

// ExampleClassify identifies rock salt from its conventional cell.
func ExampleClassify() {
	lat := geom.Mat3{{5.64, 0, 0}, {0, 5.64, 0}, {0, 0, 5.64}}
	pos := []geom.Vec3{
		{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
		{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
	}
	types := []int{11, 11, 11, 11, 17, 17, 17, 17}

	c, _ := cell.New(lat, pos, types)
	ds, _ := spacegroup.Classify(c, symmetry.DefaultOptions())
	fmt.Printf("%s (%d), %d operations\n", ds.International, ds.SpacegroupNumber, ds.NOperations)
	// Output: Fm-3m (225), 192 operations
}

// ExampleGet looks up a tabulated Hall setting.
func ExampleGet() {
	tp, _ := spacegroup.Get(530)
	fmt.Printf("%s, hall %q, point group %s\n", tp.International, tp.Hall, tp.PointGroup)
	// Output: Ia-3d, hall "-I 4bd 2c 3", point group m-3m
}
