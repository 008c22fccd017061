package spacegroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/spacegroup"
	"github.com/katalvlaran/latsym/symmetry"
)

func mustCell(t *testing.T, lat geom.Mat3, pos []geom.Vec3, types []int) *cell.Cell {
	t.Helper()
	c, err := cell.New(lat, pos, types)
	require.NoError(t, err)

	return c
}

func classify(t *testing.T, c *cell.Cell) *spacegroup.Dataset {
	t.Helper()
	ds, err := spacegroup.Classify(c, symmetry.DefaultOptions())
	require.NoError(t, err)

	return ds
}

func cubic(a float64) geom.Mat3 {
	return geom.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// TestGet_Bounds pins the lookup boundaries and two well-known rows.
func TestGet_Bounds(t *testing.T) {
	_, err := spacegroup.Get(0)
	assert.ErrorIs(t, err, spacegroup.ErrBadHallNumber)
	_, err = spacegroup.Get(531)
	assert.ErrorIs(t, err, spacegroup.ErrBadHallNumber)

	first, err := spacegroup.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "P1", first.International)
	assert.Equal(t, "P 1", first.Hall)

	last, err := spacegroup.Get(530)
	require.NoError(t, err)
	assert.Equal(t, 230, last.Number)
	assert.Equal(t, "Ia-3d", last.International)
	assert.Equal(t, spacegroup.Cubic, last.System)
}

// TestClassify_SimpleCubic expects Pm-3m for one atom on a cubic
// lattice, with the most symmetric Wyckoff position.
func TestClassify_SimpleCubic(t *testing.T) {
	c := mustCell(t, cubic(4), []geom.Vec3{{0, 0, 0}}, []int{1})
	ds := classify(t, c)

	assert.Equal(t, 221, ds.SpacegroupNumber)
	assert.Equal(t, "Pm-3m", ds.International)
	assert.Equal(t, "m-3m", ds.PointGroup)
	assert.Equal(t, 48, ds.NOperations)
	assert.Equal(t, []byte{'a'}, ds.WyckoffLetters)
	assert.Equal(t, []string{"m-3m"}, ds.SiteSymmetrySymbols)
	assert.Equal(t, []int{0}, ds.EquivalentAtoms)
}

// TestClassify_FCCConventional expects Fm-3m with 192 operations for
// the four-atom conventional cell.
func TestClassify_FCCConventional(t *testing.T) {
	c := mustCell(t, cubic(4.05),
		[]geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
		[]int{13, 13, 13, 13})
	ds := classify(t, c)

	assert.Equal(t, 225, ds.SpacegroupNumber)
	assert.Equal(t, "Fm-3m", ds.International)
	assert.Equal(t, 192, ds.NOperations)
	assert.Equal(t, []int{0, 0, 0, 0}, ds.EquivalentAtoms, "all four atoms share one orbit")
	assert.Equal(t, []int{0, 0, 0, 0}, ds.MapToPrimitive, "one primitive atom")
	for _, l := range ds.WyckoffLetters {
		assert.Equal(t, byte('a'), l)
	}
}

// TestClassify_FCCPrimitive expects the same type from the one-atom
// primitive cell: the centering must be recovered from the lattice.
func TestClassify_FCCPrimitive(t *testing.T) {
	c := mustCell(t,
		geom.Mat3{{0, 2, 2}, {2, 0, 2}, {2, 2, 0}},
		[]geom.Vec3{{0, 0, 0}}, []int{29})
	ds := classify(t, c)

	assert.Equal(t, 225, ds.SpacegroupNumber)
	assert.Equal(t, "Fm-3m", ds.International)
	assert.Equal(t, 48, ds.NOperations, "the primitive cell carries no pure translations")

	// The standardized cell is the conventional cube with volume 4×.
	assert.InDelta(t, 4*geom.Det(c.Lattice()), geom.Det(ds.StdLattice), 1e-6)
	assert.Len(t, ds.StdPositions, 4)
}

// TestClassify_BCC expects Im-3m for the two-atom conventional cell.
func TestClassify_BCC(t *testing.T) {
	c := mustCell(t, cubic(2.87),
		[]geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{26, 26})
	ds := classify(t, c)

	assert.Equal(t, 229, ds.SpacegroupNumber)
	assert.Equal(t, "Im-3m", ds.International)
	assert.Equal(t, 96, ds.NOperations)
}

// TestClassify_RockSalt expects Fm-3m with two distinct orbits, one
// per species.
func TestClassify_RockSalt(t *testing.T) {
	c := mustCell(t, cubic(5.64),
		[]geom.Vec3{
			{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
			{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
		},
		[]int{11, 11, 11, 11, 17, 17, 17, 17})
	ds := classify(t, c)

	assert.Equal(t, 225, ds.SpacegroupNumber)
	assert.Equal(t, []int{0, 0, 0, 0, 4, 4, 4, 4}, ds.EquivalentAtoms)
	assert.Equal(t, byte('a'), ds.WyckoffLetters[0])
	assert.Equal(t, byte('b'), ds.WyckoffLetters[4])
	for _, s := range ds.SiteSymmetrySymbols {
		assert.Equal(t, "m-3m", s, "both rock-salt sites are full-symmetry sites")
	}
}

// TestClassify_CsCl expects the primitive Pm-3m type, not a
// body-centered one, because the two species differ.
func TestClassify_CsCl(t *testing.T) {
	c := mustCell(t, cubic(4.11),
		[]geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{55, 17})
	ds := classify(t, c)

	assert.Equal(t, 221, ds.SpacegroupNumber)
	assert.Equal(t, "Pm-3m", ds.International)
}

// TestClassify_SimpleHexagonal expects P6/mmm for one atom on a
// hexagonal lattice.
func TestClassify_SimpleHexagonal(t *testing.T) {
	c := mustCell(t,
		geom.Mat3{{3, 0, 0}, {-1.5, 2.598076211353316, 0}, {0, 0, 5}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	ds := classify(t, c)

	assert.Equal(t, 191, ds.SpacegroupNumber)
	assert.Equal(t, "P6/mmm", ds.International)
	assert.Equal(t, 24, ds.NOperations)
}

// TestClassify_SimpleTetragonal expects P4/mmm.
func TestClassify_SimpleTetragonal(t *testing.T) {
	c := mustCell(t,
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 6}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	ds := classify(t, c)

	assert.Equal(t, 123, ds.SpacegroupNumber)
	assert.Equal(t, "P4/mmm", ds.International)
	assert.Equal(t, 16, ds.NOperations)
}

// TestClassify_SimpleOrthorhombic expects Pmmm.
func TestClassify_SimpleOrthorhombic(t *testing.T) {
	c := mustCell(t,
		geom.Mat3{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	ds := classify(t, c)

	assert.Equal(t, 47, ds.SpacegroupNumber)
	assert.Equal(t, "Pmmm", ds.International)
	assert.Equal(t, 8, ds.NOperations)
}

// TestClassify_ShiftedOrigin moves every atom off the tabulated origin
// and expects the same type with a compensating origin shift.
func TestClassify_ShiftedOrigin(t *testing.T) {
	shift := geom.Vec3{0.13, 0.07, 0.21}
	c := mustCell(t, cubic(4), []geom.Vec3{shift}, []int{1})
	ds := classify(t, c)

	assert.Equal(t, 221, ds.SpacegroupNumber)

	// x_std = P·x + p must land every standardized atom on a lattice
	// point of the tabulated setting (the 1a site at the origin).
	for _, p := range ds.StdPositions {
		for d := 0; d < 3; d++ {
			w := p[d] - float64(int(p[d]+0.5))
			assert.InDelta(t, 0, w, 1e-4)
		}
	}
}

// TestClassify_NilAndTolerance pins the argument validation path.
func TestClassify_NilAndTolerance(t *testing.T) {
	_, err := spacegroup.Classify(nil, symmetry.DefaultOptions())
	assert.ErrorIs(t, err, symmetry.ErrNilCell)

	c := mustCell(t, cubic(4), []geom.Vec3{{0, 0, 0}}, []int{1})
	_, err = spacegroup.Classify(c, symmetry.Options{Symprec: -1})
	assert.ErrorIs(t, err, symmetry.ErrBadTolerance)
}
