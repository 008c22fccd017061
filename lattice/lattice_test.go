package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/lattice"
)

func shearedCubic(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {8, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	require.NoError(t, err)

	return c
}

func fccConventional(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(
		geom.Mat3{{4.05, 0, 0}, {0, 4.05, 0}, {0, 0, 4.05}},
		[]geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
		[]int{13, 13, 13, 13})
	require.NoError(t, err)

	return c
}

// TestNiggliReduce_Volume checks volume preservation and that the
// reduced basis is no longer sheared.
func TestNiggliReduce_Volume(t *testing.T) {
	c := shearedCubic(t)
	red, err := lattice.NiggliReduce(c, 1e-5)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(c.Volume()), math.Abs(red.Volume()), 1e-8)
	lat := red.Lattice()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 4, geom.Norm(lat[i]), 1e-9)
	}
	assert.Equal(t, c.NumAtoms(), red.NumAtoms())
}

// TestDelaunayReduce_Volume runs the alternative reduction.
func TestDelaunayReduce_Volume(t *testing.T) {
	c := shearedCubic(t)
	red, err := lattice.DelaunayReduce(c, 1e-5)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(c.Volume()), math.Abs(red.Volume()), 1e-8)
}

// TestReduce_BadTolerance rejects non-positive tolerances on both
// reductions.
func TestReduce_BadTolerance(t *testing.T) {
	c := shearedCubic(t)
	_, err := lattice.NiggliReduce(c, 0)
	assert.ErrorIs(t, err, lattice.ErrBadTolerance)
	_, err = lattice.DelaunayReduce(c, -1)
	assert.ErrorIs(t, err, lattice.ErrBadTolerance)
}

// TestStandardize_Validation pins nil-cell and tolerance errors.
func TestStandardize_Validation(t *testing.T) {
	_, err := lattice.Standardize(nil, lattice.DefaultStdOptions())
	assert.ErrorIs(t, err, lattice.ErrNilCell)

	_, err = lattice.Standardize(shearedCubic(t), lattice.StdOptions{Symprec: 0})
	assert.ErrorIs(t, err, lattice.ErrBadTolerance)
}

// TestRefineCell_FCC idealizes the conventional fcc cell onto the
// exact cube.
func TestRefineCell_FCC(t *testing.T) {
	std, err := lattice.RefineCell(fccConventional(t), 1e-5)
	require.NoError(t, err)

	lat := std.Lattice()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 4.05
			}
			assert.InDelta(t, want, lat[i][j], 1e-6)
		}
	}
	assert.Equal(t, 4, std.NumAtoms())
}

// TestRefineCell_Idempotent refines twice and expects a fixed point.
func TestRefineCell_Idempotent(t *testing.T) {
	once, err := lattice.RefineCell(fccConventional(t), 1e-5)
	require.NoError(t, err)
	twice, err := lattice.RefineCell(once, 1e-5)
	require.NoError(t, err)

	a := once.Lattice()
	b := twice.Lattice()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, a[i][j], b[i][j], 1e-6)
		}
	}
	assert.Equal(t, once.NumAtoms(), twice.NumAtoms())
}

// TestFindPrimitive_FCC collapses the conventional cell onto one atom
// at a quarter of the volume.
func TestFindPrimitive_FCC(t *testing.T) {
	c := fccConventional(t)
	prim, err := lattice.FindPrimitive(c, 1e-5)
	require.NoError(t, err)

	assert.Equal(t, 1, prim.NumAtoms())
	assert.InDelta(t, math.Abs(c.Volume())/4, math.Abs(prim.Volume()), 1e-6)
}

// TestStandardize_NoIdealize keeps the exact transformed lattice
// instead of the snapped one.
func TestStandardize_NoIdealize(t *testing.T) {
	c := fccConventional(t)
	opts := lattice.DefaultStdOptions()
	opts.NoIdealize = true
	std, err := lattice.Standardize(c, opts)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(c.Volume()), math.Abs(std.Volume()), 1e-8)
	assert.Equal(t, 4, std.NumAtoms())
}
