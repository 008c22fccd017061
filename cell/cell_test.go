package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

var cubicLattice = geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}

// TestNew_BadLattice rejects singular and non-finite lattices.
func TestNew_BadLattice(t *testing.T) {
	_, err := cell.New(geom.Mat3{}, []geom.Vec3{{0, 0, 0}}, []int{1})
	assert.ErrorIs(t, err, cell.ErrBadLattice)

	bad := cubicLattice
	bad[1][1] = 0
	bad[1][0] = 4 // rows 0 and 1 parallel
	_, err = cell.New(bad, []geom.Vec3{{0, 0, 0}}, []int{1})
	assert.ErrorIs(t, err, cell.ErrBadLattice)
}

// TestNew_ShapeMismatch rejects length-mismatched slices.
func TestNew_ShapeMismatch(t *testing.T) {
	_, err := cell.New(cubicLattice, []geom.Vec3{{0, 0, 0}}, []int{1, 2})
	assert.ErrorIs(t, err, cell.ErrShapeMismatch)

	_, err = cell.New(cubicLattice, []geom.Vec3{{0, 0, 0}}, []int{1},
		cell.WithMagmoms([]cell.Magmom{cell.Collinear(1), cell.Collinear(1)}))
	assert.ErrorIs(t, err, cell.ErrShapeMismatch)
}

// TestNew_NoAtoms rejects an empty position list.
func TestNew_NoAtoms(t *testing.T) {
	_, err := cell.New(cubicLattice, nil, nil)
	assert.ErrorIs(t, err, cell.ErrNoAtoms)
}

// TestNew_MixedMagmoms rejects mixing collinear and noncollinear
// moments in one cell.
func TestNew_MixedMagmoms(t *testing.T) {
	_, err := cell.New(cubicLattice,
		[]geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 1},
		cell.WithMagmoms([]cell.Magmom{
			cell.Collinear(1),
			cell.Noncollinear(geom.Vec3{0, 0, 1}),
		}))
	assert.ErrorIs(t, err, cell.ErrMixedMagmoms)
}

// TestNew_WrapsPositions verifies that stored positions land in [0,1).
func TestNew_WrapsPositions(t *testing.T) {
	c, err := cell.New(cubicLattice, []geom.Vec3{{1.25, -0.25, 2}}, []int{1})
	require.NoError(t, err)

	p := c.Position(0)
	assert.InDelta(t, 0.25, p[0], 1e-12)
	assert.InDelta(t, 0.75, p[1], 1e-12)
	assert.InDelta(t, 0.0, p[2], 1e-12)
}

// TestKinds_Canonicalization maps arbitrary type labels onto dense
// 1..K indices by first occurrence.
func TestKinds_Canonicalization(t *testing.T) {
	c, err := cell.New(cubicLattice,
		[]geom.Vec3{{0, 0, 0}, {0.5, 0, 0}, {0, 0.5, 0}},
		[]int{26, 8, 26})
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumKinds())
	assert.Equal(t, []int{1, 2, 1}, c.Kinds())
	assert.Equal(t, []int{26, 8, 26}, c.Types())
}

// TestAccessors_ReturnCopies mutates returned slices and expects the
// cell to stay intact.
func TestAccessors_ReturnCopies(t *testing.T) {
	c, err := cell.New(cubicLattice, []geom.Vec3{{0.25, 0, 0}}, []int{1})
	require.NoError(t, err)

	ps := c.Positions()
	ps[0][0] = 0.9
	assert.InDelta(t, 0.25, c.Position(0)[0], 1e-12)

	ts := c.Types()
	ts[0] = 99
	assert.Equal(t, 1, c.Type(0))
}

// TestVolumeAndMetric checks the derived lattice quantities.
func TestVolumeAndMetric(t *testing.T) {
	c, err := cell.New(cubicLattice, []geom.Vec3{{0, 0, 0}}, []int{1})
	require.NoError(t, err)

	assert.InDelta(t, 64, c.Volume(), 1e-9)
	g := c.Metric()
	assert.InDelta(t, 16, g[0][0], 1e-9)
	assert.InDelta(t, 0, g[0][1], 1e-12)
	assert.False(t, c.HasMagmoms())
}
