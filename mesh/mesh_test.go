package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/mesh"
)

func simpleCubic(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}}, []int{1})
	require.NoError(t, err)

	return c
}

func irreducible(t *testing.T, c *cell.Cell, dims, shift [3]int) *mesh.Result {
	t.Helper()
	opts := mesh.DefaultOptions()
	opts.Mesh = dims
	opts.Shift = shift
	res, err := mesh.Irreducible(c, opts)
	require.NoError(t, err)

	return res
}

// TestIrreducible_CubicCounts pins the textbook irreducible point
// counts of the cubic holohedry on small grids.
func TestIrreducible_CubicCounts(t *testing.T) {
	c := simpleCubic(t)

	assert.Equal(t, 10, irreducible(t, c, [3]int{4, 4, 4}, [3]int{0, 0, 0}).NumIrreducible)
	assert.Equal(t, 4, irreducible(t, c, [3]int{4, 4, 4}, [3]int{1, 1, 1}).NumIrreducible)
	assert.Equal(t, 4, irreducible(t, c, [3]int{3, 3, 3}, [3]int{0, 0, 0}).NumIrreducible)
	assert.Equal(t, 4, irreducible(t, c, [3]int{2, 2, 2}, [3]int{0, 0, 0}).NumIrreducible)
	assert.Equal(t, 9, irreducible(t, c, [3]int{4, 4, 2}, [3]int{0, 0, 0}).NumIrreducible)
}

// TestIrreducible_MappingInvariants checks idempotence, weight
// bookkeeping and representative ordering on a folded grid.
func TestIrreducible_MappingInvariants(t *testing.T) {
	res := irreducible(t, simpleCubic(t), [3]int{4, 4, 4}, [3]int{0, 0, 0})

	require.Len(t, res.Mapping, 64)
	require.Len(t, res.GridAddress, 64)

	sum := 0
	for i, w := range res.Weights() {
		if res.Mapping[i] == i {
			assert.Positive(t, w)
		} else {
			assert.Zero(t, w)
		}
		sum += w
	}
	assert.Equal(t, 64, sum, "weights must partition the grid")

	for i, rep := range res.Mapping {
		assert.Equal(t, rep, res.Mapping[rep], "mapping must be idempotent")
		assert.LessOrEqual(t, rep, i, "representative is first in scan order")
	}

	// Γ sits alone in its orbit.
	assert.Equal(t, 0, res.Mapping[0])
	assert.Equal(t, 1, res.Weights()[0])
}

// TestStabilized_TimeReversalOnly folds a 3×3×3 grid with the bare
// identity: time reversal pairs k with −k, leaving Γ alone.
func TestStabilized_TimeReversalOnly(t *testing.T) {
	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{3, 3, 3}

	res, err := mesh.Stabilized([]geom.IMat3{geom.IdentityI()}, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, res.NumIrreducible)

	opts.TimeReversal = false
	res, err = mesh.Stabilized([]geom.IMat3{geom.IdentityI()}, opts, nil)
	require.NoError(t, err)
	assert.Equal(t, 27, res.NumIrreducible, "identity alone folds nothing")
}

// TestStabilized_QpointFilter drops rotations that move the q-point.
func TestStabilized_QpointFilter(t *testing.T) {
	fourFold := geom.IMat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{2, 2, 2}
	opts.TimeReversal = false

	free, err := mesh.Stabilized([]geom.IMat3{geom.IdentityI(), fourFold}, opts, nil)
	require.NoError(t, err)

	pinned, err := mesh.Stabilized([]geom.IMat3{geom.IdentityI(), fourFold}, opts,
		[]geom.Vec3{{0.5, 0, 0}})
	require.NoError(t, err)

	assert.Less(t, free.NumIrreducible, pinned.NumIrreducible,
		"pinning (1/2,0,0) must drop the four-fold and unfold its orbits")
	assert.Equal(t, 8, pinned.NumIrreducible)
}

// TestIrreducible_Validation pins the argument checks.
func TestIrreducible_Validation(t *testing.T) {
	c := simpleCubic(t)

	opts := mesh.DefaultOptions()
	_, err := mesh.Irreducible(nil, opts)
	assert.ErrorIs(t, err, mesh.ErrNilCell)

	opts.Mesh = [3]int{0, 4, 4}
	_, err = mesh.Irreducible(c, opts)
	assert.ErrorIs(t, err, mesh.ErrBadMesh)

	opts.Mesh = [3]int{4, 4, 4}
	opts.Shift = [3]int{2, 0, 0}
	_, err = mesh.Irreducible(c, opts)
	assert.ErrorIs(t, err, mesh.ErrBadShift)

	opts.Shift = [3]int{0, 0, 0}
	opts.Symprec = -1
	_, err = mesh.Irreducible(c, opts)
	assert.ErrorIs(t, err, mesh.ErrBadTolerance)

	opts.Symprec = 0
	_, err = mesh.Irreducible(c, opts)
	assert.ErrorIs(t, err, mesh.ErrBadTolerance)
}

// TestStabilized_Validation rejects empty or non-unimodular rotation
// sets and non-finite q-points.
func TestStabilized_Validation(t *testing.T) {
	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{2, 2, 2}

	_, err := mesh.Stabilized(nil, opts, nil)
	assert.ErrorIs(t, err, mesh.ErrBadRotations)

	doubling := geom.IMat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err = mesh.Stabilized([]geom.IMat3{doubling}, opts, nil)
	assert.ErrorIs(t, err, mesh.ErrBadRotations)

	nan := geom.Vec3{0, 0, 0}
	nan[0] = nan[0] / nan[0] // NaN without a const division
	_, err = mesh.Stabilized([]geom.IMat3{geom.IdentityI()}, opts, []geom.Vec3{nan})
	assert.ErrorIs(t, err, mesh.ErrBadQpoints)

	opts.Symprec = -1
	_, err = mesh.Stabilized([]geom.IMat3{geom.IdentityI()}, opts, nil)
	assert.ErrorIs(t, err, mesh.ErrBadTolerance)
}

// TestStabilized_GeneratorSet folds with a generating subset of a
// cyclic group and with the full group; the orbits must agree.
func TestStabilized_GeneratorSet(t *testing.T) {
	threeFold := geom.IMat3{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}}
	threeFoldSq := geom.IMat3{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
	opts := mesh.DefaultOptions()
	opts.Mesh = [3]int{3, 3, 3}
	opts.TimeReversal = false

	gen, err := mesh.Stabilized([]geom.IMat3{geom.IdentityI(), threeFold}, opts, nil)
	require.NoError(t, err)
	closed, err := mesh.Stabilized(
		[]geom.IMat3{geom.IdentityI(), threeFold, threeFoldSq}, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, closed.NumIrreducible, gen.NumIrreducible)
	assert.Equal(t, closed.Mapping, gen.Mapping)

	for i, rep := range gen.Mapping {
		assert.Equal(t, rep, gen.Mapping[rep], "mapping must be idempotent")
		assert.LessOrEqual(t, rep, i, "representative is first in scan order")
	}
}
