package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

func simpleCubic(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}},
		[]int{1})
	require.NoError(t, err)

	return c
}

func fccConventional(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
		[]int{13, 13, 13, 13})
	require.NoError(t, err)

	return c
}

// TestFind_NilCell rejects a nil cell.
func TestFind_NilCell(t *testing.T) {
	_, err := symmetry.Find(nil, symmetry.DefaultOptions())
	assert.ErrorIs(t, err, symmetry.ErrNilCell)
}

// TestFind_BadTolerance rejects a non-positive symprec.
func TestFind_BadTolerance(t *testing.T) {
	opts := symmetry.Options{Symprec: 0}
	_, err := symmetry.Find(simpleCubic(t), opts)
	assert.ErrorIs(t, err, symmetry.ErrBadTolerance)
}

// TestFind_SimpleCubic expects the full 48-element cubic holohedry for
// one atom on a cubic lattice, identity first.
func TestFind_SimpleCubic(t *testing.T) {
	ops, err := symmetry.Find(simpleCubic(t), symmetry.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, ops, 48)
	assert.True(t, ops[0].IsIdentity(), "identity must come first")
	for _, op := range ops {
		assert.Equal(t, geom.Vec3{}, op.Translation, "a single-atom cell has symmorphic operations only")
	}
}

// TestFind_Closure composes every pair of found operations and expects
// the result back in the set (translations compared modulo 1).
func TestFind_Closure(t *testing.T) {
	ops, err := symmetry.Find(fccConventional(t), symmetry.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, ops, 192)

	type key struct {
		w geom.IMat3
		t [3]int
	}
	quantize := func(op symmetry.Operation) key {
		var k key
		k.w = op.Rotation
		for d := 0; d < 3; d++ {
			k.t[d] = int(op.Translation[d]*24+0.5) % 24
		}

		return k
	}
	seen := make(map[key]bool, len(ops))
	for _, op := range ops {
		seen[quantize(op)] = true
	}
	for _, a := range ops[:24] { // a slice keeps the quadratic loop cheap
		for _, b := range ops {
			assert.True(t, seen[quantize(a.Compose(b))], "composition left the set")
		}
	}
}

// TestFind_FCCTranslations expects the three face-centering pure
// translations in the conventional fcc cell.
func TestFind_FCCTranslations(t *testing.T) {
	ops, err := symmetry.Find(fccConventional(t), symmetry.DefaultOptions())
	require.NoError(t, err)

	trans := symmetry.PureTranslations(ops)
	assert.Len(t, trans, 3)
	for _, tv := range trans {
		n := 0
		for d := 0; d < 3; d++ {
			if tv[d] > 0.25 {
				n++
			}
		}
		assert.Equal(t, 2, n, "face centerings have exactly two half components")
	}
}

// TestFind_DistinguishesSpecies verifies that atom types break
// otherwise-geometric coincidences: a CsCl-style cell is primitive
// cubic, not body centered.
func TestFind_DistinguishesSpecies(t *testing.T) {
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}},
		[]int{55, 17})
	require.NoError(t, err)

	ops, err := symmetry.Find(c, symmetry.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, ops, 48, "no body-centering translation across different species")
	assert.Empty(t, symmetry.PureTranslations(ops))
}

// TestFind_CollinearMagmoms verifies the two sides of collinear
// moment matching: a sign flip is allowed (time reversal), a magnitude
// difference is not.
func TestFind_CollinearMagmoms(t *testing.T) {
	lat := geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}
	pos := []geom.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}

	anti, err := cell.New(lat, pos, []int{26, 26},
		cell.WithMagmoms([]cell.Magmom{cell.Collinear(2), cell.Collinear(-2)}))
	require.NoError(t, err)
	ops, err := symmetry.Find(anti, symmetry.DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, symmetry.PureTranslations(ops),
		"a pure sign flip keeps the body centering")

	ferri, err := cell.New(lat, pos, []int{26, 26},
		cell.WithMagmoms([]cell.Magmom{cell.Collinear(2), cell.Collinear(1)}))
	require.NoError(t, err)
	ops, err = symmetry.Find(ferri, symmetry.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, symmetry.PureTranslations(ops),
		"unequal moment magnitudes must break the body centering")
}

// TestFind_MagmomsDefaultTolerance leaves MagSymprec at its zero
// value: the magnetic comparison must fall back to the documented
// default instead of rejecting every match.
func TestFind_MagmomsDefaultTolerance(t *testing.T) {
	c, err := cell.New(
		geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		[]geom.Vec3{{0, 0, 0}}, []int{26},
		cell.WithMagmoms([]cell.Magmom{cell.Collinear(2)}))
	require.NoError(t, err)

	ops, err := symmetry.Find(c, symmetry.Options{Symprec: 1e-5})
	require.NoError(t, err)
	assert.Len(t, ops, 48)
}

// TestMultiplicity matches the operation count of Find.
func TestMultiplicity(t *testing.T) {
	n, err := symmetry.Multiplicity(fccConventional(t), symmetry.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 192, n)
}

// TestPointGroupRotations_Dedup collapses the 192 fcc operations onto
// 48 distinct rotations.
func TestPointGroupRotations_Dedup(t *testing.T) {
	ops, err := symmetry.Find(fccConventional(t), symmetry.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, symmetry.PointGroupRotations(ops), 48)
}
