package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/geom"
)

// TestWrapFrac_Range verifies that wrapped components land in [0,1)
// and that integers collapse to zero.
func TestWrapFrac_Range(t *testing.T) {
	v := geom.WrapFrac(geom.Vec3{1.25, -0.25, 3.0})
	assert.InDelta(t, 0.25, v[0], 1e-12)
	assert.InDelta(t, 0.75, v[1], 1e-12)
	assert.InDelta(t, 0.0, v[2], 1e-12)
}

// TestWrapSigned_Range verifies the symmetric wrap into [-1/2, 1/2).
func TestWrapSigned_Range(t *testing.T) {
	v := geom.WrapSigned(geom.Vec3{0.75, -0.75, 0.5})
	assert.InDelta(t, -0.25, v[0], 1e-12)
	assert.InDelta(t, 0.25, v[1], 1e-12)
	assert.InDelta(t, -0.5, v[2], 1e-12)
}

// TestCross_Orthogonality checks the cross product against both
// factors and against the right-hand rule.
func TestCross_Orthogonality(t *testing.T) {
	a := geom.Vec3{1, 2, 0}
	b := geom.Vec3{0, 1, 3}
	c := geom.Cross(a, b)

	assert.InDelta(t, 0, geom.Dot(a, c), 1e-12)
	assert.InDelta(t, 0, geom.Dot(b, c), 1e-12)
	assert.Equal(t, geom.Vec3{0, 0, 1}, geom.Cross(geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0}))
}

// TestInverse_Roundtrip multiplies a matrix by its inverse and expects
// the identity within floating tolerance.
func TestInverse_Roundtrip(t *testing.T) {
	m := geom.Mat3{{4, 0.3, 0}, {0.2, 5, 0.1}, {0, 0.4, 6}}
	inv, err := geom.Inverse(m)
	require.NoError(t, err)

	p := geom.Mul(m, inv)
	id := geom.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id[i][j], p[i][j], 1e-10)
		}
	}
}

// TestInverse_Singular expects ErrSingular for a rank-deficient input.
func TestInverse_Singular(t *testing.T) {
	m := geom.Mat3{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	_, err := geom.Inverse(m)
	assert.ErrorIs(t, err, geom.ErrSingular)
}

// TestInverseI_Unimodular checks the exact integer inverse for a shear
// and rejects a determinant-2 matrix.
func TestInverseI_Unimodular(t *testing.T) {
	shear := geom.IMat3{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	inv, err := geom.InverseI(shear)
	require.NoError(t, err)
	assert.True(t, geom.MulI(shear, inv).IsIdentity())

	_, err = geom.InverseI(geom.IMat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, geom.ErrNotUnimodular)
}

// TestExactI_Tolerance accepts near-integer entries and rejects
// everything past the tolerance.
func TestExactI_Tolerance(t *testing.T) {
	m := geom.Mat3{{1.0000001, 0, 0}, {0, -1.0000001, 0}, {0, 0, 1}}
	w, err := geom.ExactI(m, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, geom.IMat3{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, w)

	m[0][1] = 0.4
	_, err = geom.ExactI(m, 1e-3)
	assert.ErrorIs(t, err, geom.ErrNotInteger)
}

// TestMetric_Symmetry verifies G = L·Lᵀ symmetry and the diagonal
// squared norms.
func TestMetric_Symmetry(t *testing.T) {
	l := geom.Mat3{{3, 0, 0}, {-1.5, 2.598076211353316, 0}, {0, 0, 5}}
	g := geom.Metric(l)

	assert.InDelta(t, g[0][1], g[1][0], 1e-12)
	assert.InDelta(t, 9, g[0][0], 1e-9)
	assert.InDelta(t, 25, g[2][2], 1e-9)
	// 120° between a and b: a·b = -|a||b|/2.
	assert.InDelta(t, -4.5, g[0][1], 1e-9)
}

// TestPreservesMetric distinguishes operations of the lattice from
// relabelings that distort it.
func TestPreservesMetric(t *testing.T) {
	cubic := geom.Metric(geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}})
	ortho := geom.Metric(geom.Mat3{{3, 0, 0}, {0, 4, 0}, {0, 0, 5}})
	fourFold := geom.IMat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

	assert.True(t, geom.PreservesMetric(cubic, fourFold, 1e-5))
	assert.False(t, geom.PreservesMetric(ortho, fourFold, 1e-5))
}

// TestNiggliBasis_SkewedLattice reduces a heavily sheared cubic
// lattice and checks volume preservation, unimodular bookkeeping and
// sorted norms.
func TestNiggliBasis_SkewedLattice(t *testing.T) {
	l := geom.Mat3{{4, 0, 0}, {8, 4, 0}, {0, 0, 4}}
	red, tf, err := geom.NiggliBasis(l, 1e-5)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(geom.Det(l)), math.Abs(geom.Det(red)), 1e-8)
	d := geom.DetI(tf)
	assert.True(t, d == 1 || d == -1, "transformation must be unimodular")

	a := geom.Norm(red[0])
	b := geom.Norm(red[1])
	c := geom.Norm(red[2])
	assert.LessOrEqual(t, a, b+1e-9)
	assert.LessOrEqual(t, b, c+1e-9)
	assert.InDelta(t, 4, c, 1e-9, "the reduced cell of a sheared cube is the cube")
}

// TestNiggliBasis_BadTolerance rejects non-positive tolerances.
func TestNiggliBasis_BadTolerance(t *testing.T) {
	_, _, err := geom.NiggliBasis(geom.Identity(), 0)
	assert.ErrorIs(t, err, geom.ErrBadTolerance)
}

// TestDelaunayBasis_VolumePreserved runs the Delaunay reduction on the
// same sheared lattice.
func TestDelaunayBasis_VolumePreserved(t *testing.T) {
	l := geom.Mat3{{4, 0, 0}, {8, 4, 0}, {0, 0, 4}}
	red, tf, err := geom.DelaunayBasis(l, 1e-5)
	require.NoError(t, err)

	assert.InDelta(t, math.Abs(geom.Det(l)), math.Abs(geom.Det(red)), 1e-8)
	d := geom.DetI(tf)
	assert.True(t, d == 1 || d == -1)
	for i := 0; i < 3; i++ {
		assert.LessOrEqual(t, geom.Norm(red[i]), 4+1e-9)
	}
}

// TestSameLatticePoint identifies points separated by a lattice vector
// and distinguishes genuinely different ones.
func TestSameLatticePoint(t *testing.T) {
	g := geom.Metric(geom.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}})

	assert.True(t, geom.SameLatticePoint(g, geom.Vec3{0.1, 0.9, 0}, geom.Vec3{1.1, -0.1, 1}, 1e-5))
	assert.False(t, geom.SameLatticePoint(g, geom.Vec3{0.1, 0, 0}, geom.Vec3{0.2, 0, 0}, 1e-5))
}
