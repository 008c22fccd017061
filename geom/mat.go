// Package geom: 3×3 matrix algebra, real and exact-integer.
//
// Real-valued inversion and determinants are delegated to gonum so the
// kernel shares its numeric behavior with the rest of the scientific
// Go ecosystem; integer arithmetic stays local because rotation-part
// composition must be exact.

package geom

import (
	"gonum.org/v1/gonum/mat"
)

// Mul returns the matrix product a·b.
func Mul(a, b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}

	return out
}

// MulVec returns the matrix-vector product m·v (v as a column).
func MulVec(m Mat3, v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// Transpose returns mᵀ.
func Transpose(m Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Det returns the determinant of m.
func Det(m Mat3) float64 {
	return mat.Det(dense(m))
}

// Inverse returns m⁻¹, or ErrSingular when m is not invertible.
func Inverse(m Mat3) (Mat3, error) {
	var inv mat.Dense
	if err := inv.Inverse(dense(m)); err != nil {
		return Mat3{}, ErrSingular
	}

	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = inv.At(i, j)
		}
	}

	return out, nil
}

// dense copies m into a gonum dense matrix.
func dense(m Mat3) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// MulI returns the exact integer product a·b.
func MulI(a, b IMat3) IMat3 {
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}

	return out
}

// MulIVec applies an integer matrix to a real column vector.
func MulIVec(m IMat3, v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}

	return out
}

// MulIGrid applies an integer matrix to an integer column vector.
func MulIGrid(m IMat3, v IVec3) IVec3 {
	var out IVec3
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// TransposeI returns mᵀ.
func TransposeI(m IMat3) IMat3 {
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// NegI returns −m.
func NegI(m IMat3) IMat3 {
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = -m[i][j]
		}
	}

	return out
}

// DetI returns the exact determinant of an integer matrix.
func DetI(m IMat3) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// TraceI returns the trace of an integer matrix.
func TraceI(m IMat3) int {
	return m[0][0] + m[1][1] + m[2][2]
}

// InverseI returns the exact inverse of a unimodular integer matrix
// (det = ±1) via the adjugate, or ErrNotUnimodular otherwise.
func InverseI(m IMat3) (IMat3, error) {
	d := DetI(m)
	if d != 1 && d != -1 {
		return IMat3{}, ErrNotUnimodular
	}

	adj := IMat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
	if d == -1 {
		adj = NegI(adj)
	}

	return adj, nil
}

// ExactI rounds a real matrix expected to be integer-valued, failing
// with ErrNotInteger when any entry is off by more than tol.
func ExactI(m Mat3, tol float64) (IMat3, error) {
	out := RoundI(m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if diff := m[i][j] - float64(out[i][j]); diff > tol || diff < -tol {
				return IMat3{}, ErrNotInteger
			}
		}
	}

	return out, nil
}

// RoundI rounds every entry of a real matrix to the nearest integer.
func RoundI(m Mat3) IMat3 {
	var out IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = roundInt(m[i][j])
		}
	}

	return out
}

func roundInt(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}

	return int(x - 0.5)
}
