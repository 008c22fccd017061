// Package geom: fixed-size value types shared across latsym.
package geom

// Vec3 is a length-3 real vector. Depending on context it holds either
// Cartesian or fractional coordinates; functions document which.
type Vec3 [3]float64

// Mat3 is a 3×3 real matrix stored row-major. When it represents a
// lattice, the rows are the basis vectors.
type Mat3 [3][3]float64

// IMat3 is a 3×3 integer matrix, the exact representation of a
// rotation part in the lattice basis.
type IMat3 [3][3]int

// IVec3 is a length-3 integer vector (grid addresses, axis directions).
type IVec3 [3]int

// Identity returns the 3×3 real identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IdentityI returns the 3×3 integer identity matrix.
func IdentityI() IMat3 {
	return IMat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// ToMat3 widens an integer matrix to a real one.
func (m IMat3) ToMat3() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = float64(m[i][j])
		}
	}

	return out
}

// IsIdentity reports whether m is exactly the identity.
func (m IMat3) IsIdentity() bool {
	return m == IdentityI()
}
