// Package geom: elementary vector operations.
//
// All functions here are allocation-free and O(1); they exist so that
// the tolerance-sensitive call sites elsewhere read as formulas.

package geom

import "math"

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a − b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s·a.
func Scale(s float64, a Vec3) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Dot returns the Euclidean inner product a·b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns the Euclidean length of a.
func Norm(a Vec3) float64 {
	return math.Sqrt(Dot(a, a))
}

// WrapFrac maps every component of a fractional vector into [0, 1).
// Components within ulp-level distance below 1 collapse to 0 so that
// a translation of (1−1e-16) does not masquerade as a distinct point.
func WrapFrac(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		f := v[i] - math.Floor(v[i])
		if f >= 1 { // possible when v[i] is a tiny negative number
			f = 0
		}
		out[i] = f
	}

	return out
}

// WrapSigned maps every component of a fractional vector into
// [−0.5, 0.5), i.e. onto the lattice image nearest to the origin.
func WrapSigned(v Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		out[i] = v[i] - math.Round(v[i])
	}

	return out
}

// SnapFrac rounds fractional components that sit within tol of an
// integer to that integer, then wraps into [0, 1). Used to strip
// numeric noise from translations before they are reported.
func SnapFrac(v Vec3, tol float64) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		f := v[i] - math.Floor(v[i])
		if f > 1-tol || f < tol {
			f = 0
		}
		out[i] = f
	}

	return out
}
