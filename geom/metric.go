// Package geom: metric-tensor tests.
//
// The metric (Gram) tensor G = L·Lᵀ turns fractional displacement
// vectors into physical distances: ‖d‖² = dᵀ·G·d. Every equivalence
// decision in the engine is phrased through G so that a single
// caller-supplied tolerance (a length, in lattice units) governs all
// of them.

package geom

import "math"

// Metric returns the Gram matrix G = L·Lᵀ of a row-basis lattice.
func Metric(lattice Mat3) Mat3 {
	var g Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[i][j] = Dot(lattice[i], lattice[j])
		}
	}

	return g
}

// FracNorm returns the metric length of a fractional displacement d,
// i.e. sqrt(dᵀ·G·d), without wrapping.
func FracNorm(g Mat3, d Vec3) float64 {
	s := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += d[i] * g[i][j] * d[j]
		}
	}
	if s < 0 { // round-off on a degenerate metric
		s = 0
	}

	return math.Sqrt(s)
}

// LatticeDistance returns the metric distance between fractional
// points a and b, taken to the nearest periodic image.
func LatticeDistance(g Mat3, a, b Vec3) float64 {
	return FracNorm(g, WrapSigned(Sub(a, b)))
}

// SameLatticePoint reports whether fractional points a and b coincide
// modulo lattice translations within symprec (a length under g).
//
// Complexity: O(1).
func SameLatticePoint(g Mat3, a, b Vec3, symprec float64) bool {
	return LatticeDistance(g, a, b) < symprec
}

// PreservesMetric reports whether the integer rotation W is an
// automorphism of the lattice with metric g, i.e. Wᵀ·G·W ≈ G.
//
// The elementwise comparison threshold is 2·ℓ·symprec where ℓ is the
// largest basis-vector length: a first-order bound on how much a
// length² entry may move when every coordinate moves by symprec.
func PreservesMetric(g Mat3, w IMat3, symprec float64) bool {
	wm := w.ToMat3()
	gw := Mul(Transpose(wm), Mul(g, wm))

	maxDiag := g[0][0]
	if g[1][1] > maxDiag {
		maxDiag = g[1][1]
	}
	if g[2][2] > maxDiag {
		maxDiag = g[2][2]
	}
	tol := 2 * math.Sqrt(maxDiag) * symprec

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(gw[i][j]-g[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// CartesianFromFrac converts a fractional point to Cartesian under a
// row-basis lattice: cart = xᵀ·L.
func CartesianFromFrac(lattice Mat3, x Vec3) Vec3 {
	var out Vec3
	for j := 0; j < 3; j++ {
		out[j] = x[0]*lattice[0][j] + x[1]*lattice[1][j] + x[2]*lattice[2][j]
	}

	return out
}
