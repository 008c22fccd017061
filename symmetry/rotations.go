// Package symmetry: candidate rotation enumeration.
//
// In a Delaunay-reduced basis every rotation of the lattice point
// group has matrix entries in {−1,0,1} (the basis vectors are the
// shortest representatives of their classes), so the full candidate
// space is the 3⁹ = 19683 sign patterns. Each is kept when its
// determinant is ±1 and it preserves the reduced metric within the
// tolerance, then conjugated back into the caller's basis.

package symmetry

import (
	"github.com/katalvlaran/latsym/geom"
)

// latticeCandidates enumerates the integer rotations of the lattice
// (point group of the empty lattice) in the original basis.
//
// Complexity: O(3⁹) metric checks; the result holds at most 48
// matrices for any 3-D lattice.
func latticeCandidates(lattice geom.Mat3, symprec float64) ([]geom.IMat3, error) {
	reduced, t, err := geom.DelaunayBasis(lattice, symprec)
	if err != nil {
		return nil, err
	}
	gRed := geom.Metric(reduced)

	tT := geom.TransposeI(t)
	tTInv, err := geom.InverseI(tT)
	if err != nil {
		return nil, err
	}

	g := geom.Metric(lattice)
	seen := make(map[geom.IMat3]struct{}, maxPointGroupOrder)
	out := make([]geom.IMat3, 0, maxPointGroupOrder)

	var w geom.IMat3
	var enumerate func(pos int)
	enumerate = func(pos int) {
		if pos == 9 {
			if d := geom.DetI(w); d != 1 && d != -1 {
				return
			}
			if !geom.PreservesMetric(gRed, w, symprec) {
				return
			}
			// Conjugate into the original basis: W = Tᵀ·W_red·T⁻ᵀ.
			orig := geom.MulI(tT, geom.MulI(w, tTInv))
			if _, dup := seen[orig]; dup {
				return
			}
			// Guard against round-off in the basis change.
			if !geom.PreservesMetric(g, orig, symprec) {
				return
			}
			seen[orig] = struct{}{}
			out = append(out, orig)

			return
		}
		for _, e := range [3]int{-1, 0, 1} {
			w[pos/3][pos%3] = e
			enumerate(pos + 1)
		}
	}
	enumerate(0)

	return out, nil
}
