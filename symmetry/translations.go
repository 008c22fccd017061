// Package symmetry: translation search for one candidate rotation.
//
// Anchoring on the least-populous species keeps the candidate count
// minimal: any valid translation must map the anchor atom onto some
// atom of the same species, so w = xₖ − W·x₀ over those atoms is an
// exhaustive candidate list.

package symmetry

import (
	"math"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

// anchorKind returns the canonical species index with the fewest
// atoms (smallest index on ties) and the atom indices of that species.
func anchorKind(kinds []int, numKinds int) []int {
	counts := make([]int, numKinds+1)
	for _, k := range kinds {
		counts[k]++
	}
	best := 1
	for k := 2; k <= numKinds; k++ {
		if counts[k] < counts[best] {
			best = k
		}
	}

	atoms := make([]int, 0, counts[best])
	for i, k := range kinds {
		if k == best {
			atoms = append(atoms, i)
		}
	}

	return atoms
}

// rotationTranslations returns every fractional translation w such
// that (W, w) maps the cell onto itself within the tolerances.
//
// Complexity: O(A·N²) with A anchor atoms and N atoms.
func rotationTranslations(c *cell.Cell, g geom.Mat3, w geom.IMat3, opts Options) []geom.Vec3 {
	positions := c.Positions()
	kinds := c.Kinds()
	anchors := anchorKind(kinds, c.NumKinds())
	j0 := anchors[0]

	// Axial-vector transform for noncollinear moments: det(W)·R_cart.
	var spinRot geom.Mat3
	spinOK := false
	if c.HasMagmoms() {
		lt := geom.Transpose(c.Lattice())
		ltInv, err := geom.Inverse(lt)
		if err == nil {
			spinRot = geom.Mul(lt, geom.Mul(w.ToMat3(), ltInv))
			if geom.DetI(w) == -1 {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						spinRot[i][j] = -spinRot[i][j]
					}
				}
			}
			spinOK = true
		}
	}

	wx0 := geom.MulIVec(w, positions[j0])
	fracTol := opts.Symprec / math.Cbrt(math.Abs(geom.Det(c.Lattice())))

	var found []geom.Vec3
	for _, k := range anchors {
		trans := geom.WrapFrac(geom.Sub(positions[k], wx0))
		if !mapsWholeCell(c, g, w, trans, positions, kinds, spinRot, spinOK, opts) {
			continue
		}
		found = append(found, geom.SnapFrac(trans, fracTol))
	}

	return found
}

// mapsWholeCell verifies that (W, trans) maps every atom onto an atom
// of the same species (and compatible magnetic moment).
func mapsWholeCell(c *cell.Cell, g geom.Mat3, w geom.IMat3, trans geom.Vec3,
	positions []geom.Vec3, kinds []int, spinRot geom.Mat3, spinOK bool, opts Options) bool {
	n := len(positions)
	for i := 0; i < n; i++ {
		y := geom.Add(geom.MulIVec(w, positions[i]), trans)
		matched := false
		for m := 0; m < n; m++ {
			if kinds[m] != kinds[i] {
				continue
			}
			if !geom.SameLatticePoint(g, y, positions[m], opts.Symprec) {
				continue
			}
			if c.HasMagmoms() && !momentsCompatible(c.Magmom(i), c.Magmom(m), spinRot, spinOK, opts.MagSymprec) {
				continue
			}
			matched = true

			break
		}
		if !matched {
			return false
		}
	}

	return true
}

// momentsCompatible reports whether the transformed moment of the
// source site equals the moment of its image, allowing a global sign
// flip (time reversal).
func momentsCompatible(src, dst cell.Magmom, spinRot geom.Mat3, spinOK bool, magprec float64) bool {
	if !src.Noncollinear {
		// Collinear moments are invariant scalars up to the flip.
		return math.Abs(math.Abs(src.Scalar)-math.Abs(dst.Scalar)) < magprec
	}
	if !spinOK {
		return false
	}
	rotated := geom.MulVec(spinRot, src.Vector)
	if geom.Norm(geom.Sub(rotated, dst.Vector)) < magprec {
		return true
	}

	return geom.Norm(geom.Add(rotated, dst.Vector)) < magprec
}
