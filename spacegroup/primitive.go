// Package spacegroup: primitive-sublattice collapse.
//
// The pure translations of a non-primitive cell (identity rotation,
// nonzero translation) generate a finer translation lattice than the
// input basis. Collapsing onto it divides the atom count by the
// number of lattice points and is the first step of classification
// and of FindPrimitive.

package spacegroup

import (
	"math"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// PrimitiveCell collapses c onto the sublattice generated by the pure
// translations among ops. It returns the primitive cell, the mapping
// from input atoms to primitive atoms, and the fractional transform
// T with primitiveLattice = T·inputLattice.
//
// For a cell that is already primitive the input is returned as-is
// with an identity transform.
//
// Errors: ErrClassification when the translations are inconsistent
// with the atom content (tolerance artifact).
//
// Complexity: O(t³) triple search over t translations plus O(N²)
// deduplication.
func PrimitiveCell(c *cell.Cell, ops []symmetry.Operation, symprec float64) (*cell.Cell, []int, geom.Mat3, error) {
	pure := symmetry.PureTranslations(ops)
	if len(pure) == 0 {
		m := make([]int, c.NumAtoms())
		for i := range m {
			m[i] = i
		}

		return c, m, geom.Identity(), nil
	}

	points := len(pure) + 1 // lattice points per input cell
	targetVol := 1.0 / float64(points)

	// Candidate generators: the pure translations and the input basis.
	cands := append(pure,
		geom.Vec3{1, 0, 0}, geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 1})

	tf, ok := shortestSpanningTriple(cands, targetVol)
	if !ok {
		return nil, nil, geom.Mat3{}, ErrClassification
	}

	primLat := geom.Mul(tf, c.Lattice())

	// A Delaunay pass keeps the primitive basis compact; the combined
	// transform stays exact because the reduction transform is integer.
	reduced, t, err := geom.DelaunayBasis(primLat, symprec)
	if err == nil {
		primLat = reduced
		tf = geom.Mul(t.ToMat3(), tf)
	}

	// Positions in the primitive basis: x_prim = T⁻ᵀ·x_input.
	tfT := geom.Transpose(tf)
	tfTInv, err := geom.Inverse(tfT)
	if err != nil {
		return nil, nil, geom.Mat3{}, ErrClassification
	}

	gPrim := geom.Metric(primLat)
	n := c.NumAtoms()
	mapTo := make([]int, n)
	var primPos []geom.Vec3
	var primTypes []int
	var primMagmoms []cell.Magmom

	for i := 0; i < n; i++ {
		x := geom.WrapFrac(geom.MulVec(tfTInv, c.Position(i)))
		found := -1
		for j, p := range primPos {
			if primTypes[j] == c.Type(i) && geom.SameLatticePoint(gPrim, x, p, symprec) {
				found = j

				break
			}
		}
		if found >= 0 {
			mapTo[i] = found

			continue
		}
		mapTo[i] = len(primPos)
		primPos = append(primPos, x)
		primTypes = append(primTypes, c.Type(i))
		if c.HasMagmoms() {
			primMagmoms = append(primMagmoms, c.Magmom(i))
		}
	}

	if len(primPos)*points != n {
		return nil, nil, geom.Mat3{}, ErrClassification
	}

	var opts []cell.Option
	if c.HasMagmoms() {
		opts = append(opts, cell.WithMagmoms(primMagmoms))
	}
	prim, err := cell.New(primLat, primPos, primTypes, opts...)
	if err != nil {
		return nil, nil, geom.Mat3{}, ErrClassification
	}

	return prim, mapTo, tf, nil
}

// shortestSpanningTriple searches three candidate vectors whose
// fractional volume matches targetVol and which span every candidate
// with integer coefficients.
func shortestSpanningTriple(cands []geom.Vec3, targetVol float64) (geom.Mat3, bool) {
	const tol = 1e-5
	n := len(cands)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				tf := geom.Mat3{cands[i], cands[j], cands[k]}
				vol := geom.Det(tf)
				if math.Abs(math.Abs(vol)-targetVol) > tol {
					continue
				}
				if vol < 0 { // keep the input handedness
					tf[2] = geom.Scale(-1, tf[2])
				}
				if spansAll(tf, cands) {
					return tf, true
				}
			}
		}
	}

	return geom.Mat3{}, false
}

// spansAll verifies every candidate has integer coordinates in the
// basis given by the rows of tf.
func spansAll(tf geom.Mat3, cands []geom.Vec3) bool {
	const tol = 1e-5
	inv, err := geom.Inverse(geom.Transpose(tf))
	if err != nil {
		return false
	}
	for _, v := range cands {
		x := geom.MulVec(inv, v)
		for d := 0; d < 3; d++ {
			if math.Abs(x[d]-math.Round(x[d])) > tol {
				return false
			}
		}
	}

	return true
}
