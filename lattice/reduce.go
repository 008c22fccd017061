// Package lattice: Niggli and Delaunay reduction of full cells.

package lattice

import (
	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

// NiggliReduce returns the cell re-expressed in the Niggli-reduced
// basis (Křivý–Gruber algorithm on the Gram representation).
//
// Errors: ErrNilCell, ErrBadTolerance, ErrReduction on
// non-convergence within the sweep bound.
//
// Complexity: bounded by the reduction sweep limit; O(N) for the atom
// carry-through.
func NiggliReduce(c *cell.Cell, symprec float64) (*cell.Cell, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	reduced, t, err := geom.NiggliBasis(c.Lattice(), symprec)
	if err != nil {
		return nil, err
	}

	return rebase(c, reduced, t)
}

// DelaunayReduce returns the cell re-expressed in the Delaunay-reduced
// basis (Selling reduction of the extended four-vector set).
//
// Errors: ErrNilCell, ErrBadTolerance, ErrReduction.
//
// Complexity: bounded by the reduction sweep limit; O(N) for the atom
// carry-through.
func DelaunayReduce(c *cell.Cell, symprec float64) (*cell.Cell, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	reduced, t, err := geom.DelaunayBasis(c.Lattice(), symprec)
	if err != nil {
		return nil, err
	}

	return rebase(c, reduced, t)
}

// rebase rebuilds the cell on a new basis L' = T·L, re-expressing
// positions as x' = (Tᵀ)⁻¹·x and carrying types and magnetic moments.
func rebase(c *cell.Cell, lat geom.Mat3, t geom.IMat3) (*cell.Cell, error) {
	tTInv, err := geom.InverseI(geom.TransposeI(t))
	if err != nil {
		return nil, err
	}

	n := c.NumAtoms()
	pos := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		pos[i] = geom.WrapFrac(geom.MulIVec(tTInv, c.Position(i)))
	}

	var opts []cell.Option
	if c.HasMagmoms() {
		opts = append(opts, cell.WithMagmoms(c.Magmoms()))
	}

	return cell.New(lat, pos, c.Types(), opts...)
}
