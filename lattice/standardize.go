// Package lattice: classification-backed standardization.

package lattice

import (
	"errors"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/spacegroup"
	"github.com/katalvlaran/latsym/symmetry"
)

// StdOptions tunes Standardize.
type StdOptions struct {
	// ToPrimitive collapses the result onto the primitive cell instead
	// of the conventional one.
	ToPrimitive bool

	// NoIdealize keeps the lattice exactly as transformed from the
	// input instead of snapping it to the ideal setting geometry.
	NoIdealize bool

	// Symprec is the symmetry search tolerance (same unit as the
	// lattice, typically Å).
	Symprec float64
}

// DefaultStdOptions returns the standard tolerance preset.
func DefaultStdOptions() StdOptions {
	return StdOptions{Symprec: 1e-5}
}

// Standardize derives the space group of c and rebuilds the cell in
// the standard setting of its type: conventional basis, origin on the
// tabulated setting's origin, atoms wrapped to [0,1).
//
// Errors: ErrNilCell, ErrBadTolerance, ErrStandardization when no
// tabulated setting matches at this tolerance.
//
// Complexity: dominated by the space-group classification.
func Standardize(c *cell.Cell, opts StdOptions) (*cell.Cell, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if opts.Symprec <= 0 {
		return nil, ErrBadTolerance
	}

	symOpts := symmetry.DefaultOptions()
	symOpts.Symprec = opts.Symprec
	ds, err := spacegroup.Classify(c, symOpts)
	if err != nil {
		if errors.Is(err, ErrBadTolerance) || errors.Is(err, ErrNilCell) {
			return nil, err
		}

		return nil, ErrStandardization
	}

	lat := ds.StdLattice
	if opts.NoIdealize {
		// The exact transformed lattice: L_conv = P⁻ᵀ·L_input.
		pInvT, err := geom.Inverse(geom.Transpose(ds.Transformation))
		if err != nil {
			return nil, ErrStandardization
		}
		lat = geom.Mul(pInvT, c.Lattice())
	}

	std, err := cell.New(lat, ds.StdPositions, ds.StdTypes)
	if err != nil {
		return nil, ErrStandardization
	}
	if !opts.ToPrimitive {
		return std, nil
	}

	ops, err := symmetry.Find(std, symOpts)
	if err != nil {
		return nil, ErrStandardization
	}
	prim, _, _, err := spacegroup.PrimitiveCell(std, ops, opts.Symprec)
	if err != nil {
		return nil, ErrStandardization
	}

	return prim, nil
}

// FindPrimitive is the Standardize preset returning the idealized
// primitive cell.
func FindPrimitive(c *cell.Cell, symprec float64) (*cell.Cell, error) {
	return Standardize(c, StdOptions{ToPrimitive: true, Symprec: symprec})
}

// RefineCell is the Standardize preset returning the idealized
// conventional cell.
func RefineCell(c *cell.Cell, symprec float64) (*cell.Cell, error) {
	return Standardize(c, StdOptions{Symprec: symprec})
}
