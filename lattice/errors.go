// Package lattice: sentinel error set.

package lattice

import (
	"errors"

	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

var (
	// ErrStandardization signals that no consistent space-group setting
	// could be derived for the cell at the given tolerance.
	ErrStandardization = errors.New("lattice: no consistent setting derived")

	// ErrReduction mirrors the kernel sentinel for non-converging basis
	// reductions.
	ErrReduction = geom.ErrReduction

	// ErrBadTolerance mirrors the kernel sentinel for non-positive
	// tolerances.
	ErrBadTolerance = geom.ErrBadTolerance

	// ErrNilCell mirrors the finder sentinel for nil cells.
	ErrNilCell = symmetry.ErrNilCell
)
