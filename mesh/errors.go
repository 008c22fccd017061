// Package mesh: sentinel error set.

package mesh

import (
	"errors"

	"github.com/katalvlaran/latsym/geom"
)

var (
	// ErrBadMesh rejects mesh dimensions that are not strictly positive.
	ErrBadMesh = errors.New("mesh: mesh dimensions must be positive")

	// ErrBadShift rejects shift entries outside {0, 1}.
	ErrBadShift = errors.New("mesh: shift entries must be 0 or 1")

	// ErrBadQpoints rejects non-finite q-point coordinates.
	ErrBadQpoints = errors.New("mesh: q-point coordinates must be finite")

	// ErrBadRotations rejects an empty or non-unimodular rotation set.
	ErrBadRotations = errors.New("mesh: rotations must be unimodular and non-empty")

	// ErrMeshReduction signals an internal folding inconsistency (no
	// irreducible points survived).
	ErrMeshReduction = errors.New("mesh: reduction produced no irreducible points")

	// ErrNilCell mirrors the finder sentinel for nil cells.
	ErrNilCell = errors.New("mesh: cell must not be nil")
)

// ErrBadTolerance mirrors the kernel sentinel for non-positive
// tolerances.
var ErrBadTolerance = geom.ErrBadTolerance
