// Package symmetry: sentinel error set.
// All search routines return these sentinels and tests match them via
// errors.Is. No routine panics on user input.

package symmetry

import (
	"errors"

	"github.com/katalvlaran/latsym/geom"
)

var (
	// ErrNilCell rejects a nil *cell.Cell before any computation.
	ErrNilCell = errors.New("symmetry: nil cell")

	// ErrNoSymmetry signals that not even the identity-only trivial
	// group could be confirmed — malformed input rather than a low
	// symmetry cell (every well-formed cell has at least the identity).
	ErrNoSymmetry = errors.New("symmetry: no symmetry operation found")

	// ErrInconsistentSymmetry signals that the found operation set is
	// not closed under composition, or grew past the group-theoretic
	// bound. The tolerance is too loose or too tight for the input;
	// retry with a different Symprec.
	ErrInconsistentSymmetry = errors.New("symmetry: operation set is not a group")
)

// ErrBadTolerance aliases the kernel sentinel so that callers can match
// the whole InvalidArgument family at either package boundary.
var ErrBadTolerance = geom.ErrBadTolerance
