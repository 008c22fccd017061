// Package geom: sentinel error set.
// All kernel routines return these sentinels and callers match them
// via errors.Is. No routine panics on user-triggered conditions.

package geom

import "errors"

var (
	// ErrSingular is returned when a lattice or matrix inversion meets a
	// (numerically) singular input.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrNotUnimodular signals that an integer matrix expected to have
	// determinant ±1 does not, so no exact integer inverse exists.
	ErrNotUnimodular = errors.New("geom: matrix is not unimodular")

	// ErrBadTolerance rejects a non-positive tolerance before any
	// geometric computation runs.
	ErrBadTolerance = errors.New("geom: tolerance must be > 0")

	// ErrReduction indicates that an iterative basis reduction exceeded
	// its sweep bound without reaching the reduced form (degenerate or
	// near-singular lattice, or a too-tight tolerance).
	ErrReduction = errors.New("geom: basis reduction did not converge")

	// ErrNotInteger signals that a real matrix expected to hold integer
	// entries deviates from them beyond tolerance.
	ErrNotInteger = errors.New("geom: matrix entries are not integral")
)
