// Package cell: value types and sentinel errors.
package cell

import (
	"errors"

	"github.com/katalvlaran/latsym/geom"
)

var (
	// ErrBadLattice rejects a singular (zero-determinant) or non-finite
	// lattice before any engine computation.
	ErrBadLattice = errors.New("cell: lattice is singular or not finite")

	// ErrShapeMismatch signals length-mismatched positions, types or
	// magmoms slices.
	ErrShapeMismatch = errors.New("cell: positions/types/magmoms lengths differ")

	// ErrNoAtoms rejects an empty cell: the engine needs at least one
	// site to anchor the translation search.
	ErrNoAtoms = errors.New("cell: cell contains no atoms")

	// ErrMixedMagmoms signals that collinear and noncollinear moments
	// were mixed in one cell.
	ErrMixedMagmoms = errors.New("cell: mixed collinear and noncollinear magmoms")
)

// Magmom is the magnetic moment of one site: either a collinear scalar
// or a noncollinear vector, never both.
type Magmom struct {
	// Scalar is the collinear moment (used when Noncollinear is false).
	Scalar float64

	// Vector is the noncollinear moment in Cartesian coordinates.
	Vector geom.Vec3

	// Noncollinear selects which representation is active.
	Noncollinear bool
}

// Collinear builds a collinear moment.
func Collinear(m float64) Magmom {
	return Magmom{Scalar: m}
}

// Noncollinear builds a noncollinear vector moment.
func Noncollinear(v geom.Vec3) Magmom {
	return Magmom{Vector: v, Noncollinear: true}
}

// Option customizes Cell construction.
type Option func(*options)

type options struct {
	magmoms []Magmom
}

// WithMagmoms attaches magnetic moments, one per atom. All moments
// must share one representation (collinear or noncollinear).
func WithMagmoms(ms []Magmom) Option {
	return func(o *options) { o.magmoms = ms }
}
