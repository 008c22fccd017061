// Package spacegroup: public types and the Hall-number lookup.

package spacegroup

import (
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// Type describes one of the 530 tabulated Hall settings of the 230
// space-group types.
type Type struct {
	Number        int    // international space-group number, 1..230
	HallNumber    int    // setting index, 1..530
	International string // short Hermann–Mauguin symbol, e.g. "P2_1/c"
	Schoenflies   string // e.g. "C2h^5"
	Hall          string // Hall symbol of this setting
	Choice        string // setting choice tag ("", "b", "2", "H", ...)
	PointGroup    string // Hermann–Mauguin point-group symbol
	// ArithmeticClass combines the geometric crystal class with the
	// Bravais lattice letter, e.g. "m-3mF".
	ArithmeticClass string
	System          CrystalSystem
}

// Get returns the tabulated Type for a Hall number.
//
// Errors: ErrBadHallNumber outside [1, 530].
//
// Complexity: O(1).
func Get(hallNumber int) (Type, error) {
	if hallNumber < 1 || hallNumber > 530 {
		return Type{}, ErrBadHallNumber
	}
	r := hallTable[hallNumber]

	return Type{
		Number:          r.number,
		HallNumber:      hallNumber,
		International:   r.international,
		Schoenflies:     r.schoenflies,
		Hall:            r.hall,
		Choice:          r.choice,
		PointGroup:      r.pointGroup,
		ArithmeticClass: r.pointGroup + string(r.centering),
		System:          r.system,
	}, nil
}

// Dataset is the full result of classifying a cell: the identified
// space-group type, the transformation to its standard setting, the
// symmetry operations in the input basis, and per-atom bookkeeping.
type Dataset struct {
	// Identification.
	SpacegroupNumber int
	HallNumber       int
	International    string
	Hall             string
	Choice           string
	PointGroup       string

	// Standardization: x_std = Transformation·x_input + OriginShift
	// (then wrapped to [0,1)).
	Transformation geom.Mat3
	OriginShift    geom.Vec3

	// Operations in the input basis, identity first.
	Operations  []symmetry.Operation
	NOperations int

	// Per input atom. Wyckoff letters are assigned per orbit in
	// decreasing site-symmetry order ('a' = most symmetric site found),
	// which matches the ITA convention for most but not all settings.
	EquivalentAtoms     []int // lowest equivalent atom index per orbit
	MapToPrimitive      []int // index into the primitive cell's atoms
	WyckoffLetters      []byte
	SiteSymmetrySymbols []string

	// Standardized (conventional, idealized) cell content.
	StdLattice   geom.Mat3
	StdPositions []geom.Vec3
	StdTypes     []int
}
