// Package spacegroup: rotation-type histograms and the 32 point groups.
//
// Every crystallographic rotation matrix is classified by determinant
// and trace into one of ten rotation types (±1, ±2, ±3, ±4, ±6); the
// multiset of types of a rotation group identifies it uniquely among
// the 32 crystallographic point groups. This is the classical
// fingerprint used to pin the point group — and with it the crystal
// system — before any setting-specific analysis.

package spacegroup

import (
	"github.com/katalvlaran/latsym/geom"
)

// CrystalSystem tags one of the seven 3-D crystal systems.
type CrystalSystem int

const (
	Triclinic CrystalSystem = iota + 1
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

// String returns the conventional lowercase tag.
func (s CrystalSystem) String() string {
	switch s {
	case Triclinic:
		return "triclinic"
	case Monoclinic:
		return "monoclinic"
	case Orthorhombic:
		return "orthorhombic"
	case Tetragonal:
		return "tetragonal"
	case Trigonal:
		return "trigonal"
	case Hexagonal:
		return "hexagonal"
	case Cubic:
		return "cubic"
	}

	return "unknown"
}

// PointGroup is one of the 32 crystallographic point groups.
type PointGroup struct {
	Symbol      string // international (Hermann–Mauguin) symbol
	Schoenflies string
	System      CrystalSystem
	Laue        bool // true when the group contains the inversion
	Order       int
}

// histogram counts rotation types in the fixed order
// [-6, -4, -3, -2, -1, 1, 2, 3, 4, 6].
type histogram [10]int

// rotationKind classifies an integer rotation matrix into a histogram
// slot; ok is false for a matrix that is not a crystallographic
// rotation (impossible for matrices produced by the finder).
func rotationKind(w geom.IMat3) (int, bool) {
	det := geom.DetI(w)
	tr := geom.TraceI(w)
	switch det {
	case 1:
		switch tr {
		case 3:
			return 5, true // 1
		case -1:
			return 6, true // 2
		case 0:
			return 7, true // 3
		case 1:
			return 8, true // 4
		case 2:
			return 9, true // 6
		}
	case -1:
		switch tr {
		case -3:
			return 4, true // -1
		case 1:
			return 3, true // -2 (mirror)
		case 0:
			return 2, true // -3
		case -1:
			return 1, true // -4
		case -2:
			return 0, true // -6
		}
	}

	return 0, false
}

// pointGroupTable maps rotation-type histograms to the 32 point
// groups. Order within each entry: [-6,-4,-3,-2,-1,1,2,3,4,6].
var pointGroupTable = map[histogram]PointGroup{
	{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}: {"1", "C1", Triclinic, false, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}: {"-1", "Ci", Triclinic, true, 2},
	{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}: {"2", "C2", Monoclinic, false, 2},
	{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}: {"m", "Cs", Monoclinic, false, 2},
	{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}: {"2/m", "C2h", Monoclinic, true, 4},
	{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}: {"222", "D2", Orthorhombic, false, 4},
	{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}: {"mm2", "C2v", Orthorhombic, false, 4},
	{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}: {"mmm", "D2h", Orthorhombic, true, 8},
	{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}: {"4", "C4", Tetragonal, false, 4},
	{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}: {"-4", "S4", Tetragonal, false, 4},
	{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}: {"4/m", "C4h", Tetragonal, true, 8},
	{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}: {"422", "D4", Tetragonal, false, 8},
	{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}: {"4mm", "C4v", Tetragonal, false, 8},
	{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}: {"-42m", "D2d", Tetragonal, false, 8},
	{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}: {"4/mmm", "D4h", Tetragonal, true, 16},
	{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}: {"3", "C3", Trigonal, false, 3},
	{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}: {"-3", "C3i", Trigonal, true, 6},
	{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}: {"32", "D3", Trigonal, false, 6},
	{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}: {"3m", "C3v", Trigonal, false, 6},
	{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}: {"-3m", "D3d", Trigonal, true, 12},
	{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}: {"6", "C6", Hexagonal, false, 6},
	{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}: {"-6", "C3h", Hexagonal, false, 6},
	{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}: {"6/m", "C6h", Hexagonal, true, 12},
	{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}: {"622", "D6", Hexagonal, false, 12},
	{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}: {"6mm", "C6v", Hexagonal, false, 12},
	{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}: {"-6m2", "D3h", Hexagonal, false, 12},
	{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}: {"6/mmm", "D6h", Hexagonal, true, 24},
	{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}: {"23", "T", Cubic, false, 12},
	{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}: {"m-3", "Th", Cubic, true, 24},
	{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}: {"432", "O", Cubic, false, 24},
	{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}: {"-43m", "Td", Cubic, false, 24},
	{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}: {"m-3m", "Oh", Cubic, true, 48},
}

// PointGroupOf matches a set of distinct rotation matrices against
// the 32 crystallographic point groups.
//
// Complexity: O(n) histogramming plus one map lookup.
func PointGroupOf(rotations []geom.IMat3) (PointGroup, error) {
	var h histogram
	for _, w := range rotations {
		slot, ok := rotationKind(w)
		if !ok {
			return PointGroup{}, ErrClassification
		}
		h[slot]++
	}
	pg, ok := pointGroupTable[h]
	if !ok {
		return PointGroup{}, ErrClassification
	}

	return pg, nil
}
