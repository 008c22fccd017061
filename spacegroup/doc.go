// Package spacegroup classifies a found symmetry-operation set into
// one of the 230 space-group types and derives the full dataset: Hall
// setting, international and Schoenflies symbols, transformation to
// the standardized setting, Wyckoff and equivalent-atom bookkeeping.
//
// 🚀 How classification works:
//
//  1. The symmetry finder (package symmetry) produces the operation
//     set of the input cell.
//  2. The cell is collapsed to its primitive sublattice using the pure
//     translations, and the operations are re-derived there.
//  3. Rotation parts are histogrammed by rotation type (±1,±2,±3,±4,±6
//     from trace and determinant) and matched against the 32
//     crystallographic point groups, which pins the crystal system.
//  4. A conventional basis is constructed from the symmetry axes of
//     the proper rotations; expressing the primitive lattice in it
//     yields the centering type.
//  5. Candidate Hall settings (same point group, centering and crystal
//     system) are expanded into explicit operation sets by the Hall
//     symbol parser and compared against the found operations over a
//     bounded origin-shift grid (twelfths). The first match fixes the
//     Hall number, transformation matrix and origin shift.
//  6. Wyckoff letters, site-symmetry symbols and equivalent-atom
//     classes follow from the orbit structure of the atoms under the
//     matched operations.
//
// ✨ Reference data:
//
//   - 32 point groups keyed by rotation-type histogram
//   - 530 Hall settings (Get, keyed 1..530) with space-group number,
//     international / Hall / Schoenflies symbols, point group,
//     arithmetic crystal class and crystal system
//
// Both tables are read-only and safe for concurrent use.
//
// Errors: ErrClassification when no reference entry matches the found
// operation set, ErrBadHallNumber for lookups outside [1, 530].
package spacegroup
