// Package symmetry searches the space-group operations of a periodic
// cell: every rotation+translation pair mapping the cell onto itself
// within a caller-supplied tolerance.
//
// 🚀 How the search works:
//
//  1. The lattice is Delaunay-reduced; in a reduced basis every
//     crystallographic rotation has matrix entries in {−1,0,1}, so the
//     candidate space is the 3⁹ sign patterns filtered by det = ±1 and
//     metric preservation Wᵀ·G·W ≈ G.
//  2. Candidates are mapped back to the input basis (conjugation by
//     the unimodular reduction transform keeps them integer).
//  3. For each candidate rotation, translations are anchored on the
//     least-populous species: w = xₖ − W·x₀ for every atom k of that
//     species, verified against all atoms (same species, same magnetic
//     moment up to the axial transform and an optional sign flip).
//  4. The resulting set is verified to be closed under composition
//     modulo lattice translations; a non-closed set means the
//     tolerance merged or split sites and is reported as
//     ErrInconsistentSymmetry rather than silently repaired.
//
// ✨ Guarantees:
//
//   - The identity operation with zero translation is always first.
//   - The returned slice is a group modulo lattice translations.
//   - Deterministic order: identity, then lexicographic by rotation
//     and translation.
//
// Performance:
//
//   - Candidate filter: O(3⁹) metric checks, independent of cell size.
//   - Translation search: O(P·A·N²) for P candidates, A anchor atoms,
//     N atoms (with the species test pruning most pairs).
//
// Errors: ErrNilCell, ErrBadTolerance, ErrNoSymmetry,
// ErrInconsistentSymmetry — see errors.go.
package symmetry
