// Package cell defines the immutable description of a periodic point
// set — the input model of every latsym engine entry point.
//
// 🚀 What is a Cell?
//
//	A lattice (3×3, rows = basis vectors), fractional atomic positions
//	in [0,1), per-atom species labels, and optional magnetic moments
//	(collinear scalars or noncollinear vectors).
//
// ✨ Guarantees established at construction:
//
//   - lattice is non-singular (checked determinant)
//   - positions, types and magmoms are length-matched
//   - positions are wrapped into [0,1)
//   - arbitrary species labels are canonicalized to a dense 1..K
//     kind index by first occurrence — a stable, input-order-dependent
//     mapping that downstream orbit/Wyckoff bookkeeping relies on
//
// Cells are immutable to the engine: every accessor returns a copy and
// every engine operation returns a new Cell instead of mutating its
// input, so Cells may be shared freely across goroutines.
package cell
