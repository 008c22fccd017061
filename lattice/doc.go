// Package lattice standardizes and reduces crystal cells.
//
// 🚀 What is lattice?
//
// The cell-level counterpart of the geom reduction kernel: every
// routine takes a full cell (basis + atoms) and returns a new cell
// with the atom content re-expressed in the new basis.
//
//   - Standardize — conventional (or primitive) setting of the cell's
//     space group, optionally idealized to the exact setting geometry.
//   - FindPrimitive / RefineCell — the two common Standardize presets.
//   - NiggliReduce — Křivý–Gruber reduction of the basis.
//   - DelaunayReduce — Selling/Delaunay reduction of the basis.
//
// ✨ Key features
//
//   - Reductions preserve the lattice (same point set, new basis) and
//     the cell volume up to the sign convention.
//   - Atom positions are carried through every basis change exactly:
//     x' = (Tᵀ)⁻¹·x for a lattice transform L' = T·L.
//   - Standardization is classification-backed: the setting comes from
//     the space-group match, never from cell-parameter heuristics.
//
// All routines are pure: inputs are never mutated.
package lattice
