// Package geom is the tolerance-aware geometry kernel of latsym:
// 3×3 lattice algebra, metric tensors, and mod-1 equivalence tests.
//
// 🚀 What does geom provide?
//
//	Every other latsym package funnels its geometric decisions through
//	this kernel so that a single tolerance policy governs them all:
//	  • Metric tensors (Gram matrices) of row-basis lattices
//	  • Lattice-point equivalence under the metric: ‖(a−b) mod 1‖_G
//	  • Lattice-automorphism tests: Wᵀ·G·W ≈ G within tolerance
//	  • Exact integer 3×3 arithmetic for rotation parts
//	  • Niggli (Křivý–Gruber) and Delaunay (Selling) basis reduction
//
// ✨ Conventions:
//
//   - Lattice rows are the basis vectors: row i of a Mat3 lattice is
//     the Cartesian vector aᵢ, so cart = xᵀ·L for fractional x.
//   - Rotations in lattice representation are integer matrices acting
//     on fractional column vectors: x' = W·x.
//   - Tolerances are lengths (same unit as the lattice); metric-space
//     comparisons scale them to length² internally.
//
// Performance:
//
//   - All operations are O(1) on fixed 3×3 / length-3 values.
//   - Basis reductions are iterative with a fixed bound (100 sweeps).
//
// Real-valued inverse/determinant are delegated to gonum
// (gonum.org/v1/gonum/mat); integer arithmetic is exact and local.
package geom
