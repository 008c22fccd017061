// Package mesh reduces regular reciprocal-space meshes to their
// irreducible points.
//
// 🚀 What is mesh?
//
// A Monkhorst–Pack style grid over the reciprocal unit cell, folded by
// the point-group rotations of a cell (plus time reversal, i.e. the
// q → −q identification). Every grid point gets mapped to the
// representative of its symmetry orbit; downstream integrations then
// run over representatives with orbit weights.
//
//   - Irreducible — derive the rotations from a cell and fold the grid.
//   - Stabilized — fold with caller-supplied rotations, restricted to
//     those fixing every given q-point.
//
// ✨ Key features
//
//   - Grid points are (i + shift/2)/n per axis, i ∈ [0, n).
//   - Rotations act on reciprocal fractional coordinates through the
//     inverse-transpose; rotations that do not map the grid onto
//     itself are dropped for that mesh.
//   - The orbit representative is the first orbit member in grid scan
//     order (first axis fastest), so Mapping is idempotent:
//     Mapping[Mapping[i]] == Mapping[i].
//
// All entry points validate their arguments before any computation.
package mesh
