// Package latsym is a native crystallographic symmetry engine — from
// space-group search on periodic atomic structures to reciprocal-mesh
// reduction.
//
// 🚀 What is latsym?
//
//	A pure-Go library that determines the full symmetry of a periodic
//	point set and derives canonical representations from it:
//		• Symmetry search: all rotation+translation operations mapping
//		  a cell onto itself within a numeric tolerance
//		• Space-group classification: 230 types, Hall settings,
//		  point groups, Wyckoff & equivalent-atom bookkeeping
//		• Lattice canonicalization: standardized, primitive,
//		  Niggli-reduced and Delaunay-reduced cells
//		• Reciprocal meshes: symmetry-irreducible k-point grids,
//		  optionally constrained by q-point stabilizers
//
// ✨ Why choose latsym?
//
//   - Deterministic – identical inputs give identical outputs, down to
//     orbit representatives and species canonicalization
//   - Tolerance-aware – every equality decision is governed by a
//     caller-supplied symprec, never a hidden epsilon
//   - Concurrent-safe – every entry point is a pure function; the
//     static reference tables are read-only
//   - No cgo – the whole engine is native Go, no wrapped C library
//
// Under the hood, everything is organized under six subpackages:
//
//	cell/       — immutable Cell model, validation, species canonicalization
//	geom/       — tolerance-aware 3×3 geometry kernel (metric tensors, mod-1 tests)
//	symmetry/   — space-group operation finder
//	spacegroup/ — classifier, Hall-setting and point-group reference tables
//	lattice/    — standardizer, primitive search, Niggli & Delaunay reduction
//	mesh/       — reciprocal-grid orbit reduction (irreducible k-points)
//
// Quick ASCII example:
//
//	    c
//	    │ ┌────┐
//	    │ │  ● │      a simple cubic cell with one atom at the
//	    │ └────┘      origin carries the full m-3m holohedry:
//	    └────────── a  48 point operations, one trivial translation
//
// Dive into DESIGN.md for the grounding of each component and into the
// per-package doc.go files for algorithms, complexity and error
// contracts.
//
//	go get github.com/katalvlaran/latsym
package latsym
