// Package symmetry: the Find pipeline.
//
// Description:
//
//	Find searches every operation (W, w) with W an integer rotation in
//	the lattice basis and w a fractional translation such that the
//	operation maps the cell onto itself within Options.Symprec.
//
// Algorithm Outline:
//  1. Validate input (nil cell, non-positive tolerance).
//  2. Enumerate candidate rotations of the bare lattice (rotations.go).
//  3. Per candidate, search compatible translations (translations.go).
//  4. Sort deterministically: identity first, then lexicographic.
//  5. Verify group closure modulo lattice translations (closure.go).
//
// Errors:
//   - ErrNilCell, ErrBadTolerance — before any computation.
//   - ErrNoSymmetry            — identity could not be confirmed.
//   - ErrInconsistentSymmetry  — closure failed or the set exceeded
//     the 48·N group-theoretic bound.

package symmetry

import (
	"sort"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

// Find returns the space-group operations of c, identity first.
//
// The result is a group modulo lattice translations: closed under
// composition, containing inverses and the identity.
func Find(c *cell.Cell, opts Options) ([]Operation, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if opts.Symprec <= 0 {
		return nil, ErrBadTolerance
	}
	if opts.MagSymprec <= 0 {
		opts.MagSymprec = DefaultOptions().MagSymprec
	}

	candidates, err := latticeCandidates(c.Lattice(), opts.Symprec)
	if err != nil {
		return nil, err
	}

	g := c.Metric()
	cap48 := maxPointGroupOrder * c.NumAtoms()

	ops := make([]Operation, 0, len(candidates))
	for _, w := range candidates {
		for _, trans := range rotationTranslations(c, g, w, opts) {
			ops = append(ops, Operation{Rotation: w, Translation: trans})
			if len(ops) > cap48 {
				return nil, ErrInconsistentSymmetry
			}
		}
	}

	sortOperations(ops)

	if len(ops) == 0 || !ops[0].IsIdentity() {
		return nil, ErrNoSymmetry
	}
	if err = verifyClosure(ops, g, opts.Symprec); err != nil {
		return nil, err
	}

	return ops, nil
}

// Multiplicity returns the number of operations Find would return.
func Multiplicity(c *cell.Cell, opts Options) (int, error) {
	ops, err := Find(c, opts)
	if err != nil {
		return 0, err
	}

	return len(ops), nil
}

// PointGroupRotations returns the distinct rotation parts of ops in
// first-appearance order — the point group of the cell.
func PointGroupRotations(ops []Operation) []geom.IMat3 {
	seen := make(map[geom.IMat3]struct{}, len(ops))
	out := make([]geom.IMat3, 0, len(ops))
	for _, op := range ops {
		if _, dup := seen[op.Rotation]; dup {
			continue
		}
		seen[op.Rotation] = struct{}{}
		out = append(out, op.Rotation)
	}

	return out
}

// PureTranslations returns the nonzero translations attached to the
// identity rotation — the centering vectors of a non-primitive cell.
func PureTranslations(ops []Operation) []geom.Vec3 {
	var out []geom.Vec3
	for _, op := range ops {
		if op.IsPureTranslation() {
			out = append(out, op.Translation)
		}
	}

	return out
}

// sortOperations orders ops deterministically: identity first, then
// lexicographic by rotation entries and translation components.
func sortOperations(ops []Operation) {
	sort.Slice(ops, func(a, b int) bool {
		ia, ib := ops[a].IsIdentity(), ops[b].IsIdentity()
		if ia != ib {
			return ia
		}

		return lessOperation(ops[a], ops[b])
	})
}

// lessOperation is the lexicographic order used by sortOperations.
func lessOperation(a, b Operation) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a.Rotation[i][j] != b.Rotation[i][j] {
				return a.Rotation[i][j] < b.Rotation[i][j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		if a.Translation[i] != b.Translation[i] {
			return a.Translation[i] < b.Translation[i]
		}
	}

	return false
}
