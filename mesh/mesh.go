// Package mesh: grid folding under reciprocal-space rotations.

package mesh

import (
	"math"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// Irreducible folds the regular mesh of opts under the point-group
// rotations of c (plus time reversal when enabled).
//
// Errors: ErrNilCell, ErrBadMesh, ErrBadShift, ErrBadTolerance;
// finder errors pass through; ErrMeshReduction on an internal folding
// inconsistency.
//
// Complexity: O(R·N) for R rotations over N grid points, after an
// O(finder) symmetry derivation.
func Irreducible(c *cell.Cell, opts Options) (*Result, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	symOpts := symmetry.DefaultOptions()
	symOpts.Symprec = opts.Symprec
	ops, err := symmetry.Find(c, symOpts)
	if err != nil {
		return nil, err
	}
	rots := reciprocalRotations(symmetry.PointGroupRotations(ops), opts.TimeReversal)

	return fold(rots, opts)
}

// Stabilized folds the mesh under the subset of the supplied
// real-space rotations whose reciprocal action fixes every q-point
// modulo 1.
//
// Errors: ErrBadMesh, ErrBadShift, ErrBadTolerance, ErrBadRotations,
// ErrBadQpoints, ErrMeshReduction.
//
// Complexity: O(R·(Q + N)) for R rotations, Q q-points, N grid points.
func Stabilized(rotations []geom.IMat3, opts Options, qpoints []geom.Vec3) (*Result, error) {
	if err := checkOptions(opts); err != nil {
		return nil, err
	}
	if len(rotations) == 0 {
		return nil, ErrBadRotations
	}
	for _, w := range rotations {
		if d := geom.DetI(w); d != 1 && d != -1 {
			return nil, ErrBadRotations
		}
	}
	for _, q := range qpoints {
		for d := 0; d < 3; d++ {
			if math.IsNaN(q[d]) || math.IsInf(q[d], 0) {
				return nil, ErrBadQpoints
			}
		}
	}

	all := reciprocalRotations(rotations, opts.TimeReversal)
	var keep []geom.IMat3
	for _, w := range all {
		if stabilizes(w, qpoints, opts.Symprec) {
			keep = append(keep, w)
		}
	}

	return fold(keep, opts)
}

func checkOptions(opts Options) error {
	for d := 0; d < 3; d++ {
		if opts.Mesh[d] <= 0 {
			return ErrBadMesh
		}
		if opts.Shift[d] != 0 && opts.Shift[d] != 1 {
			return ErrBadShift
		}
	}
	if opts.Symprec <= 0 {
		return ErrBadTolerance
	}

	return nil
}

// reciprocalRotations maps real-space fractional rotations onto their
// reciprocal-space action (inverse transpose) and deduplicates; with
// time reversal the negatives join the set.
func reciprocalRotations(rotations []geom.IMat3, timeReversal bool) []geom.IMat3 {
	seen := map[geom.IMat3]bool{}
	var out []geom.IMat3
	add := func(w geom.IMat3) {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, w := range rotations {
		inv, err := geom.InverseI(w)
		if err != nil {
			continue
		}
		r := geom.TransposeI(inv)
		add(r)
		if timeReversal {
			add(geom.NegI(r))
		}
	}

	return out
}

func stabilizes(w geom.IMat3, qpoints []geom.Vec3, tol float64) bool {
	for _, q := range qpoints {
		rq := geom.MulIVec(w, q)
		for d := 0; d < 3; d++ {
			diff := rq[d] - q[d]
			if math.Abs(diff-math.Round(diff)) > tol {
				return false
			}
		}
	}

	return true
}

// fold computes orbit representatives over the double-grid integer
// coordinates 2i + shift, which keeps every landing check exact.
// Images are merged through a union-find keyed on the smallest linear
// index, so the orbits are those of the group generated by rots and
// every representative is the first orbit member in scan order.
func fold(rots []geom.IMat3, opts Options) (*Result, error) {
	n := opts.Mesh
	total := n[0] * n[1] * n[2]
	addr := make([][3]int, total)
	parent := make([]int, total)
	for i := range parent {
		parent[i] = i
	}

	idx := 0
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				addr[idx] = [3]int{i, j, k}
				idx++
			}
		}
	}

	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		switch {
		case ra < rb:
			parent[rb] = ra
		case rb < ra:
			parent[ra] = rb
		}
	}

	// Exact rational landing checks: every grid coordinate is
	// d[k]·scale[k] / den with den = 2·n0·n1·n2.
	den := 2 * n[0] * n[1] * n[2]
	scale := [3]int{den / (2 * n[0]), den / (2 * n[1]), den / (2 * n[2])}

	for p := 0; p < total; p++ {
		d := double(addr[p], opts)
		for _, w := range rots {
			var num [3]int
			for m := 0; m < 3; m++ {
				num[m] = w[m][0]*d[0]*scale[0] + w[m][1]*d[1]*scale[1] + w[m][2]*d[2]*scale[2]
			}
			if q, ok := gridIndex(num, den, opts); ok {
				union(p, q)
			}
		}
	}

	mapping := make([]int, total)
	num := 0
	for i := range mapping {
		mapping[i] = find(i)
		if mapping[i] == i {
			num++
		}
	}
	if num <= 0 {
		return nil, ErrMeshReduction
	}

	return &Result{GridAddress: addr, Mapping: mapping, NumIrreducible: num}, nil
}

// double maps a grid address onto the double grid: 2i + shift, so the
// fractional coordinate is d / (2n).
func double(a [3]int, opts Options) [3]int {
	return [3]int{
		2*a[0] + opts.Shift[0],
		2*a[1] + opts.Shift[1],
		2*a[2] + opts.Shift[2],
	}
}

// gridIndex maps a rotated point (num[m]/den per axis) back to a grid
// index; ok is false when the point does not land on the mesh
// (anisotropic mesh incompatible with the rotation, or shift parity
// broken).
func gridIndex(num [3]int, den int, opts Options) (int, bool) {
	n := opts.Mesh
	var a [3]int
	for d := 0; d < 3; d++ {
		// Rotated double-grid coordinate along this axis: 2·n·num/den.
		t := 2 * n[d] * num[d]
		if t%den != 0 {
			return 0, false
		}
		dd := t/den - opts.Shift[d]
		if dd%2 != 0 {
			return 0, false
		}
		i := (dd / 2) % n[d]
		if i < 0 {
			i += n[d]
		}
		a[d] = i
	}

	return a[0] + n[0]*(a[1]+n[1]*a[2]), true
}
