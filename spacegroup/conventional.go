// Package spacegroup: conventional-basis construction.
//
// Given the operations of a primitive cell and its point group, build
// the conventional cell basis from the symmetry axes: the c axis along
// the highest-order rotation, secondary axes from 2-folds or shortest
// perpendicular lattice vectors, cubic axes from the three 4-fold (or
// 2-fold) directions. Several admissible variants are produced per
// system (axis permutations, diagonal secondary-axis classes); the
// Hall matching stage tries them in order.
//
// All bases are built right-handed with proper (det +1) relabelings
// only, so enantiomorphic pairs (P4₁32 vs P4₃32, P3₁ vs P3₂, ...)
// are never conflated by an orientation flip.

package spacegroup

import (
	"math"
	"sort"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

// axisInfo is one proper-rotation axis found in the primitive basis.
type axisInfo struct {
	dir    geom.IVec3 // gcd-normalized integer direction
	order  int        // rotation order of the proper form (2..6)
	proper geom.IMat3 // the proper rotation matrix of highest order
	realOp bool       // true when an actual det=+1 rotation has this axis
}

// conventionalBases returns candidate integer transforms M (rows =
// conventional basis in primitive fractional coordinates) for the
// crystal system of pg.
func conventionalBases(prim *cell.Cell, rotations []geom.IMat3, pg PointGroup) []geom.IMat3 {
	axes := collectAxes(rotations)

	switch pg.System {
	case Triclinic:
		return []geom.IMat3{geom.IdentityI()}
	case Monoclinic:
		return monoclinicBases(prim, axes)
	case Orthorhombic:
		return orthorhombicBases(prim, axes, pg)
	case Tetragonal, Trigonal, Hexagonal:
		return uniaxialBases(prim, axes, pg)
	case Cubic:
		return cubicBases(prim, axes)
	}

	return nil
}

// collectAxes extracts the distinct rotation axes of the proper forms
// of all rotations, keeping the highest order per axis line.
func collectAxes(rotations []geom.IMat3) []axisInfo {
	var axes []axisInfo
	for _, w := range rotations {
		isReal := geom.DetI(w) == 1
		p := w
		if !isReal {
			p = geom.NegI(w)
		}
		order := properOrder(p)
		if order < 2 {
			continue
		}
		dir, ok := rotationAxis(p)
		if !ok {
			continue
		}
		found := false
		for i := range axes {
			if sameAxisLine(axes[i].dir, dir) {
				if order > axes[i].order {
					axes[i].order = order
					axes[i].proper = p
				}
				axes[i].realOp = axes[i].realOp || isReal
				found = true

				break
			}
		}
		if !found {
			axes = append(axes, axisInfo{dir: dir, order: order, proper: p, realOp: isReal})
		}
	}

	// Deterministic order: by decreasing order, then lexicographic.
	sort.SliceStable(axes, func(a, b int) bool {
		if axes[a].order != axes[b].order {
			return axes[a].order > axes[b].order
		}

		return lessIVec(axes[a].dir, axes[b].dir)
	})

	return axes
}

// properOrder returns the multiplicative order of a proper rotation
// (1..6), or 0 when it is not crystallographic.
func properOrder(w geom.IMat3) int {
	acc := w
	for n := 1; n <= 6; n++ {
		if acc.IsIdentity() {
			return n
		}
		acc = geom.MulI(acc, w)
	}

	return 0
}

// rotationAxis finds the gcd-normalized integer eigenvector of a
// proper rotation for eigenvalue 1, searching |components| ≤ 3.
func rotationAxis(w geom.IMat3) (geom.IVec3, bool) {
	best := geom.IVec3{}
	bestNorm := math.MaxInt
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				v := geom.IVec3{x, y, z}
				if v == (geom.IVec3{}) || geom.MulIGrid(w, v) != v {
					continue
				}
				n := x*x + y*y + z*z
				if n < bestNorm {
					g := gcd3(abs(x), abs(y), abs(z))
					v = geom.IVec3{x / g, y / g, z / g}
					best = canonicalDir(v)
					bestNorm = n
				}
			}
		}
	}

	return best, bestNorm < math.MaxInt
}

// canonicalDir fixes the sign so the first nonzero component is
// positive — one representative per axis line.
func canonicalDir(v geom.IVec3) geom.IVec3 {
	for i := 0; i < 3; i++ {
		if v[i] > 0 {
			return v
		}
		if v[i] < 0 {
			return geom.IVec3{-v[0], -v[1], -v[2]}
		}
	}

	return v
}

func sameAxisLine(a, b geom.IVec3) bool {
	return canonicalDir(a) == canonicalDir(b)
}

func lessIVec(a, b geom.IVec3) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func gcd2(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

func gcd3(a, b, c int) int {
	return gcd2(gcd2(a, b), c)
}

// cartesianOf maps an integer direction in the primitive basis to
// Cartesian coordinates.
func cartesianOf(prim *cell.Cell, v geom.IVec3) geom.Vec3 {
	f := geom.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}

	return geom.CartesianFromFrac(prim.Lattice(), f)
}

// perpendicularShortest lists integer lattice vectors perpendicular
// (in Cartesian space) to the given axis, sorted by length; at most
// limit entries, one per axis line.
func perpendicularShortest(prim *cell.Cell, axis geom.IVec3, limit int) []geom.IVec3 {
	axCart := cartesianOf(prim, axis)
	axLen := geom.Norm(axCart)

	type scored struct {
		v    geom.IVec3
		norm float64
	}
	var found []scored
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				v := geom.IVec3{x, y, z}
				if v == (geom.IVec3{}) {
					continue
				}
				g := gcd3(abs(x), abs(y), abs(z))
				v = canonicalDir(geom.IVec3{x / g, y / g, z / g})
				cart := cartesianOf(prim, v)
				if math.Abs(geom.Dot(cart, axCart)) > 1e-5*axLen*geom.Norm(cart) {
					continue
				}
				dup := false
				for _, f := range found {
					if f.v == v {
						dup = true

						break
					}
				}
				if !dup {
					found = append(found, scored{v: v, norm: geom.Norm(cart)})
				}
			}
		}
	}
	sort.SliceStable(found, func(a, b int) bool {
		if math.Abs(found[a].norm-found[b].norm) > 1e-9 {
			return found[a].norm < found[b].norm
		}

		return lessIVec(found[a].v, found[b].v)
	})

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]geom.IVec3, len(found))
	for i, f := range found {
		out[i] = f.v
	}

	return out
}

// positiveSense returns the proper rotation (w or its inverse powers)
// that rotates by a positive angle about the +axis direction in
// Cartesian space, so that b = W·a yields a right-handed (a, b, c).
func positiveSense(prim *cell.Cell, w geom.IMat3, axis geom.IVec3, probe geom.IVec3) geom.IMat3 {
	axCart := cartesianOf(prim, axis)
	aCart := cartesianOf(prim, probe)
	bCart := cartesianOf(prim, geom.MulIGrid(w, probe))
	if geom.Dot(geom.Cross(aCart, bCart), axCart) >= 0 {
		return w
	}
	inv, err := geom.InverseI(w)
	if err != nil {
		return w
	}

	return inv
}

// monoclinicBases: unique axis b along the 2-fold; a, c from the
// shortest perpendicular lattice vectors, with the three cyclic cell
// choices as variants.
func monoclinicBases(prim *cell.Cell, axes []axisInfo) []geom.IMat3 {
	if len(axes) == 0 {
		return nil
	}
	b := axes[0].dir
	perp := perpendicularShortest(prim, b, 4)
	if len(perp) < 2 {
		return nil
	}

	var out []geom.IMat3
	add := func(a, c geom.IVec3) {
		m := geom.IMat3{
			{a[0], a[1], a[2]},
			{b[0], b[1], b[2]},
			{c[0], c[1], c[2]},
		}
		if geom.DetI(m) == 0 {
			return
		}
		out = append(out, rightHanded(prim, m, Monoclinic))
	}

	a, c := perp[0], perp[1]
	sum := geom.IVec3{-a[0] - c[0], -a[1] - c[1], -a[2] - c[2]}
	add(a, c)
	add(c, a)
	add(c, sum)
	add(sum, a)
	add(a, sum)
	add(sum, c)

	return out
}

// orthorhombicBases: the three mutually perpendicular 2-fold axes in
// every admissible order. For mm2 the true rotation axis is pinned to
// c and only a/b may swap.
func orthorhombicBases(prim *cell.Cell, axes []axisInfo, pg PointGroup) []geom.IMat3 {
	if len(axes) < 3 {
		return nil
	}
	dirs := []geom.IVec3{axes[0].dir, axes[1].dir, axes[2].dir}

	var out []geom.IMat3
	add := func(a, b, c geom.IVec3) {
		m := geom.IMat3{
			{a[0], a[1], a[2]},
			{b[0], b[1], b[2]},
			{c[0], c[1], c[2]},
		}
		if geom.DetI(m) == 0 {
			return
		}
		out = append(out, rightHanded(prim, m, Orthorhombic))
	}

	if pg.Symbol == "mm2" {
		// c = the real 2-fold; mirrors supply a and b.
		var cAxis geom.IVec3
		var rest []geom.IVec3
		for _, ax := range axes[:3] {
			if ax.realOp && cAxis == (geom.IVec3{}) {
				cAxis = ax.dir
			} else {
				rest = append(rest, ax.dir)
			}
		}
		if len(rest) < 2 {
			return nil
		}
		add(rest[0], rest[1], cAxis)
		add(rest[1], rest[0], cAxis)

		return out
	}

	perms := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		add(dirs[p[0]], dirs[p[1]], dirs[p[2]])
	}

	return out
}

// uniaxialBases: tetragonal, trigonal and hexagonal share the scheme
// c = highest-order axis, a ⊥ c, b = (positive-sense rotation)·a.
// Variants cover the two secondary-axis classes.
func uniaxialBases(prim *cell.Cell, axes []axisInfo, pg PointGroup) []geom.IMat3 {
	if len(axes) == 0 {
		return nil
	}
	principal := axes[0]
	c := principal.dir

	// Generating rotation for b: the 4-fold for tetragonal, the 3-fold
	// sub-rotation otherwise (6² for hexagonal).
	gen := principal.proper
	if pg.System != Tetragonal && principal.order == 6 {
		gen = geom.MulI(gen, gen)
	}

	perp := perpendicularShortest(prim, c, 6)
	if len(perp) == 0 {
		return nil
	}

	var out []geom.IMat3
	add := func(a geom.IVec3) {
		w := positiveSense(prim, gen, c, a)
		b := geom.MulIGrid(w, a)
		m := geom.IMat3{
			{a[0], a[1], a[2]},
			{b[0], b[1], b[2]},
			{c[0], c[1], c[2]},
		}
		if geom.DetI(m) == 0 {
			return
		}
		out = append(out, m)
	}

	// First variant: shortest perpendicular vector. Second: its image
	// combined with it — the secondary axis class rotated by 30°/45°.
	a0 := perp[0]
	add(a0)
	w := positiveSense(prim, gen, c, a0)
	b0 := geom.MulIGrid(w, a0)
	add(geom.IVec3{a0[0] + b0[0], a0[1] + b0[1], a0[2] + b0[2]})
	for _, a := range perp[1:] {
		add(a)
	}

	return out
}

// cubicBases: the three 4-fold axes (432, -43m, m-3m) or the three
// 2-fold axes (23, m-3) are the conventional cube edges.
func cubicBases(prim *cell.Cell, axes []axisInfo) []geom.IMat3 {
	wanted := 0
	for _, ax := range axes {
		if ax.order == 4 {
			wanted = 4

			break
		}
	}
	if wanted == 0 {
		wanted = 2
	}

	var dirs []geom.IVec3
	for _, ax := range axes {
		if ax.order == wanted {
			dirs = append(dirs, ax.dir)
		}
	}
	if len(dirs) < 3 {
		return nil
	}

	m := geom.IMat3{
		{dirs[0][0], dirs[0][1], dirs[0][2]},
		{dirs[1][0], dirs[1][1], dirs[1][2]},
		{dirs[2][0], dirs[2][1], dirs[2][2]},
	}
	if geom.DetI(m) == 0 {
		return nil
	}

	return []geom.IMat3{rightHanded(prim, m, Cubic)}
}

// rightHanded makes the Cartesian basis right-handed using proper
// relabelings only (no orientation flip that could conflate
// enantiomorphic space groups).
func rightHanded(prim *cell.Cell, m geom.IMat3, system CrystalSystem) geom.IMat3 {
	cart := geom.Mul(m.ToMat3(), prim.Lattice())
	if geom.Det(cart) > 0 {
		return m
	}
	switch system {
	case Monoclinic:
		// Negate the unique axis: same axis line, det flips.
		m[1] = [3]int{-m[1][0], -m[1][1], -m[1][2]}
	case Triclinic:
		m[2] = [3]int{-m[2][0], -m[2][1], -m[2][2]}
	default:
		// Swap a, b and negate c: a proper relabeling of the axes.
		m[0], m[1] = m[1], m[0]
		m[2] = [3]int{-m[2][0], -m[2][1], -m[2][2]}
	}

	return m
}
