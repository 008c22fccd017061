// Package spacegroup: the classification pipeline.
//
// Classify identifies the space-group type of a cell in six stages:
//
//  1. find the symmetry operations of the input cell;
//  2. collapse to the primitive cell and re-derive operations there;
//  3. fingerprint the point group from the rotation-type histogram;
//  4. build conventional-basis candidates from the symmetry axes and
//     read the centering letter off the wrapped sublattice points;
//  5. match the operation set against the Hall-generated reference set
//     of each compatible table row in the setting's primitive basis,
//     solving the origin-shift congruence (W − I)·s ≡ Δt (mod 1);
//  6. assemble the dataset: transformation, origin shift, standardized
//     cell, Wyckoff and equivalent-atom bookkeeping.

package spacegroup

import (
	"math"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// matchTol is the fractional-coordinate tolerance for comparing
// operation translations against reference twelfths. Distinct twelfth
// values differ by 1/12, two orders of magnitude above it.
const matchTol = 1e-3

// Classify determines the space-group type of c and returns the full
// dataset.
//
// Errors: symmetry.ErrNilCell / ErrBadTolerance from the finder;
// ErrClassification when no tabulated setting matches (usually a
// tolerance artifact — retry with a different Symprec).
//
// Complexity: dominated by the finder; the table match itself is a
// bounded constant amount of work per candidate row.
func Classify(c *cell.Cell, opts symmetry.Options) (*Dataset, error) {
	ops, err := symmetry.Find(c, opts)
	if err != nil {
		return nil, err
	}

	prim, mapTo, tfPrim, err := PrimitiveCell(c, ops, opts.Symprec)
	if err != nil {
		return nil, err
	}
	primOps, err := symmetry.Find(prim, opts)
	if err != nil {
		return nil, err
	}

	rots := symmetry.PointGroupRotations(primOps)
	pg, err := PointGroupOf(rots)
	if err != nil {
		return nil, err
	}

	for _, m := range conventionalBases(prim, rots, pg) {
		cvs, ok := centeringVectors(m)
		if !ok {
			continue
		}
		letter, fixed, ok := centeringLetter(m, cvs)
		if !ok {
			continue
		}
		if fixed != m {
			m = fixed
			if cvs, ok = centeringVectors(m); !ok {
				continue
			}
		}

		// Matching happens in the primitive basis of the Hall setting,
		// where the translation lattice is exactly Z³ and every rotation
		// carries a unique translation modulo 1.
		cp := centeringPrimTransform(letter)
		obsOps, ok := observedPrimOps(primOps, cp, m)
		if !ok {
			continue
		}

		for hn := 1; hn <= 530; hn++ {
			row := hallTable[hn]
			if !row.standard || row.system != pg.System ||
				row.pointGroup != pg.Symbol || row.centering != letter {
				continue
			}
			refConv, err := hallGenerate(row.hall)
			if err != nil {
				continue
			}
			refOps, ok := primitiveRefOps(refConv, cp)
			if !ok || len(refOps) != len(obsOps) || !sameRotationSet(refOps, obsOps) {
				continue
			}
			shift, ok := solveOriginShift(refOps, obsOps)
			if !ok {
				continue
			}
			// Back to the conventional basis of the setting.
			shiftConv := geom.WrapFrac(geom.MulVec(geom.Transpose(cp), shift))

			return assembleDataset(c, prim, ops, mapTo, tfPrim, m, cvs, shiftConv, hn, row, pg, opts.Symprec)
		}
	}

	return nil, ErrClassification
}

// InternationalSymbol is the short Hermann–Mauguin projection of
// Classify.
func InternationalSymbol(c *cell.Cell, opts symmetry.Options) (string, error) {
	ds, err := Classify(c, opts)
	if err != nil {
		return "", err
	}

	return ds.International, nil
}

// SchoenfliesSymbol is the Schoenflies projection of Classify.
func SchoenfliesSymbol(c *cell.Cell, opts symmetry.Options) (string, error) {
	ds, err := Classify(c, opts)
	if err != nil {
		return "", err
	}
	t, err := Get(ds.HallNumber)
	if err != nil {
		return "", err
	}

	return t.Schoenflies, nil
}

// centeringVectors lists the primitive-sublattice points inside the
// conventional cell (excluding the origin), wrapped to [0,1).
func centeringVectors(m geom.IMat3) ([]geom.Vec3, bool) {
	det := geom.DetI(m)
	if det < 0 {
		det = -det
	}
	if det == 0 || det > 4 {
		return nil, false
	}
	minv, err := geom.Inverse(geom.Transpose(m.ToMat3()))
	if err != nil {
		return nil, false
	}

	var out []geom.Vec3
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				v := geom.WrapFrac(geom.MulVec(minv, geom.Vec3{float64(x), float64(y), float64(z)}))
				if fracNearZero(v) {
					continue
				}
				dup := false
				for _, u := range out {
					if fracNear(u, v) {
						dup = true

						break
					}
				}
				if !dup {
					out = append(out, v)
				}
			}
		}
	}
	if len(out) != det-1 {
		return nil, false
	}

	return out, true
}

// fracNear compares fractional vectors modulo 1.
func fracNear(a, b geom.Vec3) bool {
	for i := 0; i < 3; i++ {
		d := math.Abs(a[i] - b[i])
		if d > 0.5 {
			d = 1 - d
		}
		if d > matchTol {
			return false
		}
	}

	return true
}

func fracNearZero(v geom.Vec3) bool {
	return fracNear(v, geom.Vec3{})
}

// centeringLetter identifies the Bravais centering from the wrapped
// sublattice points. A rhombohedral reverse setting is fixed to the
// obverse one by rotating a and b by 180° about c (a proper
// relabeling), returned as the corrected transform.
func centeringLetter(m geom.IMat3, cvs []geom.Vec3) (byte, geom.IMat3, bool) {
	switch len(cvs) {
	case 0:
		return 'P', m, true
	case 1:
		for letter, target := range map[byte]geom.Vec3{
			'A': {0, 0.5, 0.5},
			'B': {0.5, 0, 0.5},
			'C': {0.5, 0.5, 0},
			'I': {0.5, 0.5, 0.5},
		} {
			if fracNear(cvs[0], target) {
				return letter, m, true
			}
		}
	case 2:
		obverse := fracNear(cvs[0], geom.Vec3{2. / 3, 1. / 3, 1. / 3}) ||
			fracNear(cvs[0], geom.Vec3{1. / 3, 2. / 3, 2. / 3})
		reverse := fracNear(cvs[0], geom.Vec3{1. / 3, 2. / 3, 1. / 3}) ||
			fracNear(cvs[0], geom.Vec3{2. / 3, 1. / 3, 2. / 3})
		if obverse {
			return 'R', m, true
		}
		if reverse {
			m[0] = [3]int{-m[0][0], -m[0][1], -m[0][2]}
			m[1] = [3]int{-m[1][0], -m[1][1], -m[1][2]}

			return 'R', m, true
		}
	case 3:
		hits := 0
		for _, target := range []geom.Vec3{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}} {
			for _, v := range cvs {
				if fracNear(v, target) {
					hits++

					break
				}
			}
		}
		if hits == 3 {
			return 'F', m, true
		}
	}

	return 0, m, false
}

// centeringPrimTransform returns the primitive basis of a centered
// conventional lattice, rows in conventional fractional coordinates.
// The rhombohedral transform uses the obverse hexagonal setting.
func centeringPrimTransform(letter byte) geom.Mat3 {
	switch letter {
	case 'A':
		return geom.Mat3{{1, 0, 0}, {0, 0.5, 0.5}, {0, -0.5, 0.5}}
	case 'B':
		return geom.Mat3{{0.5, 0, 0.5}, {0, 1, 0}, {-0.5, 0, 0.5}}
	case 'C':
		return geom.Mat3{{0.5, 0.5, 0}, {-0.5, 0.5, 0}, {0, 0, 1}}
	case 'I':
		return geom.Mat3{{-0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, -0.5}}
	case 'F':
		return geom.Mat3{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}}
	case 'R':
		return geom.Mat3{
			{2. / 3, 1. / 3, 1. / 3},
			{-1. / 3, 1. / 3, 1. / 3},
			{-1. / 3, -2. / 3, 1. / 3},
		}
	}

	return geom.Identity()
}

// observedPrimOps re-expresses the found primitive operations in the
// Hall setting's primitive basis. The basis change Q = Cp·M relates
// two primitive bases of the same lattice, so it must round to an
// integer unimodular matrix; a variant that fails this is not
// symmetry-adapted and is skipped.
func observedPrimOps(primOps []symmetry.Operation, cp geom.Mat3, m geom.IMat3) ([]symmetry.Operation, bool) {
	q := geom.Mul(cp, m.ToMat3())
	qi, err := geom.ExactI(q, matchTol)
	if err != nil {
		return nil, false
	}
	d := geom.DetI(qi)
	if d != 1 && d != -1 {
		return nil, false
	}
	qInvT, err := geom.Inverse(geom.Transpose(q))
	if err != nil {
		return nil, false
	}
	qT := geom.Transpose(q)

	out := make([]symmetry.Operation, 0, len(primOps))
	for _, op := range primOps {
		w, err := geom.ExactI(geom.Mul(qInvT, geom.Mul(op.Rotation.ToMat3(), qT)), matchTol)
		if err != nil {
			return nil, false
		}
		out = append(out, symmetry.Operation{
			Rotation:    w,
			Translation: geom.WrapFrac(geom.MulVec(qInvT, op.Translation)),
		})
	}

	return out, true
}

// primitiveRefOps collapses a Hall-generated conventional operation
// set onto the primitive basis of its centering; the centering copies
// merge, leaving one translation per rotation.
func primitiveRefOps(refConv []symmetry.Operation, cp geom.Mat3) ([]symmetry.Operation, bool) {
	cpInvT, err := geom.Inverse(geom.Transpose(cp))
	if err != nil {
		return nil, false
	}
	cpT := geom.Transpose(cp)

	seen := map[[12]int]bool{}
	var out []symmetry.Operation
	for _, op := range refConv {
		w, err := geom.ExactI(geom.Mul(cpInvT, geom.Mul(op.Rotation.ToMat3(), cpT)), matchTol)
		if err != nil {
			return nil, false
		}
		t := geom.WrapFrac(geom.MulVec(cpInvT, op.Translation))
		k, ok := twelfthKey(w, t)
		if !ok {
			return nil, false
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, symmetry.Operation{Rotation: w, Translation: t})
	}

	return out, true
}

// twelfthKey snaps a primitive-basis reference translation onto the
// 1/12 grid for deduplication.
func twelfthKey(w geom.IMat3, t geom.Vec3) ([12]int, bool) {
	var k [12]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			k[3*i+j] = w[i][j]
		}
	}
	for i := 0; i < 3; i++ {
		x := t[i] * 12
		r := math.Round(x)
		if math.Abs(x-r) > 12*matchTol {
			return k, false
		}
		k[9+i] = int(r) % 12
		if k[9+i] < 0 {
			k[9+i] += 12
		}
	}

	return k, true
}

// sameRotationSet compares the rotation parts of two operation lists
// as multisets.
func sameRotationSet(a, b []symmetry.Operation) bool {
	count := map[geom.IMat3]int{}
	for _, op := range a {
		count[op.Rotation]++
	}
	for _, op := range b {
		count[op.Rotation]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}

	return true
}

// solveOriginShift finds s with t_obs ≡ t_ref + (W − I)·s (mod 1) for
// every rotation W common to both primitive-basis operation sets. The
// congruence is linear modulo 1: up to three independent rows of the
// stacked (W − I) system pin s (with small integer offsets
// enumerated), null directions stay free at zero, and the candidate is
// verified against every operation.
func solveOriginShift(refOps, obsOps []symmetry.Operation) (geom.Vec3, bool) {
	obsByRot := map[geom.IMat3]geom.Vec3{}
	for _, op := range obsOps {
		obsByRot[op.Rotation] = op.Translation
	}

	var all []shiftRow
	for _, ref := range refOps {
		t, ok := obsByRot[ref.Rotation]
		if !ok {
			return geom.Vec3{}, false
		}
		wi := ref.Rotation
		for i := 0; i < 3; i++ {
			a := geom.Vec3{float64(wi[i][0]), float64(wi[i][1]), float64(wi[i][2])}
			a[i]--
			all = append(all, shiftRow{a: a, d: t[i] - ref.Translation[i]})
		}
	}

	// Greedy pick of up to three independent rows.
	var picked []shiftRow
	for _, r := range all {
		if len(picked) == 3 {
			break
		}
		trial := append(append([]shiftRow{}, picked...), r)
		if rowRank(trial) > rowRank(picked) {
			picked = trial
		}
	}

	// Complete rank-deficient systems with free unit directions.
	var free []int
	for i := 0; i < 3 && len(picked) < 3; i++ {
		unit := geom.Vec3{}
		unit[i] = 1
		trial := append(append([]shiftRow{}, picked...), shiftRow{a: unit})
		if rowRank(trial) > rowRank(picked) {
			picked = trial
			free = append(free, len(picked)-1)
		}
	}
	if len(picked) != 3 {
		return geom.Vec3{}, false
	}

	b := geom.Mat3{picked[0].a, picked[1].a, picked[2].a}
	bInv, err := geom.Inverse(b)
	if err != nil {
		return geom.Vec3{}, false
	}

	// |row·s| is bounded by the L1 norm of the row for s ∈ [0,1)³;
	// conjugated rotation entries stay within ±2, so offsets beyond ±4
	// cannot occur. Free rows stay at 0.
	isFree := [3]bool{}
	for _, f := range free {
		isFree[f] = true
	}
	var offsets [3][]int
	for i := 0; i < 3; i++ {
		if isFree[i] {
			offsets[i] = []int{0}
		} else {
			offsets[i] = []int{0, 1, -1, 2, -2, 3, -3, 4, -4}
		}
	}

	for _, n0 := range offsets[0] {
		for _, n1 := range offsets[1] {
			for _, n2 := range offsets[2] {
				rhs := geom.Vec3{
					picked[0].d + float64(n0),
					picked[1].d + float64(n1),
					picked[2].d + float64(n2),
				}
				s := geom.WrapFrac(geom.MulVec(bInv, rhs))
				if originVerifies(all, s) {
					return s, true
				}
			}
		}
	}

	return geom.Vec3{}, false
}

// shiftRow is one scalar congruence a·s ≡ d (mod 1) of the
// origin-shift system.
type shiftRow struct {
	a geom.Vec3
	d float64
}

func originVerifies(rows []shiftRow, s geom.Vec3) bool {
	for _, r := range rows {
		x := geom.Dot(r.a, s) - r.d
		x -= math.Round(x)
		if math.Abs(x) > matchTol {
			return false
		}
	}

	return true
}

// rowRank estimates the rank of up to three 3-vectors.
func rowRank(rows []shiftRow) int {
	switch len(rows) {
	case 0:
		return 0
	case 1:
		if geom.Norm(rows[0].a) < 1e-9 {
			return 0
		}

		return 1
	case 2:
		if geom.Norm(geom.Cross(rows[0].a, rows[1].a)) > 1e-9 {
			return 2
		}
		if geom.Norm(rows[0].a) > 1e-9 || geom.Norm(rows[1].a) > 1e-9 {
			return 1
		}

		return 0
	default:
		m := geom.Mat3{rows[0].a, rows[1].a, rows[2].a}
		if math.Abs(geom.Det(m)) > 1e-9 {
			return 3
		}
		best := 0
		for i := 0; i < 3; i++ {
			if r := rowRank([]shiftRow{rows[i], rows[(i+1)%3]}); r > best {
				best = r
			}
		}

		return best
	}
}

// assembleDataset builds the full Dataset once a table row matched.
func assembleDataset(
	c, prim *cell.Cell,
	ops []symmetry.Operation,
	mapTo []int,
	tfPrim geom.Mat3,
	m geom.IMat3,
	cvs []geom.Vec3,
	shift geom.Vec3,
	hallNumber int,
	row tableRow,
	pg PointGroup,
	symprec float64,
) (*Dataset, error) {
	s := geom.Mul(m.ToMat3(), tfPrim) // conventional basis in input coords
	p, err := geom.Inverse(geom.Transpose(s))
	if err != nil {
		return nil, ErrClassification
	}

	minvT, err := geom.Inverse(geom.Transpose(m.ToMat3()))
	if err != nil {
		return nil, ErrClassification
	}

	// Standardized content: primitive atoms mapped into the
	// conventional cell, expanded by the centering translations.
	nPrim := prim.NumAtoms()
	stdPos := make([]geom.Vec3, 0, nPrim*(len(cvs)+1))
	stdTypes := make([]int, 0, nPrim*(len(cvs)+1))
	for i := 0; i < nPrim; i++ {
		x := geom.WrapFrac(geom.Add(geom.MulVec(minvT, prim.Position(i)), shift))
		stdPos = append(stdPos, x)
		stdTypes = append(stdTypes, prim.Type(i))
		for _, cv := range cvs {
			stdPos = append(stdPos, geom.WrapFrac(geom.Add(x, cv)))
			stdTypes = append(stdTypes, prim.Type(i))
		}
	}

	equiv, letters, sites := wyckoffBookkeeping(c, ops, symprec)

	return &Dataset{
		SpacegroupNumber:    row.number,
		HallNumber:          hallNumber,
		International:       row.international,
		Hall:                row.hall,
		Choice:              row.choice,
		PointGroup:          pg.Symbol,
		Transformation:      p,
		OriginShift:         shift,
		Operations:          ops,
		NOperations:         len(ops),
		EquivalentAtoms:     equiv,
		MapToPrimitive:      mapTo,
		WyckoffLetters:      letters,
		SiteSymmetrySymbols: sites,
		StdLattice:          idealLattice(geom.Mul(s, c.Lattice()), pg.System),
		StdPositions:        stdPos,
		StdTypes:            stdTypes,
	}, nil
}

// idealLattice snaps the cell parameters of a conventional lattice to
// the ideal values of its crystal system and rebuilds the matrix in
// the canonical orientation (a along +x, b in the xy plane).
func idealLattice(lat geom.Mat3, system CrystalSystem) geom.Mat3 {
	la := geom.Norm(lat[0])
	lb := geom.Norm(lat[1])
	lc := geom.Norm(lat[2])
	alpha := vecAngle(lat[1], lat[2])
	beta := vecAngle(lat[0], lat[2])
	gamma := vecAngle(lat[0], lat[1])

	const right = math.Pi / 2
	switch system {
	case Cubic:
		la = (la + lb + lc) / 3
		lb, lc = la, la
		alpha, beta, gamma = right, right, right
	case Tetragonal:
		la = (la + lb) / 2
		lb = la
		alpha, beta, gamma = right, right, right
	case Orthorhombic:
		alpha, beta, gamma = right, right, right
	case Trigonal, Hexagonal:
		la = (la + lb) / 2
		lb = la
		alpha, beta = right, right
		gamma = 2 * math.Pi / 3
	case Monoclinic:
		alpha, gamma = right, right
	}

	cx := lc * math.Cos(beta)
	cy := lc * (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	cz := math.Sqrt(math.Max(lc*lc-cx*cx-cy*cy, 0))

	return geom.Mat3{
		{la, 0, 0},
		{lb * math.Cos(gamma), lb * math.Sin(gamma), 0},
		{cx, cy, cz},
	}
}

func vecAngle(a, b geom.Vec3) float64 {
	cos := geom.Dot(a, b) / (geom.Norm(a) * geom.Norm(b))
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}
