// Package spacegroup: Hall-symbol parser and group generation.
//
// Hall's concise space-group notation (Hall 1981) encodes a space
// group as a lattice letter plus a short list of generators:
//
//	[-]L N₁ N₂ N₃ ... [(v₁ v₂ v₃)]
//
// A leading '-' adds the inversion at the origin; L is the centering
// letter (P A B C I R F); each Nᵢ is a rotation field — optional '-'
// for improper rotations, the order (1,2,3,4,6), an optional explicit
// axis (x y z ' " *) and optional translation letters (a b c n u v w
// d) or a screw digit. The optional trailing vector is an origin
// shift in twelfths.
//
// Implicit-axis rules: the first rotation is about z; a subsequent
// 2-fold is about x after a 2- or 4-fold and about the a−b diagonal
// (') after a 3- or 6-fold; a trailing 3 is about the body diagonal.
//
// All translations that arise are multiples of 1/12, so operations
// are deduplicated on a twelfths-integer key.

package spacegroup

import (
	"strings"

	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// principal rotation matrices by axis character and order.
var hallRotations = map[byte]map[int]geom.IMat3{
	'z': {
		2: {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
		3: {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
		4: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		6: {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	},
	'x': {
		2: {{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
		3: {{1, 0, 0}, {0, 0, -1}, {0, 1, -1}},
		4: {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		6: {{1, 0, 0}, {0, 1, -1}, {0, 1, 0}},
	},
	'y': {
		2: {{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
		3: {{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		4: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
		6: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 1}},
	},
}

// diagonal 2-folds relative to the preceding principal axis.
var hallDiagonal = map[byte]map[byte]geom.IMat3{
	'\'': {
		'z': {{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
		'x': {{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
		'y': {{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	},
	'"': {
		'z': {{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		'x': {{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		'y': {{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
	},
}

// body-diagonal 3-fold (cubic).
var hallBodyDiagonal = geom.IMat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}

// translation letters, in twelfths.
var hallTranslations = map[byte]geom.IVec3{
	'a': {6, 0, 0},
	'b': {0, 6, 0},
	'c': {0, 0, 6},
	'n': {6, 6, 6},
	'u': {3, 0, 0},
	'v': {0, 3, 0},
	'w': {0, 0, 3},
	'd': {3, 3, 3},
}

// centering translations per lattice letter, in twelfths.
var hallCentering = map[byte][]geom.IVec3{
	'P': {},
	'A': {{0, 6, 6}},
	'B': {{6, 0, 6}},
	'C': {{6, 6, 0}},
	'I': {{6, 6, 6}},
	'R': {{8, 4, 4}, {4, 8, 8}},
	'F': {{0, 6, 6}, {6, 0, 6}, {6, 6, 0}},
}

// axis unit vectors for screw translations, in twelfths per 1/order.
var hallAxisDir = map[byte]geom.IVec3{
	'x': {1, 0, 0},
	'y': {0, 1, 0},
	'z': {0, 0, 1},
}

// hallOp is one operation with the translation in twelfths, the exact
// representation used during group generation.
type hallOp struct {
	w geom.IMat3
	t geom.IVec3 // components in [0, 12)
}

func (h hallOp) compose(o hallOp) hallOp {
	t := geom.MulIGrid(h.w, o.t)
	for i := 0; i < 3; i++ {
		t[i] = mod12(t[i] + h.t[i])
	}

	return hallOp{w: geom.MulI(h.w, o.w), t: t}
}

func mod12(x int) int {
	x %= 12
	if x < 0 {
		x += 12
	}

	return x
}

// hallGenerate parses a Hall symbol and returns the full operation
// set of the group in its conventional setting, identity first.
//
// Complexity: bounded by the largest group order (192 for F-centered
// cubic settings).
func hallGenerate(symbol string) ([]symmetry.Operation, error) {
	gens, centering, err := hallParse(symbol)
	if err != nil {
		return nil, err
	}

	// Closure by breadth-first multiplication.
	ops := map[[12]int]hallOp{}
	id := hallOp{w: geom.IdentityI()}
	ops[hallKey(id)] = id
	queue := []hallOp{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			next := g.compose(cur)
			k := hallKey(next)
			if _, seen := ops[k]; seen {
				continue
			}
			if len(ops) > 4*maxConventionalOps {
				return nil, ErrBadHallSymbol
			}
			ops[k] = next
			queue = append(queue, next)
		}
	}

	// Expand by centering translations. The closure may already contain
	// some centering copies (d-glide products), so expansion dedupes.
	site := make([]hallOp, 0, len(ops))
	for _, op := range ops {
		site = append(site, op)
	}
	for _, op := range site {
		for _, cv := range centering {
			shifted := op
			for i := 0; i < 3; i++ {
				shifted.t[i] = mod12(op.t[i] + cv[i])
			}
			ops[hallKey(shifted)] = shifted
		}
	}

	full := make([]symmetry.Operation, 0, len(ops))
	for _, op := range ops {
		full = append(full, toOperation(op))
	}
	sortHallOps(full)

	return full, nil
}

// maxConventionalOps is the order of the largest conventional-setting
// group before centering expansion (48, the m-3m holohedry).
const maxConventionalOps = 48

func hallKey(h hallOp) [12]int {
	return [12]int{
		h.w[0][0], h.w[0][1], h.w[0][2],
		h.w[1][0], h.w[1][1], h.w[1][2],
		h.w[2][0], h.w[2][1], h.w[2][2],
		h.t[0], h.t[1], h.t[2],
	}
}

func toOperation(h hallOp) symmetry.Operation {
	return symmetry.Operation{
		Rotation: h.w,
		Translation: geom.Vec3{
			float64(h.t[0]) / 12,
			float64(h.t[1]) / 12,
			float64(h.t[2]) / 12,
		},
	}
}

func sortHallOps(ops []symmetry.Operation) {
	// Identity first, then deterministic lexicographic order, matching
	// the finder's convention.
	for i := range ops {
		if ops[i].IsIdentity() {
			ops[0], ops[i] = ops[i], ops[0]

			break
		}
	}
}

// hallParse returns the generator list and centering translations of
// a Hall symbol.
func hallParse(symbol string) ([]hallOp, []geom.IVec3, error) {
	fields := strings.Fields(symbol)
	if len(fields) == 0 {
		return nil, nil, ErrBadHallSymbol
	}

	head := fields[0]
	var gens []hallOp
	if head[0] == '-' {
		gens = append(gens, hallOp{w: geom.NegI(geom.IdentityI())})
		head = head[1:]
	}
	if len(head) != 1 {
		return nil, nil, ErrBadHallSymbol
	}
	centering, ok := hallCentering[head[0]]
	if !ok {
		return nil, nil, ErrBadHallSymbol
	}

	var shift geom.IVec3
	haveShift := false

	prevOrder := 0
	prevAxis := byte('z')
	for _, f := range fields[1:] {
		if f[0] == '(' {
			s, err := hallParseShift(fields)
			if err != nil {
				return nil, nil, err
			}
			shift = s
			haveShift = true

			break
		}
		gen, order, axis, err := hallParseField(f, prevOrder, prevAxis)
		if err != nil {
			return nil, nil, err
		}
		gens = append(gens, gen)
		prevOrder = order
		prevAxis = axis
	}

	if haveShift {
		// Conjugate every generator by the origin shift: the group is
		// the same, expressed about the shifted origin.
		for i, g := range gens {
			t := g.t
			wv := geom.MulIGrid(g.w, shift)
			for k := 0; k < 3; k++ {
				t[k] = mod12(t[k] + shift[k] - wv[k])
			}
			gens[i] = hallOp{w: g.w, t: t}
		}
	}

	return gens, centering, nil
}

// hallParseShift reads the trailing "(v1 v2 v3)" origin shift, given
// in twelfths.
func hallParseShift(fields []string) (geom.IVec3, error) {
	joined := strings.Join(fields, " ")
	open := strings.IndexByte(joined, '(')
	close_ := strings.IndexByte(joined, ')')
	if open < 0 || close_ < open {
		return geom.IVec3{}, ErrBadHallSymbol
	}
	parts := strings.Fields(joined[open+1 : close_])
	if len(parts) != 3 {
		return geom.IVec3{}, ErrBadHallSymbol
	}
	var out geom.IVec3
	for i, p := range parts {
		n := 0
		negative := false
		for _, r := range p {
			switch {
			case r == '-':
				negative = true
			case r >= '0' && r <= '9':
				n = n*10 + int(r-'0')
			default:
				return geom.IVec3{}, ErrBadHallSymbol
			}
		}
		if negative {
			n = -n
		}
		out[i] = mod12(n)
	}

	return out, nil
}

// hallParseField parses one rotation field and returns the generator,
// plus the order and axis for the implicit-axis rules of the next
// field.
func hallParseField(f string, prevOrder int, prevAxis byte) (hallOp, int, byte, error) {
	improper := false
	i := 0
	if f[i] == '-' {
		improper = true
		i++
	}
	if i >= len(f) || f[i] < '1' || f[i] > '6' {
		return hallOp{}, 0, 0, ErrBadHallSymbol
	}
	order := int(f[i] - '0')
	if order == 5 {
		return hallOp{}, 0, 0, ErrBadHallSymbol
	}
	i++

	// Explicit axis, if present.
	axis := byte(0)
	if i < len(f) {
		switch f[i] {
		case 'x', 'y', 'z', '\'', '"', '*':
			axis = f[i]
			i++
		}
	}
	if axis == 0 {
		axis = implicitAxis(order, prevOrder, prevAxis)
	}

	w, dir, err := axisRotation(order, axis, prevAxis)
	if err != nil {
		return hallOp{}, 0, 0, err
	}

	// Translation letters and screw digit.
	var t geom.IVec3
	for ; i < len(f); i++ {
		ch := f[i]
		if ch >= '1' && ch <= '5' {
			// Screw: (s/order) along the axis, in twelfths.
			step := 12 * int(ch-'0') / order
			for k := 0; k < 3; k++ {
				t[k] = mod12(t[k] + step*dir[k])
			}

			continue
		}
		tv, ok := hallTranslations[ch]
		if !ok {
			return hallOp{}, 0, 0, ErrBadHallSymbol
		}
		for k := 0; k < 3; k++ {
			t[k] = mod12(t[k] + tv[k])
		}
	}

	if improper {
		w = geom.NegI(w)
	}

	nextAxis := axis
	if axis == '\'' || axis == '"' || axis == '*' {
		nextAxis = prevAxis
	}

	return hallOp{w: w, t: t}, order, nextAxis, nil
}

// implicitAxis applies Hall's default-axis rules.
func implicitAxis(order, prevOrder int, prevAxis byte) byte {
	if prevOrder == 0 {
		return 'z' // first field
	}
	if order == 2 {
		if prevOrder == 2 || prevOrder == 4 {
			return 'x'
		}
		if prevOrder == 3 || prevOrder == 6 {
			return '\''
		}
	}
	if order == 3 {
		return '*'
	}
	if order == 1 {
		return 'z' // identity/inversion, axis irrelevant
	}

	return prevAxis
}

// axisRotation returns the rotation matrix and the axis direction (in
// twelfth-units) for screws.
func axisRotation(order int, axis, prevAxis byte) (geom.IMat3, geom.IVec3, error) {
	if order == 1 {
		return geom.IdentityI(), geom.IVec3{}, nil
	}
	switch axis {
	case 'x', 'y', 'z':
		m, ok := hallRotations[axis][order]
		if !ok {
			return geom.IMat3{}, geom.IVec3{}, ErrBadHallSymbol
		}

		return m, hallAxisDir[axis], nil
	case '\'', '"':
		if order != 2 {
			return geom.IMat3{}, geom.IVec3{}, ErrBadHallSymbol
		}
		m, ok := hallDiagonal[axis][prevAxis]
		if !ok {
			return geom.IMat3{}, geom.IVec3{}, ErrBadHallSymbol
		}

		return m, geom.IVec3{}, nil
	case '*':
		if order != 3 {
			return geom.IMat3{}, geom.IVec3{}, ErrBadHallSymbol
		}

		return hallBodyDiagonal, geom.IVec3{}, nil
	}

	return geom.IMat3{}, geom.IVec3{}, ErrBadHallSymbol
}
