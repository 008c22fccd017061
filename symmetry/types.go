// Package symmetry: operation representation and search options.
package symmetry

import (
	"github.com/katalvlaran/latsym/geom"
)

// Operation is one space-group element in the lattice-basis
// representation: x′ = Rotation·x + Translation, with the translation
// fractional and taken modulo 1.
type Operation struct {
	Rotation    geom.IMat3
	Translation geom.Vec3
}

// Apply maps a fractional point through the operation (not wrapped).
func (op Operation) Apply(x geom.Vec3) geom.Vec3 {
	return geom.Add(geom.MulIVec(op.Rotation, x), op.Translation)
}

// Compose returns op∘other: first other, then op, with the combined
// translation wrapped into [0,1).
func (op Operation) Compose(other Operation) Operation {
	return Operation{
		Rotation:    geom.MulI(op.Rotation, other.Rotation),
		Translation: geom.WrapFrac(geom.Add(geom.MulIVec(op.Rotation, other.Translation), op.Translation)),
	}
}

// IsIdentity reports whether the rotation part is the identity and the
// translation is zero.
func (op Operation) IsIdentity() bool {
	return op.Rotation.IsIdentity() && op.Translation == geom.Vec3{}
}

// IsPureTranslation reports whether the rotation part is the identity
// but the translation is not zero.
func (op Operation) IsPureTranslation() bool {
	return op.Rotation.IsIdentity() && op.Translation != geom.Vec3{}
}

// Options configures the symmetry search.
//
// Fields:
//   - Symprec    — geometric tolerance, a length in lattice units,
//     strictly positive. The dominant source of false
//     positive/negative detection; tune per call.
//   - MagSymprec — tolerance for magnetic-moment comparison (moment
//     units); only consulted when the cell carries magmoms.
//     Non-positive values fall back to the 1e-4 default, so the
//     zero value stays usable for non-magnetic work.
type Options struct {
	Symprec    float64
	MagSymprec float64
}

// DefaultOptions returns the conventional tolerances: 1e-5 for
// geometry, 1e-4 for magnetic moments.
func DefaultOptions() Options {
	return Options{Symprec: 1e-5, MagSymprec: 1e-4}
}

// maxPointGroupOrder is the order of the largest 3-D crystallographic
// point group (m-3m). The total operation count of any valid cell is
// bounded by maxPointGroupOrder × atom count; exceeding it means the
// tolerance merged distinct sites.
const maxPointGroupOrder = 48
