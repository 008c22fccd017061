// Package cell: construction and read-only access.

package cell

import (
	"math"

	"github.com/katalvlaran/latsym/geom"
)

// Cell is an immutable periodic point set. Construct with New; all
// accessors return copies, so a Cell can be shared across goroutines.
type Cell struct {
	lattice   geom.Mat3
	positions []geom.Vec3
	types     []int
	kinds     []int // dense 1..K canonical species indices
	numKinds  int
	magmoms   []Magmom // nil for non-magnetic cells
}

// New validates and builds a Cell.
//
// lattice rows are the basis vectors; positions are fractional and get
// wrapped into [0,1); types are arbitrary species labels (atomic
// numbers, enumeration values, ...) compared only by equality.
//
// Errors: ErrBadLattice, ErrShapeMismatch, ErrNoAtoms, ErrMixedMagmoms.
//
// Complexity: O(N) over the atom count.
func New(lattice geom.Mat3, positions []geom.Vec3, types []int, opts ...Option) (*Cell, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: lattice sanity.
	det := geom.Det(lattice)
	if math.IsNaN(det) || math.IsInf(det, 0) || det == 0 {
		return nil, ErrBadLattice
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(lattice[i][j]) || math.IsInf(lattice[i][j], 0) {
				return nil, ErrBadLattice
			}
		}
	}

	// Stage 2: shapes.
	n := len(positions)
	if n == 0 {
		return nil, ErrNoAtoms
	}
	if len(types) != n {
		return nil, ErrShapeMismatch
	}
	if o.magmoms != nil && len(o.magmoms) != n {
		return nil, ErrShapeMismatch
	}
	if o.magmoms != nil {
		noncol := o.magmoms[0].Noncollinear
		for _, m := range o.magmoms[1:] {
			if m.Noncollinear != noncol {
				return nil, ErrMixedMagmoms
			}
		}
	}

	// Stage 3: wrap positions, canonicalize species by first occurrence.
	pos := make([]geom.Vec3, n)
	for i, p := range positions {
		pos[i] = geom.WrapFrac(p)
	}

	ts := make([]int, n)
	copy(ts, types)

	kinds := make([]int, n)
	index := make(map[int]int, n)
	next := 1
	for i, t := range ts {
		k, seen := index[t]
		if !seen {
			k = next
			index[t] = k
			next++
		}
		kinds[i] = k
	}

	var ms []Magmom
	if o.magmoms != nil {
		ms = make([]Magmom, n)
		copy(ms, o.magmoms)
	}

	return &Cell{
		lattice:   lattice,
		positions: pos,
		types:     ts,
		kinds:     kinds,
		numKinds:  next - 1,
		magmoms:   ms,
	}, nil
}

// Lattice returns the row-basis lattice matrix.
func (c *Cell) Lattice() geom.Mat3 { return c.lattice }

// NumAtoms returns the number of sites.
func (c *Cell) NumAtoms() int { return len(c.positions) }

// NumKinds returns the number K of distinct species.
func (c *Cell) NumKinds() int { return c.numKinds }

// Position returns the fractional position of atom i.
func (c *Cell) Position(i int) geom.Vec3 { return c.positions[i] }

// Positions returns a copy of all fractional positions.
func (c *Cell) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, len(c.positions))
	copy(out, c.positions)

	return out
}

// Type returns the caller-supplied species label of atom i.
func (c *Cell) Type(i int) int { return c.types[i] }

// Types returns a copy of the caller-supplied species labels.
func (c *Cell) Types() []int {
	out := make([]int, len(c.types))
	copy(out, c.types)

	return out
}

// Kind returns the dense canonical species index (1..K) of atom i.
func (c *Cell) Kind(i int) int { return c.kinds[i] }

// Kinds returns a copy of the canonical species indices.
func (c *Cell) Kinds() []int {
	out := make([]int, len(c.kinds))
	copy(out, c.kinds)

	return out
}

// HasMagmoms reports whether magnetic moments are attached.
func (c *Cell) HasMagmoms() bool { return c.magmoms != nil }

// Magmom returns the moment of atom i; call only when HasMagmoms.
func (c *Cell) Magmom(i int) Magmom { return c.magmoms[i] }

// Magmoms returns a copy of the magnetic moments (nil when absent).
func (c *Cell) Magmoms() []Magmom {
	if c.magmoms == nil {
		return nil
	}
	out := make([]Magmom, len(c.magmoms))
	copy(out, c.magmoms)

	return out
}

// Metric returns the Gram matrix of the lattice.
func (c *Cell) Metric() geom.Mat3 { return geom.Metric(c.lattice) }

// Volume returns the (signed) cell volume.
func (c *Cell) Volume() float64 { return geom.Det(c.lattice) }
