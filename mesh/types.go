// Package mesh: options and result types.

package mesh

// Options tunes the mesh reduction.
type Options struct {
	// Mesh is the number of grid divisions along each reciprocal axis.
	Mesh [3]int

	// Shift selects the half-step offset per axis: 0 for a Γ-centered
	// axis, 1 for a half-grid-step shift.
	Shift [3]int

	// TimeReversal additionally folds q onto −q.
	TimeReversal bool

	// Symprec is the tolerance for grid landing checks, in fractional
	// reciprocal coordinates. Must be strictly positive.
	Symprec float64
}

// DefaultOptions returns a Γ-centered time-reversal-folded preset.
func DefaultOptions() Options {
	return Options{TimeReversal: true, Symprec: 1e-5}
}

// Result is one folded mesh.
type Result struct {
	// GridAddress lists every grid point's integer address (i, j, k),
	// first axis fastest.
	GridAddress [][3]int

	// Mapping sends each grid index to its orbit representative's grid
	// index. Idempotent: Mapping[Mapping[i]] == Mapping[i].
	Mapping []int

	// NumIrreducible counts the distinct representatives.
	NumIrreducible int
}

// Weights returns the orbit multiplicity per representative index;
// non-representatives map to zero.
func (r *Result) Weights() []int {
	w := make([]int, len(r.Mapping))
	for _, rep := range r.Mapping {
		w[rep]++
	}

	return w
}
