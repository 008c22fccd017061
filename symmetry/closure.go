// Package symmetry: group-closure verification.
//
// A found operation set that is not closed under composition (modulo
// lattice translations) means the tolerance merged distinct sites or
// split equivalent ones. The engine reports this instead of repairing
// it: tolerance is a caller-controlled input.

package symmetry

import (
	"github.com/katalvlaran/latsym/geom"
)

// verifyClosure checks that ops·ops ⊆ ops modulo lattice translations,
// with translation equality decided under the metric g and symprec.
//
// Complexity: O(n²·k) for n operations and k translations per
// rotation class (k = number of centering vectors, ≤ 4 in practice).
func verifyClosure(ops []Operation, g geom.Mat3, symprec float64) error {
	byRotation := make(map[geom.IMat3][]geom.Vec3, len(ops))
	for _, op := range ops {
		byRotation[op.Rotation] = append(byRotation[op.Rotation], op.Translation)
	}

	for _, a := range ops {
		for _, b := range ops {
			prod := a.Compose(b)
			translations, ok := byRotation[prod.Rotation]
			if !ok {
				return ErrInconsistentSymmetry
			}
			matched := false
			for _, t := range translations {
				if geom.SameLatticePoint(g, prod.Translation, t, symprec) {
					matched = true

					break
				}
			}
			if !matched {
				return ErrInconsistentSymmetry
			}
		}
	}

	return nil
}
