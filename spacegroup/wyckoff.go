// Package spacegroup: equivalent-atom orbits and site symmetry.

package spacegroup

import (
	"sort"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// wyckoffBookkeeping partitions the input atoms into symmetry orbits
// and derives per-atom site-symmetry symbols and Wyckoff letters.
//
// Letters are assigned per orbit in decreasing site-symmetry order,
// ties broken by lowest atom index; 'a' therefore labels the most
// symmetric occupied site.
func wyckoffBookkeeping(c *cell.Cell, ops []symmetry.Operation, symprec float64) ([]int, []byte, []string) {
	n := c.NumAtoms()
	g := c.Metric()

	// Orbit partition: union by operation images.
	orbit := make([]int, n)
	for i := range orbit {
		orbit[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if orbit[i] != i {
			orbit[i] = find(orbit[i])
		}

		return orbit[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			if rj < ri {
				ri, rj = rj, ri
			}
			orbit[rj] = ri
		}
	}

	for i := 0; i < n; i++ {
		for _, op := range ops {
			y := op.Apply(c.Position(i))
			for j := 0; j < n; j++ {
				if c.Type(j) == c.Type(i) && geom.SameLatticePoint(g, y, c.Position(j), symprec) {
					union(i, j)

					break
				}
			}
		}
	}

	equiv := make([]int, n)
	for i := 0; i < n; i++ {
		equiv[i] = find(i)
	}

	// Site symmetry: the stabilizer rotations of each atom.
	sites := make([]string, n)
	stabOrder := make([]int, n)
	for i := 0; i < n; i++ {
		var stab []geom.IMat3
		for _, op := range ops {
			if geom.SameLatticePoint(g, op.Apply(c.Position(i)), c.Position(i), symprec) {
				stab = append(stab, op.Rotation)
			}
		}
		stabOrder[i] = len(stab)
		if pg, err := PointGroupOf(stab); err == nil {
			sites[i] = pg.Symbol
		} else {
			sites[i] = "1"
		}
	}

	// Letter per orbit: decreasing stabilizer order, then lowest index.
	var reps []int
	seen := map[int]bool{}
	for i := 0; i < n; i++ {
		r := equiv[i]
		if !seen[r] {
			seen[r] = true
			reps = append(reps, r)
		}
	}
	sort.SliceStable(reps, func(a, b int) bool {
		if stabOrder[reps[a]] != stabOrder[reps[b]] {
			return stabOrder[reps[a]] > stabOrder[reps[b]]
		}

		return reps[a] < reps[b]
	})
	letterOf := map[int]byte{}
	for rank, r := range reps {
		l := byte('a' + rank)
		if rank >= 26 {
			l = 'z'
		}
		letterOf[r] = l
	}

	letters := make([]byte, n)
	for i := 0; i < n; i++ {
		letters[i] = letterOf[equiv[i]]
	}

	return equiv, letters, sites
}
