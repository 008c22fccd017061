package spacegroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latsym/geom"
	"github.com/katalvlaran/latsym/symmetry"
)

// twelfthsVec quantizes a tabulated translation back onto the exact
// twelfths grid used by the generator.
func twelfthsVec(v geom.Vec3) geom.IVec3 {
	var out geom.IVec3
	for i := 0; i < 3; i++ {
		out[i] = mod12(int(v[i]*12 + 0.5))
	}

	return out
}

func centeringMultiplicity(c byte) int {
	switch c {
	case 'P':
		return 1
	case 'A', 'B', 'C', 'I':
		return 2
	case 'R':
		return 3
	case 'F':
		return 4
	}

	return 0
}

// TestHallTable_Shape pins the global invariants of the setting table:
// 530 rows, 230 standard rows, one standard row per space-group number,
// numbers non-decreasing.
func TestHallTable_Shape(t *testing.T) {
	require.Len(t, hallTable, 531, "row 0 is the unused sentinel")

	standard := map[int]int{}
	prev := 1
	for hn := 1; hn <= 530; hn++ {
		r := hallTable[hn]
		assert.GreaterOrEqual(t, r.number, prev, "space-group numbers must be sorted")
		assert.LessOrEqual(t, r.number, 230)
		prev = r.number
		if r.standard {
			standard[r.number]++
		}
		assert.Positive(t, centeringMultiplicity(r.centering), "row %d has centering %q", hn, r.centering)
	}

	assert.Len(t, standard, 230)
	for n, cnt := range standard {
		assert.Equal(t, 1, cnt, "space group %d needs exactly one standard setting", n)
	}
}

// TestHallTable_GeneratesConsistentGroups runs the Hall generator over
// every tabulated symbol and cross-checks the operation count and the
// derived point group against the row's own metadata.
func TestHallTable_GeneratesConsistentGroups(t *testing.T) {
	for hn := 1; hn <= 530; hn++ {
		r := hallTable[hn]
		ops, err := hallGenerate(r.hall)
		require.NoError(t, err, "row %d (%s)", hn, r.hall)

		pg, err := PointGroupOf(symmetry.PointGroupRotations(ops))
		require.NoError(t, err, "row %d (%s)", hn, r.hall)
		assert.Equal(t, r.pointGroup, pg.Symbol, "row %d (%s)", hn, r.hall)
		assert.Equal(t, pg.Order*centeringMultiplicity(r.centering), len(ops),
			"row %d (%s): operation count", hn, r.hall)
		assert.Equal(t, r.system, pg.System, "row %d (%s)", hn, r.hall)
	}
}

// TestHallGenerate_Closure checks group closure for a few symbols with
// glides and centerings, the cases where the generator does real work.
func TestHallGenerate_Closure(t *testing.T) {
	for _, symbol := range []string{"-P 1", "-P 2ybc", "-F 4 2 3", "-F 4vw 2vw 3", "-R 3 2\"", "-I 4bd 2c 3"} {
		ops, err := hallGenerate(symbol)
		require.NoError(t, err, symbol)

		seen := map[[12]int]bool{}
		for _, op := range ops {
			seen[hallKey(hallOp{w: op.Rotation, t: twelfthsVec(op.Translation)})] = true
		}
		for _, a := range ops {
			for _, b := range ops {
				c := a.Compose(b)
				assert.True(t, seen[hallKey(hallOp{w: c.Rotation, t: twelfthsVec(c.Translation)})],
					"%s: composition left the group", symbol)
			}
		}
	}
}

// TestHallGenerate_Malformed surfaces ErrBadHallSymbol instead of
// panicking.
func TestHallGenerate_Malformed(t *testing.T) {
	for _, symbol := range []string{"", "Q 1", "P 5", "P 2 (1 2", "-"} {
		_, err := hallGenerate(symbol)
		assert.ErrorIs(t, err, ErrBadHallSymbol, "symbol %q", symbol)
	}
}
