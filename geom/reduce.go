// Package geom: canonical basis reductions.
//
// NiggliBasis — Křivý–Gruber (1976) reduction of the Gram
// representation to the unique Niggli form.
//
// Algorithm Outline (steps A1–A8 of the paper, with an ε guard on
// every comparison):
//  1. Order A ≤ B ≤ C (A1/A2, with sign-preserving swaps).
//  2. Normalize the signs of the off-diagonal parameters ξ,η,ζ
//     (A3/A4: all positive, or all non-positive).
//  3. Shear the basis while any |off-diagonal| exceeds a diagonal
//     bound (A5–A7) or the total-sum condition fails (A8).
//  4. Repeat until no step applies.
//
// DelaunayBasis — Selling reduction of the extended basis
// {b₁,b₂,b₃,b₄ = −(b₁+b₂+b₃)} until all pairwise inner products are
// non-positive, then extraction of the three shortest independent
// vectors among the sums — the Delaunay cell.
//
// Both run under a fixed sweep bound and return ErrReduction when the
// bound is exhausted (degenerate lattice or too-tight tolerance).

package geom

import "math"

// maxReduceSweeps bounds the outer loop of both reductions; the
// algorithms converge in a handful of sweeps for any sane lattice.
const maxReduceSweeps = 100

// NiggliBasis returns the Niggli-reduced row-basis lattice together
// with the unimodular transform T such that reduced = T·lattice.
//
// Complexity: O(maxReduceSweeps) with O(1) work per sweep.
func NiggliBasis(lattice Mat3, symprec float64) (Mat3, IMat3, error) {
	if symprec <= 0 {
		return Mat3{}, IMat3{}, ErrBadTolerance
	}
	vol := math.Abs(Det(lattice))
	if vol == 0 {
		return Mat3{}, IMat3{}, ErrSingular
	}
	// Comparisons below are between length² quantities; scale the
	// length tolerance by the characteristic cell length.
	eps := symprec * math.Cbrt(vol)

	l := lattice
	for sweep := 0; sweep < maxReduceSweeps; sweep++ {
		a, b, c := l[0], l[1], l[2]
		bigA, bigB, bigC := Dot(a, a), Dot(b, b), Dot(c, c)
		xi, eta, zeta := 2*Dot(b, c), 2*Dot(a, c), 2*Dot(a, b)

		// A1: order A ≤ B (swap a,b with sign flips).
		if bigA > bigB+eps || (math.Abs(bigA-bigB) <= eps && math.Abs(xi) > math.Abs(eta)+eps) {
			l = Mat3{Scale(-1, l[1]), Scale(-1, l[0]), Scale(-1, l[2])}
			a, b, c = l[0], l[1], l[2]
			bigA, bigB = bigB, bigA
			xi, eta = eta, xi
		}

		// A2: order B ≤ C (swap b,c), then restart.
		if bigB > bigC+eps || (math.Abs(bigB-bigC) <= eps && math.Abs(eta) > math.Abs(zeta)+eps) {
			l = Mat3{Scale(-1, a), Scale(-1, c), Scale(-1, b)}
			continue
		}

		// Sign flags of ξ,η,ζ within ε.
		sl, sm, sn := signFlag(xi, eps), signFlag(eta, eps), signFlag(zeta, eps)

		if sl*sm*sn == 1 {
			// A3: make ξ,η,ζ all positive.
			i, j, k := 1, 1, 1
			if sl == -1 {
				i = -1
			}
			if sm == -1 {
				j = -1
			}
			if sn == -1 {
				k = -1
			}
			l = applySignDiag(l, i, j, k)
		} else {
			// A4: make ξ,η,ζ all non-positive; a zero entry absorbs
			// the leftover sign so the diagonal stays unimodular.
			i, j, k := 1, 1, 1
			r := -1
			if sl == 1 {
				i = -1
			} else if sl == 0 {
				r = 0
			}
			if sm == 1 {
				j = -1
			} else if sm == 0 {
				r = 1
			}
			if sn == 1 {
				k = -1
			} else if sn == 0 {
				r = 2
			}
			if i*j*k == -1 {
				switch r {
				case 0:
					i = -1
				case 1:
					j = -1
				case 2:
					k = -1
				}
			}
			l = applySignDiag(l, i, j, k)
		}

		a, b, c = l[0], l[1], l[2]
		xi, eta, zeta = 2*Dot(b, c), 2*Dot(a, c), 2*Dot(a, b)

		// A5: |ξ| bound against B.
		if math.Abs(xi) > bigB+eps ||
			(math.Abs(bigB-xi) <= eps && 2*eta < zeta-eps) ||
			(math.Abs(bigB+xi) <= eps && zeta < -eps) {
			l[2] = Sub(c, Scale(sign(xi), b))
			continue
		}

		// A6: |η| bound against A.
		if math.Abs(eta) > bigA+eps ||
			(math.Abs(bigA-eta) <= eps && 2*xi < zeta-eps) ||
			(math.Abs(bigA+eta) <= eps && zeta < -eps) {
			l[2] = Sub(c, Scale(sign(eta), a))
			continue
		}

		// A7: |ζ| bound against A.
		if math.Abs(zeta) > bigA+eps ||
			(math.Abs(bigA-zeta) <= eps && 2*xi < eta-eps) ||
			(math.Abs(bigA+zeta) <= eps && eta < -eps) {
			l[1] = Sub(b, Scale(sign(zeta), a))
			continue
		}

		// A8: total-sum condition.
		sum := xi + eta + zeta + bigA + bigB
		if sum < -eps || (math.Abs(sum) <= eps && 2*(bigA+eta)+zeta > eps) {
			l[2] = Add(a, Add(b, c))
			continue
		}

		t, err := basisTransform(l, lattice)
		if err != nil {
			return Mat3{}, IMat3{}, err
		}

		return l, t, nil
	}

	return Mat3{}, IMat3{}, ErrReduction
}

// DelaunayBasis returns the Delaunay-reduced row-basis lattice and the
// unimodular transform T such that reduced = T·lattice.
//
// Complexity: O(maxReduceSweeps) with O(1) work per sweep.
func DelaunayBasis(lattice Mat3, symprec float64) (Mat3, IMat3, error) {
	if symprec <= 0 {
		return Mat3{}, IMat3{}, ErrBadTolerance
	}
	vol := Det(lattice)
	if vol == 0 {
		return Mat3{}, IMat3{}, ErrSingular
	}
	eps := symprec * math.Cbrt(math.Abs(vol))

	// Extended Selling basis: b4 closes the set to zero sum.
	v := [4]Vec3{
		lattice[0],
		lattice[1],
		lattice[2],
		Scale(-1, Add(lattice[0], Add(lattice[1], lattice[2]))),
	}

	reduced := false
	for sweep := 0; sweep < maxReduceSweeps && !reduced; sweep++ {
		reduced = true
		for i := 0; i < 3 && reduced; i++ {
			for j := i + 1; j < 4 && reduced; j++ {
				if Dot(v[i], v[j]) > eps {
					// Selling step: negate vᵢ, absorb it into the
					// other two vectors; the four still sum to zero.
					for k := 0; k < 4; k++ {
						if k != i && k != j {
							v[k] = Add(v[k], v[i])
						}
					}
					v[i] = Scale(-1, v[i])
					reduced = false
				}
			}
		}
	}
	if !reduced {
		return Mat3{}, IMat3{}, ErrReduction
	}

	// The Delaunay cell: three shortest independent vectors among the
	// four Selling vectors and their pairwise sums.
	cand := []Vec3{
		v[0], v[1], v[2], v[3],
		Add(v[0], v[1]), Add(v[1], v[2]), Add(v[0], v[2]),
	}
	sortByNorm(cand)

	var out Mat3
	n := 0
	for _, c := range cand {
		out[n] = c
		switch n {
		case 0:
			n++
		case 1:
			// keep only if not collinear with the first pick
			if Norm(Cross(out[0], out[1])) > 1e-12*vol3(vol) {
				n++
			}
		case 2:
			// keep only if the triple spans the full lattice volume
			if math.Abs(Det(out)) > 1e-12*math.Abs(vol) {
				n++
			}
		}
		if n == 3 {
			break
		}
	}
	if n < 3 {
		return Mat3{}, IMat3{}, ErrReduction
	}

	// Preserve the handedness of the input basis.
	if Det(out)*vol < 0 {
		out[2] = Scale(-1, out[2])
	}

	t, err := basisTransform(out, lattice)
	if err != nil {
		return Mat3{}, IMat3{}, err
	}

	return out, t, nil
}

// basisTransform recovers the integer transform T with to = T·from and
// |det T| = 1, validating that the rounded solution is exact.
func basisTransform(to, from Mat3) (IMat3, error) {
	inv, err := Inverse(from)
	if err != nil {
		return IMat3{}, err
	}
	tf := Mul(to, inv)
	t := RoundI(tf)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(tf[i][j]-float64(t[i][j])) > 1e-5 {
				return IMat3{}, ErrReduction
			}
		}
	}
	if d := DetI(t); d != 1 && d != -1 {
		return IMat3{}, ErrReduction
	}

	return t, nil
}

// signFlag classifies x against ±eps into {-1, 0, 1}.
func signFlag(x, eps float64) int {
	switch {
	case x < -eps:
		return -1
	case x > eps:
		return 1
	default:
		return 0
	}
}

// sign returns ±1 for the shear direction in A5–A7.
func sign(x float64) float64 {
	if x > 0 {
		return 1
	}

	return -1
}

// applySignDiag multiplies the basis rows by ±1 factors.
func applySignDiag(l Mat3, i, j, k int) Mat3 {
	return Mat3{
		Scale(float64(i), l[0]),
		Scale(float64(j), l[1]),
		Scale(float64(k), l[2]),
	}
}

// vol3 returns a length² scale derived from the cell volume, used for
// collinearity thresholds on cross products.
func vol3(vol float64) float64 {
	c := math.Cbrt(math.Abs(vol))

	return c * c
}

// sortByNorm orders candidate vectors by increasing Euclidean length
// (stable for equal lengths, keeping the enumeration deterministic).
func sortByNorm(vs []Vec3) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && Norm(vs[j]) < Norm(vs[j-1])-1e-12; j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
}
