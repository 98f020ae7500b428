package admissible

import (
	"github.com/katalvlaran/erdos888/numtheory"
	"github.com/pkg/errors"
)

// MaxScale returns the largest s ≥ 0 with k·s² ≤ n (0 when k > n).
// k and n must be positive.
func MaxScale(k, n int64) int64 {
	if k <= 0 || n <= 0 {
		return 0
	}
	var s int64 = 1
	for k*s*s <= n {
		s++
	}

	return s - 1
}

// CheckFixingOpportunity searches for scales s₁..s₄ (not all 1) such that the
// rescaled set {kᵢ·sᵢ²} stays within n, has four distinct values and, once
// sorted as a<b<c<d, has a square product and a·d = b·c.
//
// Kernels are deduplicated and sorted ascending; the scale tuple is walked
// lexicographically over that order with the last kernel's scale varying
// fastest. On success the fixed set is returned pairwise aligned with the
// sorted kernels (fixed[i] = kᵢ·sᵢ²), not sorted by value.
//
// Contract:
//   - n in [1, numtheory.MaxBound]; exactly Arity distinct positive kernels.
//
// Errors: ErrNonPositive, ErrOutOfRange, ErrArity.
//
// Complexity: O(∏ MaxScale(kᵢ, n)).
func CheckFixingOpportunity(n int64, kernels []int64) (bool, []int64, error) {
	if n <= 0 {
		return false, nil, errors.Wrapf(ErrNonPositive, "fixing bound %d", n)
	}
	if n > numtheory.MaxBound {
		return false, nil, errors.Wrapf(ErrOutOfRange, "fixing bound %d", n)
	}
	ks, err := normalize(kernels)
	if err != nil {
		return false, nil, err
	}
	if len(ks) != Arity {
		return false, nil, errors.Wrapf(ErrArity, "got %d distinct kernels", len(ks))
	}

	var (
		limit  [Arity]int64
		scales [Arity]int64
		i      int
	)
	for i = 0; i < Arity; i++ {
		limit[i] = MaxScale(ks[i], n)
		if limit[i] == 0 {
			// Some kernel already exceeds n: the scale range is empty.
			return false, nil, nil
		}
		scales[i] = 1
	}

	for {
		if !allOnes(scales) {
			if fixed, ok := tryScales(ks, scales); ok {
				return true, fixed, nil
			}
		}
		if !advance(&scales, &limit) {
			return false, nil, nil
		}
	}
}

// tryScales forms {kᵢ·sᵢ²} and tests it. Duplicated values disqualify the tuple.
func tryScales(ks []int64, scales [Arity]int64) ([]int64, bool) {
	var (
		vals   [Arity]int64
		sorted [Arity]int64
		i, j   int
	)
	for i = 0; i < Arity; i++ {
		vals[i] = ks[i] * scales[i] * scales[i]
	}
	for i = 0; i < Arity; i++ {
		for j = i + 1; j < Arity; j++ {
			if vals[i] == vals[j] {
				return nil, false
			}
		}
	}

	// Insertion sort on four values.
	sorted = vals
	for i = 1; i < Arity; i++ {
		for j = i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	if !numtheory.IsPerfectSquare(sorted[0] * sorted[1] * sorted[2] * sorted[3]) {
		return nil, false
	}
	if sorted[0]*sorted[3] != sorted[1]*sorted[2] {
		return nil, false
	}

	return vals[:], true
}

func allOnes(scales [Arity]int64) bool {
	for _, s := range scales {
		if s != 1 {
			return false
		}
	}

	return true
}

// advance steps the odometer; the last position is the least significant.
// It returns false once every tuple has been produced.
func advance(scales, limit *[Arity]int64) bool {
	var i int
	for i = Arity - 1; i >= 0; i-- {
		if scales[i] < limit[i] {
			scales[i]++
			return true
		}
		scales[i] = 1
	}

	return false
}
