package numtheory

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// ISqrt returns ⌊√n⌋ for n ≥ 0 and 0 for n < 0.
//
// The float64 estimate is only a starting point: above 2⁵³ it can be off by
// one in either direction, so it is corrected with exact integer steps.
func ISqrt(n int64) int64 {
	if n < 1 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	if r > maxSqrt {
		r = maxSqrt
	}
	for r*r > n {
		r--
	}
	for r < maxSqrt && (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// IsPerfectSquare reports whether n = k² for some integer k ≥ 0.
// Negative values are never squares.
func IsPerfectSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := ISqrt(n)

	return r*r == n
}

// MulChecked returns the product of non-negative factors, or ErrOverflow when
// the product does not fit in an int64. The empty product is 1.
// A negative factor returns ErrNegative.
func MulChecked(xs ...int64) (int64, error) {
	var acc uint64 = 1
	for _, x := range xs {
		if x < 0 {
			return 0, errors.Wrapf(ErrNegative, "factor %d", x)
		}
		hi, lo := bits.Mul64(acc, uint64(x))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, errors.Wrapf(ErrOverflow, "product of %v", xs)
		}
		acc = lo
	}

	return int64(acc), nil
}

// IsSquareProduct reports whether the product of xs is a perfect square.
// It is the overflow-checked form of IsPerfectSquare(x₁·x₂·…).
func IsSquareProduct(xs ...int64) (bool, error) {
	p, err := MulChecked(xs...)
	if err != nil {
		return false, err
	}

	return IsPerfectSquare(p), nil
}
