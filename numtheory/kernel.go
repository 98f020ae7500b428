package numtheory

import "github.com/pkg/errors"

// SquareFreeKernel returns the product of the distinct prime factors of m,
// i.e. the largest square-free divisor of m (rad(m)).
//
// Trial division runs up to √(residual); whatever residual exceeds 1 after
// the loop is itself prime and is multiplied in.
//
// Contract:
//   - kernel(0) = 0 and kernel(1) = 1.
//   - kernel(m) divides m and is square-free; kernel(kernel(m)) = kernel(m).
//   - m < 0 returns ErrNegative.
//
// Complexity: O(√m).
func SquareFreeKernel(m int64) (int64, error) {
	if m < 0 {
		return 0, errors.Wrapf(ErrNegative, "square-free kernel of %d", m)
	}
	if m == 0 {
		return 0, nil
	}

	var (
		kernel int64 = 1
		temp         = m
		d      int64
	)
	for d = 2; d*d <= temp; d++ {
		if temp%d != 0 {
			continue
		}
		kernel *= d
		for temp%d == 0 {
			temp /= d
		}
	}
	if temp > 1 {
		kernel *= temp
	}

	return kernel, nil
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's algorithm.
// GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Core returns a·b / gcd(a,b)².
//
// The quotient is formed as (a/g)·(b/g), which equals the definition exactly
// and never materializes a·b. For square-free a and b the result is the
// square-free part of a·b, so two pairs share a core iff their four-element
// product is a perfect square.
//
// Contract: a, b > 0, otherwise ErrNonPositive. Core(a, a) = 1.
// A product that does not fit in int64 returns ErrOverflow.
func Core(a, b int64) (int64, error) {
	if a <= 0 || b <= 0 {
		return 0, errors.Wrapf(ErrNonPositive, "core(%d, %d)", a, b)
	}
	g := GCD(a, b)
	c, err := MulChecked(a/g, b/g)
	if err != nil {
		return 0, errors.Wrapf(err, "core(%d, %d)", a, b)
	}

	return c, nil
}

// SquareFreePart returns the unique square-free s with m = s·t² for some t,
// i.e. the product of the primes occurring in m with odd exponent.
// It differs from SquareFreeKernel whenever a prime appears with even
// exponent ≥ 2: SquareFreePart(126) = 14 while SquareFreeKernel(126) = 42.
//
// Contract: SquareFreePart(0) = 0; m < 0 returns ErrNegative.
func SquareFreePart(m int64) (int64, error) {
	if m < 0 {
		return 0, errors.Wrapf(ErrNegative, "square-free part of %d", m)
	}
	if m == 0 {
		return 0, nil
	}

	var (
		part int64 = 1
		temp       = m
		d    int64
		odd  bool
	)
	for d = 2; d*d <= temp; d++ {
		odd = false
		for temp%d == 0 {
			temp /= d
			odd = !odd
		}
		if odd {
			part *= d
		}
	}
	if temp > 1 {
		part *= temp
	}

	return part, nil
}
