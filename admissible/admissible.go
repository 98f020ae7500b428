package admissible

import "github.com/katalvlaran/erdos888/numtheory"

// CheckAdmissible reports whether set satisfies the admissibility condition.
//
// set is treated as a mathematical set: order is irrelevant and duplicates
// collapse. Elements must lie in [1, numtheory.MaxBound].
//
// Errors: ErrNonPositive, ErrOutOfRange.
func CheckAdmissible(set []int64) (bool, error) {
	_, found, err := FindViolation(set)
	if err != nil {
		return false, err
	}

	return !found, nil
}

// FindViolation returns the first quadruple breaking admissibility, scanning
// 4-combinations in lexicographic order first and then the repeated-element
// shapes pair by pair. found is false when set is admissible.
func FindViolation(set []int64) (v Violation, found bool, err error) {
	var a []int64
	if a, err = normalize(set); err != nil {
		return Violation{}, false, err
	}

	if v, found = scanQuadruples(a); found {
		return v, true, nil
	}
	v, found = scanRepeated(a)

	return v, found, nil
}

// scanQuadruples checks every a<b<c<d. Inputs are bounded by MaxBound, so the
// four-fold product fits in int64.
func scanQuadruples(a []int64) (Violation, bool) {
	var (
		n          = len(a)
		i, j, k, l int
		ab, abc    int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			ab = a[i] * a[j]
			for k = j + 1; k < n; k++ {
				abc = ab * a[k]
				for l = k + 1; l < n; l++ {
					if !numtheory.IsPerfectSquare(abc * a[l]) {
						continue
					}
					if a[i]*a[l] != a[j]*a[k] {
						return Violation{Quad: [4]int64{a[i], a[j], a[k], a[l]}}, true
					}
				}
			}
		}
	}

	return Violation{}, false
}

// scanRepeated checks the degenerate quadruples (x,x,x,y) and (x,y,y,y) for x<y.
func scanRepeated(a []int64) (Violation, bool) {
	var (
		i, j int
		x, y int64
	)
	for i = 0; i < len(a); i++ {
		x = a[i]
		for j = i + 1; j < len(a); j++ {
			y = a[j]
			if numtheory.IsPerfectSquare(x*x*x*y) && x*y != x*x {
				return Violation{Quad: [4]int64{x, x, x, y}, Repeated: true}, true
			}
			if numtheory.IsPerfectSquare(x*y*y*y) && x*y != y*y {
				return Violation{Quad: [4]int64{x, y, y, y}, Repeated: true}, true
			}
		}
	}

	return Violation{}, false
}
