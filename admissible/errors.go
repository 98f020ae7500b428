package admissible

import "errors"

// Arity is the number of kernels a fixing search operates on.
const Arity = 4

var (
	// ErrNonPositive indicates a zero or negative set element or bound.
	ErrNonPositive = errors.New("admissible: values must be positive")

	// ErrOutOfRange indicates a value above numtheory.MaxBound, where
	// four-fold products would overflow int64.
	ErrOutOfRange = errors.New("admissible: value exceeds numtheory.MaxBound")

	// ErrArity indicates a kernel set that does not hold exactly Arity distinct values.
	ErrArity = errors.New("admissible: kernel set must hold exactly 4 distinct values")
)

// Violation describes the first quadruple that breaks admissibility.
//
// Quad is sorted ascending. For a repeated-element violation Quad is either
// (x,x,x,y) or (x,y,y,y) and Repeated is true.
type Violation struct {
	Quad     [4]int64
	Repeated bool
}
