package numtheory

import "errors"

// MaxBound is the largest n for which n⁴ fits in an int64.
// Products of four values drawn from [1, MaxBound] never overflow.
const MaxBound int64 = 55108

// maxSqrt is ⌊√(2⁶³−1)⌋; (maxSqrt+1)² overflows int64.
const maxSqrt int64 = 3037000499

// Sentinel errors returned by the primitives. Callers match them with errors.Is;
// the values reported at the call site are attached via wrapping.
var (
	// ErrNegative indicates a negative bound or value where only n ≥ 0 is defined.
	ErrNegative = errors.New("numtheory: negative input")

	// ErrNonPositive indicates a zero or negative operand where n > 0 is required.
	ErrNonPositive = errors.New("numtheory: input must be positive")

	// ErrOutOfRange indicates a bound or value above MaxBound.
	ErrOutOfRange = errors.New("numtheory: input exceeds MaxBound")

	// ErrOverflow indicates that a product does not fit in an int64.
	ErrOverflow = errors.New("numtheory: int64 overflow")
)
