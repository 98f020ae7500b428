package cover

import (
	"errors"
	"time"
)

// Sentinel errors returned by MinVertexCover.
var (
	// ErrDuplicateVertex indicates the vertex list repeats a value.
	ErrDuplicateVertex = errors.New("cover: duplicate vertex")

	// ErrUnknownVertex indicates an edge endpoint missing from the vertex list.
	ErrUnknownVertex = errors.New("cover: edge endpoint is not a vertex")

	// ErrTimeLimit indicates the search hit Options.TimeLimit before proving
	// optimality. The accompanying Result holds the best cover found.
	ErrTimeLimit = errors.New("cover: time limit exceeded")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("cover: TimeLimit must be non-negative")
)

// Result holds the outcome of MinVertexCover.
type Result struct {
	// Cover lists the chosen vertices in ascending order.
	Cover []int64

	// Size is len(Cover).
	Size int

	// Nodes counts search nodes entered (0 when E is empty).
	Nodes int

	// Optimal is false only when the time limit interrupted the search.
	Optimal bool
}

// Options configures the Branch-and-Bound search.
//
// TimeLimit – soft wall-clock budget; 0 disables the deadline.
type Options struct {
	TimeLimit time.Duration
}

// Option represents a functional option for configuring MinVertexCover.
type Option func(*Options)

// WithTimeLimit sets a soft wall-clock budget for the search.
// A negative duration makes MinVertexCover return ErrBadTimeLimit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// DefaultOptions returns Options with no time limit.
func DefaultOptions() Options {
	return Options{TimeLimit: 0}
}
