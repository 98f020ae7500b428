package admissible

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/katalvlaran/erdos888/numtheory"
	"github.com/pkg/errors"
)

// normalize validates values and returns them as a duplicate-free ascending slice.
// The caller's slice is left untouched.
func normalize(values []int64) ([]int64, error) {
	set := treeset.NewWith(utils.Int64Comparator)
	for _, v := range values {
		if v <= 0 {
			return nil, errors.Wrapf(ErrNonPositive, "element %d", v)
		}
		if v > numtheory.MaxBound {
			return nil, errors.Wrapf(ErrOutOfRange, "element %d", v)
		}
		set.Add(v)
	}

	out := make([]int64, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int64))
	}

	return out, nil
}
