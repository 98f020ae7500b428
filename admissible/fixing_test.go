package admissible_test

import (
	"testing"

	"github.com/katalvlaran/erdos888/admissible"
	"github.com/katalvlaran/erdos888/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxScale(t *testing.T) {
	assert.Equal(t, int64(8), admissible.MaxScale(3, 210))  // 3·64 = 192
	assert.Equal(t, int64(6), admissible.MaxScale(5, 210))  // 5·36 = 180
	assert.Equal(t, int64(3), admissible.MaxScale(14, 210)) // 14·9 = 126
	assert.Equal(t, int64(1), admissible.MaxScale(210, 210))
	assert.Zero(t, admissible.MaxScale(211, 210))
	assert.Zero(t, admissible.MaxScale(0, 210))
}

// TestCheckFixingOpportunity_Theorem3 repairs K = {3,5,14,210} within 210 and
// round-trips the repaired set through the admissibility checker.
func TestCheckFixingOpportunity_Theorem3(t *testing.T) {
	ok, fixed, err := admissible.CheckFixingOpportunity(210, []int64{3, 5, 14, 210})
	require.NoError(t, err)
	require.True(t, ok, "K must be fixable within 210")
	require.Len(t, fixed, 4)

	// First hit in lexicographic scale order is (1,1,3,1).
	assert.Equal(t, []int64{3, 5, 126, 210}, fixed)

	adm, err := admissible.CheckAdmissible(fixed)
	require.NoError(t, err)
	assert.True(t, adm, "a reported fix must be admissible")

	for _, v := range fixed {
		assert.LessOrEqual(t, v, int64(210))
	}
}

// TestCheckFixingOpportunity_KernelOrder verifies input order does not matter.
func TestCheckFixingOpportunity_KernelOrder(t *testing.T) {
	ok1, fixed1, err := admissible.CheckFixingOpportunity(210, []int64{210, 14, 5, 3})
	require.NoError(t, err)
	ok2, fixed2, err := admissible.CheckFixingOpportunity(210, []int64{3, 5, 14, 210})
	require.NoError(t, err)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, fixed1, fixed2)
}

// TestCheckFixingOpportunity_NoRoom uses a bad quadruple whose scale ranges
// at n = max(K) admit no balanced rescaling.
func TestCheckFixingOpportunity_NoRoom(t *testing.T) {
	// 6·110 ≠ 77·105 while 6·77·105·110 = 2310².
	ok, fixed, err := admissible.CheckFixingOpportunity(110, []int64{6, 77, 105, 110})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, fixed)

	// 4·15 = 6·10 is reachable from {1,6,10,15} by scaling 1 to 4.
	ok, fixed, err = admissible.CheckFixingOpportunity(15, []int64{1, 6, 10, 15})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int64{4, 6, 10, 15}, fixed)

	// A kernel above n leaves an empty scale range.
	ok, fixed, err = admissible.CheckFixingOpportunity(100, []int64{3, 5, 14, 210})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, fixed)
}

// TestCheckFixingOpportunity_RoundTrip: every fix found for bad quadruples of
// square-free values up to 60 is admissible and stays within the bound.
func TestCheckFixingOpportunity_RoundTrip(t *testing.T) {
	const n = 60
	sf, err := numtheory.SquareFreeSieve(n)
	require.NoError(t, err)

	checked := 0
	for i := 0; i < len(sf) && checked < 40; i++ {
		for j := i + 1; j < len(sf) && checked < 40; j++ {
			for k := j + 1; k < len(sf) && checked < 40; k++ {
				for l := k + 1; l < len(sf) && checked < 40; l++ {
					a, b, c, d := sf[i], sf[j], sf[k], sf[l]
					if !numtheory.IsPerfectSquare(a*b*c*d) || a*d == b*c {
						continue
					}
					checked++
					ok, fixed, err := admissible.CheckFixingOpportunity(n, []int64{a, b, c, d})
					require.NoError(t, err)
					if !ok {
						continue
					}
					adm, err := admissible.CheckAdmissible(fixed)
					require.NoError(t, err)
					assert.True(t, adm, "fix %v of %v", fixed, []int64{a, b, c, d})
					for _, v := range fixed {
						assert.LessOrEqual(t, v, int64(n))
					}
				}
			}
		}
	}
	assert.Positive(t, checked)
}

func TestCheckFixingOpportunity_Errors(t *testing.T) {
	_, _, err := admissible.CheckFixingOpportunity(0, []int64{1, 2, 3, 6})
	assert.ErrorIs(t, err, admissible.ErrNonPositive)

	_, _, err = admissible.CheckFixingOpportunity(numtheory.MaxBound+1, []int64{1, 2, 3, 6})
	assert.ErrorIs(t, err, admissible.ErrOutOfRange)

	_, _, err = admissible.CheckFixingOpportunity(100, []int64{1, 2, 3})
	assert.ErrorIs(t, err, admissible.ErrArity)

	_, _, err = admissible.CheckFixingOpportunity(100, []int64{1, 2, 3, 3})
	assert.ErrorIs(t, err, admissible.ErrArity, "duplicates collapse below arity")

	_, _, err = admissible.CheckFixingOpportunity(100, []int64{1, 2, 3, -6})
	assert.ErrorIs(t, err, admissible.ErrNonPositive)
}
