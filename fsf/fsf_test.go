package fsf_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/erdos888/cover"
	"github.com/katalvlaran/erdos888/fsf"
	"github.com/katalvlaran/erdos888/hypergraph"
	"github.com/katalvlaran/erdos888/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeFSf_NoEdges: below 15 every square-free set is admissible.
func TestComputeFSf_NoEdges(t *testing.T) {
	for n := int64(1); n <= 14; n++ {
		res, err := fsf.ComputeFSf(n)
		require.NoError(t, err, "n=%d", n)
		sf, _ := numtheory.SquareFreeSieve(n)
		assert.Equal(t, len(sf), res.FSf, "n=%d", n)
		assert.Equal(t, len(sf), res.Q())
		assert.Empty(t, res.Edges)
		assert.Empty(t, res.Cover)
	}
}

// TestComputeFSf_Known pins f_sf(n) for small bounds.
func TestComputeFSf_Known(t *testing.T) {
	cases := []struct {
		n     int64
		q     int
		fsf   int
		edges int
	}{
		{15, 11, 10, 3},
		{20, 13, 12, 3},
		{21, 14, 13, 6},
		{30, 19, 17, 12},
		{40, 26, 24, 36},
		{65, 40, 37, 99},
		{100, 61, 55, 327},
	}
	for _, tc := range cases {
		res, err := fsf.ComputeFSf(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.q, res.Q(), "Q(%d)", tc.n)
		assert.Equal(t, tc.fsf, res.FSf, "f_sf(%d)", tc.n)
		assert.Len(t, res.Edges, tc.edges, "#edges(%d)", tc.n)
	}
}

// TestComputeFSf_Soundness checks 0 ≤ f_sf ≤ |V| and that the cover hits
// every edge, for all bounds up to 80.
func TestComputeFSf_Soundness(t *testing.T) {
	for n := int64(1); n <= 80; n++ {
		res, err := fsf.ComputeFSf(n)
		require.NoError(t, err, "n=%d", n)
		assert.GreaterOrEqual(t, res.FSf, 0)
		assert.LessOrEqual(t, res.FSf, res.Q())
		assert.Equal(t, res.Q()-len(res.Cover), res.FSf)
		assert.True(t, cover.IsCover(res.Cover, res.Edges), "cover must hit every edge at n=%d", n)
	}
}

// TestComputeFSf_Monotone: enlarging the bound cannot shrink f_sf by more than 0
// nor grow it by more than the new square-free values.
func TestComputeFSf_Monotone(t *testing.T) {
	prev, err := fsf.ComputeFSf(1)
	require.NoError(t, err)
	for n := int64(2); n <= 70; n++ {
		cur, err := fsf.ComputeFSf(n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cur.FSf, prev.FSf, "n=%d", n)
		assert.LessOrEqual(t, cur.FSf-prev.FSf, cur.Q()-prev.Q(), "n=%d", n)
		prev = cur
	}
}

// TestComputeFSf_ComplementAdmissible: removing the cover leaves no edge,
// i.e. V∖C contains no bad quadruple of the hypergraph.
func TestComputeFSf_ComplementAdmissible(t *testing.T) {
	res, err := fsf.ComputeFSf(65)
	require.NoError(t, err)
	removed := make(map[int64]bool)
	for _, v := range res.Cover {
		removed[v] = true
	}
	var keep []int64
	for _, v := range res.Vertices {
		if !removed[v] {
			keep = append(keep, v)
		}
	}
	require.Len(t, keep, res.FSf)

	h, err := hypergraph.Build(65)
	require.NoError(t, err)
	in := make(map[int64]bool)
	for _, v := range keep {
		in[v] = true
	}
	for _, e := range h.Edges {
		assert.False(t, in[e[0]] && in[e[1]] && in[e[2]] && in[e[3]], "%v survives", e)
	}
}

func TestComputeFSf_Density(t *testing.T) {
	res, err := fsf.ComputeFSf(100)
	require.NoError(t, err)
	assert.InDelta(t, 0.55, res.Density(), 1e-12)
	assert.Zero(t, fsf.Result{}.Density())
}

func TestComputeFSf_Errors(t *testing.T) {
	_, err := fsf.ComputeFSf(0)
	assert.ErrorIs(t, err, hypergraph.ErrNonPositive)

	_, err = fsf.ComputeFSf(10, cover.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, cover.ErrBadTimeLimit)
}
