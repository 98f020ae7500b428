package cover_test

import (
	"testing"

	"github.com/katalvlaran/erdos888/cover"
	"github.com/katalvlaran/erdos888/hypergraph"
)

func BenchmarkMinVertexCover_n100(b *testing.B) {
	h, err := hypergraph.Build(100)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = cover.MinVertexCover(h.Vertices, h.Edges); err != nil {
			b.Fatal(err)
		}
	}
}
