package numtheory_test

import (
	"testing"

	"github.com/katalvlaran/erdos888/numtheory"
)

func BenchmarkSquareFreeSieve_1e4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = numtheory.SquareFreeSieve(10000)
	}
}

func BenchmarkIsPerfectSquare(b *testing.B) {
	var x int64 = 94906265 * 94906265
	for i := 0; i < b.N; i++ {
		_ = numtheory.IsPerfectSquare(x)
	}
}
