package bench

import (
	"testing"

	"progressive-squares/residue"
)

func BenchmarkIsPerfectSquare(b *testing.B) {
	set, err := residue.New(64)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	var hits int
	for i := 0; i < b.N; i++ {
		if set.IsPerfectSquare(uint64(i) * 977) {
			hits++
		}
	}
	_ = hits
}

func BenchmarkIsqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		residue.Isqrt(uint64(i) + 999_999_999_999)
	}
}
