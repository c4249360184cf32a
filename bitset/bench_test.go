package bitset_test

import (
	"math/rand"
	"testing"

	"github.com/stoianmihail/netzwerk/bitset"
)

func buildRandom(capacity int, density float64, seed int64) bitset.Set {
	rng := rand.New(rand.NewSource(seed))
	s := bitset.New(capacity)
	for v := 0; v < capacity; v++ {
		if rng.Float64() < density {
			s.Insert(v)
		}
	}

	return s
}

func BenchmarkUnion(b *testing.B) {
	x := buildRandom(2048, 0.3, 1)
	y := buildRandom(2048, 0.3, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Union(y)
	}
}

func BenchmarkForEach(b *testing.B) {
	s := buildRandom(2048, 0.3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		s.ForEach(func(v int) { sum += v })
	}
}

func BenchmarkSubsets(b *testing.B) {
	s := buildRandom(64, 0.2, 4) // ~13 elements, ~8k subsets
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := s.Subsets()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkHash(b *testing.B) {
	s := buildRandom(2048, 0.5, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Hash()
	}
}
