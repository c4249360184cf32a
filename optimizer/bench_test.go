package optimizer_test

import (
	"testing"

	"github.com/stoianmihail/netzwerk/optimizer"
)

func benchmarkAlgorithm(b *testing.B, algorithm string, n int, opts ...optimizer.Option) {
	net := buildRandomConnected(b, n, n/4, 123)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimizer.Optimize(net, algorithm, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTensorIKKBZ32(b *testing.B) { benchmarkAlgorithm(b, optimizer.AlgTensorIKKBZ, 32) }

func BenchmarkLinDP32(b *testing.B) { benchmarkAlgorithm(b, optimizer.AlgLinDP, 32) }

func BenchmarkGreedy32(b *testing.B) { benchmarkAlgorithm(b, optimizer.AlgGreedy, 32) }

func BenchmarkLinDPParallel32(b *testing.B) {
	benchmarkAlgorithm(b, optimizer.AlgLinDPParallel, 32, optimizer.WithThreads(4))
}
