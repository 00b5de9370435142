package bloom

import (
	"fmt"
	"testing"

	"github.com/haukened/blockedservers/internal/blocked/domain"
)

func benchDigests(n int, suffix string) [][]byte {
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = []byte(domain.DigestOf(fmt.Sprintf("*.d%04d.%s", i, suffix)))
	}
	return out
}

func BenchmarkBloom_Negative(b *testing.B) {
	const n = 2500
	bf := NewFactory().New(n, 0.01)
	for _, k := range benchDigests(n, "present.test") {
		bf.Add(k)
	}
	absent := benchDigests(n, "absent.test")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bf.MightContain(absent[i%len(absent)])
	}
}

// BenchmarkBloom_FalsePositiveRate reports the observed false positive rate
// over a disjoint set of digests.
func BenchmarkBloom_FalsePositiveRate(b *testing.B) {
	const n = 2500
	const trials = 100_000
	bf := NewFactory().New(n, 0.01)
	for _, k := range benchDigests(n, "present.fpr") {
		bf.Add(k)
	}
	absent := benchDigests(trials, "absent.fpr")
	b.ReportAllocs()
	b.ResetTimer()
	fp := 0
	for i := 0; i < trials; i++ {
		if bf.MightContain(absent[i]) {
			fp++
		}
	}
	b.StopTimer()
	b.ReportMetric(float64(fp), "fp_count")
	b.ReportMetric(float64(fp)/float64(trials)*100, "fp_percent")
}
