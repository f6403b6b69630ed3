package tailmap_test

import (
	"testing"

	"github.com/matthewdeanmartin/gizyskon/tailmap"
)

// benchTarget8 is the forward image length used by the 8-letter scenarios
// ("BULLSHIT" as values).
var benchTarget8 = []int{2, 21, 12, 12, 19, 8, 9, 20}

// benchmarkForward runs Forward on an n-value sequence under variant v.
func benchmarkForward(b *testing.B, n int, v tailmap.Variant) {
	values := make([]int, n)
	for i := range values {
		values[i] = i%26 + 1 // predictable spread across 1..26
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tailmap.Forward(values, v); err != nil {
			b.Fatalf("Forward failed: %v", err)
		}
	}
}

// BenchmarkForward_Linear10 benchmarks the linear forward transform on 10 values.
func BenchmarkForward_Linear10(b *testing.B) {
	benchmarkForward(b, 10, tailmap.Linear)
}

// BenchmarkForward_DigitSum10 benchmarks the digit-sum forward transform on 10 values.
func BenchmarkForward_DigitSum10(b *testing.B) {
	benchmarkForward(b, 10, tailmap.DigitSum)
}

// BenchmarkInvert_8 benchmarks the closed-form reconstruction of an 8-value target.
func BenchmarkInvert_8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := tailmap.Invert(benchTarget8); err != nil {
			b.Fatalf("Invert failed: %v", err)
		}
	}
}

// BenchmarkSearch_4 benchmarks the enumeration on a 4-value target.
func BenchmarkSearch_4(b *testing.B) {
	target := benchTarget8[:4]
	for i := 0; i < b.N; i++ {
		if _, err := tailmap.Search(target); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_8 benchmarks the enumeration on the full 8-value target.
func BenchmarkSearch_8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := tailmap.Search(benchTarget8); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}
