// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, RandGrid(n, n, 1337))
			B := MustGrid(b, RandGrid(n, n, 4242))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, RandGrid(n, n, 7))
			B := MustGrid(b, RandGrid(n, n, 9))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkMul_Fallback measures the At-based kernel against the flat fast path.
func BenchmarkMul_Fallback(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, RandGrid(n, n, 7))
			B := MustGrid(b, RandGrid(n, n, 9))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(hide{A}, hide{B})
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkDeterminant_Cold measures a fresh factorization on every iteration.
func BenchmarkDeterminant_Cold(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, DiagDominant(n, 11))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Clone().Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

// BenchmarkSolve_Warm measures O(n^2) solves against one cached factorization.
func BenchmarkSolve_Warm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, DiagDominant(n, 21))
			rhs := RandGrid(1, n, 22)[0]
			if _, err := A.SolveVec(rhs); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := A.SolveVec(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkInverse_Cold(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustGrid(b, DiagDominant(n, 31))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Clone().Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
