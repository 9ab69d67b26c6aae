// SPDX-License-Identifier: MIT
// Package sparse_test provides benchmarks for coordinate assembly using a
// deterministic pseudo-random pattern.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nlcatalog/sparse"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{100, 1000, 10000}

// sinks to defeat dead-code elimination
var (
	sinkCSR *sparse.CSR
	sinkV   []float64
)

// randomPattern returns ~perRow contributions per row with repeats.
func randomPattern(n, perRow int, seed int64) ([]sparse.Coord, []float64) {
	rng := rand.New(rand.NewSource(seed))
	p := make([]sparse.Coord, 0, n*perRow)
	v := make([]float64, 0, n*perRow)
	for i := 0; i < n; i++ {
		for k := 0; k < perRow; k++ {
			p = append(p, sparse.Coord{Row: i, Col: rng.Intn(n)})
			v = append(v, rng.Float64())
		}
	}
	return p, v
}

func BenchmarkAssemble(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p, v := randomPattern(n, 8, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Assemble(n, p, v)
				if err != nil {
					b.Fatal(err)
				}
				sinkCSR = m
			}
		})
	}
}

func BenchmarkAccumulator(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p, v := randomPattern(n, 8, 4242)
			a := sparse.NewAccumulator(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Open(n)
				for k, c := range p {
					a.Add(c.Row, c.Col, v[k])
				}
				vals, err := a.Flatten()
				if err != nil {
					b.Fatal(err)
				}
				sinkV = vals
			}
		})
	}
}
