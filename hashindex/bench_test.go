// SPDX-License-Identifier: MIT
package hashindex_test

import (
	"fmt"
	"testing"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/hashindex"
)

var benchSizes = []int{1_000, 100_000, 1_000_000}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		data := make([]int64, n)
		for i := range data {
			data[i] = int64(i % (n/4 + 1))
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				col := column.NewColumn(data, 0)
				_, _ = hashindex.Build(col)
			}
		})
	}
}

func BenchmarkProbe(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		data := make([]int64, n)
		for i := range data {
			data[i] = int64(i % (n/4 + 1))
		}
		col := column.NewColumn(data, 0)
		idx, err := hashindex.Build(col)
		if err != nil {
			b.Fatalf("build: %v", err)
		}
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = idx.Probe(int64(i % n))
			}
		})
	}
}
