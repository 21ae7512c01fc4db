// SPDX-License-Identifier: MIT
package kernel_test

import (
	"fmt"
	"testing"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/kernel"
	"github.com/colkit/rangeselect/predicate"
)

func BenchmarkSelect_Dense(b *testing.B) {
	for _, n := range []int64{1_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			col := column.NewDenseColumn[int64](0, n)
			tl, th := n/4, n/2
			pred := predicate.Predicate[int64]{TL: &tl, TH: &th, LI: true, HI: true}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				kernel.Select(col, nil, pred)
			}
		})
	}
}

func BenchmarkSelect_Scan(b *testing.B) {
	for _, n := range []int64{1_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			data := make([]int64, n)
			for i := range data {
				data[i] = int64((i * 7919) % int(n))
			}
			col := column.NewColumn(data, 0)
			tl, th := n/4, n/2
			pred := predicate.Predicate[int64]{TL: &tl, TH: &th, LI: true, HI: true}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				kernel.Select(col, nil, pred)
			}
		})
	}
}

func BenchmarkSelect_HashEqui(b *testing.B) {
	for _, n := range []int64{1_000, 100_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			data := make([]int64, n)
			for i := range data {
				data[i] = int64(i)
			}
			col := column.NewColumn(data, 0)
			col.Persistent = true
			col.Key = true
			v := n / 2
			pred := predicate.Predicate[int64]{TL: &v, LI: true, HI: true, Equi: true}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				kernel.Select(col, nil, pred)
			}
		})
	}
}
