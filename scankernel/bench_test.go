// SPDX-License-Identifier: MIT
package scankernel_test

import (
	"fmt"
	"testing"

	"github.com/colkit/rangeselect/column"
	"github.com/colkit/rangeselect/imprint"
	"github.com/colkit/rangeselect/predicate"
	"github.com/colkit/rangeselect/scankernel"
)

var benchSizes = []int{1_000, 100_000, 1_000_000}

func benchPredicate(n int) predicate.Canonical[int32] {
	tl, th := int32(0), int32(n/10)
	p := predicate.Predicate[int32]{TL: &tl, TH: &th, LI: true, HI: true}
	c, _ := predicate.Normalize(p, true)
	return c
}

func BenchmarkScan_Plain(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i)
		}
		col := column.NewColumn(vals, 0)
		pred := benchPredicate(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = scankernel.Scan[int32](col, nil, pred, nil, 0)
			}
		})
	}
}

func BenchmarkScan_ImprintPruned(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i)
		}
		col := column.NewColumn(vals, 0)
		imp, err := imprint.Build(col)
		if err != nil {
			b.Fatalf("build: %v", err)
		}
		pred := benchPredicate(n)
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = scankernel.Scan[int32](col, nil, pred, imp, 0)
			}
		})
	}
}
