// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/derivx"
)

func BenchmarkMemoryExpressions(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("symbols=%d", n), func(b *testing.B) {
			numExprs := 100
			text := GenLiteralText(n)
			var before runtime.MemStats
			runtime.ReadMemStats(&before)
			exprs := make([]derivx.Regex, numExprs)
			for i := 0; i < numExprs; i++ {
				exprs[i] = derivx.Text(text)
			}
			runtime.GC()
			var after runtime.MemStats
			runtime.ReadMemStats(&after)
			bytesPerExpr := (after.TotalAlloc - before.TotalAlloc) / uint64(numExprs)
			bytesPerSymbol := bytesPerExpr / uint64(n)
			b.ReportMetric(float64(bytesPerExpr)/1024, "KB/expression")
			b.ReportMetric(float64(bytesPerSymbol), "B/symbol")
		})
	}
}

func BenchmarkMemoryAlternatives(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("options=%d", n), func(b *testing.B) {
			numExprs := 100
			var before runtime.MemStats
			runtime.ReadMemStats(&before)
			exprs := make([]derivx.Regex, numExprs)
			for i := 0; i < numExprs; i++ {
				exprs[i] = GenAlternatives(n)
			}
			runtime.GC()
			var after runtime.MemStats
			runtime.ReadMemStats(&after)
			bytesPerExpr := (after.TotalAlloc - before.TotalAlloc) / uint64(numExprs)
			bytesPerOption := bytesPerExpr / uint64(n)
			b.ReportMetric(float64(bytesPerExpr)/1024, "KB/expression")
			b.ReportMetric(float64(bytesPerOption), "B/option")
		})
	}
}

func BenchmarkMemoryDerivativeChain(b *testing.B) {
	text := GenLiteralText(256)
	re := derivx.Text(text)
	numRuns := 100
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	for i := 0; i < numRuns; i++ {
		cur := re
		for _, r := range text {
			cur = cur.Derive(derivx.Rune(r))
		}
		if !cur.AcceptsEmptyString() {
			b.Fatal("expected the chain to end accepting")
		}
	}
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	perSymbol := (after.TotalAlloc - before.TotalAlloc) / uint64(numRuns) / uint64(len(text))
	b.ReportMetric(float64(perSymbol), "B/symbol")
}
