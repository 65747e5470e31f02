// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/waypath/core"
)

// starGraph builds a hub with n leaves.
func starGraph(n int) *core.Graph {
	g := core.NewGraph(core.WithCapacity(n + 1))
	_ = g.AddVertex("Center")
	for i := 0; i < n; i++ {
		leaf := fmt.Sprintf("Node%d", i)
		_ = g.AddVertex(leaf)
		_ = g.AddEdge("Center", leaf, float64(i))
	}

	return g
}

// BenchmarkAddEdge measures mirrored edge insertion between existing vertices.
func BenchmarkAddEdge(b *testing.B) {
	g := starGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Center", fmt.Sprintf("Node%d", i%100), float64(i))
	}
}

// BenchmarkSnapshot measures building an immutable view of a 1000-leaf star.
func BenchmarkSnapshot(b *testing.B) {
	g := starGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}

// BenchmarkWeight measures the O(deg) first-match lookup on a high-degree vertex.
func BenchmarkWeight(b *testing.B) {
	g := starGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Weight("Center", "Node999")
	}
}
