// Package core_test provides benchmarks for the hot container operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/gravl/core"
)

const benchNodes = 1024

// benchGraph returns a graph with benchNodes nodes and one edge per node.
func benchGraph() *core.Graph[int, int] {
	g := core.New[int, int]()
	for i := 0; i < benchNodes; i++ {
		g.AddNode(i)
	}
	for i := 0; i < benchNodes; i++ {
		_, _ = g.AddEdge(i, (i*7+1)%benchNodes, i)
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	g := core.New[int, int]()
	for i := 0; i < benchNodes; i++ {
		g.AddNode(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Distinct weights keep every insert on the growth path.
		_, _ = g.AddEdge(i%benchNodes, (i*31)%benchNodes, i)
	}
}

func BenchmarkFind(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := i % benchNodes
		_ = g.Find(n, (n*7+1)%benchNodes, n)
	}
}

func BenchmarkIsConnected(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := i % benchNodes
		_, _ = g.IsConnected(n, (n*7+1)%benchNodes)
	}
}

func BenchmarkIterateAll(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := g.Begin(); it != g.End(); it = it.Next() {
			_ = it.Edge()
		}
	}
}

func BenchmarkClone(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
