// Package waypath computes shortest paths over small weighted undirected graphs.
//
// The module is organized in one package per concern:
//
//	core/           Graph: labelled vertices, mirrored weighted edges, immutable View snapshots
//	dijkstra/       single-pair and single-source Dijkstra with path reconstruction
//	floydwarshall/  all-pairs distance tables over a graph, plus a version-keyed Cache
//	matrix/         Dense float64 matrix and the in-place Floyd–Warshall closure
//	converters/     export to gonum graph types
//	graphfile/      YAML graph definitions and the built-in reference graph
//	metrics/        Prometheus collectors for queries and cache lookups
//	router/         concurrency-safe query façade with logging and metrics
//	cmd/waypath     command-line driver
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("a")
//	_ = g.AddVertex("b")
//	_ = g.AddEdge("a", "b", 3)
//	d, err := dijkstra.ShortestPath(g, "a", "b") // 3, nil
//
// Dijkstra rejects graphs that ever received a negative edge; Floyd–Warshall
// accepts them. Unreachable pairs are an error for Dijkstra and +Inf in
// Floyd–Warshall tables.
package waypath
