// Package converters provides adapters between core.Graph and other Go graph
// libraries. Currently:
//   - gonum/graph (graph/simple.WeightedUndirectedGraph)
//
// Use converters to hand a waypath graph to gonum's algorithm suite
// (graph/path, graph/topo, graph/network, ...).
package converters
