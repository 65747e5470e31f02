// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// ExampleShortestPath demonstrates a single-pair query on a triangle.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddVertex("C")
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	d, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("A→C:", d)
	// Output: A→C: 3
}

// ExampleShortestPathsFrom reconstructs every path from one source,
// iterating in vertex insertion order.
func ExampleShortestPathsFrom() {
	g := core.NewGraph()
	for _, v := range []string{"depot", "north", "south", "harbor"} {
		g.AddVertex(v)
	}
	g.AddEdge("depot", "north", 4)
	g.AddEdge("depot", "south", 1)
	g.AddEdge("south", "north", 2)
	g.AddEdge("north", "harbor", 3)

	res, err := dijkstra.ShortestPathsFrom(g, "depot")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Println(v, res.Distances[v], res.Paths[v])
	}
	// Output:
	// depot 0 [depot]
	// north 3 [depot south north]
	// south 1 [depot south]
	// harbor 6 [depot south north harbor]
}

// ExampleShortestPath_unreachable shows the error for a disconnected target.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	g.AddVertex("A")
	g.AddVertex("B")

	_, err := dijkstra.ShortestPath(g, "A", "B")
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	// Output: true
}
