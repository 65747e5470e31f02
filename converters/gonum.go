package converters

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/waypath/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("converters: graph is nil")

// ToGonum exports g as a gonum weighted undirected graph.
//
// Node IDs are vertex insertion indices; ids maps each label to its node ID.
// The exported graph reports weight 0 for a node to itself and +Inf for an
// absent edge, matching core.Graph.Weight. Parallel edges collapse to the
// first one added, self-loops are dropped and +Inf edges are treated as absent.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	v := g.Snapshot()
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[string]int64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out.AddNode(simple.Node(i))
		ids[v.Label(i)] = int64(i)
	}

	for i := 0; i < v.Len(); i++ {
		for _, a := range v.Arcs(i) {
			// Each undirected edge appears in both arc lists; export it once.
			if a.To < i || math.IsInf(a.Weight, 1) {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(i),
				T: simple.Node(a.To),
				W: a.Weight,
			})
		}
	}

	return out, ids, nil
}
