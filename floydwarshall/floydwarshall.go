package floydwarshall

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/matrix"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// Distances is the all-pairs distance table of one graph version.
type Distances struct {
	labels  []string
	index   map[string]int
	dist    *matrix.Dense // nil for an empty graph
	version uint64
}

// AllPairs builds the initial distance matrix from g and closes it.
// Complexity: O(V³) time, O(V²) space.
func AllPairs(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return fromView(g.Snapshot())
}

// AllPairsDistances returns the closed matrix as row slices, indexed by
// vertex insertion order.
func AllPairsDistances(g *core.Graph) ([][]float64, error) {
	d, err := AllPairs(g)
	if err != nil {
		return nil, err
	}

	return d.Matrix(), nil
}

// Distance recomputes the full matrix and returns the from → to cell.
// Use a Cache when querying the same graph repeatedly.
func Distance(g *core.Graph, from, to string) (float64, error) {
	d, err := AllPairs(g)
	if err != nil {
		return 0, err
	}

	return d.Between(from, to)
}

// fromView fills dist[i][j] = WeightAt(i, j) and runs the closure.
func fromView(v *core.View) (*Distances, error) {
	n := v.Len()
	out := &Distances{
		labels:  v.Labels(),
		index:   make(map[string]int, n),
		version: v.Version(),
	}
	for i, label := range out.labels {
		out.index[label] = i
	}
	if n == 0 {
		return out, nil
	}

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = v.WeightAt(i, j)
		}
	}
	if err = dist.Fill(data); err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}
	if err = matrix.FloydWarshall(dist); err != nil {
		return nil, fmt.Errorf("floydwarshall: %w", err)
	}
	out.dist = dist

	return out, nil
}

// Len returns the number of vertices covered.
func (d *Distances) Len() int { return len(d.labels) }

// Labels returns vertex labels in matrix index order.
func (d *Distances) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)

	return out
}

// Version is the graph version the table was computed from.
func (d *Distances) Version() uint64 { return d.version }

// Matrix returns a copy of the N×N distance table.
func (d *Distances) Matrix() [][]float64 {
	if d.dist == nil {
		return [][]float64{}
	}

	return d.dist.ToRows()
}

// Between returns the shortest distance between two labels, +Inf if they are
// not connected. Unknown labels fail with core.ErrVertexNotFound.
func (d *Distances) Between(from, to string) (float64, error) {
	i, ok := d.index[from]
	if !ok {
		return 0, fmt.Errorf("floydwarshall: %w: %q", core.ErrVertexNotFound, from)
	}
	j, ok := d.index[to]
	if !ok {
		return 0, fmt.Errorf("floydwarshall: %w: %q", core.ErrVertexNotFound, to)
	}

	return d.dist.At(i, j)
}
