package floydwarshall

import (
	"sync"

	"github.com/katalvlaran/waypath/core"
)

// Cache memoizes the distance table of one graph and recomputes it only when
// the graph's Version changes. It is safe for concurrent use.
type Cache struct {
	g *core.Graph

	mu  sync.Mutex
	cur *Distances
}

// NewCache returns an empty cache bound to g.
func NewCache(g *core.Graph) *Cache {
	return &Cache{g: g}
}

// Distances returns the table for the current graph version. hit reports
// whether it was served without recomputation.
func (c *Cache) Distances() (d *Distances, hit bool, err error) {
	if c.g == nil {
		return nil, false, ErrNilGraph
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cur != nil && c.cur.version == c.g.Version() {
		return c.cur, true, nil
	}
	if d, err = fromView(c.g.Snapshot()); err != nil {
		return nil, false, err
	}
	c.cur = d

	return d, false, nil
}

// Distance returns the from → to cell of the current table.
func (c *Cache) Distance(from, to string) (float64, error) {
	d, _, err := c.Distances()
	if err != nil {
		return 0, err
	}

	return d.Between(from, to)
}

// Invalidate drops the cached table.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cur = nil
	c.mu.Unlock()
}
