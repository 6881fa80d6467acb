package search

// Counts the nodes visited by a single search call. It is not safe for
// concurrent use, every top-level search owns its own counter.
type NodeCounter struct {
	nodes uint64
}

func (c *NodeCounter) Increment() {
	c.nodes++
}

func (c *NodeCounter) Reset() {
	c.nodes = 0
}

// Number of nodes visited since the last Reset
func (c *NodeCounter) Count() uint64 {
	return c.nodes
}
