package cfg

// CFG is the basic-block graph: each block is a maximal straight-line
// run of instruction indices, and edges carry the flow-graph labels of
// the branch that connects the blocks.
type CFG struct {
	Blocks [][]int
	out    [][]Edge
	in     [][]Edge
}

// Out returns block b's outgoing edges.
func (c *CFG) Out(b int) []Edge { return c.out[b] }

// In returns block b's incoming edges.
func (c *CFG) In(b int) []Edge { return c.in[b] }

// NumBlocks returns the block count.
func (c *CFG) NumBlocks() int { return len(c.Blocks) }

// BuildCFG coalesces the flow graph into basic blocks by depth-first
// traversal from instruction 0.
//
// A block ends before a node with two or more incoming edges (join
// point), and after a node that branches, terminates, or whose single
// successor was already visited (back edge or forward goto).
func BuildCFG(flow *Graph) *CFG {
	c := &CFG{}
	if flow.NumNodes() == 0 {
		return c
	}

	visited := make([]bool, flow.NumNodes())
	var current []int

	flush := func() {
		if len(current) > 0 {
			c.Blocks = append(c.Blocks, current)
			current = nil
		}
	}

	// Iterative preorder DFS. Successors are pushed in edge insertion
	// order, so the fallthrough edge (added last) is visited first and
	// straight-line runs coalesce before branch targets.
	stack := []int{0}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		for _, e := range flow.Out(v) {
			if !visited[e.To] {
				stack = append(stack, e.To)
			}
		}

		if len(flow.In(v)) >= 2 {
			flush()
		}
		current = append(current, v)

		switch outs := flow.Out(v); {
		case len(outs) >= 2, len(outs) == 0:
			flush()
		default:
			if visited[outs[0].To] {
				flush()
			}
		}
	}
	flush()

	c.out = make([][]Edge, len(c.Blocks))
	c.in = make([][]Edge, len(c.Blocks))

	// Edge propagation: connect block A to block B with label L when
	// the flow graph has an L-labeled edge from A's last instruction
	// to B's first.
	tailBlock := make(map[int]int, len(c.Blocks))
	for b, block := range c.Blocks {
		tailBlock[block[len(block)-1]] = b
	}
	for b, block := range c.Blocks {
		head := block[0]
		for _, e := range flow.In(head) {
			if from, ok := tailBlock[e.From]; ok {
				edge := Edge{From: from, To: b, Label: e.Label}
				c.out[from] = append(c.out[from], edge)
				c.in[b] = append(c.in[b], edge)
			}
		}
	}

	return c
}
