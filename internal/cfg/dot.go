package cfg

import (
	"fmt"
	"strings"

	"github.com/emicklei/dot"

	"github.com/scigolib/hbcdec/internal/bytecode"
)

// FlowDOT renders the instruction-level flow graph as Graphviz DOT.
// Each node shows its instruction; taken branches are labeled "true".
func FlowDOT(g *Graph, instructions []bytecode.InstructionInfo) string {
	d := dot.NewGraph(dot.Directed)
	nodes := make([]dot.Node, g.NumNodes())
	for i, info := range instructions {
		nodes[i] = d.Node(fmt.Sprintf("i%d", i)).
			Label(fmt.Sprintf("%d: %s", info.Offset, info.Instruction.String())).
			Attr("shape", "box")
	}
	for i := 0; i < g.NumNodes(); i++ {
		for _, e := range g.Out(i) {
			edge := d.Edge(nodes[e.From], nodes[e.To])
			if e.Label {
				edge.Label("true")
			}
		}
	}
	return d.String()
}

// DOT renders the basic-block CFG as Graphviz DOT. Each node lists its
// block's instructions.
func DOT(c *CFG, instructions []bytecode.InstructionInfo) string {
	d := dot.NewGraph(dot.Directed)
	nodes := make([]dot.Node, c.NumBlocks())
	for b, block := range c.Blocks {
		var label strings.Builder
		fmt.Fprintf(&label, "block %d\n", b)
		for _, idx := range block {
			fmt.Fprintf(&label, "%d: %s\n",
				instructions[idx].Offset, instructions[idx].Instruction.String())
		}
		nodes[b] = d.Node(fmt.Sprintf("b%d", b)).
			Label(label.String()).
			Attr("shape", "box")
	}
	for b := 0; b < c.NumBlocks(); b++ {
		for _, e := range c.Out(b) {
			edge := d.Edge(nodes[e.From], nodes[e.To])
			if e.Label {
				edge.Label("true")
			}
		}
	}
	return d.String()
}
