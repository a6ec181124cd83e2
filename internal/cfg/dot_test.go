package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowDOT(t *testing.T) {
	instructions := diamondInstructions(t)
	g, err := BuildFlowGraph(instructions)
	require.NoError(t, err)

	out := FlowDOT(g, instructions)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "LoadConstTrue")
	assert.Contains(t, out, `label="true"`)
}

func TestCFGDOT(t *testing.T) {
	instructions := diamondInstructions(t)
	g, err := BuildFlowGraph(instructions)
	require.NoError(t, err)
	c := BuildCFG(g)

	out := DOT(c, instructions)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "block 0")
	assert.Contains(t, out, "Ret r1")
}
