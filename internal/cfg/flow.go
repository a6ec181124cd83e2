package cfg

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/hbcdec/internal/bytecode"
)

// UnresolvedJumpTargetError means a branch's offset arithmetic landed
// between instruction boundaries. That indicates a decoder or input
// bug, never a recoverable condition.
type UnresolvedJumpTargetError struct {
	Index  int
	Offset uint32
	Target int64
}

func (e *UnresolvedJumpTargetError) Error() string {
	return fmt.Sprintf(
		"jump from instruction %d (offset %d) targets offset %d, which is not an instruction boundary",
		e.Index, e.Offset, e.Target)
}

// BuildFlowGraph constructs the instruction-level flow graph: one node
// per instruction, a true edge per taken branch, a false edge per
// fallthrough or unconditional jump, and no successors after
// Ret/Throw.
//
// Unsupported terminators (SaveGenerator, SwitchImm) keep the graph
// closed by falling through; a structured warning is logged because
// structural recovery will refuse such functions downstream anyway.
func BuildFlowGraph(instructions []bytecode.InstructionInfo) (*Graph, error) {
	g := NewGraph(len(instructions))

	for i, info := range instructions {
		op := info.Instruction.Op
		switch {
		case bytecode.IsUnconditionalJump(op):
			target, err := instructionByOffset(instructions, i, info.Instruction.RelativeOffset())
			if err != nil {
				return nil, err
			}
			g.AddEdge(i, target, false)

		case bytecode.IsConditionalJump(op):
			target, err := instructionByOffset(instructions, i, info.Instruction.RelativeOffset())
			if err != nil {
				return nil, err
			}
			g.AddEdge(i, target, true)
			if i < len(instructions)-1 {
				g.AddEdge(i, i+1, false)
			}

		case bytecode.IsTerminator(op):
			// No successors.

		default:
			if op == bytecode.OpSaveGenerator || op == bytecode.OpSaveGeneratorLong ||
				op == bytecode.OpSwitchImm {
				logrus.Warnf("treating unsupported terminator %s at offset %d as fallthrough",
					op.Name(), info.Offset)
			}
			if i < len(instructions)-1 {
				g.AddEdge(i, i+1, false)
			}
		}
	}

	return g, nil
}

// instructionByOffset resolves a relative branch displacement to an
// instruction index by walking the offset-sorted instruction list in
// the sign of the displacement.
func instructionByOffset(instructions []bytecode.InstructionInfo, from int, relative int32) (int, error) {
	target := int64(instructions[from].Offset) + int64(relative)
	step := 1
	if relative < 0 {
		step = -1
	}
	for i := from; i >= 0 && i < len(instructions); i += step {
		if int64(instructions[i].Offset) == target {
			return i, nil
		}
	}
	return 0, &UnresolvedJumpTargetError{
		Index:  from,
		Offset: instructions[from].Offset,
		Target: target,
	}
}
