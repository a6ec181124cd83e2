// Package lift translates a function's basic-block CFG into a
// JavaScript statement list: structural recovery of loops and
// conditionals plus per-instruction lowering.
package lift

import (
	"fmt"

	"github.com/scigolib/hbcdec/internal/bytecode"
)

// UnimplementedOpcodeError aborts lifting of the current function at
// an opcode this decompiler does not translate (generators, try/catch,
// switch, regexps, bigints, typed-array ops). The opcode name is
// always carried so the caller can tell the user why the function
// cannot be lifted.
type UnimplementedOpcodeError struct {
	Op     bytecode.Opcode
	Offset uint32
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode %s at offset %d", e.Op.Name(), e.Offset)
}

// StructuralAmbiguityError aborts lifting when the CFG does not match
// any recognized control construct. Guessing would produce wrong
// JavaScript, so the function is refused instead.
type StructuralAmbiguityError struct {
	Block  int
	Reason string
}

func (e *StructuralAmbiguityError) Error() string {
	return fmt.Sprintf("unrecognized control flow at block %d: %s", e.Block, e.Reason)
}
