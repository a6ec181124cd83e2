// Package bytecode defines the Hermes v93 instruction set and a
// table-driven decoder/encoder for function bytecode slabs.
package bytecode

import (
	"fmt"
	"strings"
)

// OperandKind is the wire type of a single operand. The names mirror
// the descriptor tags of Hermes's BytecodeList.def.
type OperandKind uint8

// Operand kinds.
const (
	Reg8   OperandKind = iota // 8-bit register number
	Reg32                     // 32-bit register number
	UInt8                     // unsigned immediate
	UInt16                    // unsigned immediate
	UInt32                    // unsigned immediate
	Addr8                     // signed relative jump offset
	Addr32                    // signed relative jump offset
	Imm32                     // signed immediate
	Double                    // IEEE-754 binary64
	Flag8                     // boolean flag byte; true iff the byte is 0
)

// Width returns the operand's encoded size in bytes.
func (k OperandKind) Width() int {
	switch k {
	case Reg8, UInt8, Addr8, Flag8:
		return 1
	case UInt16:
		return 2
	case Reg32, UInt32, Addr32, Imm32:
		return 4
	case Double:
		return 8
	}
	return 0
}

func (k OperandKind) String() string {
	switch k {
	case Reg8:
		return "Reg8"
	case Reg32:
		return "Reg32"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case Addr8:
		return "Addr8"
	case Addr32:
		return "Addr32"
	case Imm32:
		return "Imm32"
	case Double:
		return "Double"
	case Flag8:
		return "UInt8"
	}
	return "Unknown"
}

// RefKind marks operands that index one of the container tables.
type RefKind uint8

// Reference kinds.
const (
	RefNone RefKind = iota
	RefString
	RefFunction
	RefBigInt
)

// Operand describes one operand slot of an opcode.
type Operand struct {
	Kind OperandKind
	Ref  RefKind
}

// Name returns the opcode's mnemonic, or a hex placeholder for bytes
// outside the v93 set.
func (op Opcode) Name() string {
	if int(op) < NumOpcodes {
		return opcodeTable[op].Name
	}
	return fmt.Sprintf("Invalid(%#02x)", uint8(op))
}

func (op Opcode) String() string { return op.Name() }

// IsValid reports whether the byte is a defined v93 opcode.
func (op Opcode) IsValid() bool { return int(op) < NumOpcodes }

// Operands returns the opcode's operand layout in declared order.
func (op Opcode) Operands() []Operand {
	if int(op) < NumOpcodes {
		return opcodeTable[op].Operands
	}
	return nil
}

// Size returns the encoded operand size in bytes, excluding the opcode
// byte itself.
func (op Opcode) Size() int {
	n := 0
	for _, o := range op.Operands() {
		n += o.Kind.Width()
	}
	return n
}

// Instruction is one decoded instruction. Operand values are stored in
// declared order in Args, sign-extended for Addr8/Addr32/Imm32 and
// zero-extended otherwise. A Double operand's value lives in Double
// and its Args slot is left at 0.
type Instruction struct {
	Op     Opcode
	Args   []int64
	Double float64
}

// Flag interprets operand slot i under the v93 boolean convention:
// true iff the flag byte is 0.
func (in Instruction) Flag(i int) bool { return in.Args[i] == 0 }

// Reg returns operand slot i as a register number.
func (in Instruction) Reg(i int) uint32 { return uint32(in.Args[i]) }

// String renders the instruction in disassembly-listing form.
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.Name())
	for i, operand := range in.Op.Operands() {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		switch operand.Kind {
		case Reg8, Reg32:
			fmt.Fprintf(&b, "r%d", in.Args[i])
		case Double:
			fmt.Fprintf(&b, "%v", in.Double)
		default:
			fmt.Fprintf(&b, "%d", in.Args[i])
		}
	}
	return b.String()
}

// InstructionInfo pairs a decoded instruction with its byte offset
// inside the function's bytecode slab.
type InstructionInfo struct {
	Offset      uint32
	Instruction Instruction
}
