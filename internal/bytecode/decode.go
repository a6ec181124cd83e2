package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeError reports a malformed instruction stream: an unknown
// opcode byte or an instruction truncated by the end of the slab.
type DecodeError struct {
	Offset uint32
	Opcode uint8
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d (opcode %#02x): %s",
		e.Offset, e.Opcode, e.Reason)
}

// Disassemble decodes a function's bytecode slab into its ordered
// instruction sequence. The stream must consume exactly len(slab)
// bytes; an instruction crossing the slab end is a hard failure.
func Disassemble(slab []byte) ([]InstructionInfo, error) {
	var instructions []InstructionInfo
	pos := 0
	for pos < len(slab) {
		offset := uint32(pos)
		opByte := slab[pos]
		pos++

		op := Opcode(opByte)
		if !op.IsValid() {
			return nil, &DecodeError{Offset: offset, Opcode: opByte, Reason: "unknown opcode"}
		}
		if pos+op.Size() > len(slab) {
			return nil, &DecodeError{
				Offset: offset,
				Opcode: opByte,
				Reason: fmt.Sprintf("%s needs %d operand bytes, %d remain",
					op.Name(), op.Size(), len(slab)-pos),
			}
		}

		operands := op.Operands()
		in := Instruction{Op: op, Args: make([]int64, len(operands))}
		for i, operand := range operands {
			switch operand.Kind {
			case Reg8, UInt8, Flag8:
				in.Args[i] = int64(slab[pos])
			case Addr8:
				in.Args[i] = int64(int8(slab[pos]))
			case UInt16:
				in.Args[i] = int64(binary.LittleEndian.Uint16(slab[pos:]))
			case Reg32, UInt32:
				in.Args[i] = int64(binary.LittleEndian.Uint32(slab[pos:]))
			case Addr32, Imm32:
				in.Args[i] = int64(int32(binary.LittleEndian.Uint32(slab[pos:])))
			case Double:
				in.Double = math.Float64frombits(binary.LittleEndian.Uint64(slab[pos:]))
			}
			pos += operand.Kind.Width()
		}
		instructions = append(instructions, InstructionInfo{Offset: offset, Instruction: in})
	}
	return instructions, nil
}
