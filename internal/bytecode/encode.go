package bytecode

import (
	"encoding/binary"
	"math"
)

// Encode serializes a decoded instruction sequence back into bytecode.
// Encoding a freshly disassembled sequence reproduces the original
// slab byte for byte.
func Encode(instructions []InstructionInfo) []byte {
	size := 0
	for _, info := range instructions {
		size += 1 + info.Instruction.Op.Size()
	}
	out := make([]byte, 0, size)
	for _, info := range instructions {
		in := info.Instruction
		out = append(out, byte(in.Op))
		for i, operand := range in.Op.Operands() {
			switch operand.Kind {
			case Reg8, UInt8, Addr8, Flag8:
				out = append(out, byte(in.Args[i]))
			case UInt16:
				out = binary.LittleEndian.AppendUint16(out, uint16(in.Args[i]))
			case Reg32, UInt32, Addr32, Imm32:
				out = binary.LittleEndian.AppendUint32(out, uint32(in.Args[i]))
			case Double:
				out = binary.LittleEndian.AppendUint64(out, math.Float64bits(in.Double))
			}
		}
	}
	return out
}
