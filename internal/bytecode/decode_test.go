package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeNumbering(t *testing.T) {
	// The opcode byte is the table index; pin a few anchors so an
	// accidental reordering cannot slip through.
	assert.Equal(t, Opcode(0), OpUnreachable)
	assert.Equal(t, uint8(0x5A), uint8(OpRet))
	assert.Equal(t, uint8(203), uint8(OpStore32))
	assert.Equal(t, "Ret", OpRet.Name())
	assert.Equal(t, "GetBuiltinClosure", OpGetBuiltinClosure.Name())
}

func TestOpcodeSizes(t *testing.T) {
	assert.Equal(t, 1, OpRet.Size())
	assert.Equal(t, 2, OpMov.Size())
	assert.Equal(t, 8, OpMovLong.Size())
	assert.Equal(t, 9, OpLoadConstDouble.Size())
	assert.Equal(t, 2, OpJmpTrue.Size())
	assert.Equal(t, 5, OpJmpTrueLong.Size())
	assert.Equal(t, 0, OpUnreachable.Size())
	assert.Equal(t, 17, OpSwitchImm.Size())
}

func TestDisassembleRet(t *testing.T) {
	instructions, err := Disassemble([]byte{byte(OpRet), 0x00})
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, uint32(0), instructions[0].Offset)
	assert.Equal(t, OpRet, instructions[0].Instruction.Op)
	assert.Equal(t, uint32(0), instructions[0].Instruction.Reg(0))
}

func TestDisassembleSequence(t *testing.T) {
	slab := []byte{
		byte(OpLoadConstUInt8), 1, 42,
		byte(OpRet), 1,
	}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)
	require.Len(t, instructions, 2)
	assert.Equal(t, uint32(0), instructions[0].Offset)
	assert.Equal(t, int64(42), instructions[0].Instruction.Args[1])
	assert.Equal(t, uint32(3), instructions[1].Offset)
}

func TestDisassembleSignedOperands(t *testing.T) {
	slab := []byte{
		byte(OpJmp), 0xFE, // relative offset -2
	}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), instructions[0].Instruction.RelativeOffset())

	slab = []byte{
		byte(OpJmpLong), 0x00, 0xFF, 0xFF, 0xFF, // -256 as i32
	}
	instructions, err = Disassemble(slab)
	require.NoError(t, err)
	assert.Equal(t, int32(-256), instructions[0].Instruction.RelativeOffset())
}

func TestDisassembleDouble(t *testing.T) {
	// LoadConstDouble r2, 1.5 (IEEE-754 LE: 0x3FF8000000000000).
	slab := []byte{
		byte(OpLoadConstDouble), 2,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F,
	}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)
	assert.Equal(t, 1.5, instructions[0].Instruction.Double)
}

func TestFlagOperandConvention(t *testing.T) {
	// PutOwnByVal's enumerable flag is true iff the byte is zero.
	slab := []byte{byte(OpPutOwnByVal), 2, 3, 4, 0}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)
	assert.True(t, instructions[0].Instruction.Flag(3))

	slab = []byte{byte(OpPutOwnByVal), 2, 3, 4, 1}
	instructions, err = Disassemble(slab)
	require.NoError(t, err)
	assert.False(t, instructions[0].Instruction.Flag(3))
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	_, err := Disassemble([]byte{0xFF})
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, uint8(0xFF), decodeErr.Opcode)
	assert.Equal(t, uint32(0), decodeErr.Offset)
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	_, err := Disassemble([]byte{byte(OpRet), 0x00, byte(OpLoadConstUInt8), 1})
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, uint32(2), decodeErr.Offset)
	assert.Equal(t, uint8(OpLoadConstUInt8), decodeErr.Opcode)
}

// The stream must consume exactly the slab: opcode bytes plus operand
// widths account for every byte.
func TestDecodeSizeIdentity(t *testing.T) {
	slab := []byte{
		byte(OpLoadConstUInt8), 0, 7,
		byte(OpLoadConstInt), 1, 0xD2, 0x04, 0x00, 0x00, // 1234
		byte(OpAdd), 2, 0, 1,
		byte(OpMov), 3, 2,
		byte(OpGetByIdShort), 4, 3, 0, 1,
		byte(OpJmpTrue), 2, 4,
		byte(OpRet), 4,
	}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)

	total := 0
	for _, info := range instructions {
		total += 1 + info.Instruction.Op.Size()
	}
	assert.Equal(t, len(slab), total)
}

func TestEncodeRoundTrip(t *testing.T) {
	slab := []byte{
		byte(OpLoadConstDouble), 0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F,
		byte(OpLoadConstString), 1, 0x05, 0x00,
		byte(OpJmpLong), 0xF6, 0xFF, 0xFF, 0xFF,
		byte(OpPutOwnByVal), 2, 3, 4, 1,
		byte(OpRet), 0,
	}
	instructions, err := Disassemble(slab)
	require.NoError(t, err)
	assert.Equal(t, slab, Encode(instructions))
}

func TestInstructionString(t *testing.T) {
	instructions, err := Disassemble([]byte{byte(OpLoadConstUInt8), 1, 42})
	require.NoError(t, err)
	assert.Equal(t, "LoadConstUInt8 r1, 42", instructions[0].Instruction.String())

	instructions, err = Disassemble([]byte{byte(OpRet), 3})
	require.NoError(t, err)
	assert.Equal(t, "Ret r3", instructions[0].Instruction.String())
}

func TestEveryOpcodeDecodes(t *testing.T) {
	for op := 0; op < NumOpcodes; op++ {
		opcode := Opcode(op)
		slab := make([]byte, 1+opcode.Size())
		slab[0] = byte(op)
		instructions, err := Disassemble(slab)
		require.NoError(t, err, "opcode %s", opcode.Name())
		require.Len(t, instructions, 1)
		assert.Equal(t, slab, Encode(instructions), "opcode %s", opcode.Name())
	}
}
