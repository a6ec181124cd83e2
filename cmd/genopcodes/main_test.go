package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defFixture = `/*
 * Test fixture mimicking BytecodeList.def.
 */

DEFINE_OPERAND_TYPE(Reg8, uint8_t)

DEFINE_OPCODE_1(Unreachable)
DEFINE_OPCODE_3(GetById, Reg8, Reg8, UInt16)
OPERAND_STRING_ID(GetById, 3)
DEFINE_OPCODE_3(CreateClosure, Reg8, Reg8, UInt16)
OPERAND_FUNCTION_ID(CreateClosure, 3)
DEFINE_OPCODE_2(LoadConstBigInt, Reg8, UInt16)
OPERAND_BIGINT_ID(LoadConstBigInt, 2)
DEFINE_OPCODE_2(LoadConstDouble, Reg8, Double)
DEFINE_JUMP_1(Jmp)
DEFINE_JUMP_2(JmpTrue)
DEFINE_JUMP_3(JLess)
ASSERT_EQUAL_LAYOUT3(Call, Construct)
DEFINE_RET_TARGET(Call)
`

func TestParseDefFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "BytecodeList.def")
	require.NoError(t, os.WriteFile(input, []byte(defFixture), 0o644))

	entries, err := parseDefFile(input)
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	assert.Equal(t, []string{
		"Unreachable", "GetById", "CreateClosure", "LoadConstBigInt",
		"LoadConstDouble",
		"Jmp", "JmpLong",
		"JmpTrue", "JmpTrueLong",
		"JLess", "JLessLong",
	}, names, "definition order is the opcode numbering")

	byName := make(map[string]*opcodeEntry)
	for _, e := range entries {
		byName[e.name] = e
	}

	assert.Empty(t, byName["Unreachable"].operands)

	getByID := byName["GetById"]
	require.Len(t, getByID.operands, 3)
	assert.Equal(t, "UInt16:S", getByID.operands[2].descriptor())

	assert.Equal(t, "UInt16:F", byName["CreateClosure"].operands[2].descriptor())
	assert.Equal(t, "UInt16:B", byName["LoadConstBigInt"].operands[1].descriptor())
	assert.Equal(t, "Double", byName["LoadConstDouble"].operands[1].descriptor())

	// Jumps expand to the short and Long forms.
	require.Len(t, byName["Jmp"].operands, 1)
	assert.Equal(t, "Addr8", byName["Jmp"].operands[0].descriptor())
	assert.Equal(t, "Addr32", byName["JmpLong"].operands[0].descriptor())
	require.Len(t, byName["JmpTrue"].operands, 2)
	assert.Equal(t, "Reg8", byName["JmpTrue"].operands[1].descriptor())
	require.Len(t, byName["JLessLong"].operands, 3)
	assert.Equal(t, "Addr32", byName["JLessLong"].operands[0].descriptor())
}

func TestWriteJSONPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "BytecodeList.def")
	output := filepath.Join(dir, "opcodes.json")
	require.NoError(t, os.WriteFile(input, []byte(defFixture), 0o644))

	entries, err := parseDefFile(input)
	require.NoError(t, err)
	require.NoError(t, writeJSON(output, entries))

	raw, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []string{"Reg8", "Reg8", "UInt16:S"}, decoded["GetById"])

	// Definition order must survive in the raw text.
	jmpIdx := indexOf(raw, `"Jmp"`)
	jmpLongIdx := indexOf(raw, `"JmpLong"`)
	require.GreaterOrEqual(t, jmpIdx, 0)
	assert.Less(t, jmpIdx, jmpLongIdx)
}

func indexOf(haystack []byte, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}
