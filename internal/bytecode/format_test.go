package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPlain(t *testing.T) {
	instructions, err := Disassemble([]byte{byte(OpRet), 3})
	require.NoError(t, err)
	assert.Equal(t, "     0  Ret r3", Format(instructions[0], nil))
}

func TestFormatResolvesRefs(t *testing.T) {
	resolver := func(ref RefKind, index uint32) (string, bool) {
		switch {
		case ref == RefString && index == 2:
			return "length", true
		case ref == RefFunction && index == 7:
			return "helper", true
		}
		return "", false
	}

	instructions, err := Disassemble([]byte{byte(OpGetById), 0, 1, 0, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, "     0  GetById r0, r1, 0, 2\t; \"length\"",
		Format(instructions[0], resolver))

	instructions, err = Disassemble([]byte{byte(OpCreateClosure), 0, 1, 7, 0})
	require.NoError(t, err)
	assert.Equal(t, "     0  CreateClosure r0, r1, 7\t; helper",
		Format(instructions[0], resolver))

	// Unresolvable refs stay numeric with no annotation.
	instructions, err = Disassemble([]byte{byte(OpGetById), 0, 1, 0, 9, 0})
	require.NoError(t, err)
	assert.Equal(t, "     0  GetById r0, r1, 0, 9",
		Format(instructions[0], resolver))
}
