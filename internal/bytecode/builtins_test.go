package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinTable(t *testing.T) {
	assert.Len(t, JSBuiltins, 52)

	name, ok := Builtin(0)
	assert.True(t, ok)
	assert.Equal(t, "Array.isArray", name)

	name, ok = Builtin(15)
	assert.True(t, ok)
	assert.Equal(t, "Math.imul", name)

	name, ok = Builtin(51)
	assert.True(t, ok)
	assert.Equal(t, "spawnAsync", name)

	_, ok = Builtin(52)
	assert.False(t, ok)
	_, ok = Builtin(-1)
	assert.False(t, ok)
}
