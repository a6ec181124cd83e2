package hbcdec_test

import (
	"strings"
	"testing"

	"github.com/dop251/goja/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/hbcdec"
	"github.com/scigolib/hbcdec/internal/bytecode"
	"github.com/scigolib/hbcdec/internal/hbctest"
)

// buildBundle assembles a small bundle with one trivial function and
// one function containing a conditional.
func buildBundle(t *testing.T) []byte {
	t.Helper()
	b := hbctest.NewBuilder()
	b.AddFunction(hbctest.Function{
		Name:       "global",
		ParamCount: 1,
		Bytecode: []byte{
			byte(bytecode.OpLoadConstUInt8), 1, 42,
			byte(bytecode.OpRet), 1,
		},
	})
	b.AddFunction(hbctest.Function{
		Name:       "pick",
		ParamCount: 2,
		Bytecode: []byte{
			byte(bytecode.OpLoadConstTrue), 0, // @0
			byte(bytecode.OpJmpTrue), 7, 0, // @2 -> @9
			byte(bytecode.OpLoadConstZero), 1, // @5
			byte(bytecode.OpJmp), 5, // @7 -> @12
			byte(bytecode.OpLoadConstUInt8), 1, 1, // @9
			byte(bytecode.OpRet), 1, // @12
		},
	})
	b.AddFunction(hbctest.Function{
		Name: "broken",
		Bytecode: []byte{
			byte(bytecode.OpStartGenerator),
			byte(bytecode.OpRet), 0,
		},
	})
	return b.Build()
}

func TestOpenMissingFile(t *testing.T) {
	_, err := hbcdec.Open("testdata/no-such-bundle")
	require.Error(t, err)
}

func TestLoadAndListFunctions(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	require.Equal(t, 3, f.FunctionCount())
	functions := f.Functions()
	require.Len(t, functions, 3)
	assert.Equal(t, "global", functions[0].Name)
	assert.Equal(t, uint32(1), functions[0].ParamCount)
	assert.Equal(t, uint32(5), functions[0].BytecodeSize)
	assert.Equal(t, "pick", functions[1].Name)
	assert.Equal(t, uint32(14), functions[1].BytecodeSize)
}

func TestStringsAccess(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	require.Equal(t, 4, f.StringCount())
	_, ok := f.GetString(0)
	assert.False(t, ok)
	s, ok := f.GetString(1)
	require.True(t, ok)
	assert.Equal(t, "global", s)
}

func TestDecompileSimpleFunction(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	js, err := f.Decompile(0)
	require.NoError(t, err)
	assert.Equal(t, "function f0() {\n    r1 = 42;\n    return r1;\n}\n", js)

	_, parseErr := parser.ParseFile(nil, "f0.js", js, 0)
	require.NoError(t, parseErr)
}

func TestDecompileConditionalFunction(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	js, err := f.Decompile(1)
	require.NoError(t, err)
	assert.Contains(t, js, "function f1()")
	assert.Contains(t, js, "if (r0)")
	_, parseErr := parser.ParseFile(nil, "f1.js", js, 0)
	require.NoError(t, parseErr)
}

// One unliftable function must not poison the file: its error names
// the opcode, and the other functions still decompile.
func TestPerFunctionFailureIsolation(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	_, err = f.Decompile(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StartGenerator")

	_, err = f.Decompile(0)
	require.NoError(t, err)
}

func TestDecompileToWriter(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, f.DecompileTo(&sb, 0))
	assert.Contains(t, sb.String(), "return r1;")
}

func TestDisassembleIsCached(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	first, err := f.Disassemble(0)
	require.NoError(t, err)
	second, err := f.Disassemble(0)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// The memoized slice is returned as-is on the second call.
	require.Len(t, second, len(first))
	assert.Same(t, &first[0], &second[0])
}

func TestFormatInstructions(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	lines, err := f.FormatInstructions(0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "LoadConstUInt8 r1, 42")
	assert.Contains(t, lines[1], "Ret r1")
}

func TestGraphExports(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	flow, err := f.FlowDOT(1)
	require.NoError(t, err)
	assert.Contains(t, flow, "digraph")
	assert.Contains(t, flow, "JmpTrue")

	c, err := f.CFGDOT(1)
	require.NoError(t, err)
	assert.Contains(t, c, "block 0")
}

func TestDisassembleOutOfRange(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)
	_, err = f.Disassemble(99)
	require.Error(t, err)
}

// Functions are independent after load; concurrent decompilation of
// distinct functions must be safe.
func TestConcurrentDecompile(t *testing.T) {
	f, err := hbcdec.Load(buildBundle(t))
	require.NoError(t, err)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			_, err := f.Decompile(i % 2)
			done <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
