package hbc_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/hbcdec/internal/hbc"
	"github.com/scigolib/hbcdec/internal/hbctest"
)

func TestReadFileHeader(t *testing.T) {
	data := hbctest.NewBuilder().Build()

	h, err := hbc.ReadFileHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, hbc.Magic, h.Magic)
	assert.Equal(t, uint32(93), h.Version)
	assert.Equal(t, uint32(len(data)), h.FileLength)
	assert.Equal(t, uint32(0), h.FunctionCount)
	assert.Equal(t, uint32(1), h.StringCount) // the empty string
}

func TestReadFileHeaderOptions(t *testing.T) {
	data := hbctest.NewBuilder().Build()
	data[108] = 0x07 // static_builtins | cjs_static | has_async

	h, err := hbc.ReadFileHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, h.Options.StaticBuiltins())
	assert.True(t, h.Options.CJSModulesStaticallyResolved())
	assert.True(t, h.Options.HasAsync())
}

func TestReadFileHeaderTooShort(t *testing.T) {
	_, err := hbc.ReadFileHeader(bytes.NewReader(make([]byte, 64)))
	require.Error(t, err)
	assert.ErrorIs(t, err, hbc.ErrInvalidContainer)
}

// A wrong magic or version warns but does not fail; parsing proceeds.
func TestReadFileHeaderBadMagicIsNotFatal(t *testing.T) {
	data := hbctest.NewBuilder().Build()
	binary.LittleEndian.PutUint64(data[0:], 0xDEADBEEF)
	binary.LittleEndian.PutUint32(data[8:], 90)

	h, err := hbc.ReadFileHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), h.Magic)
	assert.Equal(t, uint32(90), h.Version)
}

func TestValidateTruncatedTable(t *testing.T) {
	data := hbctest.NewBuilder().Build()
	// Claim a giant string table that cannot fit the file.
	binary.LittleEndian.PutUint32(data[52:], 1<<20)

	h, err := hbc.ReadFileHeader(bytes.NewReader(data))
	require.NoError(t, err)
	require.Error(t, h.Validate(int64(len(data))))
}
