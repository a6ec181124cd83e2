package hbc

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallFuncHeaderBitUnpacking(t *testing.T) {
	// offset=0x1234 (25 bits), param_count=3 (7), size=0x456 (15),
	// name=0x789 (17), info_offset=0xABC (25), frame_size=12 (7),
	// env=5, read_cache=7, write_cache=9, flags=0x2C.
	lo := uint64(0x1234) |
		uint64(3)<<25 |
		uint64(0x456)<<32 |
		uint64(0x789)<<47
	hi := uint64(0xABC) |
		uint64(12)<<25 |
		uint64(5)<<32 |
		uint64(7)<<40 |
		uint64(9)<<48 |
		uint64(0x2C)<<56
	h := SmallFuncHeader{Lo: lo, Hi: hi}

	assert.Equal(t, uint32(0x1234), h.Offset())
	assert.Equal(t, uint32(3), h.ParamCount())
	assert.Equal(t, uint32(0x456), h.BytecodeSize())
	assert.Equal(t, uint32(0x789), h.FunctionName())
	assert.Equal(t, uint32(0xABC), h.InfoOffset())
	assert.Equal(t, uint32(12), h.FrameSize())
	assert.Equal(t, uint8(5), h.EnvironmentSize())
	assert.Equal(t, uint8(7), h.HighestReadCache())
	assert.Equal(t, uint8(9), h.HighestWriteCache())

	// 0x2C = prohibit call (0b00), strict (0b100), has_exception_handler
	// (0b1000), overflowed (0b100000).
	flags := h.Flags()
	assert.Equal(t, ProhibitCall, flags.ProhibitInvoke())
	assert.True(t, flags.StrictMode())
	assert.True(t, flags.HasExceptionHandler())
	assert.False(t, flags.HasDebugInfo())
	assert.True(t, flags.Overflowed())
}

func TestSmallFuncHeaderFieldIsolation(t *testing.T) {
	// All-ones in one field must not leak into neighbors.
	h := SmallFuncHeader{Lo: uint64(1<<25-1) | uint64(0x7FFF)<<32}
	assert.Equal(t, uint32(1<<25-1), h.Offset())
	assert.Equal(t, uint32(0), h.ParamCount())
	assert.Equal(t, uint32(0x7FFF), h.BytecodeSize())
	assert.Equal(t, uint32(0), h.FunctionName())
}

func TestResolveSmallHeader(t *testing.T) {
	h := SmallFuncHeader{
		Lo: uint64(100) | uint64(2)<<25 | uint64(10)<<32 | uint64(1)<<47,
		Hi: uint64(0),
	}
	resolved, err := h.resolve(bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), resolved.Offset)
	assert.Equal(t, uint32(2), resolved.ParamCount)
	assert.Equal(t, uint32(10), resolved.BytecodeSize)
	assert.Equal(t, uint32(1), resolved.FunctionName)
	assert.False(t, resolved.Flags.Overflowed())
}

func TestResolveOverflowedHeader(t *testing.T) {
	// Large header at (info_offset << 16) | offset = 0x10010.
	const addr = 0x10010
	file := make([]byte, addr+largeFuncHeaderSize)
	le := binary.LittleEndian
	le.PutUint32(file[addr+0:], 0x4000000)  // offset wider than 25 bits
	le.PutUint32(file[addr+4:], 200)        // param_count
	le.PutUint32(file[addr+8:], 0x12345)    // bytecode_size
	le.PutUint32(file[addr+12:], 0x30000)   // function_name
	le.PutUint32(file[addr+16:], 0x2000000) // info_offset
	le.PutUint32(file[addr+20:], 300)       // frame_size
	le.PutUint32(file[addr+24:], 400)       // environment_size
	file[addr+28] = 11                      // highest read cache
	file[addr+29] = 13                      // highest write cache
	file[addr+30] = 0x20                    // flags: overflowed

	small := SmallFuncHeader{
		Lo: uint64(0x10),              // offset: low 16 bits of the address
		Hi: uint64(1) |                // info_offset: high bits of the address
			uint64(0x20)<<56, // flags: overflowed
	}
	require.True(t, small.Flags().Overflowed())
	require.Equal(t, int64(addr), small.largeHeaderAddr())

	resolved, err := small.resolve(bytes.NewReader(file), int64(len(file)))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x4000000), resolved.Offset)
	assert.Equal(t, uint32(200), resolved.ParamCount)
	assert.Equal(t, uint32(0x12345), resolved.BytecodeSize)
	assert.Equal(t, uint32(0x30000), resolved.FunctionName)
	assert.Equal(t, uint32(300), resolved.FrameSize)
	assert.Equal(t, uint32(400), resolved.EnvironmentSize)
	assert.Equal(t, uint8(11), resolved.HighestReadCache)
	assert.Equal(t, uint8(13), resolved.HighestWriteCache)
}

func TestResolveOverflowedHeaderBeyondFile(t *testing.T) {
	small := SmallFuncHeader{
		Lo: uint64(0x10),
		Hi: uint64(0xFF) | uint64(0x20)<<56,
	}
	_, err := small.resolve(bytes.NewReader(nil), 64)
	require.Error(t, err)
}
