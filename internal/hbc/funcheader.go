package hbc

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/hbcdec/internal/utils"
)

// FuncHeaderSize is the on-disk size of a bit-packed function header.
const FuncHeaderSize = 16

// largeFuncHeaderSize is the on-disk size of the non-packed overflow
// form: seven u32 fields followed by three bytes.
const largeFuncHeaderSize = 31

// Prohibit encodes which invocation forms a function forbids.
type Prohibit uint8

// Prohibit values.
const (
	ProhibitCall Prohibit = iota
	ProhibitConstruct
	ProhibitNone
)

// FuncFlags is the per-function flags byte.
type FuncFlags uint8

// ProhibitInvoke returns the prohibited invocation form.
func (f FuncFlags) ProhibitInvoke() Prohibit { return Prohibit(f & 0x03) }

// StrictMode reports whether the function was compiled in strict mode.
func (f FuncFlags) StrictMode() bool { return f&0x04 != 0 }

// HasExceptionHandler reports whether exception handler records exist
// for the function.
func (f FuncFlags) HasExceptionHandler() bool { return f&0x08 != 0 }

// HasDebugInfo reports whether debug info records exist.
func (f FuncFlags) HasDebugInfo() bool { return f&0x10 != 0 }

// Overflowed reports whether the real header is the large, non-packed
// form located through InfoOffset and Offset.
func (f FuncFlags) Overflowed() bool { return f&0x20 != 0 }

// SmallFuncHeader is the raw bit-packed 128-bit function header record.
//
// Field packing, LSB first:
//
//	Bits   0-24:  bytecode offset (25)
//	Bits  25-31:  parameter count (7)
//	Bits  32-46:  bytecode size in bytes (15)
//	Bits  47-63:  function name string index (17)
//	Bits  64-88:  info offset (25)
//	Bits  89-95:  frame size (7)
//	Bits  96-103: environment size (8)
//	Bits 104-111: highest read cache index (8)
//	Bits 112-119: highest write cache index (8)
//	Bits 120-127: flags (8)
type SmallFuncHeader struct {
	Lo uint64
	Hi uint64
}

func bitfield(v uint64, shift, width uint) uint32 {
	return uint32((v >> shift) & (1<<width - 1))
}

// Offset returns the function's bytecode offset in the file.
func (h SmallFuncHeader) Offset() uint32 { return bitfield(h.Lo, 0, 25) }

// ParamCount returns the declared parameter count.
func (h SmallFuncHeader) ParamCount() uint32 { return bitfield(h.Lo, 25, 7) }

// BytecodeSize returns the size of the function's bytecode in bytes.
func (h SmallFuncHeader) BytecodeSize() uint32 { return bitfield(h.Lo, 32, 15) }

// FunctionName returns the string table index of the function's name.
func (h SmallFuncHeader) FunctionName() uint32 { return bitfield(h.Lo, 47, 17) }

// InfoOffset returns the offset of the function's info section.
func (h SmallFuncHeader) InfoOffset() uint32 { return bitfield(h.Hi, 0, 25) }

// FrameSize returns the register frame size.
func (h SmallFuncHeader) FrameSize() uint32 { return bitfield(h.Hi, 25, 7) }

// EnvironmentSize returns the lexical environment slot count.
func (h SmallFuncHeader) EnvironmentSize() uint8 { return uint8(bitfield(h.Hi, 32, 8)) }

// HighestReadCache returns the highest read inline-cache index.
func (h SmallFuncHeader) HighestReadCache() uint8 { return uint8(bitfield(h.Hi, 40, 8)) }

// HighestWriteCache returns the highest write inline-cache index.
func (h SmallFuncHeader) HighestWriteCache() uint8 { return uint8(bitfield(h.Hi, 48, 8)) }

// Flags returns the function flags byte.
func (h SmallFuncHeader) Flags() FuncFlags { return FuncFlags(bitfield(h.Hi, 56, 8)) }

// largeHeaderAddr returns the file offset of the overflow header.
func (h SmallFuncHeader) largeHeaderAddr() int64 {
	return int64(h.InfoOffset())<<16 | int64(h.Offset())
}

// FuncHeader is the resolved, width-normalized function header: either
// the unpacked small form or the large overflow form.
type FuncHeader struct {
	Offset            uint32
	ParamCount        uint32
	BytecodeSize      uint32
	FunctionName      uint32
	InfoOffset        uint32
	FrameSize         uint32
	EnvironmentSize   uint32
	HighestReadCache  uint8
	HighestWriteCache uint8
	Flags             FuncFlags
}

// readLargeFuncHeader decodes the non-packed overflow header located at
// (InfoOffset << 16) | Offset of its small header.
func readLargeFuncHeader(r utils.ReaderAt, offset int64) (FuncHeader, error) {
	var buf [largeFuncHeaderSize]byte
	if _, err := r.ReadAt(buf[:], offset); err != nil {
		return FuncHeader{}, containerError("large function header", err)
	}
	return FuncHeader{
		Offset:            binary.LittleEndian.Uint32(buf[0:4]),
		ParamCount:        binary.LittleEndian.Uint32(buf[4:8]),
		BytecodeSize:      binary.LittleEndian.Uint32(buf[8:12]),
		FunctionName:      binary.LittleEndian.Uint32(buf[12:16]),
		InfoOffset:        binary.LittleEndian.Uint32(buf[16:20]),
		FrameSize:         binary.LittleEndian.Uint32(buf[20:24]),
		EnvironmentSize:   binary.LittleEndian.Uint32(buf[24:28]),
		HighestReadCache:  buf[28],
		HighestWriteCache: buf[29],
		Flags:             FuncFlags(buf[30]),
	}, nil
}

// resolve widens the small header, following the overflow indirection
// when the header is marked overflowed.
func (h SmallFuncHeader) resolve(r utils.ReaderAt, fileSize int64) (FuncHeader, error) {
	if !h.Flags().Overflowed() {
		return FuncHeader{
			Offset:            h.Offset(),
			ParamCount:        h.ParamCount(),
			BytecodeSize:      h.BytecodeSize(),
			FunctionName:      h.FunctionName(),
			InfoOffset:        h.InfoOffset(),
			FrameSize:         h.FrameSize(),
			EnvironmentSize:   uint32(h.EnvironmentSize()),
			HighestReadCache:  h.HighestReadCache(),
			HighestWriteCache: h.HighestWriteCache(),
			Flags:             h.Flags(),
		}, nil
	}
	addr := h.largeHeaderAddr()
	if addr+largeFuncHeaderSize > fileSize {
		return FuncHeader{}, fmt.Errorf(
			"large function header at %d beyond file size %d", addr, fileSize)
	}
	return readLargeFuncHeader(r, addr)
}
