// Package hbctest builds small synthetic HBC bundles for tests.
package hbctest

import (
	"encoding/binary"
)

// Magic and version written into generated bundles.
const (
	magic   uint64 = 0x1F1903C103BC1FC6
	version uint32 = 93
)

// Function describes one function to place in a generated bundle.
type Function struct {
	Name       string
	ParamCount uint32
	Bytecode   []byte

	// Handlers, when non-empty, are written as the function's
	// exception handler info section.
	Handlers [][3]uint32
}

// Builder assembles a minimal, well-formed HBC v93 bundle: header,
// function headers, string tables and storage, and bytecode slabs.
// The serialized-literal buffers and bigint/regexp/cjs tables are left
// empty.
type Builder struct {
	functions []Function
	strings   []string
	byValue   map[string]uint32

	// ForceOverflow routes every string through the overflow table,
	// regardless of length.
	ForceOverflow bool
}

// NewBuilder returns an empty Builder whose string table starts with
// the conventional empty entry 0.
func NewBuilder() *Builder {
	b := &Builder{byValue: make(map[string]uint32)}
	b.AddString("")
	return b
}

// AddString interns s and returns its string table index.
func (b *Builder) AddString(s string) uint32 {
	if i, ok := b.byValue[s]; ok {
		return i
	}
	i := uint32(len(b.strings))
	b.strings = append(b.strings, s)
	b.byValue[s] = i
	return i
}

// AddFunction appends fn and returns its function index.
func (b *Builder) AddFunction(fn Function) int {
	b.AddString(fn.Name)
	b.functions = append(b.functions, fn)
	return len(b.functions) - 1
}

// Build serializes the bundle.
func (b *Builder) Build() []byte {
	storage, entries, overflow := b.buildStringTables()

	const headerSize = 128
	const funcHeaderSize = 16
	tablesEnd := headerSize +
		len(b.functions)*funcHeaderSize +
		len(entries)*4 +
		len(overflow)*8 +
		len(storage)

	// Bytecode slabs follow the tables; exception handler info
	// sections follow the slabs.
	type placed struct {
		offset     uint32
		infoOffset uint32
	}
	placements := make([]placed, len(b.functions))
	pos := tablesEnd
	for i, fn := range b.functions {
		placements[i].offset = uint32(pos)
		pos += len(fn.Bytecode)
	}
	for i, fn := range b.functions {
		if len(fn.Handlers) > 0 {
			placements[i].infoOffset = uint32(pos)
			pos += 4 + len(fn.Handlers)*12
		}
	}
	fileLength := pos

	out := make([]byte, 0, fileLength)
	le := binary.LittleEndian

	// Header.
	header := make([]byte, headerSize)
	le.PutUint64(header[0:], magic)
	le.PutUint32(header[8:], version)
	// Source hash bytes 12-31 stay zero.
	le.PutUint32(header[32:], uint32(fileLength))        // file_length
	le.PutUint32(header[36:], 0)                         // global_code_index
	le.PutUint32(header[40:], uint32(len(b.functions)))  // function_count
	le.PutUint32(header[44:], 0)                         // string_kind_count
	le.PutUint32(header[48:], 0)                         // identifier_count
	le.PutUint32(header[52:], uint32(len(entries)))      // string_count
	le.PutUint32(header[56:], uint32(len(overflow)))     // overflow_string_count
	le.PutUint32(header[60:], uint32(len(storage)))      // string_storage_size
	// Counts 64-104 (bigint, regexp, buffers, segment, cjs, function
	// sources, debug info) stay zero.
	out = append(out, header...)

	// Function headers.
	for i, fn := range b.functions {
		var flags uint8
		infoOffset := placements[i].infoOffset
		if len(fn.Handlers) > 0 {
			flags |= 0x08 // has_exception_handler
		}
		out = append(out, packFuncHeader(
			placements[i].offset,
			fn.ParamCount,
			uint32(len(fn.Bytecode)),
			b.byValue[fn.Name],
			infoOffset,
			flags,
		)...)
	}

	// String entries, overflow entries, storage.
	for _, e := range entries {
		out = le.AppendUint32(out, e)
	}
	for _, o := range overflow {
		out = le.AppendUint32(out, o[0])
		out = le.AppendUint32(out, o[1])
	}
	out = append(out, storage...)

	// Bytecode slabs.
	for _, fn := range b.functions {
		out = append(out, fn.Bytecode...)
	}

	// Exception handler sections.
	for _, fn := range b.functions {
		if len(fn.Handlers) == 0 {
			continue
		}
		out = le.AppendUint32(out, uint32(len(fn.Handlers)))
		for _, h := range fn.Handlers {
			out = le.AppendUint32(out, h[0])
			out = le.AppendUint32(out, h[1])
			out = le.AppendUint32(out, h[2])
		}
	}

	return out
}

// buildStringTables lays the interned strings into storage and packs
// their entries, spilling to the overflow table when forced or when a
// string exceeds the packed length field.
func (b *Builder) buildStringTables() (storage []byte, entries []uint32, overflow [][2]uint32) {
	for _, s := range b.strings {
		offset := uint32(len(storage))
		storage = append(storage, []byte(s)...)
		length := uint32(len(s))
		if length >= 255 || (b.ForceOverflow && length > 0) {
			index := uint32(len(overflow))
			overflow = append(overflow, [2]uint32{offset, length})
			entries = append(entries, packStringEntry(index, 255))
		} else {
			entries = append(entries, packStringEntry(offset, length))
		}
	}
	return storage, entries, overflow
}

// packStringEntry packs is_utf16:1, offset:23, length:8.
func packStringEntry(offset, length uint32) uint32 {
	return offset<<1 | length<<24
}

// packFuncHeader packs the 128-bit small function header.
func packFuncHeader(offset, paramCount, size, nameIndex, infoOffset uint32, flags uint8) []byte {
	lo := uint64(offset&0x1FFFFFF) |
		uint64(paramCount&0x7F)<<25 |
		uint64(size&0x7FFF)<<32 |
		uint64(nameIndex&0x1FFFF)<<47
	hi := uint64(infoOffset&0x1FFFFFF) |
		uint64(flags)<<56
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], lo)
	binary.LittleEndian.PutUint64(buf[8:16], hi)
	return buf
}
