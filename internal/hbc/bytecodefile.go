package hbc

import (
	"encoding/binary"
	"fmt"

	"github.com/scigolib/hbcdec/internal/utils"
)

// BytecodeFile is a parsed HBC container. All tables are read once at
// load time; the value is immutable afterwards and safe for concurrent
// readers. Function bytecode slabs and large headers are read lazily
// through the retained ReaderAt, which is stateless, so no reader
// position needs saving or restoring around those reads.
type BytecodeFile struct {
	r    utils.ReaderAt
	size int64

	Header          FileHeader
	FunctionHeaders []SmallFuncHeader

	StringKinds      []StringKindEntry
	IdentifierHashes []uint32
	StringTable      []SmallStringTableEntry
	StringOverflow   []OverflowStringTableEntry
	StringStorage    []byte

	ArrayBuffer    []byte
	ObjKeyBuffer   []byte
	ObjValueBuffer []byte

	BigIntTable   []OverflowStringTableEntry
	BigIntStorage []byte
	RegExpTable   []OverflowStringTableEntry
	RegExpStorage []byte

	// Exactly one of these is non-nil, selected by the header's
	// cjs_modules_statically_resolved option.
	CJSModuleTable       [][2]uint32
	CJSModuleTableStatic [][2]uint32

	FunctionSourceTable [][2]uint32

	// ExceptionHandlerMap holds handler records keyed by function
	// index, for functions whose flags declare them.
	ExceptionHandlerMap map[int][]ExceptionHandler
}

// Read parses an HBC container from r, which must expose size bytes.
// Tables follow the header back-to-back in declared order, unaligned.
func Read(r utils.ReaderAt, size int64) (*BytecodeFile, error) {
	header, err := ReadFileHeader(r)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(size); err != nil {
		return nil, containerError("header tables", err)
	}

	f := &BytecodeFile{r: r, size: size, Header: *header}
	cur := newCursor(r, HeaderSize, size)

	f.FunctionHeaders = make([]SmallFuncHeader, header.FunctionCount)
	for i := range f.FunctionHeaders {
		rec, err := cur.read(FuncHeaderSize)
		if err != nil {
			return nil, containerError("function header table", err)
		}
		f.FunctionHeaders[i] = SmallFuncHeader{
			Lo: binary.LittleEndian.Uint64(rec[0:8]),
			Hi: binary.LittleEndian.Uint64(rec[8:16]),
		}
	}

	f.StringKinds = make([]StringKindEntry, header.StringKindCount)
	for i := range f.StringKinds {
		v, err := cur.readUint32()
		if err != nil {
			return nil, containerError("string kind table", err)
		}
		f.StringKinds[i] = StringKindEntry(v)
	}

	f.IdentifierHashes = make([]uint32, header.IdentifierCount)
	for i := range f.IdentifierHashes {
		v, err := cur.readUint32()
		if err != nil {
			return nil, containerError("identifier hash table", err)
		}
		f.IdentifierHashes[i] = v
	}

	f.StringTable = make([]SmallStringTableEntry, header.StringCount)
	for i := range f.StringTable {
		v, err := cur.readUint32()
		if err != nil {
			return nil, containerError("string table", err)
		}
		f.StringTable[i] = SmallStringTableEntry(v)
	}

	f.StringOverflow = make([]OverflowStringTableEntry, header.OverflowStringCount)
	for i := range f.StringOverflow {
		entry, err := cur.readPair()
		if err != nil {
			return nil, containerError("string overflow table", err)
		}
		f.StringOverflow[i] = OverflowStringTableEntry{Offset: entry[0], Length: entry[1]}
	}

	if f.StringStorage, err = cur.readBytes(int(header.StringStorageSize)); err != nil {
		return nil, containerError("string storage", err)
	}
	if f.ArrayBuffer, err = cur.readBytes(int(header.ArrayBufferSize)); err != nil {
		return nil, containerError("array buffer", err)
	}
	if f.ObjKeyBuffer, err = cur.readBytes(int(header.ObjKeyBufferSize)); err != nil {
		return nil, containerError("object key buffer", err)
	}
	if f.ObjValueBuffer, err = cur.readBytes(int(header.ObjValueBufferSize)); err != nil {
		return nil, containerError("object value buffer", err)
	}

	f.BigIntTable = make([]OverflowStringTableEntry, header.BigIntCount)
	for i := range f.BigIntTable {
		entry, err := cur.readPair()
		if err != nil {
			return nil, containerError("bigint table", err)
		}
		f.BigIntTable[i] = OverflowStringTableEntry{Offset: entry[0], Length: entry[1]}
	}
	if f.BigIntStorage, err = cur.readBytes(int(header.BigIntStorageSize)); err != nil {
		return nil, containerError("bigint storage", err)
	}

	f.RegExpTable = make([]OverflowStringTableEntry, header.RegExpCount)
	for i := range f.RegExpTable {
		entry, err := cur.readPair()
		if err != nil {
			return nil, containerError("regexp table", err)
		}
		f.RegExpTable[i] = OverflowStringTableEntry{Offset: entry[0], Length: entry[1]}
	}
	if f.RegExpStorage, err = cur.readBytes(int(header.RegExpStorageSize)); err != nil {
		return nil, containerError("regexp storage", err)
	}

	cjs := make([][2]uint32, header.CJSModuleCount)
	for i := range cjs {
		if cjs[i], err = cur.readPair(); err != nil {
			return nil, containerError("cjs module table", err)
		}
	}
	if header.Options.CJSModulesStaticallyResolved() {
		f.CJSModuleTableStatic = cjs
	} else {
		f.CJSModuleTable = cjs
	}

	f.FunctionSourceTable = make([][2]uint32, header.FunctionSourceCount)
	for i := range f.FunctionSourceTable {
		if f.FunctionSourceTable[i], err = cur.readPair(); err != nil {
			return nil, containerError("function source table", err)
		}
	}

	f.ExceptionHandlerMap = make(map[int][]ExceptionHandler)
	for i, h := range f.FunctionHeaders {
		handlers, err := readExceptionHandlers(r, h, size)
		if err != nil {
			return nil, containerError(
				fmt.Sprintf("exception handlers of function %d", i), err)
		}
		if handlers != nil {
			f.ExceptionHandlerMap[i] = handlers
		}
	}

	return f, nil
}

// FunctionHeader resolves the effective header of function i, following
// the large-header indirection for overflowed entries.
func (f *BytecodeFile) FunctionHeader(i int) (FuncHeader, error) {
	if i < 0 || i >= len(f.FunctionHeaders) {
		return FuncHeader{}, fmt.Errorf("function index %d out of range (%d functions)",
			i, len(f.FunctionHeaders))
	}
	return f.FunctionHeaders[i].resolve(f.r, f.size)
}

// ReadBytecode reads function i's bytecode into a freshly allocated
// slab of exactly BytecodeSize bytes.
func (f *BytecodeFile) ReadBytecode(i int) ([]byte, error) {
	h, err := f.FunctionHeader(i)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateSliceBounds(uint64(h.Offset), uint64(h.BytecodeSize),
		uint64(f.size), "function bytecode"); err != nil {
		return nil, err
	}
	slab := make([]byte, h.BytecodeSize)
	if h.BytecodeSize == 0 {
		return slab, nil
	}
	if _, err := f.r.ReadAt(slab, int64(h.Offset)); err != nil {
		return nil, containerError("function bytecode", err)
	}
	return slab, nil
}

// FunctionCount returns the number of functions in the bundle.
func (f *BytecodeFile) FunctionCount() int { return len(f.FunctionHeaders) }

// cursor performs sequential reads over a ReaderAt with bounds checks.
type cursor struct {
	r      utils.ReaderAt
	offset int64
	size   int64
}

func newCursor(r utils.ReaderAt, offset, size int64) *cursor {
	return &cursor{r: r, offset: offset, size: size}
}

func (c *cursor) read(n int) ([]byte, error) {
	if c.offset+int64(n) > c.size {
		return nil, fmt.Errorf("short read: need %d bytes at %d, file is %d",
			n, c.offset, c.size)
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := c.r.ReadAt(buf, c.offset); err != nil {
			return nil, err
		}
	}
	c.offset += int64(n)
	return buf, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	return c.read(n)
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readPair() ([2]uint32, error) {
	b, err := c.read(8)
	if err != nil {
		return [2]uint32{}, err
	}
	return [2]uint32{
		binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}
