// Package hbc provides low-level parsing of the Hermes bytecode (HBC)
// container format: file header, function headers, string tables,
// serialized literal buffers, and per-function exception handlers.
package hbc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/hbcdec/internal/utils"
)

// HBC file magic and the bytecode version this package understands.
const (
	Magic            uint64 = 0x1F1903C103BC1FC6
	SupportedVersion uint32 = 93

	// HeaderSize is the fixed on-disk size of the file header,
	// including its 19 trailing padding bytes.
	HeaderSize = 128

	sha1NumBytes = 20
)

// Options is the header's bitfield of compile-time flags.
type Options uint8

// StaticBuiltins reports whether the bundle was compiled with
// -fstatic-builtins.
func (o Options) StaticBuiltins() bool { return o&0x01 != 0 }

// CJSModulesStaticallyResolved reports whether the CommonJS module
// table uses the statically resolved form.
func (o Options) CJSModulesStaticallyResolved() bool { return o&0x02 != 0 }

// HasAsync reports whether the bundle contains async functions.
func (o Options) HasAsync() bool { return o&0x04 != 0 }

// FileHeader is the fixed 128-byte header at the start of every HBC
// bundle.
type FileHeader struct {
	Magic               uint64
	Version             uint32
	SourceHash          [sha1NumBytes]byte
	FileLength          uint32
	GlobalCodeIndex     uint32
	FunctionCount       uint32
	StringKindCount     uint32
	IdentifierCount     uint32
	StringCount         uint32
	OverflowStringCount uint32
	StringStorageSize   uint32
	BigIntCount         uint32
	BigIntStorageSize   uint32
	RegExpCount         uint32
	RegExpStorageSize   uint32
	ArrayBufferSize     uint32
	ObjKeyBufferSize    uint32
	ObjValueBufferSize  uint32
	SegmentID           uint32
	CJSModuleCount      uint32
	FunctionSourceCount uint32
	DebugInfoOffset     uint32
	Options             Options
}

// ReadFileHeader reads and parses the HBC file header at offset 0.
//
// A wrong magic or an unsupported version is logged as a warning, not
// treated as an error: decoding may still succeed on near-miss inputs
// and fails downstream per function when it cannot.
//
// Header layout (little-endian):
//
//	Bytes 0-7:     Magic (0x1F1903C103BC1FC6)
//	Bytes 8-11:    Bytecode version
//	Bytes 12-31:   SHA1 of the source
//	Bytes 32-107:  19 u32 counts/sizes (file length ... debug info offset)
//	Byte  108:     Options bitfield
//	Bytes 109-127: Padding
func ReadFileHeader(r utils.ReaderAt) (*FileHeader, error) {
	var buf [HeaderSize]byte
	n, err := r.ReadAt(buf[:], 0)
	if err != nil && n < HeaderSize {
		return nil, containerError("file header", err)
	}
	if n < HeaderSize {
		return nil, containerError("file header",
			errors.New("file too small to contain an HBC header"))
	}

	h := &FileHeader{
		Magic:   binary.LittleEndian.Uint64(buf[0:8]),
		Version: binary.LittleEndian.Uint32(buf[8:12]),
	}
	copy(h.SourceHash[:], buf[12:32])

	fields := []*uint32{
		&h.FileLength, &h.GlobalCodeIndex, &h.FunctionCount,
		&h.StringKindCount, &h.IdentifierCount, &h.StringCount,
		&h.OverflowStringCount, &h.StringStorageSize,
		&h.BigIntCount, &h.BigIntStorageSize,
		&h.RegExpCount, &h.RegExpStorageSize,
		&h.ArrayBufferSize, &h.ObjKeyBufferSize, &h.ObjValueBufferSize,
		&h.SegmentID, &h.CJSModuleCount, &h.FunctionSourceCount,
		&h.DebugInfoOffset,
	}
	off := 32
	for _, f := range fields {
		*f = binary.LittleEndian.Uint32(buf[off : off+4])
		off += 4
	}
	h.Options = Options(buf[off])

	if h.Magic != Magic {
		logrus.Warnf("incorrect magic header (expected: %#x, got: %#x)", Magic, h.Magic)
	}
	if h.Version != SupportedVersion {
		logrus.Warnf("unsupported bytecode version (got: %d, supported: %d)",
			h.Version, SupportedVersion)
	}

	return h, nil
}

// Validate checks the header's table sizes against the real file size.
// Truncated tables are a hard failure.
func (h *FileHeader) Validate(fileSize int64) error {
	size := uint64(fileSize)
	checks := []struct {
		count, recordSize uint64
		what              string
	}{
		{uint64(h.FunctionCount), FuncHeaderSize, "function table"},
		{uint64(h.StringKindCount), 4, "string kind table"},
		{uint64(h.IdentifierCount), 4, "identifier hash table"},
		{uint64(h.StringCount), 4, "string table"},
		{uint64(h.OverflowStringCount), 8, "string overflow table"},
		{uint64(h.StringStorageSize), 1, "string storage"},
		{uint64(h.ArrayBufferSize), 1, "array buffer"},
		{uint64(h.ObjKeyBufferSize), 1, "object key buffer"},
		{uint64(h.ObjValueBufferSize), 1, "object value buffer"},
		{uint64(h.BigIntCount), 8, "bigint table"},
		{uint64(h.BigIntStorageSize), 1, "bigint storage"},
		{uint64(h.RegExpCount), 8, "regexp table"},
		{uint64(h.RegExpStorageSize), 1, "regexp storage"},
		{uint64(h.CJSModuleCount), 8, "cjs module table"},
		{uint64(h.FunctionSourceCount), 8, "function source table"},
	}
	total := uint64(HeaderSize)
	for _, c := range checks {
		if err := utils.ValidateTableBounds(total, c.count, c.recordSize, size, c.what); err != nil {
			return err
		}
		total += c.count * c.recordSize
	}
	if total > size {
		return fmt.Errorf("declared tables end at %d, past file end %d", total, size)
	}
	return nil
}
