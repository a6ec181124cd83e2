package hbc

import "strings"

// Sentinel length marking a small string entry whose real location
// lives in the overflow table, indexed by the entry's offset field.
const overflowLengthSentinel = 255

// SmallStringTableEntry is the packed 32-bit string table record.
//
// Field packing, LSB first:
//
//	Bit     0:    UTF-16 flag (1)
//	Bits  1-23:   offset into string storage (23)
//	Bits 24-31:   length in bytes (8)
type SmallStringTableEntry uint32

// IsUTF16 reports whether the string payload is UTF-16 encoded. The
// flag is recorded but this package decodes all payloads as Latin-1;
// UTF-16 decoding is a collaborator's concern.
func (e SmallStringTableEntry) IsUTF16() bool { return e&0x01 != 0 }

// Offset returns the storage offset, or the overflow table index when
// the length carries the overflow sentinel.
func (e SmallStringTableEntry) Offset() uint32 { return uint32(e>>1) & 0x7FFFFF }

// Length returns the byte length, with 255 meaning "see overflow".
func (e SmallStringTableEntry) Length() uint32 { return uint32(e >> 24) }

// OverflowStringTableEntry is the 64-bit overflow record for strings
// whose offset or length does not fit the packed form.
type OverflowStringTableEntry struct {
	Offset uint32
	Length uint32
}

// StringKind distinguishes plain strings from identifiers in the
// run-length encoded kind table.
type StringKind uint8

// String kinds.
const (
	KindString StringKind = iota
	KindIdentifier
)

// StringKindEntry is a run-length entry: count (31 bits) and kind
// (1 bit).
type StringKindEntry uint32

// Count returns the run length.
func (e StringKindEntry) Count() uint32 { return uint32(e) & 0x7FFFFFFF }

// Kind returns the run's string kind.
func (e StringKindEntry) Kind() StringKind { return StringKind(e >> 31) }

// GetStringKind expands the run-length kind table to the kind of
// entry i. Entries past the declared runs default to KindString.
func (f *BytecodeFile) GetStringKind(i uint32) StringKind {
	remaining := i
	for _, run := range f.StringKinds {
		if remaining < run.Count() {
			return run.Kind()
		}
		remaining -= run.Count()
	}
	return KindString
}

// GetString looks up string table entry i and slices its payload out
// of string storage. The second result is false iff the entry has zero
// length or the index is out of range.
//
// Payload bytes are interpreted as Latin-1: each byte becomes the
// Unicode code point of the same value.
func (f *BytecodeFile) GetString(i uint32) (string, bool) {
	if int(i) >= len(f.StringTable) {
		return "", false
	}
	entry := f.StringTable[i]
	offset := uint64(entry.Offset())
	length := uint64(entry.Length())
	if length == overflowLengthSentinel {
		if int(entry.Offset()) >= len(f.StringOverflow) {
			return "", false
		}
		ov := f.StringOverflow[entry.Offset()]
		offset = uint64(ov.Offset)
		length = uint64(ov.Length)
	}
	if length == 0 {
		return "", false
	}
	if offset+length > uint64(len(f.StringStorage)) {
		return "", false
	}

	raw := f.StringStorage[offset : offset+length]
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String(), true
}
