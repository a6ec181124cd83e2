// Package utils provides shared read and validation helpers for the
// hbcdec library.
package utils

import "encoding/binary"

// ReaderAt is a simplified interface for io.ReaderAt.
type ReaderAt interface {
	ReadAt(p []byte, off int64) (n int, err error)
}

// All multi-byte values in an HBC bundle are little-endian on disk.
// Decoding through encoding/binary keeps wire semantics identical on
// big-endian hosts.

// ReadUint32 reads a little-endian 32-bit value at the given offset.
func ReadUint32(r ReaderAt, offset int64) (uint32, error) {
	var buf [4]byte
	if _, err := r.ReadAt(buf[:], offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
