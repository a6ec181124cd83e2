package hbc

import (
	"encoding/binary"

	"github.com/scigolib/hbcdec/internal/utils"
)

// exceptionHandlerSize is the on-disk size of one handler record.
const exceptionHandlerSize = 12

// ExceptionHandler is a try-range record: PC range [Start, End) with
// the handler entry at Target. Recorded for completeness; lifting of
// try/catch regions is out of scope.
type ExceptionHandler struct {
	Start  uint32
	End    uint32
	Target uint32
}

// readExceptionHandlers reads the handler records for one function.
// Returns nil when the function has none.
//
// The records sit at the small header's info offset: a u32 count
// followed by count 12-byte (start, end, target) triples.
func readExceptionHandlers(r utils.ReaderAt, h SmallFuncHeader, fileSize int64) ([]ExceptionHandler, error) {
	if !h.Flags().HasExceptionHandler() {
		return nil, nil
	}
	base := int64(h.InfoOffset())
	count, err := utils.ReadUint32(r, base)
	if err != nil {
		return nil, containerError("exception handler count", err)
	}
	if err := utils.ValidateTableBounds(uint64(base)+4, uint64(count),
		exceptionHandlerSize, uint64(fileSize), "exception handler table"); err != nil {
		return nil, err
	}

	buf := make([]byte, int(count)*exceptionHandlerSize)
	if count > 0 {
		if _, err := r.ReadAt(buf, base+4); err != nil {
			return nil, containerError("exception handler records", err)
		}
	}

	handlers := make([]ExceptionHandler, count)
	for i := range handlers {
		rec := buf[i*exceptionHandlerSize:]
		handlers[i] = ExceptionHandler{
			Start:  binary.LittleEndian.Uint32(rec[0:4]),
			End:    binary.LittleEndian.Uint32(rec[4:8]),
			Target: binary.LittleEndian.Uint32(rec[8:12]),
		}
	}
	return handlers, nil
}
