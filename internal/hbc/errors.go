package hbc

import (
	"errors"
	"fmt"
)

// ErrInvalidContainer marks any structural fault in an HBC bundle:
// a truncated table, a record extending past the file end, or a short
// read inside a declared section. Magic and version mismatches are
// deliberately not part of this class; they only warn.
var ErrInvalidContainer = errors.New("invalid hbc container")

// ContainerError reports which container section could not be read.
// It matches ErrInvalidContainer under errors.Is, so callers can
// distinguish container corruption from per-function lift failures
// without inspecting the section name.
type ContainerError struct {
	Section string
	Cause   error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidContainer, e.Section, e.Cause)
}

func (e *ContainerError) Unwrap() error { return e.Cause }

// Is reports membership in the ErrInvalidContainer class.
func (e *ContainerError) Is(target error) bool { return target == ErrInvalidContainer }

// containerError wraps a section read failure; a nil cause means the
// section itself was readable.
func containerError(section string, cause error) error {
	if cause == nil {
		return nil
	}
	return &ContainerError{Section: section, Cause: cause}
}
