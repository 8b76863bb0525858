package binarray

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("binarray: file not found")

	// ErrTruncated indicates the file ends before the header or payload it
	// declares.
	ErrTruncated = errors.New("binarray: truncated file")

	// ErrCorrupt indicates a header or payload that cannot describe a valid
	// array: zero or implausible rank, overflowing shape, or trailing bytes.
	ErrCorrupt = errors.New("binarray: corrupt file")

	// ErrUnsupportedVersion indicates a v2 header with an unknown version.
	ErrUnsupportedVersion = errors.New("binarray: unsupported format version")
)

// DecodeError wraps a decoding failure with the file and byte offset.
type DecodeError struct {
	Path   string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
