// core/fasta/errors.go
package fasta

import (
	"errors"
	"fmt"
)

// Error kinds reported by Parser.
var (
	// ErrMalformedStart: the stream does not begin with '>'.
	ErrMalformedStart = errors.New("input does not start with a '>' record marker")

	// ErrNameTooLong: a name line has no newline within the configured maximum.
	ErrNameTooLong = errors.New("name line exceeds maximum length")

	// ErrLineTooLong is returned by ChunkReader.ScanUntil when a limit is hit.
	ErrLineTooLong = errors.New("line exceeds limit")

	// ErrCompressed: Open was handed a gzip stream.
	ErrCompressed = errors.New("compressed input is not supported")
)

// ParseError places a parse failure in the input stream.
type ParseError struct {
	Offset int64  // bytes consumed when the failure was detected
	Record string // name of the record being read, if any
	Err    error
}

func (e *ParseError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("fasta: byte %d (record %q): %v", e.Offset, e.Record, e.Err)
	}
	return fmt.Sprintf("fasta: byte %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
