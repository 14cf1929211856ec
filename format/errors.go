package format

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the decoder distinguishes. Call sites
// wrap them with context via fmt.Errorf and %w; errors.Is works through every
// wrap.
var (
	// ErrTruncated reports a read past the end of the buffer.
	ErrTruncated = errors.New("truncated read past end of buffer")

	// ErrInvalidLength reports a length field outside the accepted range.
	ErrInvalidLength = errors.New("length field outside accepted range")

	// ErrUnexpectedChunk reports a chunk identifier mismatch.
	ErrUnexpectedChunk = errors.New("unexpected chunk identifier")

	// ErrWstaNotFound reports that no WSTA marker exists after the brushes
	// section. The parse cannot realign without it.
	ErrWstaNotFound = errors.New("world state marker WSTA not found")

	// ErrMalformed reports a size or count field that failed a sanity check.
	ErrMalformed = errors.New("malformed chunk")

	// ErrNotFound reports a failed forward chunk scan.
	ErrNotFound = errors.New("chunk not found")
)

// UnexpectedChunkError carries the expected and actual identifiers together
// with the byte offset of the mismatch. It unwraps to ErrUnexpectedChunk.
type UnexpectedChunkError struct {
	Expected FourCC
	Actual   FourCC
	Pos      int
}

func (e *UnexpectedChunkError) Error() string {
	return fmt.Sprintf("expected chunk %q at offset %d, found %q", e.Expected, e.Pos, e.Actual)
}

func (e *UnexpectedChunkError) Unwrap() error {
	return ErrUnexpectedChunk
}
