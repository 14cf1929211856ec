package format

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxStringLength bounds the byte length accepted by Cursor.ReadString.
const MaxStringLength = 1_000_000

// Cursor is a positioned little-endian reader over an immutable byte buffer.
// The buffer is borrowed for the lifetime of the cursor and never mutated.
// Out-of-range positions are permitted; reads from them fail with
// ErrTruncated.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at byte 0 of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Size returns the total byte length of the buffer.
func (c *Cursor) Size() int {
	return len(c.data)
}

// Pos returns the current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos seeks to an absolute position. Out-of-range positions are accepted;
// subsequent reads fail.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// Seek moves the position relative to an io.Seek* origin and returns the new
// position.
func (c *Cursor) Seek(offset int, whence int) int {
	switch whence {
	case io.SeekCurrent:
		c.pos += offset
	case io.SeekEnd:
		c.pos = len(c.data) + offset
	default:
		c.pos = offset
	}
	return c.pos
}

// AtEOF reports whether the position is at or past the end of the buffer.
func (c *Cursor) AtEOF() bool {
	return c.pos >= len(c.data)
}

// Remaining returns the number of readable bytes left, or 0 when the cursor
// sits out of range.
func (c *Cursor) Remaining() int {
	if c.pos < 0 || c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

// take returns the next n bytes and advances, or fails without moving.
func (c *Cursor) take(n int) ([]byte, error) {
	if c.pos < 0 || n > len(c.data)-c.pos {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, c.pos, ErrTruncated)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes, failing without moving when fewer
// remain.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// ReadU8 reads an unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF32 reads a little-endian IEEE-754 single.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads a little-endian IEEE-754 double.
func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadString reads exactly length bytes as UTF-8 text. Source strings are
// length-prefixed rather than NUL-terminated; a trailing NUL, if present, is
// retained as written.
func (c *Cursor) ReadString(length int) (string, error) {
	if length < 0 || length > MaxStringLength {
		return "", fmt.Errorf("string length %d at offset %d: %w", length, c.pos, ErrInvalidLength)
	}
	b, err := c.take(length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadCString reads single-byte characters up to and including a terminating
// NUL (excluded from the result) or EOF.
func (c *Cursor) ReadCString() string {
	start := c.pos
	if start < 0 {
		start = len(c.data)
	}
	for i := start; i < len(c.data); i++ {
		if c.data[i] == 0 {
			s := string(c.data[start:i])
			c.pos = i + 1
			return s
		}
	}
	s := string(c.data[start:])
	c.pos = len(c.data)
	return s
}

// ReadChunkID reads a four-byte chunk identifier.
func (c *Cursor) ReadChunkID() (FourCC, error) {
	b, err := c.take(4)
	if err != nil {
		return FourCC{}, err
	}
	var id FourCC
	copy(id[:], b)
	return id, nil
}

// PeekChunkID returns the next chunk identifier without advancing.
func (c *Cursor) PeekChunkID() (FourCC, error) {
	pos := c.pos
	id, err := c.ReadChunkID()
	c.pos = pos
	return id, err
}

// ExpectChunkID reads a chunk identifier and fails when it does not match
// want. The reported position is the offset of the identifier itself.
func (c *Cursor) ExpectChunkID(want FourCC) error {
	pos := c.pos
	id, err := c.ReadChunkID()
	if err != nil {
		return fmt.Errorf("chunk %q: %w", want, err)
	}
	if id != want {
		return &UnexpectedChunkError{Expected: want, Actual: id, Pos: pos}
	}
	return nil
}
