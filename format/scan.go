package format

import "fmt"

// FindChunk scans forward byte by byte from the current position for the
// first occurrence of id, up to size-4. Identifiers are not aligned within
// the file, so the scan must not step in four-byte strides. On a match the
// cursor is positioned at the identifier (not past it) and its offset is
// returned; on a miss the cursor is restored and ErrNotFound is returned.
func FindChunk(c *Cursor, id FourCC) (int, error) {
	start := c.Pos()
	pos := start
	if pos < 0 {
		pos = 0
	}
	for ; pos <= c.Size()-4; pos++ {
		c.SetPos(pos)
		got, err := c.PeekChunkID()
		if err == nil && got == id {
			return pos, nil
		}
	}
	c.SetPos(start)
	return 0, fmt.Errorf("chunk %q after offset %d: %w", id, start, ErrNotFound)
}

// SkipTo advances the cursor to the start of the next occurrence of id, or to
// EOF when none exists. The scan steps one byte at a time.
func SkipTo(c *Cursor, id FourCC) {
	if _, err := FindChunk(c, id); err != nil {
		c.SetPos(c.Size())
	}
}

// SkipSized reads a 32-bit size field and advances the cursor past that many
// bytes. A size that is non-positive, at or above envelope, or beyond the
// remaining buffer leaves the cursor just after the size field and returns
// ErrMalformed.
func SkipSized(c *Cursor, envelope int32) error {
	size, err := c.ReadI32()
	if err != nil {
		return fmt.Errorf("chunk size: %w", err)
	}
	if size <= 0 || size >= envelope {
		return fmt.Errorf("chunk size %d at offset %d: %w", size, c.Pos(), ErrMalformed)
	}
	if int(size) > c.Remaining() {
		return fmt.Errorf("chunk size %d exceeds %d remaining bytes: %w", size, c.Remaining(), ErrMalformed)
	}
	return c.Skip(int(size))
}
