package smf

import (
	"encoding/binary"
	"fmt"

	midi2lrc "github.com/iSimon97/Midi2LRC"
)

// SMF variable-length quantities carry 7 bits per byte and are at most
// 4 bytes (0x0FFFFFFF).
const maxVarLenBytes = 4

// cursor is a bounds-checked sequential reader over an immutable byte
// buffer. All multi-byte integers are big-endian.
type cursor struct {
	buf []byte
	pos int
}

// wrapFormat ties a granular decode error to the exported sentinel, keeping
// errors.Is(err, midi2lrc.ErrFormat) true for every parse failure.
func wrapFormat(err error) error {
	return fmt.Errorf("%w: %w", midi2lrc.ErrFormat, err)
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, fmt.Errorf("%w at offset %d", wrapFormat(errTruncated), c.pos)
	}

	b := c.buf[c.pos]
	c.pos++

	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, fmt.Errorf("%w at offset %d", wrapFormat(errTruncated), c.pos)
	}

	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2

	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, fmt.Errorf("%w at offset %d", wrapFormat(errTruncated), c.pos)
	}

	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4

	return v, nil
}

// readTag consumes a 4-byte ASCII chunk tag and checks it against want.
func (c *cursor) readTag(want string) error {
	if c.remaining() < len(want) {
		return fmt.Errorf("%w at offset %d", wrapFormat(errTruncated), c.pos)
	}

	got := string(c.buf[c.pos : c.pos+len(want)])
	if got != want {
		return fmt.Errorf("%w: want %q, got %q", wrapFormat(errChunkTag), want, got)
	}

	c.pos += len(want)

	return nil
}

// readBytes returns the next n bytes of the buffer without copying.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", wrapFormat(errTruncated), n, c.pos)
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

func (c *cursor) skip(n int) error {
	if c.remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d", wrapFormat(errTruncated), n, c.pos)
	}

	c.pos += n

	return nil
}

// readVarLen decodes one variable-length quantity: bytes accumulate 7 bits
// each while the high bit is set. Returns the value and the number of bytes
// consumed.
func (c *cursor) readVarLen() (uint32, int, error) {
	var value uint32

	read := 0

	for {
		if c.remaining() < 1 {
			return 0, read, fmt.Errorf("%w at offset %d", wrapFormat(errVarLenEnd), c.pos)
		}

		b := c.buf[c.pos]
		c.pos++
		read++

		if read > maxVarLenBytes {
			return 0, read, wrapFormat(errVarLenWide)
		}

		value = value<<7 | uint32(b&0x7F)

		if b&0x80 == 0 {
			return value, read, nil
		}
	}
}
