// Package binary provides the sequential byte cursor used by the tag decoder.
package binary

import (
	"encoding/binary"
	"fmt"
)

// Cursor reads big-endian values sequentially from an in-memory buffer
// with bounds checking and helpful error messages.
//
// A Cursor tracks a position and an upper read limit. The limit starts
// at the logical size passed to NewCursor (which may be smaller than
// the backing slice, allowing backing-storage reuse) and can be lowered
// with SetLimit once the decodable region is known.
type Cursor struct {
	data  []byte
	pos   int
	limit int
}

// NewCursor creates a Cursor over data[:size]. If size exceeds
// len(data) the limit is clamped to len(data).
func NewCursor(data []byte, size int) *Cursor {
	if size > len(data) {
		size = len(data)
	}
	if size < 0 {
		size = 0
	}
	return &Cursor{data: data, limit: size}
}

// Data returns the backing slice. Callers use it for in-place rewrites
// such as unsynchronization removal; positions into it are absolute.
func (c *Cursor) Data() []byte {
	return c.data
}

// Position returns the current read position.
func (c *Cursor) Position() int {
	return c.pos
}

// SetPosition moves the read position, clamping into [0, limit].
func (c *Cursor) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > c.limit {
		pos = c.limit
	}
	c.pos = pos
}

// Limit returns the current upper read bound.
func (c *Cursor) Limit() int {
	return c.limit
}

// SetLimit lowers or raises the upper read bound, clamped to the
// backing slice length.
func (c *Cursor) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	if limit > len(c.data) {
		limit = len(c.data)
	}
	c.limit = limit
	if c.pos > c.limit {
		c.pos = c.limit
	}
}

// BytesLeft returns the number of bytes between the position and the
// limit.
func (c *Cursor) BytesLeft() int {
	return c.limit - c.pos
}

// Skip advances the position by n bytes with context for error messages.
func (c *Cursor) Skip(n int, what string) error {
	if n < 0 || c.pos+n > c.limit {
		return fmt.Errorf("skip of %d bytes at offset %d would exceed limit %d while skipping %s",
			n, c.pos, c.limit, what)
	}
	c.pos += n
	return nil
}

// ReadBytes reads n bytes into an owned copy and advances the position.
func (c *Cursor) ReadBytes(n int, what string) ([]byte, error) {
	if n < 0 || c.pos+n > c.limit {
		return nil, fmt.Errorf("read of %d bytes at offset %d would exceed limit %d while reading %s",
			n, c.pos, c.limit, what)
	}
	buf := make([]byte, n)
	copy(buf, c.data[c.pos:c.pos+n])
	c.pos += n
	return buf, nil
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8(what string) (uint8, error) {
	if c.pos+1 > c.limit {
		return 0, fmt.Errorf("offset %d out of bounds (limit: %d) while reading %s", c.pos, c.limit, what)
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func (c *Cursor) ReadUint16(what string) (uint16, error) {
	if c.pos+2 > c.limit {
		return 0, fmt.Errorf("offset %d out of bounds (limit: %d) while reading %s", c.pos, c.limit, what)
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint24 reads a big-endian unsigned 24-bit integer.
func (c *Cursor) ReadUint24(what string) (uint32, error) {
	if c.pos+3 > c.limit {
		return 0, fmt.Errorf("offset %d out of bounds (limit: %d) while reading %s", c.pos, c.limit, what)
	}
	v := uint32(c.data[c.pos])<<16 | uint32(c.data[c.pos+1])<<8 | uint32(c.data[c.pos+2])
	c.pos += 3
	return v, nil
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) ReadUint32(what string) (uint32, error) {
	if c.pos+4 > c.limit {
		return 0, fmt.Errorf("offset %d out of bounds (limit: %d) while reading %s", c.pos, c.limit, what)
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadSyncsafeUint32 reads a 4-byte syncsafe integer: 7 usable bits
// per byte, top bit of each byte zero, 28 significant bits total.
func (c *Cursor) ReadSyncsafeUint32(what string) (uint32, error) {
	if c.pos+4 > c.limit {
		return 0, fmt.Errorf("offset %d out of bounds (limit: %d) while reading %s", c.pos, c.limit, what)
	}
	v := uint32(c.data[c.pos]&0x7F)<<21 |
		uint32(c.data[c.pos+1]&0x7F)<<14 |
		uint32(c.data[c.pos+2]&0x7F)<<7 |
		uint32(c.data[c.pos+3]&0x7F)
	c.pos += 4
	return v, nil
}
