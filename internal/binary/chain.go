package binary

// Chain wraps a Cursor with deferred error checking.
// This avoids repetitive "if err != nil" checks when reading a run of
// fixed header fields. If a read fails, subsequent reads return zero
// values without touching the cursor; the first error is kept.
type Chain struct {
	*Cursor
	err error
}

// NewChain creates a Chain over c.
func NewChain(c *Cursor) *Chain {
	return &Chain{Cursor: c}
}

// Uint8 reads one byte with deferred error checking.
func (ch *Chain) Uint8(what string) uint8 {
	if ch.err != nil {
		return 0
	}
	v, err := ch.Cursor.ReadUint8(what)
	if err != nil {
		ch.err = err
		return 0
	}
	return v
}

// Uint16 reads a big-endian uint16 with deferred error checking.
func (ch *Chain) Uint16(what string) uint16 {
	if ch.err != nil {
		return 0
	}
	v, err := ch.Cursor.ReadUint16(what)
	if err != nil {
		ch.err = err
		return 0
	}
	return v
}

// Uint24 reads a big-endian 24-bit value with deferred error checking.
func (ch *Chain) Uint24(what string) uint32 {
	if ch.err != nil {
		return 0
	}
	v, err := ch.Cursor.ReadUint24(what)
	if err != nil {
		ch.err = err
		return 0
	}
	return v
}

// Uint32 reads a big-endian uint32 with deferred error checking.
func (ch *Chain) Uint32(what string) uint32 {
	if ch.err != nil {
		return 0
	}
	v, err := ch.Cursor.ReadUint32(what)
	if err != nil {
		ch.err = err
		return 0
	}
	return v
}

// Syncsafe reads a 4-byte syncsafe integer with deferred error checking.
func (ch *Chain) Syncsafe(what string) uint32 {
	if ch.err != nil {
		return 0
	}
	v, err := ch.Cursor.ReadSyncsafeUint32(what)
	if err != nil {
		ch.err = err
		return 0
	}
	return v
}

// Skip advances the cursor, accumulating any error.
func (ch *Chain) Skip(n int, what string) {
	if ch.err != nil {
		return
	}
	ch.err = ch.Cursor.Skip(n, what)
}

// Err returns the accumulated error, if any.
func (ch *Chain) Err() error {
	return ch.err
}
