// Package id3 implements ID3v2 tag decoding for versions 2.2 through 2.4.
package id3

import (
	"errors"
	"fmt"

	"github.com/soundprobe/id3meta/internal/binary"
	"github.com/soundprobe/id3meta/internal/types"
)

// HeaderSize is the fixed size of the ID3v2 tag header in bytes.
const HeaderSize = 10

// header is the decoded tag header, consumed by the frame dispatch loop.
type header struct {
	majorVersion int

	// unsynchronized reports the tag-level unsynchronization flag. It
	// is meaningful only for versions below 4; version 4 signals
	// unsynchronization per frame instead.
	unsynchronized bool

	// framesSize is the authoritative frame-region byte length, after
	// subtracting any extended header and footer.
	framesSize int
}

// DecodeTag decodes the ID3v2 tag at the start of data[:size].
//
// On success the returned Metadata holds the decoded frames in
// encounter order; its Warnings field aliases the returned warning
// slice. A nil Metadata with a nil error means the tag is recognized
// but unsupported (unknown major version, or a version 2.2 tag using
// the undefined compression scheme); the warnings say which.
//
// Unsynchronization removal rewrites data in place, so the same
// backing buffer must not be passed to two concurrent calls.
func DecodeTag(data []byte, size int) (*types.Metadata, []types.Warning, error) {
	c := binary.NewCursor(data, size)
	var warnings []types.Warning

	h, err := decodeHeader(c, &warnings)
	if err != nil {
		return nil, warnings, err
	}
	if h == nil {
		// Unsupported tag: no metadata, diagnostics only.
		return nil, warnings, nil
	}

	startPosition := c.Position()
	framesSize := h.framesSize
	if framesSize > c.BytesLeft() {
		framesSize = c.BytesLeft()
	}
	if framesSize < 0 {
		framesSize = 0
	}
	if h.unsynchronized {
		framesSize = removeUnsynchronization(c.Data(), startPosition, framesSize)
	}
	c.SetLimit(startPosition + framesSize)

	frameHeaderSize := 10
	if h.majorVersion == 2 {
		frameHeaderSize = 6
	}

	// Non-nil even when empty: a tag holding only padding is a
	// legitimate, frameless result.
	frames := make([]types.Frame, 0)
	for c.BytesLeft() >= frameHeaderSize {
		frame, err := decodeFrame(c, h, &warnings)
		if err != nil {
			return nil, warnings, err
		}
		if frame != nil {
			frames = append(frames, frame)
		}
	}

	md := &types.Metadata{Frames: frames, Warnings: warnings}
	return md, warnings, nil
}

// decodeHeader validates the tag magic and computes the authoritative
// frame-region length. Returns nil (with a warning appended) for
// recognized but unsupported tags.
func decodeHeader(c *binary.Cursor, warnings *[]types.Warning) (*header, error) {
	ch := binary.NewChain(c)

	id0 := ch.Uint8("tag identifier")
	id1 := ch.Uint8("tag identifier")
	id2 := ch.Uint8("tag identifier")
	if ch.Err() != nil {
		return nil, &types.CorruptedTagError{Offset: c.Position(), Reason: "truncated tag header"}
	}
	if id0 != 'I' || id1 != 'D' || id2 != '3' {
		return nil, &types.StructuralError{
			Reason: fmt.Sprintf("unexpected tag identifier, expected \"ID3\", actual %q", string([]byte{id0, id1, id2})),
		}
	}

	majorVersion := int(ch.Uint8("major version"))
	ch.Skip(1, "minor version")
	flags := ch.Uint8("tag flags")
	framesSize := int(ch.Syncsafe("tag size"))
	if ch.Err() != nil {
		return nil, &types.CorruptedTagError{Offset: c.Position(), Reason: "truncated tag header"}
	}

	switch majorVersion {
	case 2:
		if flags&0x40 != 0 {
			// Version 2.2 compression has no defined scheme.
			*warnings = append(*warnings, types.Warning{
				Stage:   "header",
				Message: "skipped ID3v2.2 tag with undefined compression scheme",
			})
			return nil, nil
		}
	case 3:
		if flags&0x40 != 0 {
			// Extended header size excludes the size field itself.
			extendedHeaderSize := int(ch.Uint32("extended header size"))
			ch.Skip(extendedHeaderSize, "extended header")
			framesSize -= extendedHeaderSize + 4
		}
	case 4:
		if flags&0x40 != 0 {
			// Extended header size includes the size field itself.
			extendedHeaderSize := int(ch.Syncsafe("extended header size"))
			ch.Skip(extendedHeaderSize-4, "extended header")
			framesSize -= extendedHeaderSize
		}
		if flags&0x10 != 0 {
			framesSize -= 10 // Footer.
		}
	default:
		*warnings = append(*warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("skipped ID3v2 tag with unsupported major version %d", majorVersion),
		})
		return nil, nil
	}
	if ch.Err() != nil {
		return nil, &types.CorruptedTagError{Offset: c.Position(), Reason: "truncated extended header"}
	}

	// The tag-level flag is advisory only in version 4, which signals
	// unsynchronization per frame instead.
	unsynchronized := majorVersion < 4 && flags&0x80 != 0

	return &header{
		majorVersion:   majorVersion,
		unsynchronized: unsynchronized,
		framesSize:     framesSize,
	}, nil
}

// decodeFrame reads one frame header, resolves its flags and routes to
// the matching typed decoder. It returns (nil, nil) for skipped frames
// (padding, unsupported, malformed) after appending a warning where
// appropriate; the cursor always lands on the frame's declared end
// boundary.
func decodeFrame(c *binary.Cursor, h *header, warnings *[]types.Warning) (types.Frame, error) {
	ch := binary.NewChain(c)

	id0 := ch.Uint8("frame id")
	id1 := ch.Uint8("frame id")
	id2 := ch.Uint8("frame id")
	var id3 uint8
	if h.majorVersion >= 3 {
		id3 = ch.Uint8("frame id")
	}

	var frameSize int
	switch h.majorVersion {
	case 4:
		raw := ch.Uint32("frame size")
		frameSize = int(raw)
		if raw&0x808080 == 0 {
			// Syncsafe frame size, as ID3v2.4 requires.
			frameSize = int(raw&0xFF) |
				int((raw>>8)&0xFF)<<7 |
				int((raw>>16)&0xFF)<<14 |
				int((raw>>24)&0xFF)<<21
		} else {
			// Tolerate encoders that write a plain 32-bit size.
			*warnings = append(*warnings, types.Warning{
				Stage:   "frame",
				Message: "frame size not specified as syncsafe integer",
				Offset:  int64(c.Position()),
			})
		}
	case 3:
		frameSize = int(ch.Uint32("frame size"))
	default:
		frameSize = int(ch.Uint24("frame size"))
	}

	var flags uint16
	if h.majorVersion >= 2 {
		flags = ch.Uint16("frame flags")
	}

	if ch.Err() != nil {
		// Not enough bytes left for a frame header; treat the
		// remainder as trailing padding.
		c.SetPosition(c.Limit())
		return nil, nil
	}

	if id0 == 0 && id1 == 0 && id2 == 0 && id3 == 0 && frameSize == 0 && flags == 0 {
		// Zero padding at the end of the tag.
		c.SetPosition(c.Limit())
		return nil, nil
	}

	nextFramePosition := c.Position() + frameSize

	var compressed, encrypted, unsynchronized, hasDataLength, hasGroupID bool
	switch h.majorVersion {
	case 3:
		compressed = flags&0x0080 != 0
		encrypted = flags&0x0040 != 0
		hasGroupID = flags&0x0020 != 0
		hasDataLength = compressed
	case 4:
		hasGroupID = flags&0x0040 != 0
		compressed = flags&0x0008 != 0
		encrypted = flags&0x0004 != 0
		unsynchronized = flags&0x0002 != 0
		hasDataLength = flags&0x0001 != 0
	}

	if compressed || encrypted {
		*warnings = append(*warnings, types.Warning{
			Stage:   "frame",
			Message: fmt.Sprintf("skipped unsupported compressed or encrypted frame %s", frameID(id0, id1, id2, id3)),
			Offset:  int64(c.Position()),
		})
		c.SetPosition(nextFramePosition)
		return nil, nil
	}

	if hasGroupID {
		frameSize--
		ch.Skip(1, "group identifier")
	}
	if hasDataLength {
		frameSize -= 4
		ch.Skip(4, "data length indicator")
	}
	if ch.Err() != nil {
		c.SetPosition(nextFramePosition)
		return nil, nil
	}
	if unsynchronized {
		length := frameSize
		if length > c.BytesLeft() {
			length = c.BytesLeft()
		}
		frameSize = removeUnsynchronization(c.Data(), c.Position(), length)
	}

	// Whatever the decoder does, the cursor lands on the frame's
	// declared end so one bad frame cannot desynchronize the rest.
	defer c.SetPosition(nextFramePosition)

	var frame types.Frame
	var err error
	switch {
	case id0 == 'T' && id1 == 'X' && id2 == 'X' && id3 == 'X':
		frame, err = decodeTxxxFrame(c, frameSize)
	case id0 == 'P' && id1 == 'R' && id2 == 'I' && id3 == 'V':
		frame, err = decodePrivFrame(c, frameSize)
	case id0 == 'G' && id1 == 'E' && id2 == 'O' && id3 == 'B':
		frame, err = decodeGeobFrame(c, frameSize)
	case id0 == 'A' && id1 == 'P' && id2 == 'I' && id3 == 'C':
		frame, err = decodeApicFrame(c, frameSize)
	case id0 == 'T':
		frame, err = decodeTextInformationFrame(c, frameSize, frameID(id0, id1, id2, id3))
	case id0 == 'C' && id1 == 'O' && id2 == 'M' && (id3 == 'M' || id3 == 0):
		frame, err = decodeCommentFrame(c, frameSize)
	default:
		frame, err = decodeBinaryFrame(c, frameSize, frameID(id0, id1, id2, id3))
	}
	if err != nil {
		var encErr *types.EncodingError
		if errors.As(err, &encErr) {
			// Fatal to the whole decode call; the deferred
			// SetPosition has already realigned the cursor.
			return nil, err
		}
		*warnings = append(*warnings, types.Warning{
			Stage:   "frame",
			Message: fmt.Sprintf("skipped malformed frame %s: %v", frameID(id0, id1, id2, id3), err),
			Offset:  int64(c.Position()),
		})
		return nil, nil
	}
	return frame, nil
}

// frameID renders the raw identifier bytes as a 3- or 4-character
// string depending on the tag version.
func frameID(id0, id1, id2, id3 uint8) string {
	if id3 != 0 {
		return string([]byte{id0, id1, id2, id3})
	}
	return string([]byte{id0, id1, id2})
}
