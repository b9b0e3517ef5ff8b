package id3

import (
	"fmt"

	"github.com/soundprobe/id3meta/internal/binary"
	"github.com/soundprobe/id3meta/internal/types"
)

// The typed frame decoders below each consume the frame's already
// flag-adjusted byte span from the cursor as an owned buffer. The
// dispatcher forces the cursor to the frame boundary afterwards, so a
// decoder only has to account for the bytes it reads itself.

// decodeTxxxFrame decodes a user-defined text frame:
// [encoding] [description <terminator>] [value]
func decodeTxxxFrame(c *binary.Cursor, frameSize int) (types.Frame, error) {
	if frameSize < 1 {
		return nil, fmt.Errorf("TXXX frame of %d bytes is too short", frameSize)
	}
	encoding, err := c.ReadUint8("TXXX encoding")
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(frameSize-1, "TXXX body")
	if err != nil {
		return nil, err
	}

	descEnd := indexOfTerminator(data, 0, encoding)
	description, err := decodeText(data[:descEnd], encoding)
	if err != nil {
		return nil, err
	}

	valueStart := min(descEnd+delimiterLength(encoding), len(data))
	valueEnd := indexOfTerminator(data, valueStart, encoding)
	value, err := decodeText(data[valueStart:valueEnd], encoding)
	if err != nil {
		return nil, err
	}

	return types.TxxxFrame{Description: description, Value: value}, nil
}

// decodePrivFrame decodes a private frame:
// [owner <zero byte>] [opaque payload]
// The owner is always single-byte encoded.
func decodePrivFrame(c *binary.Cursor, frameSize int) (types.Frame, error) {
	data, err := c.ReadBytes(frameSize, "PRIV body")
	if err != nil {
		return nil, err
	}

	ownerEnd := indexOfZeroByte(data, 0)
	owner := decodeISO88591(data[:ownerEnd])

	payloadStart := min(ownerEnd+1, len(data))
	payload := make([]byte, len(data)-payloadStart)
	copy(payload, data[payloadStart:])

	return types.PrivFrame{Owner: owner, Data: payload}, nil
}

// decodeGeobFrame decodes a general encapsulated object frame:
// [encoding] [mime type <zero byte>] [filename <terminator>]
// [description <terminator>] [object data]
// The mime type is always single-byte encoded.
func decodeGeobFrame(c *binary.Cursor, frameSize int) (types.Frame, error) {
	if frameSize < 1 {
		return nil, fmt.Errorf("GEOB frame of %d bytes is too short", frameSize)
	}
	encoding, err := c.ReadUint8("GEOB encoding")
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(frameSize-1, "GEOB body")
	if err != nil {
		return nil, err
	}

	mimeEnd := indexOfZeroByte(data, 0)
	mimeType := decodeISO88591(data[:mimeEnd])

	filenameStart := min(mimeEnd+1, len(data))
	filenameEnd := indexOfTerminator(data, filenameStart, encoding)
	filename, err := decodeText(data[filenameStart:filenameEnd], encoding)
	if err != nil {
		return nil, err
	}

	descStart := min(filenameEnd+delimiterLength(encoding), len(data))
	descEnd := indexOfTerminator(data, descStart, encoding)
	description, err := decodeText(data[descStart:descEnd], encoding)
	if err != nil {
		return nil, err
	}

	objectStart := min(descEnd+delimiterLength(encoding), len(data))
	objectData := make([]byte, len(data)-objectStart)
	copy(objectData, data[objectStart:])

	return types.GeobFrame{
		MimeType:    mimeType,
		Filename:    filename,
		Description: description,
		Data:        objectData,
	}, nil
}

// decodeApicFrame decodes an attached picture frame:
// [encoding] [mime type <zero byte>] [picture type byte]
// [description <terminator>] [picture data]
// The mime type is always single-byte encoded.
func decodeApicFrame(c *binary.Cursor, frameSize int) (types.Frame, error) {
	if frameSize < 1 {
		return nil, fmt.Errorf("APIC frame of %d bytes is too short", frameSize)
	}
	encoding, err := c.ReadUint8("APIC encoding")
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(frameSize-1, "APIC body")
	if err != nil {
		return nil, err
	}

	mimeEnd := indexOfZeroByte(data, 0)
	mimeType := decodeISO88591(data[:mimeEnd])

	if mimeEnd+1 >= len(data) {
		return nil, fmt.Errorf("APIC frame truncated after mime type")
	}
	pictureType := int(data[mimeEnd+1])

	descStart := mimeEnd + 2
	descEnd := indexOfTerminator(data, descStart, encoding)
	description, err := decodeText(data[descStart:descEnd], encoding)
	if err != nil {
		return nil, err
	}

	pictureStart := min(descEnd+delimiterLength(encoding), len(data))
	pictureData := make([]byte, len(data)-pictureStart)
	copy(pictureData, data[pictureStart:])

	return types.ApicFrame{
		MimeType:    mimeType,
		PictureType: pictureType,
		Description: description,
		PictureData: pictureData,
	}, nil
}

// decodeTextInformationFrame decodes a standard text frame (any frame
// whose identifier starts with "T", except TXXX):
// [encoding] [text]
func decodeTextInformationFrame(c *binary.Cursor, frameSize int, id string) (types.Frame, error) {
	if frameSize < 1 {
		return nil, fmt.Errorf("%s frame of %d bytes is too short", id, frameSize)
	}
	encoding, err := c.ReadUint8(id + " encoding")
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(frameSize-1, id+" body")
	if err != nil {
		return nil, err
	}

	textEnd := indexOfTerminator(data, 0, encoding)
	text, err := decodeText(data[:textEnd], encoding)
	if err != nil {
		return nil, err
	}

	return types.TextInformationFrame{FrameID: id, Text: text}, nil
}

// decodeCommentFrame decodes a comment frame:
// [encoding] [language(3)] [description <terminator>] [text]
// The language code is stored verbatim, without charset conversion.
func decodeCommentFrame(c *binary.Cursor, frameSize int) (types.Frame, error) {
	if frameSize < 4 {
		return nil, fmt.Errorf("COMM frame of %d bytes is too short", frameSize)
	}
	encoding, err := c.ReadUint8("COMM encoding")
	if err != nil {
		return nil, err
	}
	lang, err := c.ReadBytes(3, "COMM language")
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(frameSize-4, "COMM body")
	if err != nil {
		return nil, err
	}

	descEnd := indexOfTerminator(data, 0, encoding)
	description, err := decodeText(data[:descEnd], encoding)
	if err != nil {
		return nil, err
	}

	textStart := min(descEnd+delimiterLength(encoding), len(data))
	textEnd := indexOfTerminator(data, textStart, encoding)
	text, err := decodeText(data[textStart:textEnd], encoding)
	if err != nil {
		return nil, err
	}

	return types.CommentFrame{
		Language:    string(lang),
		Description: description,
		Text:        text,
	}, nil
}

// decodeBinaryFrame is the lossless fallback for unrecognized frame
// identifiers: the raw body, verbatim.
func decodeBinaryFrame(c *binary.Cursor, frameSize int, id string) (types.Frame, error) {
	data, err := c.ReadBytes(frameSize, id+" body")
	if err != nil {
		return nil, err
	}
	return types.BinaryFrame{FrameID: id, Data: data}, nil
}
