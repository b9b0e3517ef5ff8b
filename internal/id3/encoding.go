package id3

import "unicode/utf16"

// Text encoding bytes defined by ID3v2.
const (
	encodingISO88591 = 0 // ISO-8859-1, single byte
	encodingUTF16    = 1 // UTF-16 with byte order mark
	encodingUTF16BE  = 2 // UTF-16 big-endian, no byte order mark
	encodingUTF8     = 3
)

// decodeText realizes an encoded string field. Unknown encoding bytes
// are treated as ISO-8859-1, never an error; the error return is part
// of the decoder contract for codecs that can fail.
func decodeText(data []byte, encoding byte) (string, error) {
	switch encoding {
	case encodingUTF16:
		return decodeUTF16(data), nil
	case encodingUTF16BE:
		return decodeUTF16BE(data), nil
	case encodingUTF8:
		return string(data), nil
	default:
		// ISO-8859-1, also the fallback for unknown encoding bytes.
		return decodeISO88591(data), nil
	}
}

// decodeISO88591 decodes ISO-8859-1: each byte is the identical
// Unicode code point.
func decodeISO88591(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// decodeUTF16 decodes UTF-16 with a byte order mark. Without a mark
// the bytes are assumed big-endian, as ID3v2 permits.
func decodeUTF16(data []byte) string {
	if len(data) < 2 {
		return ""
	}
	if data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16LE(data[2:])
	}
	if data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16BE(data[2:])
	}
	return decodeUTF16BE(data)
}

// decodeUTF16BE decodes UTF-16 big-endian.
func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return string(utf16.Decode(u16))
}

// decodeUTF16LE decodes UTF-16 little-endian.
func decodeUTF16LE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return string(utf16.Decode(u16))
}

// delimiterLength returns the width of the string terminator for the
// encoding: one zero byte for single-byte encodings, two for UTF-16.
func delimiterLength(encoding byte) int {
	if encoding == encodingUTF16 || encoding == encodingUTF16BE {
		return 2
	}
	return 1
}

// indexOfZeroByte returns the first offset >= from holding a zero
// byte, or len(data) if there is none.
func indexOfZeroByte(data []byte, from int) int {
	for i := from; i < len(data); i++ {
		if data[i] == 0 {
			return i
		}
	}
	return len(data)
}

// indexOfTerminator returns the offset of the string terminator for
// the given encoding, scanning from the given offset. For single-byte
// encodings this is the first zero byte. For the 16-bit encodings the
// terminator must sit at an even offset and be followed by a second
// zero byte; a lone zero that is merely half of a non-zero UTF-16 code
// unit is skipped. Returns len(data) if no terminator is found.
func indexOfTerminator(data []byte, from int, encoding byte) int {
	pos := indexOfZeroByte(data, from)

	if encoding == encodingISO88591 || encoding == encodingUTF8 {
		return pos
	}

	for pos < len(data)-1 {
		if pos%2 == 0 && data[pos+1] == 0 {
			return pos
		}
		pos = indexOfZeroByte(data, pos+1)
	}

	return len(data)
}
