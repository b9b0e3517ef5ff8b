package id3meta

import (
	"github.com/soundprobe/id3meta/internal/id3"
)

// Decode decodes the ID3v2 tag at the start of data.
//
// size is the logical length of the tag buffer; it may be smaller than
// len(data), allowing backing-storage reuse. The buffer must begin at
// the 3-byte "ID3" magic.
//
// Decode distinguishes three outcomes:
//
//   - (*Metadata, nil): the tag decoded; Frames holds the frames in
//     encounter order (duplicates retained). An empty Frames slice
//     means the tag contained only padding.
//   - (nil, nil): the tag is recognized but unsupported (unknown major
//     version, or an ID3v2.2 tag using the undefined compression
//     scheme). Not an error.
//   - (nil, error): the buffer does not start with "ID3"
//     (StructuralError), the header is truncated (CorruptedTagError),
//     or a frame declares an unrealizable text encoding
//     (EncodingError).
//
// Compressed and encrypted frames are skipped with a warning, never
// decoded. Unsynchronization removal rewrites data in place, so the
// same backing buffer must not be passed to two concurrent calls;
// calls on independent buffers are safe.
func Decode(data []byte, size int) (*Metadata, error) {
	md, _, err := id3.DecodeTag(data, size)
	if err != nil {
		return nil, err
	}
	return md, nil
}
