package types

import "fmt"

// StructuralError is returned when the buffer does not hold an ID3v2
// tag at all, i.e. the first three bytes differ from "ID3".
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid ID3v2 tag: %s", e.Reason)
}

// CorruptedTagError is returned when the tag header region ends before
// a required field could be read.
type CorruptedTagError struct {
	Offset int
	Reason string
}

func (e *CorruptedTagError) Error() string {
	return fmt.Sprintf("corrupted ID3v2 tag at offset %d: %s", e.Offset, e.Reason)
}

// EncodingError is returned when a frame declares a text encoding the
// decoder cannot realize. It is fatal to the whole decode call: no
// partial frame list is returned.
//
// All four encodings defined by ID3v2 (ISO-8859-1, UTF-16, UTF-16BE,
// UTF-8) are built into this library, and unknown encoding bytes fall
// back to ISO-8859-1, so this error is not produced by the current
// codecs. It remains part of the API contract for decoders layered on
// platform charsets.
type EncodingError struct {
	Encoding byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported character encoding %d", e.Encoding)
}

// Warning represents a non-fatal issue encountered while decoding.
//
// Warnings indicate conditions that do not prevent decoding the rest
// of the tag. Examples include:
//   - an unsupported tag version (the whole tag is skipped)
//   - a compressed or encrypted frame (that frame is skipped)
//   - a frame size not written as a syncsafe integer
//
// Warnings are collected in Metadata.Warnings during decoding.
type Warning struct {
	// Stage where the warning occurred: "header" or "frame".
	Stage string

	// Warning message.
	Message string

	// Byte offset into the tag where the issue occurred (0 if not
	// applicable).
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
