// Package id3meta decodes ID3v2 metadata tags embedded at the start of
// audio streams.
//
// id3meta handles tag versions 2.2, 2.3 and 2.4, including syncsafe
// integers, extended headers and footers, unsynchronization removal
// (tag-level and per-frame), per-frame flag semantics, and the
// charset-aware string layouts of the common frame types. Compressed
// and encrypted frames are detected and skipped, never decoded; tag
// writing is out of scope.
//
// # Quick Start
//
// Decoding a tag already held in memory:
//
//	md, err := id3meta.Decode(buf, len(buf))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, frame := range md.Frames {
//		switch f := frame.(type) {
//		case id3meta.TextInformationFrame:
//			fmt.Printf("%s: %s\n", f.FrameID, f.Text)
//		case id3meta.CommentFrame:
//			fmt.Printf("COMM [%s]: %s\n", f.Language, f.Text)
//		}
//	}
//
// Reading the tag from a file:
//
//	file, err := id3meta.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if title, ok := file.Tag.Text("TIT2"); ok {
//		fmt.Println(title)
//	}
//
// # Frames
//
// Decoded frames form a closed set: TextInformationFrame, TxxxFrame,
// CommentFrame, PrivFrame, GeobFrame, ApicFrame, and BinaryFrame as
// the lossless fallback for unrecognized identifiers. Frames are
// immutable values returned in encounter order; duplicate identifiers
// are retained, not merged.
//
// # Error Handling
//
// id3meta distinguishes between fatal errors and warnings:
//
//   - Fatal errors abort the decode with no partial result: a buffer
//     that does not start with "ID3" (StructuralError), a truncated
//     tag header (CorruptedTagError), or a frame field whose declared
//     text encoding cannot be realized (EncodingError).
//   - Warnings record conditions that degrade gracefully: unsupported
//     tag versions, compressed or encrypted frames, non-syncsafe frame
//     sizes. They are collected in Metadata.Warnings.
//
// A recognized but unsupported tag yields a nil Metadata with a nil
// error; a valid tag containing only padding yields a Metadata with an
// empty frame list. Both are legitimate non-error outcomes.
//
// # Concurrency
//
// Decoding is synchronous and single-threaded. Unsynchronization
// removal rewrites the caller-supplied buffer in place, so the same
// backing buffer must not be passed to two concurrent Decode calls;
// calls on independent buffers are safe. The genre table and all
// lookup helpers are immutable and freely shared. OpenMany decodes
// multiple files in parallel with bounded concurrency.
package id3meta
