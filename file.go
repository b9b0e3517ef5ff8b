package id3meta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/soundprobe/id3meta/internal/id3"
)

// File represents an audio file whose leading ID3v2 tag has been decoded.
//
// File reads only the tag prefix of the file - audio content is never
// loaded. The file handle is released before Open returns, so there is
// nothing to close.
type File struct {
	// Path to the audio file
	Path string

	// File size in bytes
	Size int64

	// TagSize is the number of bytes the tag occupies at the start of
	// the file, header and footer included. Audio data starts here.
	TagSize int64

	// Tag holds the decoded frames. Nil if the file carries a tag of
	// an unsupported version (see Warnings for the reason).
	Tag *Metadata

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning
}

// Open reads and decodes the ID3v2 tag at the start of an audio file.
//
// The file must begin with the 3-byte "ID3" magic; anything else
// returns a StructuralError. A file whose tag is recognized but
// unsupported yields a File with a nil Tag and a warning, not an
// error.
//
// Options can be provided to customize decoding behavior:
//
//	file, err := id3meta.Open("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithMaxTagSize(16*1024*1024),
//	)
//
// Example:
//
//	file, err := id3meta.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	if title, ok := file.Tag.Text("TIT2"); ok {
//		fmt.Println(title)
//	}
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return openReader(f, stat.Size(), path, options)
}

// openReader decodes the tag prefix from an io.ReaderAt (internal, for testing).
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	hdr := make([]byte, id3.HeaderSize)
	if _, err := r.ReadAt(hdr, 0); err != nil {
		return nil, &StructuralError{
			Reason: fmt.Sprintf("%s: could not read a tag header: %v", path, err),
		}
	}

	declared := syncsafeLen(hdr[6:10])
	if options.maxTagSize > 0 && declared > options.maxTagSize {
		return nil, fmt.Errorf("%s: declared tag size %d exceeds limit %d",
			path, declared, options.maxTagSize)
	}

	tagSize := id3.HeaderSize + declared
	if hdr[5]&0x10 != 0 {
		tagSize += 10 // Footer.
	}

	// Read the whole tag region, clamped to the file size. DecodeTag
	// treats a short region as trailing padding.
	n := tagSize
	if int64(n) > size {
		n = int(size)
	}
	buf := make([]byte, n)
	if _, err := r.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: read tag: %w", path, err)
	}

	md, warnings, err := id3.DecodeTag(buf, n)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	file := &File{
		Path:     path,
		Size:     size,
		TagSize:  int64(tagSize),
		Tag:      md,
		Warnings: warnings,
	}

	if options.strictParsing && len(warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", warnings[0].Message)
	}
	if options.ignoreWarnings {
		file.Warnings = nil
		if md != nil {
			md.Warnings = nil
		}
	}

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before
// starting: tag decoding itself is bounded, in-memory work with no
// suspension points.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple audio files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU()
// goroutines. Results are returned in the same order as the input
// paths. If any file fails, the first error is returned and the
// results are discarded.
//
// Example:
//
//	files, err := id3meta.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		if artist, ok := f.Tag.Text("TPE1"); ok {
//			fmt.Printf("%s: %s\n", f.Path, artist)
//		}
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// syncsafeLen decodes the 4-byte syncsafe tag length from a tag header.
func syncsafeLen(b []byte) int {
	return int(b[0]&0x7F)<<21 | int(b[1]&0x7F)<<14 | int(b[2]&0x7F)<<7 | int(b[3]&0x7F)
}
