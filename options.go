package id3meta

// Option configures behavior when opening audio files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := id3meta.Open("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithMaxTagSize(16*1024*1024),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	maxTagSize     int  // Maximum declared tag size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		maxTagSize:     0, // No limit
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, decoding continues when it encounters issues like an
// unsupported frame or a non-syncsafe frame size, returning warnings
// alongside the decoded frames.
//
// With strict parsing enabled, any warning becomes a fatal error.
//
// Example:
//
//	file, err := id3meta.Open("song.mp3", id3meta.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues (skipped frames, lenient
// size parsing, etc.) are collected in File.Warnings. This option
// discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxTagSize refuses tags whose declared size exceeds the limit.
//
// The tag header declares how many bytes the tag occupies, and Open
// reads that many into memory. A corrupted or hostile header can
// declare up to 256MB; this option bounds the allocation.
//
// Default is 0 (no limit).
//
// Example:
//
//	// Refuse tags over 16MB
//	file, err := id3meta.Open("song.mp3",
//	    id3meta.WithMaxTagSize(16*1024*1024),
//	)
func WithMaxTagSize(bytes int) Option {
	return func(o *openOptions) {
		o.maxTagSize = bytes
	}
}
