package id3meta

import (
	"github.com/soundprobe/id3meta/internal/types"
)

// StructuralError is an alias to types.StructuralError.
// Re-exporting from internal/types keeps the public API stable.
type StructuralError = types.StructuralError

// CorruptedTagError is an alias to types.CorruptedTagError.
// Re-exporting from internal/types keeps the public API stable.
type CorruptedTagError = types.CorruptedTagError

// EncodingError is an alias to types.EncodingError.
// Re-exporting from internal/types keeps the public API stable.
type EncodingError = types.EncodingError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types keeps the public API stable.
type Warning = types.Warning
