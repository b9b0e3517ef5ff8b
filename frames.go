package id3meta

import (
	"github.com/soundprobe/id3meta/internal/types"
)

// Frame is an alias to types.Frame.
// Re-exporting from internal/types keeps the public API stable.
//
// Frame is a closed sum over the seven variants below; decode a tag
// and type switch over Metadata.Frames to consume them exhaustively.
type Frame = types.Frame

// TextInformationFrame is an alias to types.TextInformationFrame.
type TextInformationFrame = types.TextInformationFrame

// TxxxFrame is an alias to types.TxxxFrame.
type TxxxFrame = types.TxxxFrame

// CommentFrame is an alias to types.CommentFrame.
type CommentFrame = types.CommentFrame

// PrivFrame is an alias to types.PrivFrame.
type PrivFrame = types.PrivFrame

// GeobFrame is an alias to types.GeobFrame.
type GeobFrame = types.GeobFrame

// ApicFrame is an alias to types.ApicFrame.
type ApicFrame = types.ApicFrame

// BinaryFrame is an alias to types.BinaryFrame.
type BinaryFrame = types.BinaryFrame

// Metadata is an alias to types.Metadata: the ordered frame sequence
// decoded from one tag, plus any warnings collected along the way.
type Metadata = types.Metadata
