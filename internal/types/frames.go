// Package types defines the shared data model for decoded ID3v2 tags.
package types

// Frame is a single decoded ID3v2 frame.
//
// Frame is a closed set: the only implementations are the seven frame
// variants in this package. Consumers should type switch over them:
//
//	switch f := frame.(type) {
//	case types.TextInformationFrame:
//		fmt.Println(f.FrameID, f.Text)
//	case types.ApicFrame:
//		os.WriteFile("cover.jpg", f.PictureData, 0644)
//	}
type Frame interface {
	// ID returns the frame identifier, e.g. "TIT2" or "COM".
	ID() string

	// frame seals the interface to the variants defined here.
	frame()
}

// TextInformationFrame holds a text frame (any "T"-prefixed identifier
// except TXXX): a single encoded string paired with its frame ID.
type TextInformationFrame struct {
	FrameID string
	Text    string
}

func (f TextInformationFrame) ID() string { return f.FrameID }
func (TextInformationFrame) frame()       {}

// TxxxFrame holds a user-defined text frame (TXXX).
type TxxxFrame struct {
	Description string
	Value       string
}

func (TxxxFrame) ID() string { return "TXXX" }
func (TxxxFrame) frame()     {}

// CommentFrame holds a comment frame (COMM, or COM in ID3v2.2).
type CommentFrame struct {
	// Language is the 3-character ISO-639-2 code, stored verbatim.
	Language    string
	Description string
	Text        string
}

func (CommentFrame) ID() string { return "COMM" }
func (CommentFrame) frame()     {}

// PrivFrame holds a private frame (PRIV): an owner identifier and an
// opaque payload.
type PrivFrame struct {
	Owner string
	Data  []byte
}

func (PrivFrame) ID() string { return "PRIV" }
func (PrivFrame) frame()     {}

// GeobFrame holds a general encapsulated object frame (GEOB).
type GeobFrame struct {
	MimeType    string
	Filename    string
	Description string
	Data        []byte
}

func (GeobFrame) ID() string { return "GEOB" }
func (GeobFrame) frame()     {}

// ApicFrame holds an attached picture frame (APIC).
type ApicFrame struct {
	MimeType    string
	PictureType int
	Description string
	PictureData []byte
}

func (ApicFrame) ID() string { return "APIC" }
func (ApicFrame) frame()     {}

// BinaryFrame is the fallback for unrecognized frame identifiers: the
// raw frame body, verbatim, tagged with its ID.
type BinaryFrame struct {
	FrameID string
	Data    []byte
}

func (f BinaryFrame) ID() string { return f.FrameID }
func (BinaryFrame) frame()       {}
