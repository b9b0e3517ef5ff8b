package types

// Metadata is the decoded contents of one ID3v2 tag: the frames in
// encounter order, plus any warnings collected while decoding.
//
// Duplicate frame IDs are retained, not merged. A Metadata with a
// non-nil, empty Frames slice means the tag was valid but contained
// only padding; that is a legitimate result, not an error.
type Metadata struct {
	Frames   []Frame
	Warnings []Warning
}

// Len returns the number of decoded frames.
func (m *Metadata) Len() int {
	return len(m.Frames)
}

// Text returns the text of the first TextInformationFrame with the
// given frame ID. The second return is false if no such frame exists.
func (m *Metadata) Text(id string) (string, bool) {
	for _, f := range m.Frames {
		if tf, ok := f.(TextInformationFrame); ok && tf.FrameID == id {
			return tf.Text, true
		}
	}
	return "", false
}

// Pictures returns all attached picture frames, in encounter order.
func (m *Metadata) Pictures() []ApicFrame {
	var pics []ApicFrame
	for _, f := range m.Frames {
		if af, ok := f.(ApicFrame); ok {
			pics = append(pics, af)
		}
	}
	return pics
}
