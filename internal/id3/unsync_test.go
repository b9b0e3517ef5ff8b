package id3

import (
	"bytes"
	"testing"
)

func TestRemoveUnsynchronization(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "no stuffing untouched",
			in:   []byte{0x01, 0xFF, 0x01, 0x02},
			want: []byte{0x01, 0xFF, 0x01, 0x02},
		},
		{
			name: "single pair removed",
			in:   []byte{0xFF, 0x00, 0x41},
			want: []byte{0xFF, 0x41},
		},
		{
			name: "stuffed zero kept as data",
			// FF 00 00 is a stuffed FF 00: only the inserted zero goes.
			in:   []byte{0xFF, 0x00, 0x00, 0x41},
			want: []byte{0xFF, 0x00, 0x41},
		},
		{
			name: "shifted byte forms new pair",
			// After the first removal a second FF 00 pair appears one
			// byte later and must also be collapsed.
			in:   []byte{0xFF, 0x00, 0xFF, 0x00, 0x41},
			want: []byte{0xFF, 0xFF, 0x41},
		},
		{
			name: "trailing pair truncated by bound",
			// The pair's zero is the last byte in range; bytes after it
			// do not exist to shift, the zero is still dropped.
			in:   []byte{0x41, 0xFF, 0x00},
			want: []byte{0x41, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.in...)
			n := removeUnsynchronization(buf, 0, len(buf))
			if !bytes.Equal(buf[:n], tt.want) {
				t.Errorf("expected % x, got % x", tt.want, buf[:n])
			}
		})
	}
}

func TestRemoveUnsynchronization_ScopedToStart(t *testing.T) {
	// Bytes before start and after start+length stay untouched.
	buf := []byte{0xFF, 0x00, 0xFF, 0x00, 0x41, 0xFF, 0x00}
	n := removeUnsynchronization(buf, 2, 3)

	if n != 2 {
		t.Fatalf("expected shortened length 2, got %d", n)
	}
	if buf[0] != 0xFF || buf[1] != 0x00 {
		t.Errorf("bytes before start were modified: % x", buf[:2])
	}
	if buf[5] != 0xFF || buf[6] != 0x00 {
		t.Errorf("bytes after the bound were modified: % x", buf[5:])
	}
	if !bytes.Equal(buf[2:2+n], []byte{0xFF, 0x41}) {
		t.Errorf("expected FF 41 in range, got % x", buf[2:2+n])
	}
}

func TestRemoveUnsynchronization_FixedPoint(t *testing.T) {
	// Running the removal on its own output changes nothing.
	buf := []byte{0xFF, 0x00, 0x41, 0xFF, 0x00, 0xFE, 0xFF, 0x00, 0xFF, 0x00, 0x41}
	n := removeUnsynchronization(buf, 0, len(buf))

	again := append([]byte(nil), buf[:n]...)
	m := removeUnsynchronization(again, 0, n)
	if m != n || !bytes.Equal(again[:m], buf[:n]) {
		t.Errorf("removal is not a fixed point: first % x, second % x", buf[:n], again[:m])
	}

	// No FF 00 pair survives inside the processed range.
	for i := 0; i+1 < n; i++ {
		if buf[i] == 0xFF && buf[i+1] == 0x00 {
			t.Errorf("FF 00 pair remains at offset %d: % x", i, buf[:n])
		}
	}
}
