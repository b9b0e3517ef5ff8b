package id3meta

import "testing"

func TestGenreName(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
		ok   bool
	}{
		{name: "first entry", code: 1, want: "Blues", ok: true},
		{name: "classic rock", code: 2, want: "Classic Rock", ok: true},
		{name: "last official entry", code: 80, want: "Hard Rock", ok: true},
		{name: "winamp extension", code: 81, want: "Folk", ok: true},
		{name: "last entry", code: 147, want: "Jpop", ok: true},
		{name: "zero is unmapped", code: 0, want: "", ok: false},
		{name: "past the end", code: 148, want: "", ok: false},
		{name: "negative", code: -3, want: "", ok: false},
		{name: "way out of range", code: 255, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GenreName(tt.code)
			if got != tt.want || ok != tt.ok {
				t.Errorf("GenreName(%d) = %q, %v, want %q, %v", tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGenreTableLength(t *testing.T) {
	if len(standardGenres) != 147 {
		t.Errorf("genre table holds %d entries, want 147", len(standardGenres))
	}
}
