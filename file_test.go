package id3meta

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func encodeSyncsafe(n int) []byte {
	return []byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}

func tagBytes(version, flags byte, body []byte) []byte {
	tag := []byte{'I', 'D', '3', version, 0, flags}
	tag = append(tag, encodeSyncsafe(len(body))...)
	return append(tag, body...)
}

func textFrameV4(id string, frameFlags uint16, text string) []byte {
	payload := append([]byte{3}, text...)
	f := []byte(id)
	f = append(f, encodeSyncsafe(len(payload))...)
	f = binary.BigEndian.AppendUint16(f, frameFlags)
	return append(f, payload...)
}

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	tag := tagBytes(4, 0, textFrameV4("TIT2", 0, "Opening Act"))
	audio := append(tag, 0xFF, 0xFB, 0x90, 0x00) // MPEG frame sync
	path := writeTestFile(t, "song.mp3", audio)

	file, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if file.Path != path {
		t.Errorf("Path = %q, want %q", file.Path, path)
	}
	if file.Size != int64(len(audio)) {
		t.Errorf("Size = %d, want %d", file.Size, len(audio))
	}
	if file.TagSize != int64(len(tag)) {
		t.Errorf("TagSize = %d, want %d", file.TagSize, len(tag))
	}
	title, ok := file.Tag.Text("TIT2")
	if !ok || title != "Opening Act" {
		t.Errorf("Text(TIT2) = %q, %v", title, ok)
	}
	if len(file.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", file.Warnings)
	}
}

func TestOpen_NotAnID3File(t *testing.T) {
	path := writeTestFile(t, "clip.wav", append([]byte("RIFF"), make([]byte, 40)...))

	_, err := Open(path)
	var structErr *StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
}

func TestOpen_FileTooSmall(t *testing.T) {
	path := writeTestFile(t, "stub.mp3", []byte("ID3"))

	_, err := Open(path)
	var structErr *StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructuralError for short file, got %v", err)
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.mp3"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestOpen_UnsupportedVersion(t *testing.T) {
	path := writeTestFile(t, "future.mp3", tagBytes(9, 0, make([]byte, 16)))

	file, err := Open(path)
	if err != nil {
		t.Fatalf("unsupported version must not be an error, got %v", err)
	}
	if file.Tag != nil {
		t.Error("expected nil Tag for unsupported version")
	}
	if len(file.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", file.Warnings)
	}
}

func TestOpen_WithMaxTagSize(t *testing.T) {
	tag := tagBytes(4, 0, make([]byte, 4096))
	path := writeTestFile(t, "big.mp3", tag)

	_, err := Open(path, WithMaxTagSize(1024))
	if err == nil {
		t.Fatal("expected an error for an oversized tag")
	}
	if !strings.Contains(err.Error(), "exceeds limit") {
		t.Errorf("error should mention the limit, got: %v", err)
	}

	if _, err := Open(path, WithMaxTagSize(1 << 20)); err != nil {
		t.Errorf("tag within limit should open, got %v", err)
	}
}

func TestOpen_WithStrictParsing(t *testing.T) {
	// An encrypted frame produces a warning, which strict mode promotes
	// to an error.
	body := textFrameV4("TIT2", 0x0004, "locked")
	body = append(body, textFrameV4("TALB", 0, "open")...)
	path := writeTestFile(t, "enc.mp3", tagBytes(4, 0, body))

	if _, err := Open(path, WithStrictParsing()); err == nil {
		t.Fatal("expected strict parsing to fail on a warning")
	}

	file, err := Open(path)
	if err != nil {
		t.Fatalf("default parsing should tolerate the warning, got %v", err)
	}
	if len(file.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", file.Warnings)
	}
}

func TestOpen_WithIgnoreWarnings(t *testing.T) {
	body := textFrameV4("TIT2", 0x0004, "locked")
	body = append(body, textFrameV4("TALB", 0, "open")...)
	path := writeTestFile(t, "enc.mp3", tagBytes(4, 0, body))

	file, err := Open(path, WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if file.Warnings != nil {
		t.Errorf("Warnings should be discarded, got %v", file.Warnings)
	}
	if file.Tag.Warnings != nil {
		t.Errorf("Tag.Warnings should be discarded, got %v", file.Tag.Warnings)
	}
	if album, ok := file.Tag.Text("TALB"); !ok || album != "open" {
		t.Errorf("Text(TALB) = %q, %v", album, ok)
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	path := writeTestFile(t, "song.mp3", tagBytes(4, 0, textFrameV4("TIT2", 0, "x")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenContext(ctx, path)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpenMany(t *testing.T) {
	titles := []string{"First", "Second", "Third"}
	paths := make([]string, len(titles))
	for i, title := range titles {
		paths[i] = writeTestFile(t, title+".mp3", tagBytes(4, 0, textFrameV4("TIT2", 0, title)))
	}

	files, err := OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	if len(files) != len(paths) {
		t.Fatalf("expected %d files, got %d", len(paths), len(files))
	}
	for i, file := range files {
		title, ok := file.Tag.Text("TIT2")
		if !ok || title != titles[i] {
			t.Errorf("files[%d]: Text(TIT2) = %q, want %q", i, title, titles[i])
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	files, err := OpenMany(context.Background())
	if err != nil {
		t.Fatalf("OpenMany with no paths failed: %v", err)
	}
	if files != nil {
		t.Errorf("expected nil result, got %v", files)
	}
}

func TestOpenMany_ErrorPropagates(t *testing.T) {
	good := writeTestFile(t, "good.mp3", tagBytes(4, 0, textFrameV4("TIT2", 0, "ok")))
	bad := filepath.Join(t.TempDir(), "missing.mp3")

	files, err := OpenMany(context.Background(), good, bad)
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if files != nil {
		t.Errorf("results should be discarded on error, got %v", files)
	}
	if !strings.Contains(err.Error(), "missing.mp3") {
		t.Errorf("error should name the failing path, got: %v", err)
	}
}
