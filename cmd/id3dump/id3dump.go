package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/soundprobe/id3meta"
)

// Diagnostic tool: dump every frame of a file's ID3v2 tag.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: id3dump <file.mp3>")
		os.Exit(1)
	}

	file, err := id3meta.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range file.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if file.Tag == nil {
		fmt.Println("unsupported tag version, no frames decoded")
		return
	}

	fmt.Printf("%s: %d bytes of tag, %d frames\n", file.Path, file.TagSize, file.Tag.Len())
	for _, frame := range file.Tag.Frames {
		name := frame.ID()
		if desc, ok := id3meta.FrameNames[frame.ID()]; ok {
			name = fmt.Sprintf("%s (%s)", frame.ID(), desc)
		}

		switch f := frame.(type) {
		case id3meta.TextInformationFrame:
			fmt.Printf("  %s: %s%s\n", name, f.Text, genreHint(f))
		case id3meta.TxxxFrame:
			fmt.Printf("  %s: %s = %s\n", name, f.Description, f.Value)
		case id3meta.CommentFrame:
			fmt.Printf("  %s [%s] %s: %s\n", name, f.Language, f.Description, f.Text)
		case id3meta.PrivFrame:
			fmt.Printf("  %s: %s, %d bytes\n", name, f.Owner, len(f.Data))
		case id3meta.GeobFrame:
			fmt.Printf("  %s: %s (%s), %d bytes\n", name, f.Filename, f.MimeType, len(f.Data))
		case id3meta.ApicFrame:
			fmt.Printf("  %s: %s, picture type %d, %d bytes\n", name, f.MimeType, f.PictureType, len(f.PictureData))
		case id3meta.BinaryFrame:
			fmt.Printf("  %s: %d bytes\n", name, len(f.Data))
		}
	}
}

// genreHint resolves a numeric TCON value against the genre table.
func genreHint(f id3meta.TextInformationFrame) string {
	if f.FrameID != "TCON" {
		return ""
	}
	code, err := strconv.Atoi(f.Text)
	if err != nil {
		return ""
	}
	if genre, ok := id3meta.GenreName(code); ok {
		return fmt.Sprintf(" [%s]", genre)
	}
	return ""
}
