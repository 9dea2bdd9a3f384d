// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mif

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/mifasm/internal"
)

const (
	WIDTH     = 32     // Word width in bits.
	DEPTH     = 256    // Default memory depth in words.
	DEPTH_MAX = 0x1000 // Largest depth with a 3 digit address.
	EXTENSION = ".mif" // Default output file extension.
)

// Entry is the content of one memory word.
type Entry struct {
	Data    uint32 // Word value.
	Comment string // Annotation, usually the source line.
}

// Image is the content of a memory block.
type Image struct {
	Depth    int     // Number of words in the memory.
	Fill     uint32  // Value of the words past the last entry.
	Comments bool    // If set, entry comments are written.
	Entries  []Entry // Words, starting at address zero.
}

// NewImage returns an empty image of the default depth.
func NewImage() *Image {
	return &Image{
		Depth:    DEPTH,
		Comments: true,
	}
}

// Add appends a word to the image.
func (img *Image) Add(data uint32, comment string) {
	img.Entries = append(img.Entries, Entry{Data: data, Comment: comment})
}

// Truncated returns the number of entries that do not fit in the memory.
func (img *Image) Truncated() int {
	return max(0, len(img.Entries)-img.Depth)
}

// used returns the number of entries written.
func (img *Image) used() int {
	return max(0, min(len(img.Entries), img.Depth))
}

func (img *Image) header() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for _, line := range []string{
			fmt.Sprintf("WIDTH=%d;", WIDTH),
			fmt.Sprintf("DEPTH=%d;", img.Depth),
			"",
			"ADDRESS_RADIX=HEX;",
			"DATA_RADIX=HEX;",
			"",
			"CONTENT BEGIN",
		} {
			if !yield(line) {
				return
			}
		}
	}
}

func (img *Image) content() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for address, entry := range img.Entries[:img.used()] {
			line := fmt.Sprintf("   %03x  :   %08X;", address, entry.Data)
			if img.Comments && len(entry.Comment) != 0 {
				line += "  -- " + entry.Comment
			}
			if !yield(line) {
				return
			}
		}
	}
}

func (img *Image) padding() iter.Seq[string] {
	return func(yield func(line string) bool) {
		used := img.used()
		if used >= img.Depth {
			return
		}
		yield(fmt.Sprintf("   [%03x..%03x]  :   %08X;", used, img.Depth-1, img.Fill))
	}
}

func (img *Image) trailer() iter.Seq[string] {
	return func(yield func(line string) bool) {
		if !yield("") {
			return
		}
		yield("END;")
	}
}

// Lines iterates over the lines of the image text.
func (img *Image) Lines() iter.Seq[string] {
	return internal.IterSeqConcat(img.header(), img.content(), img.padding(), img.trailer())
}

// WriteTo writes the image text. Lines are newline separated, and the
// final `END;` has no trailing newline.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	sep := ""
	for line := range img.Lines() {
		var count int
		count, err = io.WriteString(w, sep+line)
		n += int64(count)
		if err != nil {
			return
		}
		sep = "\n"
	}

	return
}

// String returns the image text.
func (img *Image) String() string {
	var sb strings.Builder
	img.WriteTo(&sb)
	return sb.String()
}
