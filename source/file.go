// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// LengthUnit is a unit of measurement for the column of a [Location].
type LengthUnit int

const (
	// RuneLength counts columns in runes. This is what the lexer uses for
	// token positions.
	RuneLength LengthUnit = iota + 1
	// ByteLength counts columns in bytes.
	ByteLength
	// UTF16Length counts columns in UTF-16 code units, as LSP clients do.
	UTF16Length
	// TermWidth counts columns in terminal cells, expanding tabstops to
	// [TabstopWidth].
	TermWidth
)

// Location is a user-displayable location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [LengthUnit] used when
	// constructing it.
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// IsZero returns whether this is the zero location.
func (l Location) IsZero() bool {
	return l.Line == 0
}

// File is a source code file.
//
// It contains additional book-keeping information for resolving span locations.
// A File may be shared between goroutines.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is possible
	// to recover which line that offset is on by performing a binary search on this
	// list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n in the
	// text.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; the REPL uses a placeholder name.
func (f *File) Path() string {
	if f == nil {
		return ""
	}

	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}

	return f.text
}

// Location searches this index to build full Location information for the given
// byte offset.
//
// This operation is O(log n).
func (f *File) Location(offset int, units LengthUnit) Location {
	if f == nil {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the smallest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	var column int
	switch units {
	case RuneLength:
		for range chunk {
			column++
		}
	case ByteLength:
		column = len(chunk)
	case UTF16Length:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		column = Width(0, chunk)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}

	return Span{f, start, end}
}

// Line returns the given line, including its trailing newline.
//
// line is expected to be 1-indexed.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.text[start:end]
}

// LineOffsets returns the offsets for the given line, including its trailing
// newline.
//
// line is expected to be 1-indexed.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if line >= len(lines) {
		return lines[line-1], len(f.text)
	}
	return lines[line-1], lines[line]
}

// Offset converts a 1-indexed line and rune column into a byte offset. The
// column may point just past the end of the line. Returns false if the
// position is not within the file.
func (f *File) Offset(line, column int) (int, bool) {
	if f == nil || line < 1 || line > f.Lines() || column < 1 {
		return 0, false
	}

	start, end := f.LineOffsets(line)
	offset := start
	for range column - 1 {
		if offset >= end {
			return 0, false
		}
		_, n := utf8.DecodeRuneInString(f.text[offset:end])
		offset += n
	}
	return offset, true
}

// Lines returns the number of lines in this file.
func (f *File) Lines() int {
	return len(f.lines())
}

// EOF returns a Span pointing to the end-of-file.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	// Find the last non-space rune; we moor the span immediately after it.
	eof := strings.LastIndexFunc(f.text, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if eof == -1 {
		return f.Span(0, 0) // The whole file is whitespace.
	}

	// LastIndexFunc returns the start of the rune; skip over it.
	eof += len(string([]rune(f.text[eof:])[0]))
	return f.Span(eof, eof)
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}

			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}

		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
