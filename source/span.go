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
	"fmt"
	"unicode/utf8"
)

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// GetSpan extracts a span from a Spanner, but returns the zero span when
// s is nil, which would otherwise panic.
func GetSpan(s Spanner) Span {
	if s == nil {
		return Span{}
	}
	return s.Span()
}

// Span is a location within a [File].
type Span struct {
	// The file this span refers to.
	*File

	// The start and end byte offsets for this span.
	Start, End int
}

// IsZero returns whether or not this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// Text returns the text corresponding to this span.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether offset falls within this span. The end offset is
// inclusive, so that a cursor placed just after a token still selects it.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

// StartLoc returns the start location for this span, with columns in runes.
func (s Span) StartLoc() Location {
	return s.Location(s.Start, RuneLength)
}

// EndLoc returns the end location for this span, with columns in runes.
func (s Span) EndLoc() Location {
	return s.Location(s.End, RuneLength)
}

// GrowRight returns a new span which contains the largest prefix of the text
// after s that matches p.
func (s Span) GrowRight(p func(r rune) bool) Span {
	rest := s.File.Text()[s.End:]
	for {
		r, sz := utf8.DecodeRuneInString(rest)
		if r == utf8.RuneError || !p(r) {
			break
		}
		s.End += sz
		rest = rest[sz:]
	}
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<nil>"
	}
	start := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d[%d:%d]", s.Path(), start.Line, start.Column, s.Start, s.End)
}

// Join joins a collection of spans, returning the smallest span that
// contains all of them.
//
// Zero spans are ignored. If all spans are zero, returns the zero span.
// Panics if the non-zero spans belong to different files.
func Join(spans ...Spanner) Span {
	var joined Span
	for _, spanner := range spans {
		span := GetSpan(spanner)
		if span.IsZero() {
			continue
		}
		if joined.IsZero() {
			joined = span
			continue
		}
		if joined.File != span.File {
			panic("oxide/source: passed spans with distinct files to Join()")
		}
		joined.Start = min(joined.Start, span.Start)
		joined.End = max(joined.End, span.End)
	}
	return joined
}
