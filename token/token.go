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

// Package token defines the tokens produced by the lexer and consumed by the
// parser.
package token

import (
	"fmt"

	"github.com/oxidelang/oxide/source"
)

//go:generate go run github.com/oxidelang/oxide/internal/enum kind.yaml

// Position is the line and column of a token, both 1-indexed. Columns count
// runes, so a tab advances the column by one.
type Position struct {
	Line, Column int
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less returns whether p comes strictly before q.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Token is a single lexeme produced by the lexer.
//
// Tokens are plain values. Text is a substring of the lexed source; for
// [EOF] it is empty and Offset is the length of the source.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
	Pos    Position
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.Kind == Unrecognized
}

// End returns the byte offset just past this token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// Span returns this token's span within file, which must be the file it was
// lexed from.
func (t Token) Span(file *source.File) source.Span {
	return file.Span(t.Offset, t.End())
}

// IsPunct returns whether this token's kind is spelled by a fixed string,
// i.e. it is a keyword or punctuation.
func (k Kind) IsPunct() bool {
	_, ok := LookupPunct(k.String())
	return ok
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return fmt.Sprintf("%v@%v", t.Kind, t.Pos)
	case Number, Identifier, Illegal:
		return fmt.Sprintf("%v(%q)@%v", t.Kind, t.Text, t.Pos)
	default:
		return fmt.Sprintf("%q@%v", t.Text, t.Pos)
	}
}
