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

// Package lexer turns oxide source text into [token.Token]s.
//
// The lexer is pull-based: each call to [Lexer.Next] scans exactly one token.
// Lexing never fails; characters that start no token come back as
// [token.Illegal] and are left for the parser to diagnose.
package lexer

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// Lexer is a cursor over a [source.File].
//
// A zero Lexer is not usable; construct one with [New].
type Lexer struct {
	file *source.File

	cursor       int
	line, column int
}

// New returns a lexer positioned at the start of file.
func New(file *source.File) *Lexer {
	return &Lexer{file: file, line: 1, column: 1}
}

// Tokenize lexes all of file, returning its tokens. The last token is always
// [token.EOF].
func Tokenize(file *source.File) []token.Token {
	l := New(file)
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// File returns the file this lexer is scanning.
func (l *Lexer) File() *source.File {
	return l.file
}

// Offset returns the byte offset of the next unscanned character.
func (l *Lexer) Offset() int {
	return l.cursor
}

// Done returns whether all of the input has been consumed. Once this is true,
// [Lexer.Next] returns [token.EOF] forever.
func (l *Lexer) Done() bool {
	return l.rest() == ""
}

// All returns an iterator over the remaining tokens, stopping before
// [token.EOF].
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		mp := mustProgress{l: l, prev: -1}
		for {
			mp.check()
			tok := l.Next()
			if tok.Kind == token.EOF || !yield(tok) {
				return
			}
		}
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() token.Token {
	l.skipSpace()

	start, pos := l.cursor, l.pos()
	r := l.pop()
	var kind token.Kind
	switch {
	case r == -1:
		return token.Token{Kind: token.EOF, Offset: start, Pos: pos}

	case isDigit(r):
		l.takeWhile(isDigit)
		kind = token.Number

	case isIdentStart(r):
		l.takeWhile(isIdentPart)
		kind = token.Identifier
		if l.file.Text()[start:l.cursor] == "let" {
			kind = token.Let
		}

	default:
		punct, ok := token.LookupPunct(string(r))
		if !ok {
			punct = token.Illegal
		}
		kind = punct
	}

	return token.Token{
		Kind:   kind,
		Text:   l.file.Text()[start:l.cursor],
		Offset: start,
		Pos:    pos,
	}
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// rest returns the remaining unlexed text.
func (l *Lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// peek peeks the next character.
//
// Returns -1 if l.Done().
func (l *Lexer) peek() rune {
	if l.Done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// pop consumes the next character, updating the line and column.
//
// Returns -1 if l.Done(). An invalid UTF-8 byte is consumed on its own and
// returned as [utf8.RuneError].
func (l *Lexer) pop() rune {
	if l.Done() {
		return -1
	}
	r, n := utf8.DecodeRuneInString(l.rest())
	l.cursor += n
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// takeWhile consumes characters while they match p.
func (l *Lexer) takeWhile(p func(rune) bool) {
	for !l.Done() && p(l.peek()) {
		l.pop()
	}
}

func (l *Lexer) skipSpace() {
	l.takeWhile(unicode.IsSpace)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
