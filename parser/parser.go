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

// Package parser implements the oxide parser.
//
// The parser pulls tokens from a [TokenSource] one at a time with a single
// token of lookahead, and builds an [ast.Program]. Syntax errors do not stop
// the parse: the parser records a diagnostic, skips ahead to the next
// statement boundary and keeps going, so one run reports every independent
// error in the input.
//
// A parse either produces a complete tree or fails; there is no partial
// result. The error returned on failure is a [*report.AsError] listing every
// diagnostic, unless the caller's [reporter.Reporter] aborted the parse, in
// which case it is the reporter's error.
package parser

import (
	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/lexer"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// DefaultMaxDepth is the nesting limit used when [Options.MaxDepth] is zero.
const DefaultMaxDepth = 1000

// TokenSource is anything that can produce a stream of tokens. [*lexer.Lexer]
// is the usual implementation.
//
// Once a source has returned [token.EOF], it must keep returning it.
type TokenSource interface {
	Next() token.Token
}

// Options configures a parse.
type Options struct {
	// Receives each diagnostic as it is found. If nil, diagnostics are only
	// accumulated into the returned error.
	Reporter reporter.Reporter

	// The maximum nesting of blocks, parenthesized expressions and prefix
	// operators. Zero means [DefaultMaxDepth].
	MaxDepth int
}

// ParseSource parses text as a standalone program named "<input>".
func ParseSource(text string) (*ast.Program, error) {
	return Parse(source.NewFile("<input>", text), Options{})
}

// Parse lexes and parses file.
func Parse(file *source.File, opts Options) (*ast.Program, error) {
	return ParseFrom(file, lexer.New(file), opts)
}

// ParseTokens parses an already-lexed token sequence. tokens must have been
// lexed from file; if they do not end in [token.EOF], one is supplied.
func ParseTokens(file *source.File, tokens []token.Token, opts Options) (*ast.Program, error) {
	return ParseFrom(file, &sliceSource{file: file, tokens: tokens}, opts)
}

// ParseFrom parses the tokens produced by src, which must have been lexed
// from file.
func ParseFrom(file *source.File, src TokenSource, opts Options) (prog *ast.Program, err error) {
	h := reporter.NewHandler(opts.Reporter)
	defer func() {
		err = h.Error()
		if err != nil {
			prog = nil
		}
	}()
	defer h.CatchICE(func(d *report.Diagnostic) {
		d.With(report.InFile(file.Path()))
	})

	p := newParser(file, src, h, opts)
	prog = parseProgram(p)
	return prog, nil
}

// sliceSource is a [TokenSource] over a fixed slice.
type sliceSource struct {
	file   *source.File
	tokens []token.Token
	eof    token.Token
}

func (s *sliceSource) Next() token.Token {
	if len(s.tokens) == 0 {
		if s.eof.IsZero() {
			s.eof = syntheticEOF(s.file)
		}
		return s.eof
	}
	tok := s.tokens[0]
	if tok.Kind == token.EOF {
		s.eof = tok
		s.tokens = nil
		return tok
	}
	s.tokens = s.tokens[1:]
	return tok
}

// syntheticEOF builds an EOF token at the very end of file.
func syntheticEOF(file *source.File) token.Token {
	offset := len(file.Text())
	loc := file.Location(offset, source.RuneLength)
	return token.Token{
		Kind:   token.EOF,
		Offset: offset,
		Pos:    token.Position{Line: loc.Line, Column: loc.Column},
	}
}
