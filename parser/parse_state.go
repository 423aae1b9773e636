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

package parser

import (
	"github.com/oxidelang/oxide/internal/taxa"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// parser is the state for a single parse.
type parser struct {
	file    *source.File
	src     TokenSource
	handler *reporter.Handler

	// The lookahead token: the next token to be consumed.
	cur token.Token

	// The number of tokens consumed so far.
	consumed int

	depth, maxDepth int

	// Set once the reporter has asked us to stop.
	aborted bool
}

func newParser(file *source.File, src TokenSource, h *reporter.Handler, opts Options) *parser {
	p := &parser{
		file:     file,
		src:      src,
		handler:  h,
		maxDepth: opts.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	p.cur = src.Next()
	return p
}

// peek returns the lookahead token without consuming it.
func (p *parser) peek() token.Token {
	return p.cur
}

// at returns whether the lookahead token is of the given kind.
func (p *parser) at(kind token.Kind) bool {
	return p.cur.Kind == kind
}

// next consumes the lookahead token and returns it. At end of input this
// returns [token.EOF] without advancing.
func (p *parser) next() token.Token {
	tok := p.cur
	if tok.Kind != token.EOF {
		p.cur = p.src.Next()
		p.consumed++
	}
	return tok
}

// span returns the span of tok within the file being parsed.
func (p *parser) span(tok token.Token) source.Span {
	return tok.Span(p.file)
}

// done returns whether parsing should stop: either all input is consumed or
// the reporter aborted.
func (p *parser) done() bool {
	return p.aborted || p.at(token.EOF)
}

// error records a diagnostic.
func (p *parser) error(err report.Diagnose) {
	if p.handler.HandleError(err) != nil {
		p.aborted = true
	}
}

// expect consumes a token of the given kind.
//
// If the lookahead is something else, it DOES NOT consume it, and instead
// reports a diagnostic describing what was wanted where.
func (p *parser) expect(kind token.Kind, where taxa.Place) (token.Token, bool) {
	next := p.peek()
	if next.Kind == kind {
		return p.next(), true
	}

	want := taxa.FromKind(kind)
	if next.Kind == token.Illegal {
		p.error(ErrIllegalCharacter{Token: next, Span: p.span(next), Want: want.AsSet()})
	} else {
		p.error(ErrExpected{Want: want, Where: where, Got: next, Span: p.span(next)})
	}
	return next, false
}

// enter descends one level of nesting at tok. If this would exceed the depth
// limit, it reports that and returns false; otherwise the caller must call
// [parser.exit] once done with the nested construct.
func (p *parser) enter(tok token.Token) bool {
	if p.depth >= p.maxDepth {
		p.error(ErrNestingTooDeep{Span: p.span(tok), Limit: p.maxDepth})
		return false
	}
	p.depth++
	return true
}

func (p *parser) exit() {
	p.depth--
}
