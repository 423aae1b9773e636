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
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/oxidelang/oxide/internal/taxa"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// ErrUnexpected diagnoses a token that cannot start or continue the
// production being parsed, such as a `;` where an expression must start.
type ErrUnexpected struct {
	Token token.Token
	Span  source.Span

	// Where the token was found, and what could have appeared there instead.
	Where taxa.Place
	Want  taxa.Set
}

func (e ErrUnexpected) Error() string {
	return fmt.Sprintf("unexpected %v %v", taxa.Classify(e.Token), e.Where)
}

func (e ErrUnexpected) Diagnose(d *report.Diagnostic) {
	if e.Want.Len() == 0 {
		d.With(report.Snippet(e.Span))
		return
	}
	d.With(report.Snippetf(e.Span, "expected %v", e.Want.Join("or")))
}

// ErrExpected diagnoses a missing required token, such as the `;` that ends
// a statement.
type ErrExpected struct {
	Want  taxa.Noun
	Where taxa.Place

	// The token found instead.
	Got  token.Token
	Span source.Span
}

func (e ErrExpected) Error() string {
	return fmt.Sprintf("expected %v %v, found %v", e.Want, e.Where, taxa.Classify(e.Got))
}

func (e ErrExpected) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippetf(e.Span, "expected %v", e.Want))
	if e.Want == taxa.Semicolon && e.Got.Kind != token.EOF {
		d.With(report.Help("statements must be terminated by `;`"))
	}
}

// ErrIllegalCharacter diagnoses a character that does not begin any token.
type ErrIllegalCharacter struct {
	Token token.Token
	Span  source.Span

	// What was expected at this position, if anything in particular.
	Want taxa.Set
}

func (e ErrIllegalCharacter) Error() string {
	return "invalid character " + describeChar(e.Token.Text)
}

func (e ErrIllegalCharacter) Diagnose(d *report.Diagnostic) {
	if e.Want.Len() == 0 {
		d.With(report.Snippet(e.Span))
	} else {
		d.With(report.Snippetf(e.Span, "expected %v", e.Want.Join("or")))
	}
	if r, _ := utf8.DecodeRuneInString(e.Token.Text); r == utf8.RuneError {
		d.With(report.Help("oxide source must be encoded as UTF-8"))
	}
}

// describeChar renders the text of an illegal token for a message.
func describeChar(text string) string {
	r, n := utf8.DecodeRuneInString(text)
	switch {
	case r == utf8.RuneError && n <= 1 && text != "":
		return fmt.Sprintf("byte 0x%02x", text[0])
	case r == utf8.RuneError:
		return "(empty)"
	case source.NonPrint(r):
		return fmt.Sprintf("U+%04X", r)
	default:
		return "`" + text + "`"
	}
}

// ErrUnterminated diagnoses a `(` or `{` whose closing delimiter never
// appears before the end of input.
type ErrUnterminated struct {
	// The opening delimiter and the construct it began.
	Open     token.Token
	OpenSpan source.Span
	What     taxa.Noun

	// Where the closing delimiter was expected.
	Span source.Span
}

func (e ErrUnterminated) Error() string {
	return fmt.Sprintf("unterminated %v", e.What)
}

func (e ErrUnterminated) Diagnose(d *report.Diagnostic) {
	var want taxa.Noun
	switch e.Open.Kind {
	case token.LParen:
		want = taxa.RParen
	case token.LBrace:
		want = taxa.RBrace
	default:
		panic(fmt.Sprintf("oxide/parser: invalid token in ErrUnterminated: %v", e.Open))
	}

	d.With(
		report.Snippetf(e.Span, "expected %v", want),
		report.Snippetf(e.OpenSpan, "%v opened here", taxa.Classify(e.Open)),
	)
}

// ErrIntegerOverflow diagnoses an integer literal that does not fit in an
// int64.
type ErrIntegerOverflow struct {
	Token token.Token
	Span  source.Span
}

func (e ErrIntegerOverflow) Error() string {
	return "integer literal out of range"
}

func (e ErrIntegerOverflow) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Snippetf(e.Span, "does not fit in a 64-bit signed integer"),
		report.Help("the largest supported literal is %d", int64(math.MaxInt64)),
	)
}

// ErrNestingTooDeep diagnoses blocks, parentheses or prefix operators nested
// past the parser's depth limit.
type ErrNestingTooDeep struct {
	Span  source.Span
	Limit int
}

func (e ErrNestingTooDeep) Error() string {
	return "nesting is too deep"
}

func (e ErrNestingTooDeep) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Snippetf(e.Span, "exceeds the limit of %d levels", e.Limit),
		report.Note("nesting counts blocks, parentheses and prefix operators"),
	)
}
