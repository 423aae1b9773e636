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

// Package taxa (plural of taxon, an element of a taxonomy) provides support for
// classifying oxide syntax productions for use in the parser and in
// diagnostics.
package taxa

import (
	"fmt"

	"github.com/oxidelang/oxide/token"
)

//go:generate go run github.com/oxidelang/oxide/internal/enum noun.yaml

// In is a shorthand for the "in" preposition.
func (s Noun) In() Place {
	return Place{s, "in"}
}

// After is a shorthand for the "after" preposition.
func (s Noun) After() Place {
	return Place{s, "after"}
}

// At returns a [Place] representing being at this noun, such as "at top level".
func (s Noun) At() Place {
	return Place{s, "at"}
}

// AsSet returns a singleton set containing this Noun.
func (s Noun) AsSet() Set {
	return NewSet(s)
}

// Place is a location within the grammar that can be referred to within a
// diagnostic.
//
// It corresponds to a prepositional phrase in English, so it is actually
// somewhat more general than a place.
type Place struct {
	subject     Noun
	preposition string
}

// Subject returns this place's subject.
func (p Place) Subject() Noun {
	return p.subject
}

// String implements [fmt.Stringer].
func (p Place) String() string {
	return p.preposition + " " + p.subject.String()
}

// GoString implements [fmt.GoStringer].
//
// This exists to get pretty output out of the assert package.
func (p Place) GoString() string {
	return fmt.Sprintf("{%#v, %#v}", p.subject, p.preposition)
}

var kinds = [...]Noun{
	token.Unrecognized: Unknown,
	token.Number:       Number,
	token.Identifier:   Ident,
	token.Let:          KeywordLet,
	token.Plus:         Plus,
	token.Minus:        Minus,
	token.Star:         Star,
	token.Slash:        Slash,
	token.Assign:       Equals,
	token.Semicolon:    Semicolon,
	token.LParen:       LParen,
	token.RParen:       RParen,
	token.LBrace:       LBrace,
	token.RBrace:       RBrace,
	token.EOF:          EOF,
	token.Illegal:      Illegal,
}

// FromKind returns the noun used to describe tokens of the given kind.
func FromKind(k token.Kind) Noun {
	if int(k) < 0 || int(k) >= len(kinds) {
		return Unknown
	}
	return kinds[k]
}

// Classify returns the noun used to describe tok.
func Classify(tok token.Token) Noun {
	return FromKind(tok.Kind)
}
