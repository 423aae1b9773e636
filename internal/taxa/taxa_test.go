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

package taxa_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxidelang/oxide/internal/taxa"
	"github.com/oxidelang/oxide/token"
)

func TestFromKind(t *testing.T) {
	t.Parallel()

	for k := range token.NumKinds {
		noun := taxa.FromKind(token.Kind(k))
		assert.NotEmpty(t, noun.String())
		if k != int(token.Unrecognized) {
			assert.NotEqual(t, taxa.Unknown, noun, "%#v", token.Kind(k))
		}
	}
	assert.Equal(t, "`;`", taxa.FromKind(token.Semicolon).String())
	assert.Equal(t, "end of input", taxa.Classify(token.Token{Kind: token.EOF}).String())
	assert.Equal(t, taxa.Unknown, taxa.FromKind(token.Kind(-1)))
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := taxa.NewSet(taxa.RBrace, taxa.Number, taxa.Expr)
	assert.True(t, set.Has(taxa.Number))
	assert.False(t, set.Has(taxa.Ident))
	assert.Equal(t, 3, set.Len())

	set = set.With(taxa.Ident)
	assert.Equal(t,
		[]taxa.Noun{taxa.Expr, taxa.Ident, taxa.Number, taxa.RBrace},
		slices.Collect(set.All()),
	)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Empty(t, taxa.NewSet().Join("or"))
	assert.Equal(t, "`;`", taxa.Semicolon.AsSet().Join("or"))
	assert.Equal(t, "identifier or number", taxa.NewSet(taxa.Number, taxa.Ident).Join("or"))
	assert.Equal(t, "identifier, number, or `(`",
		taxa.NewSet(taxa.LParen, taxa.Number, taxa.Ident).Join("or"))
}

func TestPlace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "in `let` statement", taxa.LetStmt.In().String())
	assert.Equal(t, "after expression", taxa.Expr.After().String())
	assert.Equal(t, taxa.Group, taxa.Group.In().Subject())
}
