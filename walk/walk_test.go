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

package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/parser"
	"github.com/oxidelang/oxide/walk"
)

func describe(nodes []ast.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = fmt.Sprintf("%T %s", n, n.Span().Text())
	}
	return out
}

func TestAll(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseSource("let x = 1 + y;\n{ -z; }")
	require.NoError(t, err)

	var nodes []ast.Node
	for n := range walk.All(prog) {
		nodes = append(nodes, n)
	}
	assert.Equal(t, []string{
		"*ast.Program let x = 1 + y;\n{ -z; }",
		"*ast.LetStmt let x = 1 + y;",
		"*ast.Ident x",
		"*ast.BinaryExpr 1 + y",
		"*ast.NumberLit 1",
		"*ast.Ident y",
		"*ast.BlockStmt { -z; }",
		"*ast.ExprStmt -z;",
		"*ast.UnaryExpr -z",
		"*ast.Ident z",
	}, describe(nodes))

	// Stopping early.
	var count int
	for range walk.All(prog) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseSource("(a);")
	require.NoError(t, err)

	var events []string
	err = walk.NodesEnterAndExit(prog,
		func(n ast.Node) error {
			events = append(events, "enter "+n.Span().Text())
			return nil
		},
		func(n ast.Node) error {
			events = append(events, "exit "+n.Span().Text())
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"enter (a);",
		"enter (a);",
		"enter (a)",
		"enter a",
		"exit a",
		"exit (a)",
		"exit (a);",
		"exit (a);",
	}, events)

	stop := errors.New("stop")
	var visited int
	err = walk.Nodes(prog, func(n ast.Node) error {
		visited++
		if _, ok := n.(*ast.GroupExpr); ok {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestCovering(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseSource("let x = 1 + y;\n{ -z; }")
	require.NoError(t, err)
	idx := walk.NewIndex(prog)

	assert.Equal(t, []string{
		"*ast.Program let x = 1 + y;\n{ -z; }",
		"*ast.LetStmt let x = 1 + y;",
		"*ast.BinaryExpr 1 + y",
		"*ast.Ident y",
	}, describe(idx.Covering(12)))

	assert.Equal(t, []string{
		"*ast.Program let x = 1 + y;\n{ -z; }",
		"*ast.LetStmt let x = 1 + y;",
		"*ast.BinaryExpr 1 + y",
	}, describe(idx.Covering(10)))

	// Between statements only the program covers.
	assert.Equal(t, []string{
		"*ast.Program let x = 1 + y;\n{ -z; }",
	}, describe(walk.Covering(prog, 14)))

	assert.Equal(t, "z", idx.Innermost(18).Span().Text())
	assert.IsType(t, &ast.NumberLit{}, idx.Innermost(8))
	assert.Nil(t, idx.Innermost(100))
	assert.Empty(t, idx.Covering(-1))
}
