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

// Package walk provides helper functions for traversing the syntax tree
// produced by the parser.
package walk

import (
	"iter"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/internal/interval"
)

// Nodes walks the tree rooted at root in depth-first pre-order, calling fn
// for every node. If fn returns an error, the walk is aborted and that error
// is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks the tree rooted at root. For each node, enter is
// called before its children are visited and exit afterwards. Either
// function returning an error aborts the walk. exit may be nil.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	if err := enter(root); err != nil {
		return err
	}
	for _, child := range Children(root) {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}

// All returns an iterator over the tree rooted at root in depth-first
// pre-order.
func All(root ast.Node) iter.Seq[ast.Node] {
	return func(yield func(ast.Node) bool) {
		all(root, yield)
	}
}

func all(n ast.Node, yield func(ast.Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range Children(n) {
		if !all(child, yield) {
			return false
		}
	}
	return true
}

// Children returns the direct children of n, in source order.
func Children(n ast.Node) []ast.Node {
	switch n := n.(type) {
	case *ast.Program:
		return stmts(n.Stmts)
	case *ast.BlockStmt:
		return stmts(n.Stmts)
	case *ast.LetStmt:
		return []ast.Node{n.Name, n.Value}
	case *ast.ExprStmt:
		return []ast.Node{n.Expr}
	case *ast.BinaryExpr:
		return []ast.Node{n.Left, n.Right}
	case *ast.UnaryExpr:
		return []ast.Node{n.Operand}
	case *ast.GroupExpr:
		return []ast.Node{n.Inner}
	default:
		return nil
	}
}

func stmts(list []ast.Stmt) []ast.Node {
	nodes := make([]ast.Node, len(list))
	for i, stmt := range list {
		nodes[i] = stmt
	}
	return nodes
}

// Index answers position queries over a tree.
type Index struct {
	nodes interval.Nesting[int, ast.Node]
}

// NewIndex builds an index over the tree rooted at root. Nodes with a zero
// or empty span are not indexed.
func NewIndex(root ast.Node) *Index {
	idx := new(Index)
	for n := range All(root) {
		span := n.Span()
		if span.IsZero() {
			continue
		}
		idx.nodes.Insert(span.Start, span.End, n)
	}
	return idx
}

// Covering returns every indexed node whose span contains the given byte
// offset, from the outermost to the innermost.
func (idx *Index) Covering(offset int) []ast.Node {
	var nodes []ast.Node
	for entry := range idx.nodes.Containing(offset) {
		nodes = append(nodes, entry.Value)
	}
	return nodes
}

// Innermost returns the smallest node containing the given byte offset, or
// nil if there is none.
func (idx *Index) Innermost(offset int) ast.Node {
	nodes := idx.Covering(offset)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

// Covering is a shorthand for NewIndex(root).Covering(offset).
func Covering(root ast.Node, offset int) []ast.Node {
	return NewIndex(root).Covering(offset)
}
