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

// Package ast defines the abstract syntax tree produced by the parser.
//
// A [Program] is a list of statements. Statements and expressions are
// represented by pointers to the node structs in this package, behind the
// sealed [Stmt] and [Expr] interfaces; user code should not attempt to
// implement them.
//
// Every node records the [source.Span] it was parsed from. Spans are
// informational: two trees with the same shape and values are considered
// equal regardless of where they came from.
package ast

import (
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

//go:generate go run github.com/oxidelang/oxide/internal/enum op.yaml

// Node is any node in the tree.
type Node interface {
	source.Spanner
	node()
}

// Stmt is a statement: one of [*LetStmt], [*BlockStmt] or [*ExprStmt].
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression: one of [*NumberLit], [*Ident], [*BinaryExpr],
// [*UnaryExpr] or [*GroupExpr].
type Expr interface {
	Node
	expr()
}

// Program is the root of the tree: every top-level statement, in source
// order.
type Program struct {
	Stmts []Stmt
	Range source.Span
}

// LetStmt is a variable binding, e.g. let x = 1 + 2;.
type LetStmt struct {
	Name  *Ident
	Value Expr
	Range source.Span
}

// BlockStmt is a braced list of statements.
type BlockStmt struct {
	Stmts []Stmt
	Range source.Span
}

// ExprStmt is an expression followed by a semicolon.
type ExprStmt struct {
	Expr  Expr
	Range source.Span
}

// NumberLit is an integer literal.
type NumberLit struct {
	Value int64
	Range source.Span
}

// Ident is a reference to a name.
type Ident struct {
	Name  string
	Range source.Span
}

// BinaryExpr is a binary operation such as a + b.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
	Range source.Span
}

// UnaryExpr is a prefix operation such as -a.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Range   source.Span
}

// GroupExpr is a parenthesized expression.
//
// Parentheses don't affect evaluation once the tree is built, but they are
// kept so that the tree reflects what was written.
type GroupExpr struct {
	Inner Expr
	Range source.Span
}

// Span implements [source.Spanner].
func (p *Program) Span() source.Span    { return p.Range }
func (s *LetStmt) Span() source.Span    { return s.Range }
func (s *BlockStmt) Span() source.Span  { return s.Range }
func (s *ExprStmt) Span() source.Span   { return s.Range }
func (e *NumberLit) Span() source.Span  { return e.Range }
func (e *Ident) Span() source.Span      { return e.Range }
func (e *BinaryExpr) Span() source.Span { return e.Range }
func (e *UnaryExpr) Span() source.Span  { return e.Range }
func (e *GroupExpr) Span() source.Span  { return e.Range }

func (*Program) node()    {}
func (*LetStmt) node()    {}
func (*BlockStmt) node()  {}
func (*ExprStmt) node()   {}
func (*NumberLit) node()  {}
func (*Ident) node()      {}
func (*BinaryExpr) node() {}
func (*UnaryExpr) node()  {}
func (*GroupExpr) node()  {}

func (*LetStmt) stmt()   {}
func (*BlockStmt) stmt() {}
func (*ExprStmt) stmt()  {}

func (*NumberLit) expr()  {}
func (*Ident) expr()      {}
func (*BinaryExpr) expr() {}
func (*UnaryExpr) expr()  {}
func (*GroupExpr) expr()  {}

// Precedence returns the binding strength of op; higher binds tighter.
// All binary operators are left-associative.
func (op BinaryOp) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	default:
		return 0
	}
}

// BinaryOpFor returns the binary operator a token of the given kind
// represents, if any.
func BinaryOpFor(k token.Kind) (BinaryOp, bool) {
	if !k.IsPunct() {
		return BinaryInvalid, false
	}
	return LookupBinaryOp(k.String())
}

// UnaryOpFor returns the prefix operator a token of the given kind
// represents, if any.
func UnaryOpFor(k token.Kind) (UnaryOp, bool) {
	if !k.IsPunct() {
		return UnaryInvalid, false
	}
	return LookupUnaryOp(k.String())
}
