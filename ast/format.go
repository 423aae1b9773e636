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

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders n as source text with every operation fully parenthesized,
// so that the shape of the tree is visible: 1 + 2 * 3 formats as
// (1 + (2 * 3)).
//
// A [Program] formats as one statement per line. Nested blocks are indented
// by two spaces.
func Format(n Node) string {
	var p printer
	p.node(n)
	return p.String()
}

func (p *Program) String() string    { return Format(p) }
func (s *LetStmt) String() string    { return Format(s) }
func (s *BlockStmt) String() string  { return Format(s) }
func (s *ExprStmt) String() string   { return Format(s) }
func (e *NumberLit) String() string  { return Format(e) }
func (e *Ident) String() string      { return Format(e) }
func (e *BinaryExpr) String() string { return Format(e) }
func (e *UnaryExpr) String() string  { return Format(e) }
func (e *GroupExpr) String() string  { return Format(e) }

type printer struct {
	strings.Builder
	indent int
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			p.node(stmt)
			p.WriteByte('\n')
		}

	case *LetStmt:
		p.WriteString("let ")
		p.node(n.Name)
		p.WriteString(" = ")
		p.node(n.Value)
		p.WriteByte(';')

	case *ExprStmt:
		p.node(n.Expr)
		p.WriteByte(';')

	case *BlockStmt:
		if len(n.Stmts) == 0 {
			p.WriteString("{}")
			return
		}
		p.WriteString("{\n")
		p.indent++
		for _, stmt := range n.Stmts {
			p.WriteString(strings.Repeat("  ", p.indent))
			p.node(stmt)
			p.WriteByte('\n')
		}
		p.indent--
		p.WriteString(strings.Repeat("  ", p.indent))
		p.WriteByte('}')

	case *NumberLit:
		p.WriteString(strconv.FormatInt(n.Value, 10))

	case *Ident:
		p.WriteString(n.Name)

	case *BinaryExpr:
		p.WriteByte('(')
		p.node(n.Left)
		fmt.Fprintf(p, " %v ", n.Op)
		p.node(n.Right)
		p.WriteByte(')')

	case *UnaryExpr:
		fmt.Fprintf(p, "(%v", n.Op)
		p.node(n.Operand)
		p.WriteByte(')')

	case *GroupExpr:
		p.WriteByte('(')
		p.node(n.Inner)
		p.WriteByte(')')

	case nil:
		p.WriteString("<nil>")

	default:
		panic(fmt.Sprintf("oxide/ast: unexpected node type %T", n))
	}
}
