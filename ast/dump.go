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
	"strings"
)

// Dump renders n as an indented tree, one node per line, for showing to a
// user. For example, let x = -1; dumps as
//
//	Let Statement:
//	  Variable: x
//	  Value:
//	    Unary Expression (Neg):
//	      Operand:
//	        Number: 1
//
// Every line ends in a newline.
func Dump(n Node) string {
	var d dumper
	d.node(n, 0)
	return d.String()
}

type dumper struct {
	strings.Builder
}

func (d *dumper) line(indent int, format string, args ...any) {
	d.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(d, format, args...)
	d.WriteByte('\n')
}

func (d *dumper) node(n Node, indent int) {
	switch n := n.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			d.node(stmt, indent)
		}

	case *LetStmt:
		d.line(indent, "Let Statement:")
		d.line(indent+1, "Variable: %s", n.Name.Name)
		d.line(indent+1, "Value:")
		d.node(n.Value, indent+2)

	case *ExprStmt:
		d.line(indent, "Expression Statement:")
		d.node(n.Expr, indent+1)

	case *BlockStmt:
		d.line(indent, "Block Statement:")
		d.line(indent+1, "Statements (%d):", len(n.Stmts))
		for i, stmt := range n.Stmts {
			d.line(indent+2, "[%d]:", i)
			d.node(stmt, indent+3)
		}

	case *NumberLit:
		d.line(indent, "Number: %d", n.Value)

	case *Ident:
		d.line(indent, "Identifier: %s", n.Name)

	case *BinaryExpr:
		d.line(indent, "Binary Expression (%s):", opName(n.Op.GoString()))
		d.line(indent+1, "Left:")
		d.node(n.Left, indent+2)
		d.line(indent+1, "Right:")
		d.node(n.Right, indent+2)

	case *UnaryExpr:
		d.line(indent, "Unary Expression (%s):", opName(n.Op.GoString()))
		d.line(indent+1, "Operand:")
		d.node(n.Operand, indent+2)

	case *GroupExpr:
		d.line(indent, "Grouped Expression:")
		d.node(n.Inner, indent+1)

	default:
		panic(fmt.Sprintf("oxide/ast: unexpected node type %T", n))
	}
}

func opName(goString string) string {
	return strings.TrimPrefix(goString, "ast.")
}
