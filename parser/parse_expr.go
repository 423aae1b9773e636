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
	"strconv"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/internal/taxa"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// maxPrec is the tightest-binding binary operator precedence.
const maxPrec = 2

// parseExpr parses an expression. where describes the expression's context
// for diagnostics about its first token.
//
// Returns nil if a diagnostic was reported.
func parseExpr(p *parser, where taxa.Place) ast.Expr {
	return parseExprInfix(p, where, 1)
}

// parseExprInfix parses binary operators of precedence prec or tighter, by
// precedence climbing. Operators at the same level associate to the left.
//
// The levels are:
//
//  1. + -
//  2. * /
//
// Past the last level are prefix operators and primary expressions.
func parseExprInfix(p *parser, where taxa.Place, prec int) ast.Expr {
	if prec > maxPrec {
		return parseExprPrefix(p, where)
	}

	lhs := parseExprInfix(p, where, prec+1)
	if lhs == nil {
		return nil
	}

	for {
		op, ok := ast.BinaryOpFor(p.peek().Kind)
		if !ok || op.Precedence() != prec {
			return lhs
		}
		opTok := p.next()

		rhs := parseExprInfix(p, taxa.Classify(opTok).After(), prec+1)
		if rhs == nil {
			return nil
		}

		lhs = &ast.BinaryExpr{
			Left:  lhs,
			Op:    op,
			Right: rhs,
			Range: source.Join(lhs, rhs),
		}
	}
}

// parseExprPrefix parses a chain of prefix operators followed by a primary
// expression.
func parseExprPrefix(p *parser, where taxa.Place) ast.Expr {
	next := p.peek()
	op, ok := ast.UnaryOpFor(next.Kind)
	if !ok {
		return parseExprSolo(p, where)
	}

	if !p.enter(next) {
		return nil
	}
	defer p.exit()
	p.next()

	operand := parseExprPrefix(p, taxa.Classify(next).After())
	if operand == nil {
		return nil
	}

	return &ast.UnaryExpr{
		Op:      op,
		Operand: operand,
		Range:   source.Join(p.span(next), operand),
	}
}

// parseExprSolo parses a primary expression: a number, an identifier or a
// parenthesized expression.
//
// The offending token is not consumed on failure.
func parseExprSolo(p *parser, where taxa.Place) ast.Expr {
	next := p.peek()
	switch next.Kind {
	case token.Number:
		v, err := strconv.ParseInt(next.Text, 10, 64)
		if err != nil {
			p.error(ErrIntegerOverflow{Token: next, Span: p.span(next)})
			return nil
		}
		p.next()
		return &ast.NumberLit{Value: v, Range: p.span(next)}

	case token.Identifier:
		p.next()
		return &ast.Ident{Name: next.Text, Range: p.span(next)}

	case token.LParen:
		return parseGroup(p)

	case token.Illegal:
		p.error(ErrIllegalCharacter{Token: next, Span: p.span(next), Want: taxa.Expr.AsSet()})
		return nil

	default:
		p.error(ErrUnexpected{
			Token: next,
			Span:  p.span(next),
			Where: where,
			Want:  taxa.Expr.AsSet(),
		})
		return nil
	}
}

// parseGroup parses ( <expression> ).
func parseGroup(p *parser) ast.Expr {
	open := p.peek()
	if !p.enter(open) {
		return nil
	}
	defer p.exit()
	p.next()

	inner := parseExpr(p, taxa.Group.In())
	if inner == nil {
		return nil
	}

	if p.at(token.EOF) {
		p.error(ErrUnterminated{
			Open:     open,
			OpenSpan: p.span(open),
			What:     taxa.Group,
			Span:     p.span(p.peek()),
		})
		return nil
	}
	closeTok, ok := p.expect(token.RParen, taxa.Expr.After())
	if !ok {
		return nil
	}

	return &ast.GroupExpr{
		Inner: inner,
		Range: source.Join(p.span(open), p.span(closeTok)),
	}
}
