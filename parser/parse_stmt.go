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
	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/internal/taxa"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

// parseProgram parses statements until end of input.
func parseProgram(p *parser) *ast.Program {
	prog := new(ast.Program)
	parseStmts(p, prog, false)
	if len(prog.Stmts) > 0 {
		prog.Range = source.Join(prog.Stmts[0], prog.Stmts[len(prog.Stmts)-1])
	}
	return prog
}

// parseStmts parses statements into prog until end of input or, if inBlock,
// a `}`. A statement that fails to parse is dropped and the parser
// resynchronizes before the next one.
func parseStmts(p *parser, into *ast.Program, inBlock bool) {
	where := taxa.TopLevel.At()
	if inBlock {
		where = taxa.Block.In()
	}

	mp := mustProgress{p: p, prev: -1}
	for !p.done() && !(inBlock && p.at(token.RBrace)) {
		mp.check()
		stmt := parseStmt(p, where)
		if stmt == nil {
			synchronize(p, inBlock)
			continue
		}
		into.Stmts = append(into.Stmts, stmt)
	}
}

// parseStmt parses a single statement. Returns nil if a diagnostic was
// reported.
func parseStmt(p *parser, where taxa.Place) ast.Stmt {
	switch p.peek().Kind {
	case token.Let:
		if let := parseLet(p); let != nil {
			return let
		}
	case token.LBrace:
		if block := parseBlock(p); block != nil {
			return block
		}
	default:
		if stmt := parseExprStmt(p, where); stmt != nil {
			return stmt
		}
	}
	// Avoid returning a typed nil.
	return nil
}

// parseLet parses let <identifier> = <expression>;.
func parseLet(p *parser) *ast.LetStmt {
	kw := p.next()

	name, ok := p.expect(token.Identifier, taxa.KeywordLet.After())
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.Assign, taxa.Ident.After()); !ok {
		return nil
	}

	value := parseExpr(p, taxa.Equals.After())
	if value == nil {
		return nil
	}

	semi, ok := p.expect(token.Semicolon, taxa.Expr.After())
	if !ok {
		return nil
	}

	return &ast.LetStmt{
		Name:  &ast.Ident{Name: name.Text, Range: p.span(name)},
		Value: value,
		Range: source.Join(p.span(kw), p.span(semi)),
	}
}

// parseBlock parses { <statement>* }.
//
// Errors inside the block are recovered within it, so a broken statement
// does not also produce a diagnostic for the block's closing brace.
func parseBlock(p *parser) *ast.BlockStmt {
	open := p.next()
	if !p.enter(open) {
		skipBalanced(p, token.LBrace, token.RBrace)
		return nil
	}
	defer p.exit()

	// parseStmts fills in a Program; a block has the same shape.
	var body ast.Program
	parseStmts(p, &body, true)
	if p.aborted {
		return nil
	}

	if !p.at(token.RBrace) {
		eof := p.peek()
		p.error(ErrUnterminated{
			Open:     open,
			OpenSpan: p.span(open),
			What:     taxa.Block,
			Span:     p.span(eof),
		})
		return nil
	}
	closeTok := p.next()

	return &ast.BlockStmt{
		Stmts: body.Stmts,
		Range: source.Join(p.span(open), p.span(closeTok)),
	}
}

// parseExprStmt parses <expression>;.
func parseExprStmt(p *parser, where taxa.Place) *ast.ExprStmt {
	expr := parseExpr(p, where)
	if expr == nil {
		return nil
	}

	semi, ok := p.expect(token.Semicolon, taxa.Expr.After())
	if !ok {
		return nil
	}

	return &ast.ExprStmt{
		Expr:  expr,
		Range: source.Join(expr, p.span(semi)),
	}
}
