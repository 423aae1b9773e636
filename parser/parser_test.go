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

package parser_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidelang/oxide/ast"
	"github.com/oxidelang/oxide/internal/golden"
	"github.com/oxidelang/oxide/lexer"
	"github.com/oxidelang/oxide/parser"
	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
	"github.com/oxidelang/oxide/token"
)

func TestParse(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "OXIDE_REFRESH",
		Extensions: []string{"ox"},
		Outputs: []golden.Output{
			{Extension: "sexpr"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		prog, err := parser.Parse(source.NewFile(path, text), parser.Options{})
		if prog != nil {
			outputs[0] = ast.Format(prog)
		}

		errs := &report.Report{Diagnostics: report.Diagnostics(err)}
		stderr, _, _ := report.Renderer{Colorize: true, ShowDebug: true}.RenderString(errs)
		t.Log(stderr)
		outputs[1], _, _ = report.Renderer{Compact: true}.RenderString(errs)

		if strings.Contains(stderr, "internal compiler error") {
			t.Fail()
		}
	})
}

// Constructors for expected trees. Spans are ignored by compare.
func num(v int64) *ast.NumberLit {
	return &ast.NumberLit{Value: v}
}
func ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}
func group(e ast.Expr) *ast.GroupExpr {
	return &ast.GroupExpr{Inner: e}
}
func neg(e ast.Expr) *ast.UnaryExpr {
	return &ast.UnaryExpr{Op: ast.Neg, Operand: e}
}
func bin(l ast.Expr, op ast.BinaryOp, r ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: l, Op: op, Right: r}
}
func let(name string, v ast.Expr) *ast.LetStmt {
	return &ast.LetStmt{Name: ident(name), Value: v}
}
func expr(e ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Expr: e}
}
func block(stmts ...ast.Stmt) *ast.BlockStmt {
	return &ast.BlockStmt{Stmts: stmts}
}
func program(stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{Stmts: stmts}
}

func compare(t *testing.T, want, got *ast.Program) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(source.Span{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestTrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       *ast.Program
	}{
		{
			name: "empty",
			want: program(),
		},
		{
			name: "whitespace",
			text: " \t\n\n ",
			want: program(),
		},
		{
			name: "precedence",
			text: "let x = 1 + 2 * 3;",
			want: program(let("x", bin(num(1), ast.Add, bin(num(2), ast.Mul, num(3))))),
		},
		{
			name: "left-assoc-sub",
			text: "a - b - c;",
			want: program(expr(bin(bin(ident("a"), ast.Sub, ident("b")), ast.Sub, ident("c")))),
		},
		{
			name: "left-assoc-mixed",
			text: "a / b * c;",
			want: program(expr(bin(bin(ident("a"), ast.Div, ident("b")), ast.Mul, ident("c")))),
		},
		{
			name: "unary-binds-tighter",
			text: "-a * b;",
			want: program(expr(bin(neg(ident("a")), ast.Mul, ident("b")))),
		},
		{
			name: "double-negation",
			text: "--5;",
			want: program(expr(neg(neg(num(5))))),
		},
		{
			name: "group",
			text: "(1 + 2) * 3;",
			want: program(expr(bin(group(bin(num(1), ast.Add, num(2))), ast.Mul, num(3)))),
		},
		{
			name: "mixed",
			text: "(1 + 2) * 3 - 4 / 2;",
			want: program(expr(bin(
				bin(group(bin(num(1), ast.Add, num(2))), ast.Mul, num(3)),
				ast.Sub,
				bin(num(4), ast.Div, num(2)),
			))),
		},
		{
			name: "block",
			text: "{ let x = 5; let y = 10; x + y; }",
			want: program(block(
				let("x", num(5)),
				let("y", num(10)),
				expr(bin(ident("x"), ast.Add, ident("y"))),
			)),
		},
		{
			name: "empty-block",
			text: "{}",
			want: program(block()),
		},
		{
			name: "nested-blocks",
			text: "{ { a; } let b = 1; }\nc;",
			want: program(
				block(block(expr(ident("a"))), let("b", num(1))),
				expr(ident("c")),
			),
		},
		{
			name: "max-int",
			text: "9223372036854775807;",
			want: program(expr(num(9223372036854775807))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parser.ParseSource(tt.text)
			require.NoError(t, err)
			compare(t, tt.want, got)
		})
	}
}

type diag struct {
	Message   string
	Line, Col int
}

func diagnose(t *testing.T, text string, opts parser.Options) []diag {
	t.Helper()

	prog, err := parser.Parse(source.NewFile("test.ox", text), opts)
	require.Error(t, err)
	assert.Nil(t, prog)

	var out []diag
	for _, d := range report.Diagnostics(err) {
		assert.Equal(t, report.Error, d.Level)
		pos := d.Pos()
		out = append(out, diag{d.Message(), pos.Line, pos.Column})
	}
	return out
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []diag
	}{
		{
			name: "missing-semicolon",
			text: "let x = 1",
			want: []diag{{"expected `;` after expression, found end of input", 1, 10}},
		},
		{
			name: "missing-value",
			text: "let x = ;",
			want: []diag{{"unexpected `;` after `=`", 1, 9}},
		},
		{
			name: "missing-name",
			text: "let = 5;",
			want: []diag{{"expected identifier after `let`, found `=`", 1, 5}},
		},
		{
			name: "missing-equals",
			text: "let x 5;",
			want: []diag{{"expected `=` after identifier, found number", 1, 7}},
		},
		{
			name: "illegal-in-expr",
			text: "let a = 5 @ 3;",
			want: []diag{{"invalid character `@`", 1, 11}},
		},
		{
			name: "illegal-at-start",
			text: "#;",
			want: []diag{{"invalid character `#`", 1, 1}},
		},
		{
			name: "invalid-utf8",
			text: "\xff;",
			want: []diag{{"invalid character byte 0xff", 1, 1}},
		},
		{
			name: "unclosed-group",
			text: "(1 + 2;",
			want: []diag{{"expected `)` after expression, found `;`", 1, 7}},
		},
		{
			name: "unterminated-group",
			text: "(1 + 2",
			want: []diag{{"unterminated parenthesized expression", 1, 7}},
		},
		{
			name: "unterminated-block",
			text: "{ let x = 1;",
			want: []diag{{"unterminated block", 1, 13}},
		},
		{
			name: "stray-rparen",
			text: ");",
			want: []diag{{"unexpected `)` at top level", 1, 1}},
		},
		{
			name: "stray-rbrace",
			text: "}",
			want: []diag{{"unexpected `}` at top level", 1, 1}},
		},
		{
			name: "dangling-operator",
			text: "1 +;",
			want: []diag{{"unexpected `;` after `+`", 1, 4}},
		},
		{
			name: "dangling-operator-eof",
			text: "1 *",
			want: []diag{{"unexpected end of input after `*`", 1, 4}},
		},
		{
			name: "overflow",
			text: "99999999999999999999;",
			want: []diag{{"integer literal out of range", 1, 1}},
		},
		{
			name: "one-per-statement",
			text: "let = = = ;",
			want: []diag{{"expected identifier after `let`, found `=`", 1, 5}},
		},
		{
			name: "multiple",
			text: "let a = ;\nlet b = 2;\nlet c = );",
			want: []diag{
				{"unexpected `;` after `=`", 1, 9},
				{"unexpected `)` after `=`", 3, 9},
			},
		},
		{
			name: "resync-at-let",
			text: "let x = 1 let y = ;",
			want: []diag{
				{"expected `;` after expression, found `let`", 1, 11},
				{"unexpected `;` after `=`", 1, 19},
			},
		},
		{
			name: "resync-at-brace",
			text: "1 + 2 { 3 + ; }",
			want: []diag{
				{"expected `;` after expression, found `{`", 1, 7},
				{"unexpected `;` after `+`", 1, 13},
			},
		},
		{
			name: "block-recovers-locally",
			text: "{ 1 + ; }\nlet z = 3;",
			want: []diag{{"unexpected `;` after `+`", 1, 7}},
		},
		{
			name: "stray-in-block",
			text: "{ ) }",
			want: []diag{{"unexpected `)` in block", 1, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, diagnose(t, tt.text, parser.Options{}))
		})
	}
}

func TestDiagnosticKinds(t *testing.T) {
	t.Parallel()

	parse := func(text string, opts parser.Options) error {
		t.Helper()
		_, err := parser.Parse(source.NewFile("test.ox", text), opts)
		require.Error(t, err)
		return err
	}

	var unexpected parser.ErrUnexpected
	require.ErrorAs(t, parse("let x = ;", parser.Options{}), &unexpected)
	assert.Equal(t, token.Semicolon, unexpected.Token.Kind)
	require.ErrorAs(t, parse("1 *", parser.Options{}), &unexpected)
	assert.Equal(t, token.EOF, unexpected.Token.Kind)
	require.ErrorAs(t, parse(");", parser.Options{}), &unexpected)
	assert.Equal(t, token.RParen, unexpected.Token.Kind)

	var expected parser.ErrExpected
	require.ErrorAs(t, parse("let = 5;", parser.Options{}), &expected)
	assert.Equal(t, token.Assign, expected.Got.Kind)

	var illegal parser.ErrIllegalCharacter
	require.ErrorAs(t, parse("let a = 5 @ 3;", parser.Options{}), &illegal)
	assert.Equal(t, "@", illegal.Token.Text)
	require.ErrorAs(t, parse("\xff;", parser.Options{}), &illegal)
	assert.Equal(t, "\xff", illegal.Token.Text)

	var unterminated parser.ErrUnterminated
	require.ErrorAs(t, parse("(1 + 2", parser.Options{}), &unterminated)
	assert.Equal(t, token.LParen, unterminated.Open.Kind)
	require.ErrorAs(t, parse("{ let x = 1;", parser.Options{}), &unterminated)
	assert.Equal(t, token.LBrace, unterminated.Open.Kind)

	var overflow parser.ErrIntegerOverflow
	require.ErrorAs(t, parse("99999999999999999999;", parser.Options{}), &overflow)
	assert.Equal(t, "99999999999999999999", overflow.Token.Text)

	var tooDeep parser.ErrNestingTooDeep
	require.ErrorAs(t, parse("----x;", parser.Options{MaxDepth: 3}), &tooDeep)
	assert.Equal(t, 3, tooDeep.Limit)

	// Kinds are distinct: a missing `;` is not an unexpected token.
	assert.NotErrorAs(t, parse("let x = 1", parser.Options{}), &unexpected)
}

func TestDiagnosticSnippets(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse(source.NewFile("test.ox", "{ (1"), parser.Options{})
	diags := report.Diagnostics(err)
	require.Len(t, diags, 2)

	group := diags[0]
	assert.Equal(t, "unterminated parenthesized expression", group.Message())
	require.Len(t, group.Annotations, 2)
	assert.Equal(t, "expected `)`", group.Annotations[0].Message)
	assert.True(t, group.Annotations[0].Primary)
	assert.Equal(t, "`(` opened here", group.Annotations[1].Message)
	assert.Equal(t, "(", group.Annotations[1].Text())

	var unterminated parser.ErrUnterminated
	require.ErrorAs(t, diags[1].Err, &unterminated)
	assert.Equal(t, token.LBrace, unterminated.Open.Kind)

	var expected parser.ErrExpected
	_, err = parser.ParseSource("let x = 1")
	require.ErrorAs(t, err, &expected)
	assert.Equal(t, token.EOF, expected.Got.Kind)
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	opts := parser.Options{MaxDepth: 3}

	_, err := parser.Parse(source.NewFile("", "---x; ((( 1 ))); {{{ }}}"), opts)
	require.NoError(t, err)

	tooDeep := []diag{{"nesting is too deep", 1, 4}}
	assert.Equal(t, tooDeep, diagnose(t, "----x;", opts))
	assert.Equal(t, tooDeep, diagnose(t, "(((( 1 ))));", opts))
	assert.Equal(t, tooDeep, diagnose(t, "{{{{ }}}}", opts))
	assert.Equal(t, tooDeep, diagnose(t, "-((-x));", opts))

	// The skipped block does not disturb what follows.
	assert.Equal(t,
		[]diag{{"nesting is too deep", 1, 4}, {"unexpected `;` after `=`", 1, 22}},
		diagnose(t, "{{{{ 1; }}}} let y = ;", opts),
	)

	deep := strings.Repeat("(", parser.DefaultMaxDepth+1) + "1" + strings.Repeat(")", parser.DefaultMaxDepth+1) + ";"
	assert.Equal(t,
		[]diag{{"nesting is too deep", 1, parser.DefaultMaxDepth + 1}},
		diagnose(t, deep, parser.Options{}),
	)
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"let x = (1 + y) * -2; { z; }",
		"let a = ; let b = 2; { ) } let c = 1",
	} {
		prog1, err1 := parser.ParseSource(text)
		prog2, err2 := parser.ParseSource(text)
		compare(t, prog1, prog2)
		assert.Equal(t, fmt.Sprint(err1), fmt.Sprint(err2))
	}
}

func TestDiagnosticsInSourceOrder(t *testing.T) {
	t.Parallel()

	got := diagnose(t, "let a = ;\n{ 1 + ; let = 2; }\n) ;\nlet b = 1 let c = 2", parser.Options{})
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.True(t,
			prev.Line < cur.Line || (prev.Line == cur.Line && prev.Col < cur.Col),
			"%v is not before %v", prev, cur,
		)
	}
}

func TestParseTokens(t *testing.T) {
	t.Parallel()

	file := source.NewFile("", "let x = -y;")
	tokens := lexer.Tokenize(file)
	want := program(let("x", neg(ident("y"))))

	got, err := parser.ParseTokens(file, tokens, parser.Options{})
	require.NoError(t, err)
	compare(t, want, got)

	// A missing EOF is supplied.
	got, err = parser.ParseTokens(file, tokens[:len(tokens)-1], parser.Options{})
	require.NoError(t, err)
	compare(t, want, got)

	_, err = parser.ParseTokens(file, tokens[:len(tokens)-2], parser.Options{})
	assert.Equal(t, []diag{{"expected `;` after expression, found end of input", 1, 12}}, diagsOf(err))
}

func diagsOf(err error) []diag {
	var out []diag
	for _, d := range report.Diagnostics(err) {
		pos := d.Pos()
		out = append(out, diag{d.Message(), pos.Line, pos.Column})
	}
	return out
}

func TestSpans(t *testing.T) {
	t.Parallel()

	prog, err := parser.ParseSource("let x = (1 + 2) * -y;\n{ z; }")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)

	stmt := prog.Stmts[0].(*ast.LetStmt)
	assert.Equal(t, "let x = (1 + 2) * -y;", stmt.Span().Text())
	assert.Equal(t, "x", stmt.Name.Span().Text())

	mul := stmt.Value.(*ast.BinaryExpr)
	assert.Equal(t, "(1 + 2) * -y", mul.Span().Text())
	assert.Equal(t, "(1 + 2)", mul.Left.Span().Text())
	assert.Equal(t, "1 + 2", mul.Left.(*ast.GroupExpr).Inner.Span().Text())
	assert.Equal(t, "-y", mul.Right.Span().Text())

	assert.Equal(t, "{ z; }", prog.Stmts[1].Span().Text())
	assert.Equal(t, "let x = (1 + 2) * -y;\n{ z; }", prog.Span().Text())
}

func TestReporter(t *testing.T) {
	t.Parallel()

	var seen []string
	rep := reporter.NewReporter(func(d *report.Diagnostic) error {
		seen = append(seen, d.Message())
		return nil
	}, nil)

	_, err := parser.Parse(source.NewFile("", "let a = ; let b = );"), parser.Options{Reporter: rep})
	require.Error(t, err)
	assert.Equal(t, []string{"unexpected `;` after `=`", "unexpected `)` after `=`"}, seen)
	assert.Len(t, report.Diagnostics(err), 2)

	// Recovery resumes at the second let, which parses cleanly.
	seen = nil
	_, err = parser.Parse(source.NewFile("", "let x = ; let y = 2;"), parser.Options{Reporter: rep})
	require.Error(t, err)
	assert.Equal(t, []string{"unexpected `;` after `=`"}, seen)

	rest, err := parser.ParseSource("let y = 2;")
	require.NoError(t, err)
	compare(t, program(let("y", num(2))), rest)
}

func TestFailFast(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse(source.NewFile("", "let a = ; let b = );"), parser.Options{Reporter: reporter.FailFast()})
	require.Error(t, err)
	assert.Equal(t, []diag{{"unexpected `;` after `=`", 1, 9}}, diagsOf(err))

	sentinel := errors.New("stop")
	_, err = parser.Parse(source.NewFile("", "); ); );"), parser.Options{
		Reporter: reporter.NewReporter(func(*report.Diagnostic) error { return sentinel }, nil),
	})
	assert.ErrorIs(t, err, sentinel)
}

type panicky struct{ n int }

func (p *panicky) Next() token.Token {
	p.n++
	if p.n > 2 {
		panic("boom")
	}
	return token.Token{Kind: token.Identifier, Text: "x", Offset: 0, Pos: token.Position{Line: 1, Column: 1}}
}

func TestICE(t *testing.T) {
	t.Parallel()

	file := source.NewFile("ice.ox", "x")
	prog, err := parser.ParseFrom(file, &panicky{}, parser.Options{})
	assert.Nil(t, prog)
	require.Error(t, err)

	diags := report.Diagnostics(err)
	require.NotEmpty(t, diags)
	ice := diags[len(diags)-1]
	assert.Equal(t, report.ICE, ice.Level)
	assert.Contains(t, ice.Message(), "boom")
	assert.Equal(t, "ice.ox", ice.Path())
}

func TestParseFiles(t *testing.T) {
	t.Parallel()

	files := []*source.File{
		source.NewFile("a.ox", "let a = 1;"),
		source.NewFile("b.ox", "let b = ;"),
		source.NewFile("c.ox", "c;"),
	}

	results, err := parser.ParseFiles(context.Background(), parser.Options{}, 2, files...)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Same(t, files[i], r.File)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "let a = 1;\n", ast.Format(results[0].Program))
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Program)
	assert.NoError(t, results[2].Err)
}

func TestParseFilesFailFast(t *testing.T) {
	t.Parallel()

	files := []*source.File{
		source.NewFile("a.ox", "let a = ;"),
		source.NewFile("b.ox", "let b = 2;"),
	}

	results, err := parser.ParseFiles(context.Background(), parser.Options{Reporter: reporter.FailFast()}, 1, files...)
	require.Error(t, err)
	assert.Equal(t, []diag{{"unexpected `;` after `=`", 1, 9}}, diagsOf(err))
	assert.Error(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, context.Canceled)
}
