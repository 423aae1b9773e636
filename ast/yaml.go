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

	"gopkg.in/yaml.v3"
)

// ToYAML renders n as a YAML document describing the shape of the tree.
//
// Each node becomes a single-key mapping naming its kind: let, block, expr,
// number, ident, binary, unary or group. A [Program] becomes a sequence of
// statements.
func ToYAML(n Node) ([]byte, error) {
	return yaml.Marshal(toYAML(n))
}

func toYAML(n Node) *yaml.Node {
	switch n := n.(type) {
	case *Program:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, stmt := range n.Stmts {
			seq.Content = append(seq.Content, toYAML(stmt))
		}
		return seq

	case *LetStmt:
		return tagged("let", mapping(
			"name", scalar(n.Name.Name),
			"value", toYAML(n.Value),
		))

	case *ExprStmt:
		return tagged("expr", toYAML(n.Expr))

	case *BlockStmt:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, stmt := range n.Stmts {
			seq.Content = append(seq.Content, toYAML(stmt))
		}
		return tagged("block", seq)

	case *NumberLit:
		return tagged("number", &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(n.Value, 10),
		})

	case *Ident:
		return tagged("ident", scalar(n.Name))

	case *BinaryExpr:
		return tagged("binary", mapping(
			"op", scalar(n.Op.String()),
			"left", toYAML(n.Left),
			"right", toYAML(n.Right),
		))

	case *UnaryExpr:
		return tagged("unary", mapping(
			"op", scalar(n.Op.String()),
			"operand", toYAML(n.Operand),
		))

	case *GroupExpr:
		return tagged("group", toYAML(n.Inner))

	default:
		panic(fmt.Sprintf("oxide/ast: unexpected node type %T", n))
	}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func mapping(kv ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(kv); i += 2 {
		m.Content = append(m.Content, scalar(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return m
}

func tagged(kind string, value *yaml.Node) *yaml.Node {
	return mapping(kind, value)
}
