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

import "github.com/oxidelang/oxide/token"

// synchronize discards tokens after a syntax error until the parser is at a
// plausible statement boundary: just past a `;`, or at `let`, `{` or end of
// input. Inside a block, a `}` is also a boundary, so that the block can
// still be closed.
func synchronize(p *parser, inBlock bool) {
	for !p.aborted {
		switch p.peek().Kind {
		case token.EOF, token.Let, token.LBrace:
			return
		case token.RBrace:
			if inBlock {
				return
			}
		case token.Semicolon:
			p.next()
			return
		}
		p.next()
	}
}

// skipBalanced discards tokens until the open delimiter that was just
// consumed is matched by close, or until end of input.
func skipBalanced(p *parser, open, close token.Kind) {
	for depth := 1; depth > 0 && !p.at(token.EOF); {
		switch p.next().Kind {
		case open:
			depth++
		case close:
			depth--
		}
	}
}

// mustProgress is a helper for ensuring that the parser consumes at least one
// token in each loop iteration. This is intended for turning infinite loops
// into panics, which are reported as internal compiler errors.
type mustProgress struct {
	p    *parser
	prev int
}

// check panics if the parser has not advanced since the last call.
func (mp *mustProgress) check() {
	if mp.prev == mp.p.consumed {
		panic("parser failed to make progress; this is a bug in oxide")
	}
	mp.prev = mp.p.consumed
}
