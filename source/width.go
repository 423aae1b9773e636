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

package source

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// NonPrint defines whether or not a rune is considered "unprintable for the
// purposes of diagnostics", that is, whether it is a rune that gets replaced
// with <U+NNNN> when printed.
func NonPrint(r rune) bool {
	return !strings.ContainsRune(" \r\t\n", r) && !unicode.IsPrint(r)
}

// Width calculates the rendered width of text if placed at the given column,
// accounting for tabstops, and returns the resulting column.
func Width(column int, text string) int {
	_, end := Expand(column, text)
	return end
}

// Expand renders text as it would appear placed at the given column: tabs
// become spaces up to the next tabstop and unprintable runes become <U+NNNN>.
// It returns the rendered text and the column after it.
func Expand(column int, text string) (string, int) {
	out := expand(column, text)
	return out, column + uniseg.StringWidth(out)
}

func expand(column int, text string) string {
	// uniseg.StringWidth doesn't respect tabstops, so split on them.
	var out strings.Builder
	for text != "" {
		next := text
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		for next != "" {
			idx := strings.IndexFunc(next, NonPrint)
			if idx == -1 {
				out.WriteString(next)
				column += uniseg.StringWidth(next)
				break
			}
			chunk := next[:idx]
			r, n := utf8.DecodeRuneInString(next[idx:])
			next = next[idx+n:]

			escape := fmt.Sprintf("<U+%04X>", r)
			out.WriteString(chunk)
			out.WriteString(escape)
			column += uniseg.StringWidth(chunk) + len(escape)
		}

		if haveTab {
			tab := TabstopWidth - (column % TabstopWidth)
			column += tab
			out.WriteString(strings.Repeat(" ", tab))
		}
	}
	return out.String()
}
