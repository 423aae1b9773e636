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

// Package source provides the representation of oxide source files used
// throughout the compiler.
//
// The [File] type is a generic utility for converting file offsets into text
// editor coordinates. E.g., given a byte offset, what is the user-visible line
// and column number? A [Span] is a byte range within a [File]; tokens, AST
// nodes and diagnostics all carry spans.
package source
