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

package report

import (
	"fmt"
	"runtime"

	"github.com/oxidelang/oxide/source"
)

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// The file this diagnostic occurs in, if it has no associated Annotations.
	InFile string

	// A list of annotated source code spans in the diagnostic.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after the
	// Annotations.
	Notes, Help, Debug []string

	// Stack trace information for the diagnostic, for use in debugging
	// the compiler. Only populated when the env var OXIDE_DEBUG is set.
	trace []runtime.Frame
}

// Annotation is an annotated source code snippet within a [Diagnostic].
type Annotation struct {
	source.Span

	// A message to show under this snippet. May be empty.
	Message string

	// Whether this is a "primary" snippet, which is used for deciding whether or not
	// to mark the snippet with the same color as the overall diagnostic.
	Primary bool
}

// Message returns this diagnostic's main message.
func (d *Diagnostic) Message() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation.Span
		}
	}
	return source.Span{}
}

// Path returns the path of the file this diagnostic is about, if known.
func (d *Diagnostic) Path() string {
	if primary := d.Primary(); !primary.IsZero() {
		return primary.Path()
	}
	return d.InFile
}

// Pos returns the location of the start of this diagnostic's primary span,
// with columns measured in runes. Returns the zero location if there is no
// primary span.
func (d *Diagnostic) Pos() source.Location {
	primary := d.Primary()
	if primary.IsZero() {
		return source.Location{}
	}
	return primary.StartLoc()
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// InFile returns a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.InFile = path }
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others. Returns nil if at has a zero span.
func Snippet(at source.Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf returns a DiagnosticOption that adds a new snippet to a diagnostic
// with the given message.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	span := source.GetSpan(at)
	if span.IsZero() {
		return nil
	}

	// This is hoisted out to improve stack traces when something goes awry in the
	// argument to With(). By hoisting, it correctly blames the right invocation to Snippet().
	annotation := Annotation{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}

// Debug returns a DiagnosticOption that appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Debug = append(d.Debug, fmt.Sprintf(format, args...))
	}
}
