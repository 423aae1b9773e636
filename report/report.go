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

// Package report provides a robust diagnostics framework. It offers
// diagnostic construction and rendering, including "rich" diagnostics with
// source snippets.
//
// Errors produced by the parser implement [Diagnose], which describes how to
// turn them into a [Diagnostic]. A [Report] is an ordered collection of
// diagnostics for one or more files.
package report

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"slices"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Internal compiler error. Indicates a panic within the compiler.
	ICE Level = 1 + iota
	// Red. Indicates a syntax error.
	Error
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark

	note // Used internally within the diagnostic renderer.
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case ICE:
		return "internal compiler error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, err, Warning)
	err.Diagnose(d)
	return d
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) *Diagnostic {
	d := r.push(1, err, Remark)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	return len(r.Diagnostics)
}

// HasErrors returns whether this report contains any diagnostic at level
// [Error] or [ICE].
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.Level == Error || d.Level == ICE
	})
}

// Errs returns the error carried by each diagnostic, in order.
func (r *Report) Errs() []error {
	errs := make([]error, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		errs[i] = d.Err
	}
	return errs
}

// Sort sorts this report's diagnostics by the offset of their primary
// snippet. Diagnostics in different files are grouped by path. The sort is
// stable, so diagnostics at the same position keep their relative order.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		pa, pb := a.Primary(), b.Primary()
		if pa.Path() != pb.Path() {
			if pa.Path() < pb.Path() {
				return -1
			}
			return 1
		}
		return pa.Start - pb.Start
	})
}

// CatchICE will recover a panic (an internal compiler error, or ICE) and log
// it as an error diagnostic in this report. This function should be called in
// a defer statement.
//
// When doing concurrent work, CatchICE should be called inside of each child
// goroutine's entry point.
//
// If resume is true, resumes the recovered panic after logging the ICE.
//
// diagnose is called on the ICE diagnostic, and may be nil.
func (r *Report) CatchICE(resume bool, diagnose func(*Diagnostic)) {
	panicked := recover()
	if panicked == nil {
		return
	}

	r.ICE(panicked, diagnose)
	if resume {
		panic(panicked)
	}
}

// ICE records panicked as an internal compiler error. It is intended to be
// called by a deferred function that has just recovered a panic, so that the
// recorded stack includes the panicking frames.
func (r *Report) ICE(panicked any, diagnose func(*Diagnostic)) *Diagnostic {
	d := r.push(1, fmt.Errorf("unexpected panic; this is a bug in oxide: %v", panicked), ICE)
	if diagnose != nil {
		diagnose(d)
	}
	d.Debug = append(d.Debug, string(debug.Stack()))
	return d
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err, Level: level})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	// If debugging is on, capture a stack trace.
	if debugMode > debugOff {
		// Unwind the stack to find program counter information.
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		// Fill trace with the result.
		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}
