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

// Package reporter contains the types used for reporting diagnostics from
// the parser to calling code.
//
// By default every diagnostic is accumulated and parsing continues to the end
// of the input. An [ErrorReporter] can observe diagnostics as they are found,
// and abort the parse by returning a non-nil error.
package reporter

import (
	"sync"

	"github.com/oxidelang/oxide/report"
)

// ErrorReporter is responsible for reporting the given error diagnostic. It is
// called once per error, in source order.
//
// If it returns nil, parsing continues and the diagnostic stays in the final
// report. If it returns a non-nil error, parsing stops as soon as possible and
// that error is returned from the parse in place of the report.
type ErrorReporter func(*report.Diagnostic) error

// WarningReporter is responsible for reporting the given warning. Warnings
// never stop a parse.
type WarningReporter func(*report.Diagnostic)

// Reporter is the combination of an [ErrorReporter] and a [WarningReporter].
type Reporter interface {
	Error(*report.Diagnostic) error
	Warning(*report.Diagnostic)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning. Either may be nil.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

// FailFast returns a reporter that aborts on the first error, returning it.
func FailFast() Reporter {
	return NewReporter(func(d *report.Diagnostic) error {
		return &report.AsError{Report: report.Report{Diagnostics: []report.Diagnostic{*d}}}
	}, nil)
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(d *report.Diagnostic) error {
	if r.errs == nil {
		return nil
	}
	return r.errs(d)
}

func (r reporterFuncs) Warning(d *report.Diagnostic) {
	if r.warnings != nil {
		r.warnings(d)
	}
}

// Handler is used by the parser to funnel diagnostics into a [report.Report]
// and, through its [Reporter], to the caller.
type Handler struct {
	reporter Reporter

	mu     sync.Mutex
	report report.Report
	err    error
}

// NewHandler creates a new Handler that reports to rep. If rep is nil, all
// diagnostics are accumulated.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError records err as an error diagnostic and passes it to the
// reporter. It returns a non-nil error if the reporter asked for the parse to
// stop; once that has happened, every later call returns the same error and
// records nothing.
func (h *Handler) HandleError(err report.Diagnose) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	d := h.report.Error(err)
	h.err = h.reporter.Error(d)
	return h.err
}

// HandleWarning records err as a warning diagnostic and passes it to the
// reporter.
func (h *Handler) HandleWarning(err report.Diagnose) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reporter.Warning(h.report.Warn(err))
}

// CatchICE recovers a panic into an ICE diagnostic. It must be called via
// defer. See [report.Report.CatchICE].
func (h *Handler) CatchICE(diagnose func(*report.Diagnostic)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	panicked := recover()
	if panicked != nil {
		h.report.ICE(panicked, diagnose)
	}
}

// Aborted returns whether the reporter has asked for the parse to stop.
func (h *Handler) Aborted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err != nil
}

// Report returns the diagnostics recorded so far.
func (h *Handler) Report() *report.Report {
	h.mu.Lock()
	defer h.mu.Unlock()

	return &h.report
}

// Error returns the error that the parse using this handler should return:
// the reporter's abort error if there was one, a [*report.AsError] if any
// error diagnostics were recorded, and nil otherwise.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if h.report.HasErrors() {
		return &report.AsError{Report: h.report}
	}
	return nil
}

// ReporterError returns the error returned by the reporter, if any. Unlike
// [Handler.Error], this is nil when diagnostics were merely accumulated.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
