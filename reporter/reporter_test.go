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

package reporter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidelang/oxide/report"
	"github.com/oxidelang/oxide/reporter"
	"github.com/oxidelang/oxide/source"
)

type errAt struct {
	msg  string
	span source.Span
}

func (e errAt) Error() string { return e.msg }
func (e errAt) Diagnose(d *report.Diagnostic) { d.With(report.Snippet(e.span)) }

func TestHandlerAccumulates(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.ox", "x y z")
	h := reporter.NewHandler(nil)
	require.NoError(t, h.Error())

	for i, msg := range []string{"one", "two"} {
		assert.NoError(t, h.HandleError(errAt{msg, file.Span(i*2, i*2+1)}))
	}
	h.HandleWarning(errAt{"careful", file.Span(4, 5)})

	err := h.Error()
	require.Error(t, err)
	assert.NoError(t, h.ReporterError())
	assert.False(t, h.Aborted())

	var asErr *report.AsError
	require.ErrorAs(t, err, &asErr)
	assert.Len(t, asErr.Report.Diagnostics, 3)
	assert.Equal(t, "error: a.ox:1:1: one\nerror: a.ox:1:3: two\nwarning: a.ox:1:5: careful", err.Error())
}

func TestHandlerAborts(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.ox", "x y z")
	stop := errors.New("stop")

	var seen []string
	h := reporter.NewHandler(reporter.NewReporter(
		func(d *report.Diagnostic) error {
			seen = append(seen, d.Message())
			if len(seen) == 2 {
				return stop
			}
			return nil
		},
		nil,
	))

	assert.NoError(t, h.HandleError(errAt{"one", file.Span(0, 1)}))
	assert.ErrorIs(t, h.HandleError(errAt{"two", file.Span(2, 3)}), stop)
	assert.ErrorIs(t, h.HandleError(errAt{"three", file.Span(4, 5)}), stop)

	assert.Equal(t, []string{"one", "two"}, seen)
	assert.True(t, h.Aborted())
	assert.ErrorIs(t, h.Error(), stop)
	assert.Len(t, h.Report().Diagnostics, 2)
}

func TestFailFast(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.ox", "x")
	h := reporter.NewHandler(reporter.FailFast())
	err := h.HandleError(errAt{"bad", file.Span(0, 1)})
	require.Error(t, err)
	assert.Len(t, report.Diagnostics(err), 1)
	assert.Equal(t, err, h.Error())
}

func TestCatchICE(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	func() {
		defer h.CatchICE(nil)
		panic("boom")
	}()

	require.Error(t, h.Error())
	assert.Equal(t, report.ICE, h.Report().Diagnostics[0].Level)
}
