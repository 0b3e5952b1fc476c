// Copyright 2023-2026 The Reed Authors
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
	"slices"
	"strings"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Error indicates a constraint violation in the input. The build still
	// produces a tree, but the input is not a valid program.
	Error Level = 1 + iota
	// Warning indicates something that probably should not be ignored.
	Warning
	// Remark is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int8(l))
	}
}

// Diagnostic is one reported finding about the input.
type Diagnostic struct {
	Level   Level
	Message string

	// The primary span of the diagnostic. May be the zero span for findings
	// that cannot be pinned to a position.
	Span Span
}

// String implements [fmt.Stringer], rendering the diagnostic in the
// conventional path:line:col: level: message shape.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %v: %s", d.Span, d.Level, d.Message)
}

// Report is a collection of diagnostics accumulated over one or more
// operations.
//
// The zero value is an empty report ready to use. A Report is not
// synchronized; it is owned by whichever single-threaded operation is
// producing diagnostics.
type Report struct {
	diagnostics []Diagnostic
}

// Error records an error-level diagnostic.
func (r *Report) Error(span Span, message string) {
	r.push(Diagnostic{Level: Error, Message: message, Span: span})
}

// Errorf records an error-level diagnostic with a formatted message.
func (r *Report) Errorf(span Span, format string, args ...any) {
	r.Error(span, fmt.Sprintf(format, args...))
}

// Warning records a warning-level diagnostic.
func (r *Report) Warning(span Span, message string) {
	r.push(Diagnostic{Level: Warning, Message: message, Span: span})
}

// Remark records a remark-level diagnostic.
func (r *Report) Remark(span Span, message string) {
	r.push(Diagnostic{Level: Remark, Message: message, Span: span})
}

func (r *Report) push(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns the recorded diagnostics in the order they were
// recorded.
func (r *Report) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int {
	return len(r.diagnostics)
}

// HasErrors returns whether any diagnostic is error-level.
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.diagnostics, func(d Diagnostic) bool {
		return d.Level == Error
	})
}

// Sort orders diagnostics by position: by start offset, then by severity.
// Diagnostics without a span sort first.
func (r *Report) Sort() {
	slices.SortStableFunc(r.diagnostics, func(a, b Diagnostic) int {
		as, bs := -1, -1
		if !a.Span.IsZero() {
			as = a.Span.Start
		}
		if !b.Span.IsZero() {
			bs = b.Span.Start
		}
		if as != bs {
			return as - bs
		}
		return int(a.Level) - int(b.Level)
	})
}

// String implements [fmt.Stringer], rendering one diagnostic per line.
func (r *Report) String() string {
	var sb strings.Builder
	for i, d := range r.diagnostics {
		if i != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}
