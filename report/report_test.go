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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reedlang/reed/report"
)

func TestReport(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := report.NewFile("test.reed", "let x = 1;\nlet y;\n")

	var rep report.Report
	assert.Zero(rep.Len())
	assert.False(rep.HasErrors())

	rep.Warning(file.Span(4, 5), "unused binding")
	assert.False(rep.HasErrors())

	rep.Errorf(file.Span(16, 17), "expected %s", "initializer")
	assert.True(rep.HasErrors())
	assert.Equal(2, rep.Len())

	assert.Equal(
		"test.reed:1:5: warning: unused binding\n"+
			"test.reed:2:6: error: expected initializer",
		rep.String(),
	)
}

func TestReportSort(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	file := report.NewFile("test.reed", "abcdef")

	var rep report.Report
	rep.Remark(file.Span(4, 5), "third")
	rep.Error(report.Span{}, "first") // No position: sorts before everything.
	rep.Warning(file.Span(1, 2), "second")
	rep.Error(file.Span(4, 4), "also third, but errors come first")

	rep.Sort()

	var msgs []string
	for _, d := range rep.Diagnostics() {
		msgs = append(msgs, d.Message)
	}
	assert.Equal([]string{
		"first",
		"second",
		"also third, but errors come first",
		"third",
	}, msgs)
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("error", report.Error.String())
	assert.Equal("warning", report.Warning.String())
	assert.Equal("remark", report.Remark.String())
}
