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
	"sync"

	"github.com/rivo/uniseg"
)

// File is a source file involved in a diagnostic.
//
// It wraps the file's path and full text, and computes line/column
// locations for byte offsets on demand. Locations are computed lazily: the
// line-start table is built on first use and shared by all lookups.
type File struct {
	path, text string

	once  sync.Once
	lines []int // Byte offset of the start of each line.
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Text returns the file's text.
func (f *File) Text() string {
	return f.text
}

// Location computes the [Location] of the given byte offset.
//
// Lines are 1-indexed. Columns are 1-indexed and counted in grapheme
// clusters, which is what a user perceives as one character.
//
// Panics if offset is out of range for the file.
func (f *File) Location(offset int) Location {
	if offset < 0 || offset > len(f.text) {
		panic(fmt.Sprintf("reed/report: offset %d out of range for %q (%d bytes)", offset, f.path, len(f.text)))
	}

	lines := f.lineStarts()
	// The line is the index of the last line start at or before offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	column := 1
	g := uniseg.NewGraphemes(f.text[lines[line]:offset])
	for g.Next() {
		column++
	}

	return Location{Offset: offset, Line: line + 1, Column: column}
}

// Span returns a span over the given byte range of this file.
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: start, End: end}
}

// EOF returns a zero-width span at the end of the file.
func (f *File) EOF() Span {
	return f.Span(len(f.text), len(f.text))
}

func (f *File) lineStarts() []int {
	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		for i := 0; i < len(f.text); i++ {
			if f.text[i] == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	})
	return f.lines
}

// Span is a byte range within a [File].
//
// The zero value is the nil span, used by diagnostics that have no position.
type Span struct {
	File *File

	Start, End int
}

// IsZero returns whether this is the nil span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the text under this span.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// StartLoc returns the location of the start of this span.
func (s Span) StartLoc() Location {
	return s.File.Location(s.Start)
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	loc := s.StartLoc()
	return fmt.Sprintf("%s:%v", s.File.Path(), loc)
}

// Location is a user-visible position within a file.
type Location struct {
	Offset int // Byte offset, 0-indexed.
	Line   int // 1-indexed.
	Column int // 1-indexed, in grapheme clusters.
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
