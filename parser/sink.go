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

package parser

import (
	"fmt"
	"strings"

	"github.com/reedlang/reed/cst"
	"github.com/reedlang/reed/green"
	"github.com/reedlang/reed/internal/ext/slicesx"
	"github.com/reedlang/reed/report"
	"github.com/reedlang/reed/syntax"
)

// EventSink is the push-based interface a grammar uses to report structural
// decisions to a tree builder without knowing the builder's internals.
type EventSink interface {
	// StartNode opens a node of the given kind.
	StartNode(kind syntax.Kind)

	// FinishNode closes the innermost open node.
	FinishNode()

	// NTokens consumes the next n raw tokens of the stream, merging them
	// into a single token of the given kind. n is 1 for the ordinary case;
	// larger n re-tags adjacent raw tokens as one semantic token (e.g. two
	// colons as one path separator). NTokens(syntax.Error, n) consumes the
	// tokens without adding them to the tree.
	NTokens(kind syntax.Kind, n int)

	// Error records a recoverable diagnostic at the current position
	// without aborting construction.
	Error(msg string)
}

// Output is the result of driving a grammar to completion: the best-effort
// tree and every diagnostic recorded along the way.
type Output struct {
	Root   cst.Node
	Report *report.Report
}

// Sink is the [EventSink] that builds a tree directly.
//
// It layers stream consumption and diagnostics on the tree builder: it
// tracks which raw tokens have been consumed, merges and re-interns
// multi-token spans, and records grammar errors against the current
// position. Like the builder it wraps, a Sink is single-threaded state.
type Sink struct {
	builder *cst.Builder
	file    *report.File
	tokens  Tokens

	// Next unconsumed raw token, and the byte offset it starts at.
	index  int
	offset int

	rep report.Report
	// Kinds of the currently open nodes, for error context.
	context []syntax.Kind
	// Offset of the most recent diagnostic. Consecutive errors at one
	// position are coalesced so a stuck grammar cannot flood the report.
	lastErr int
}

// NewSink returns a Sink that consumes the given stream.
//
// file must wrap the text the stream was lexed from; it provides positions
// for diagnostics. cache may be nil, in which case the build uses a private
// token cache.
func NewSink(file *report.File, tokens Tokens, cache *green.Cache) *Sink {
	if cache == nil {
		cache = new(green.Cache)
	}
	return &Sink{
		builder: cst.NewBuilderWithCache(cache),
		file:    file,
		tokens:  tokens,
		lastErr: -1,
	}
}

// StartNode implements [EventSink].
func (s *Sink) StartNode(kind syntax.Kind) {
	s.context = append(s.context, kind)
	s.builder.StartNode(kind)
}

// FinishNode implements [EventSink].
func (s *Sink) FinishNode() {
	s.context = s.context[:len(s.context)-1]
	s.builder.FinishNode()
}

// NTokens implements [EventSink].
//
// The merged text is re-interned under the new kind, so a merged token is
// indistinguishable from one the lexer produced directly. Per-subtoken
// identity is not retained.
func (s *Sink) NTokens(kind syntax.Kind, n int) {
	var text string
	if n == 1 {
		text = s.tokens.TextAt(s.index)
	} else {
		var sb strings.Builder
		for i := range n {
			sb.WriteString(s.tokens.TextAt(s.index + i))
		}
		text = sb.String()
	}

	if kind != syntax.Error {
		s.builder.Token(kind, text)
	}
	s.index += n
	s.offset += len(text)
}

// Error implements [EventSink].
func (s *Sink) Error(msg string) {
	if s.offset == s.lastErr {
		return
	}
	s.lastErr = s.offset

	if kind, ok := slicesx.Last(s.context); ok {
		msg = fmt.Sprintf("%s in %v", msg, kind)
	}
	s.rep.Error(s.file.Span(s.offset, s.offset), msg)
}

// Finish consumes the sink and returns the finished tree and report.
//
// Panics, like [green.Builder.Finish], if the event sequence was not
// balanced.
func (s *Sink) Finish() Output {
	return Output{
		Root:   s.builder.Finish(),
		Report: &s.rep,
	}
}
