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
	"github.com/reedlang/reed/internal/ext/slicesx"
	"github.com/reedlang/reed/syntax"
)

// TokenSource is the pull-based interface a grammar uses to inspect
// upcoming tokens without knowing their storage.
//
// Indices at or past the end of the stream yield [syntax.EOF] and empty
// text, so grammar lookahead never needs explicit bounds checks.
type TokenSource interface {
	// KindAt returns the kind of the index-th token.
	KindAt(index int) syntax.Kind

	// TextAt returns the text of the index-th token.
	TextAt(index int) string
}

// Lexeme is one raw token of a pre-lexed stream: a kind and the exact
// source text, trivia included.
type Lexeme struct {
	Kind syntax.Kind
	Text string
}

// Tokens is a slice-backed [TokenSource] over a pre-lexed token stream.
type Tokens struct {
	lexemes []Lexeme
}

// NewTokens returns a token source over the given stream, which must be in
// source order.
func NewTokens(lexemes []Lexeme) Tokens {
	return Tokens{lexemes: lexemes}
}

// KindAt implements [TokenSource].
func (t Tokens) KindAt(index int) syntax.Kind {
	l, ok := slicesx.Get(t.lexemes, index)
	if !ok {
		return syntax.EOF
	}
	return l.Kind
}

// TextAt implements [TokenSource].
func (t Tokens) TextAt(index int) string {
	l, _ := slicesx.Get(t.lexemes, index)
	return l.Text
}

// Len returns the number of tokens in the stream.
func (t Tokens) Len() int {
	return len(t.lexemes)
}

// Text concatenates the whole stream back into the source text.
func (t Tokens) Text() string {
	var n int
	for _, l := range t.lexemes {
		n += len(l.Text)
	}
	buf := make([]byte, 0, n)
	for _, l := range t.lexemes {
		buf = append(buf, l.Text...)
	}
	return string(buf)
}
