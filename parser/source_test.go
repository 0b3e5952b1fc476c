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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reedlang/reed/parser"
	"github.com/reedlang/reed/syntax"
)

func TestTokenSourceEOF(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	tokens := parser.NewTokens([]parser.Lexeme{
		{Kind: syntax.Ident, Text: "a"},
		{Kind: syntax.Plus, Text: "+"},
		{Kind: syntax.Ident, Text: "b"},
	})

	assert.Equal(3, tokens.Len())
	assert.Equal("a+b", tokens.Text())
	assert.Equal(syntax.Ident, tokens.KindAt(0))
	assert.Equal("+", tokens.TextAt(1))

	// Lookahead past the end yields the EOF sentinel, never a failure.
	assert.Equal(syntax.EOF, tokens.KindAt(3))
	assert.Equal(syntax.EOF, tokens.KindAt(1000))
	assert.Equal(syntax.EOF, tokens.KindAt(-1))
	assert.Equal("", tokens.TextAt(3))
	assert.Equal("", tokens.TextAt(-1))

	empty := parser.NewTokens(nil)
	assert.Equal(syntax.EOF, empty.KindAt(0))
	assert.Equal("", empty.Text())
}
