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

package green

import (
	"fmt"
	"strings"

	"github.com/reedlang/reed/syntax"
)

// Token is a leaf of a green tree: a kind plus the exact source text the
// lexer saw, trivia included.
//
// Tokens are immutable. Two tokens with equal kind and text are
// interchangeable, and a [Cache] will hand out a single instance for all of
// them; identity of the pointer is therefore an implementation detail that
// only the interner may rely on.
type Token struct {
	kind syntax.Kind
	text string
}

// Kind returns the token's kind.
func (t *Token) Kind() syntax.Kind {
	return t.kind
}

// Text returns the exact source text of this token.
func (t *Token) Text() string {
	return t.text
}

// Width returns the length of the token's text in bytes.
func (t *Token) Width() int {
	return len(t.text)
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	var sb strings.Builder
	t.dump(&sb, 0)
	return sb.String()
}

func (t *Token) dump(sb *strings.Builder, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}
	fmt.Fprintf(sb, "%v: %q", t.kind, t.text)
}
