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

package cst

import (
	"fmt"
	"strings"

	"github.com/reedlang/reed/green"
	"github.com/reedlang/reed/syntax"
)

// Token is a red token: a green token plus its absolute offset and a
// non-owning link to the enclosing red node.
//
// The zero value is the nil token, returned to denote absence.
type Token struct {
	green  *green.Token
	offset int
	parent *Node
}

// IsZero returns whether this is the nil token.
func (t Token) IsZero() bool {
	return t.green == nil
}

// Green returns the underlying green token.
func (t Token) Green() *green.Token {
	return t.green
}

// Kind returns the token's kind. Returns [syntax.Tombstone] for the nil
// token.
func (t Token) Kind() syntax.Kind {
	if t.IsZero() {
		return syntax.Tombstone
	}
	return t.green.Kind()
}

// Text returns the exact source text of this token.
func (t Token) Text() string {
	if t.IsZero() {
		return ""
	}
	return t.green.Text()
}

// Offset returns the absolute byte offset of the token's start.
func (t Token) Offset() int {
	return t.offset
}

// Span returns the token's absolute byte range.
func (t Token) Span() Span {
	return Span{Start: t.offset, End: t.offset + t.green.Width()}
}

// Parent returns the enclosing node. Every token reachable from a root has
// one; the zero token returns the nil node.
func (t Token) Parent() Node {
	if t.parent == nil {
		return Node{}
	}
	return *t.parent
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	var sb strings.Builder
	t.dump(&sb, 0)
	return sb.String()
}

func (t Token) dump(sb *strings.Builder, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}
	fmt.Fprintf(sb, "%v @ %v: %q", t.Kind(), t.Span(), t.Text())
}
