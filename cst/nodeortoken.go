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
	"iter"

	"github.com/reedlang/reed/syntax"
)

// NodeOrToken is a tagged union over [Node] and [Token], used wherever
// traversal must treat interior nodes and leaves uniformly.
//
// The zero value holds the nil node.
type NodeOrToken struct {
	node  Node
	token Token
}

// NodeElem wraps a node as a [NodeOrToken].
func NodeElem(n Node) NodeOrToken {
	return NodeOrToken{node: n}
}

// TokenElem wraps a token as a [NodeOrToken].
func TokenElem(t Token) NodeOrToken {
	return NodeOrToken{token: t}
}

// IsToken returns whether the union holds a token.
func (nt NodeOrToken) IsToken() bool {
	return !nt.token.IsZero()
}

// IsNode returns whether the union holds a non-nil node.
func (nt NodeOrToken) IsNode() bool {
	return !nt.node.IsZero()
}

// AsNode returns the held node, or the nil node if the union holds a token.
func (nt NodeOrToken) AsNode() Node {
	return nt.node
}

// AsToken returns the held token, or the nil token if the union holds a
// node.
func (nt NodeOrToken) AsToken() Token {
	return nt.token
}

// Kind returns the kind of the held element.
func (nt NodeOrToken) Kind() syntax.Kind {
	if nt.IsToken() {
		return nt.token.Kind()
	}
	return nt.node.Kind()
}

// Span returns the absolute byte range of the held element.
func (nt NodeOrToken) Span() Span {
	if nt.IsToken() {
		return nt.token.Span()
	}
	return nt.node.Span()
}

// Text returns the exact source text of the held element.
func (nt NodeOrToken) Text() string {
	if nt.IsToken() {
		return nt.token.Text()
	}
	return nt.node.Text()
}

// Parent returns the enclosing node of the held element.
func (nt NodeOrToken) Parent() Node {
	if nt.IsToken() {
		return nt.token.Parent()
	}
	return nt.node.Parent()
}

// ChildrenWithTokens returns the held element's immediate children in
// source order. Tokens have none; the returned iterator is empty.
func (nt NodeOrToken) ChildrenWithTokens() iter.Seq[NodeOrToken] {
	if nt.IsNode() {
		return nt.node.ChildrenWithTokens()
	}
	return func(func(NodeOrToken) bool) {}
}

// String implements [fmt.Stringer].
func (nt NodeOrToken) String() string {
	if nt.IsToken() {
		return nt.token.String()
	}
	return nt.node.String()
}
