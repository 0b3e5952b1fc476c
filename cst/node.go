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
	"iter"
	"strings"

	"github.com/reedlang/reed/green"
	"github.com/reedlang/reed/syntax"
)

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start, End int
}

// Len returns the width of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Node is a red node: a green node plus its absolute offset and a
// non-owning link to the enclosing red node.
//
// The zero value is the nil node, returned to denote absence.
type Node struct {
	green  *green.Node
	offset int
	parent *Node
}

// Root wraps a finished green tree as a root node at offset zero with no
// parent.
func Root(g *green.Node) Node {
	return Node{green: g}
}

// IsZero returns whether this is the nil node.
func (n Node) IsZero() bool {
	return n.green == nil
}

// Green returns the underlying green node.
func (n Node) Green() *green.Node {
	return n.green
}

// Kind returns the node's kind. Returns [syntax.Tombstone] for the nil node.
func (n Node) Kind() syntax.Kind {
	if n.IsZero() {
		return syntax.Tombstone
	}
	return n.green.Kind()
}

// Offset returns the absolute byte offset of the node's start.
func (n Node) Offset() int {
	return n.offset
}

// Span returns the node's absolute byte range. O(1): the start is cached on
// the wrapper and the width is precomputed on the green node.
func (n Node) Span() Span {
	return Span{Start: n.offset, End: n.offset + n.green.Width()}
}

// Text reassembles the exact source text under this node.
func (n Node) Text() string {
	return n.green.Text()
}

// Parent returns the enclosing node, or the nil node for the root.
func (n Node) Parent() Node {
	if n.parent == nil {
		return Node{}
	}
	return *n.parent
}

// Parents returns an iterator over this node and its ancestors, innermost
// first, ending at the root.
func (n Node) Parents() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for cur := n; !cur.IsZero(); cur = cur.Parent() {
			if !yield(cur) {
				return
			}
		}
	}
}

// ChildrenWithTokens returns an iterator over the node's immediate children
// in source order, nodes and tokens alike.
//
// Each child is wrapped lazily as it is yielded: its absolute offset is the
// parent's offset plus the child's cached relative offset, and its parent
// link refers back to this node.
func (n Node) ChildrenWithTokens() iter.Seq[NodeOrToken] {
	return func(yield func(NodeOrToken) bool) {
		parent := &n
		for c := range n.green.Children() {
			if !yield(wrap(parent, c)) {
				return
			}
		}
	}
}

// Children returns an iterator over the immediate child nodes, skipping
// tokens.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := range n.ChildrenWithTokens() {
			if c.IsToken() {
				continue
			}
			if !yield(c.AsNode()) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer]. It renders the subtree as an indented
// dump with absolute positions.
func (n Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n Node) dump(sb *strings.Builder, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}
	fmt.Fprintf(sb, "%v @ %v:", n.Kind(), n.Span())
	for c := range n.ChildrenWithTokens() {
		sb.WriteByte('\n')
		if c.IsToken() {
			c.AsToken().dump(sb, indent+2)
		} else {
			c.AsNode().dump(sb, indent+2)
		}
	}
}

func wrap(parent *Node, c green.Child) NodeOrToken {
	offset := parent.offset + c.Offset()
	if tok := c.AsToken(); tok != nil {
		return NodeOrToken{token: Token{green: tok, offset: offset, parent: parent}}
	}
	return NodeOrToken{node: Node{green: c.AsNode(), offset: offset, parent: parent}}
}
