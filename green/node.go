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
	"iter"
	"strings"

	"github.com/reedlang/reed/syntax"
)

// Node is an interior green node: a kind, an ordered sequence of children,
// and the precomputed total width of its text.
//
// Invariant: the node's width equals the sum of its children's widths, and
// children are laid end to end with no gaps or overlaps. Both are enforced
// by [Builder], the only way to make a Node.
type Node struct {
	kind     syntax.Kind
	width    int
	children []Child
}

// Child is one slot of a [Node]: either a green token or a green node,
// together with its offset relative to the start of the parent.
//
// Caching the relative offset is what makes lazy absolute positions cheap:
// a red wrapper's offset is its parent's offset plus this value, with no
// sibling scan.
type Child struct {
	offset int
	node   *Node
	token  *Token
}

// Offset returns this child's offset relative to the start of its parent.
func (c Child) Offset() int {
	return c.offset
}

// Kind returns the kind of the underlying token or node.
func (c Child) Kind() syntax.Kind {
	if c.token != nil {
		return c.token.Kind()
	}
	return c.node.Kind()
}

// Width returns the width of the underlying token or node.
func (c Child) Width() int {
	if c.token != nil {
		return c.token.Width()
	}
	return c.node.Width()
}

// AsNode returns the child's node, or nil if it holds a token.
func (c Child) AsNode() *Node {
	return c.node
}

// AsToken returns the child's token, or nil if it holds a node.
func (c Child) AsToken() *Token {
	return c.token
}

// Kind returns the node's kind.
func (n *Node) Kind() syntax.Kind {
	return n.kind
}

// Width returns the total width, in bytes, of all tokens under this node.
// This is an O(1) query; the value is computed once at construction.
func (n *Node) Width() int {
	return n.width
}

// Len returns the number of immediate children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the idx-th immediate child, in source order.
//
// Panics if idx is out of range.
func (n *Node) Child(idx int) Child {
	return n.children[idx]
}

// Children returns an iterator over the immediate children in source order.
func (n *Node) Children() iter.Seq[Child] {
	return func(yield func(Child) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Text reassembles the exact source text of this subtree by concatenating
// its tokens in order.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(n.width)
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		if c.token != nil {
			sb.WriteString(c.token.text)
		} else {
			c.node.writeText(sb)
		}
	}
}

// String implements [fmt.Stringer]. It renders the subtree as an indented
// kind/text dump, one element per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, indent int) {
	for range indent {
		sb.WriteByte(' ')
	}
	fmt.Fprintf(sb, "%v:", n.kind)
	for _, c := range n.children {
		sb.WriteByte('\n')
		if c.token != nil {
			c.token.dump(sb, indent+2)
		} else {
			c.node.dump(sb, indent+2)
		}
	}
}
