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

	"github.com/petermattis/goid"

	"github.com/reedlang/reed/syntax"
)

// Builder assembles a green tree from a flat sequence of
// StartNode/Token/FinishNode calls.
//
// The call sequence must form one balanced tree: every StartNode matched by
// a FinishNode, with a single outermost node. Violating this is a bug in the
// grammar driver, not a property of user input, so Builder panics rather
// than returning an error; any tree produced from an unbalanced sequence
// would violate the width and ordering invariants.
//
// A Builder is single-threaded state. It remembers the goroutine that
// created it and panics if an event arrives from any other goroutine.
type Builder struct {
	cache *Cache
	gid   int64

	// Finished children accumulate in one flat slice; parents records, for
	// each open node, where its children begin in that slice. This avoids a
	// per-frame allocation for the common deeply-nested case.
	children []Child
	parents  []frame

	// relOffset is the write position relative to the start of the
	// innermost open node.
	relOffset int

	done bool
}

type frame struct {
	kind syntax.Kind
	// Index into Builder.children where this node's children start.
	index int
	// The relative offset of this node within its own parent, saved while
	// relOffset restarts at zero for the new frame.
	offset int
}

// NewBuilder returns a Builder with its own private token [Cache].
func NewBuilder() *Builder {
	return NewBuilderWithCache(new(Cache))
}

// NewBuilderWithCache returns a Builder that interns tokens through cache,
// which may be shared with other builders to deduplicate tokens across
// files or re-parses.
func NewBuilderWithCache(cache *Cache) *Builder {
	return &Builder{cache: cache, gid: goid.Get()}
}

// StartNode opens a new node of the given kind. Children appended until the
// matching [Builder.FinishNode] belong to it.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.check("StartNode")

	b.parents = append(b.parents, frame{
		kind:   kind,
		index:  len(b.children),
		offset: b.relOffset,
	})
	b.relOffset = 0
}

// Token interns (kind, text) and appends the resulting token to the
// innermost open node.
//
// Panics if no node is open.
func (b *Builder) Token(kind syntax.Kind, text string) {
	b.check("Token")
	if len(b.parents) == 0 {
		panic("reed/green: Token called with no open node")
	}

	tok := b.cache.Intern(kind, text)
	b.children = append(b.children, Child{offset: b.relOffset, token: tok})
	b.relOffset += tok.Width()
}

// FinishNode closes the innermost open node, computing its width as the sum
// of its children's widths, and appends it to the enclosing node (or holds
// it as the pending root if none remains open).
//
// Panics if no node is open.
func (b *Builder) FinishNode() {
	b.check("FinishNode")
	if len(b.parents) == 0 {
		panic("reed/green: FinishNode called with no open node")
	}

	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]Child, len(b.children)-top.index)
	copy(children, b.children[top.index:])
	b.children = b.children[:top.index]

	var width int
	for _, c := range children {
		width += c.Width()
	}

	node := &Node{kind: top.kind, width: width, children: children}
	b.children = append(b.children, Child{offset: top.offset, node: node})
	b.relOffset = top.offset + width
}

// Finish consumes the builder and returns the root node.
//
// Panics if any node is still open, or if the event sequence did not
// produce exactly one root node.
func (b *Builder) Finish() *Node {
	b.check("Finish")
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("reed/green: Finish called with %d open nodes", len(b.parents)))
	}
	if len(b.children) != 1 || b.children[0].node == nil {
		panic(fmt.Sprintf("reed/green: Finish called with %d roots", len(b.children)))
	}

	b.done = true
	return b.children[0].node
}

func (b *Builder) check(op string) {
	if b.done {
		panic(fmt.Sprintf("reed/green: %s called on finished Builder", op))
	}
	if g := goid.Get(); g != b.gid {
		panic(fmt.Sprintf("reed/green: %s called from goroutine %d; Builder belongs to goroutine %d", op, g, b.gid))
	}
}
