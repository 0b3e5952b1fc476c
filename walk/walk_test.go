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

package walk_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/reedlang/reed/cst"
	"github.com/reedlang/reed/syntax"
	"github.com/reedlang/reed/walk"
)

// buildTree builds the tree for "a+(b)".
func buildTree() cst.Node {
	b := cst.NewBuilder()
	b.StartNode(syntax.BinExpr)
	b.StartNode(syntax.NameRef)
	b.Token(syntax.Ident, "a")
	b.FinishNode()
	b.Token(syntax.Plus, "+")
	b.StartNode(syntax.ParenExpr)
	b.Token(syntax.LParen, "(")
	b.StartNode(syntax.NameRef)
	b.Token(syntax.Ident, "b")
	b.FinishNode()
	b.Token(syntax.RParen, ")")
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	var kinds []syntax.Kind
	walk.Preorder(cst.NodeElem(buildTree()), func(nt cst.NodeOrToken) {
		kinds = append(kinds, nt.Kind())
	})

	want := []syntax.Kind{
		syntax.BinExpr,
		syntax.NameRef, syntax.Ident,
		syntax.Plus,
		syntax.ParenExpr, syntax.LParen,
		syntax.NameRef, syntax.Ident,
		syntax.RParen,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("preorder mismatch (-want +got):\n%s", diff)
	}
}

func TestPostorder(t *testing.T) {
	t.Parallel()

	var kinds []syntax.Kind
	walk.Postorder(cst.NodeElem(buildTree()), func(nt cst.NodeOrToken) {
		kinds = append(kinds, nt.Kind())
	})

	want := []syntax.Kind{
		syntax.Ident, syntax.NameRef,
		syntax.Plus,
		syntax.LParen,
		syntax.Ident, syntax.NameRef,
		syntax.RParen, syntax.ParenExpr,
		syntax.BinExpr,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("postorder mismatch (-want +got):\n%s", diff)
	}
}

func TestTraversalEquivalence(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := cst.NodeElem(buildTree())

	type visit struct {
		kind syntax.Kind
		span cst.Span
	}
	var pre, post []visit
	walk.Preorder(root, func(nt cst.NodeOrToken) {
		pre = append(pre, visit{nt.Kind(), nt.Span()})
	})
	walk.Postorder(root, func(nt cst.NodeOrToken) {
		post = append(post, visit{nt.Kind(), nt.Span()})
	})

	// Both orders visit the identical multiset of elements.
	sorted := func(s []visit) []visit {
		s = slices.Clone(s)
		slices.SortFunc(s, func(a, b visit) int {
			if a.span.Start != b.span.Start {
				return a.span.Start - b.span.Start
			}
			if a.span.End != b.span.End {
				return a.span.End - b.span.End
			}
			return int(a.kind) - int(b.kind)
		})
		return s
	}
	assert.Equal(sorted(pre), sorted(post))

	// Preorder visits a node strictly before all of its descendants;
	// postorder strictly after. The root witnesses both.
	rootVisit := visit{root.Kind(), root.Span()}
	assert.Equal(rootVisit, pre[0])
	assert.Equal(rootVisit, post[len(post)-1])
}

func TestIterate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// A leftmost descent terminates at the first token of the tree.
	offset := walk.Iterate(cst.NodeElem(buildTree()), func(cur cst.NodeOrToken) walk.Step[int] {
		if cur.IsToken() {
			return walk.Terminate(cur.Span().Start)
		}
		var first cst.NodeOrToken
		for c := range cur.ChildrenWithTokens() {
			first = c
			break
		}
		return walk.Continue[int](first)
	})
	assert.Equal(0, offset)
}

func TestTokenAt(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root := cst.NodeElem(buildTree()) // "a+(b)"

	wantKinds := []syntax.Kind{
		syntax.Ident, syntax.Plus, syntax.LParen, syntax.Ident, syntax.RParen,
	}
	for offset, want := range wantKinds {
		tok := walk.TokenAt(root, offset)
		assert.Equal(want, tok.Kind(), "offset %d", offset)
	}

	// The enclosing structure is reachable from the found token.
	b := walk.TokenAt(root, 3)
	assert.Equal("b", b.Text())
	assert.Equal(syntax.NameRef, b.Parent().Kind())
	assert.Equal(syntax.ParenExpr, b.Parent().Parent().Kind())

	assert.True(walk.TokenAt(root, -1).IsZero())
	assert.True(walk.TokenAt(root, 5).IsZero())
}
