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

import "github.com/reedlang/reed/internal/interval"

// Index is an offset-to-token index over one finished tree, for consumers
// that perform many position lookups against the same tree (editor
// services, diagnostics rendering).
//
// A one-off lookup does not need an Index; walk.TokenAt descends the tree
// directly. Building the Index costs one full traversal, after which each
// lookup is a single B-tree search.
//
// An Index is read-only after construction and safe for concurrent use.
type Index struct {
	root   Node
	tokens interval.Map[int, Token]
}

// NewIndex builds an index of every non-empty token span under root.
func NewIndex(root Node) *Index {
	idx := &Index{root: root}
	idx.add(NodeElem(root))
	return idx
}

func (idx *Index) add(nt NodeOrToken) {
	if nt.IsToken() {
		tok := nt.AsToken()
		span := tok.Span()
		if span.Len() > 0 {
			idx.tokens.Insert(span.Start, span.End-1, tok)
		}
		return
	}
	for c := range nt.ChildrenWithTokens() {
		idx.add(c)
	}
}

// Root returns the root the index was built over.
func (idx *Index) Root() Node {
	return idx.root
}

// TokenAt returns the token whose span contains the given byte offset, or
// the nil token if the offset is out of range.
func (idx *Index) TokenAt(offset int) Token {
	got := idx.tokens.Get(offset)
	if got.Value == nil {
		return Token{}
	}
	return *got.Value
}

// Len returns the number of indexed tokens.
func (idx *Index) Len() int {
	return idx.tokens.Len()
}
