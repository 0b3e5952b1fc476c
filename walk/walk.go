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

// Package walk provides traversal protocols over syntax trees: recursive
// preorder and postorder visits in document order, and a non-recursive
// cursor-following loop for search-style walks.
package walk

import (
	"iter"

	"github.com/reedlang/reed/cst"
)

// Visitor receives each element of a traversal.
type Visitor func(cst.NodeOrToken)

// Preorder visits elem, then each of its children recursively, in document
// order. A node is always visited strictly before all of its descendants.
func Preorder(elem cst.NodeOrToken, visit Visitor) {
	visit(elem)
	for c := range elem.ChildrenWithTokens() {
		Preorder(c, visit)
	}
}

// Postorder visits each of elem's children recursively, then elem itself.
// A node is always visited strictly after all of its descendants; the
// document-order guarantee among siblings is the same as [Preorder].
func Postorder(elem cst.NodeOrToken, visit Visitor) {
	for c := range elem.ChildrenWithTokens() {
		Postorder(c, visit)
	}
	visit(elem)
}

// PreorderSeq returns the preorder traversal as an iterator, for range-loop
// consumers. Stopping the iteration early abandons the rest of the walk.
func PreorderSeq(elem cst.NodeOrToken) iter.Seq[cst.NodeOrToken] {
	return func(yield func(cst.NodeOrToken) bool) {
		push(elem, yield)
	}
}

func push(elem cst.NodeOrToken, yield func(cst.NodeOrToken) bool) bool {
	if !yield(elem) {
		return false
	}
	for c := range elem.ChildrenWithTokens() {
		if !push(c, yield) {
			return false
		}
	}
	return true
}

// Tokens returns the tree's tokens in document order. Concatenating their
// text reproduces the original source exactly.
func Tokens(elem cst.NodeOrToken) iter.Seq[cst.Token] {
	return func(yield func(cst.Token) bool) {
		for nt := range PreorderSeq(elem) {
			if nt.IsToken() && !yield(nt.AsToken()) {
				return
			}
		}
	}
}
