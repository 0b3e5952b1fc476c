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

// Package green implements the immutable core representation of Reed syntax
// trees.
//
// A green tree stores kinds, text, and precomputed widths, but no absolute
// positions. Because a green node knows nothing about where it sits in a
// file, structurally identical subtrees are interchangeable: a [Node] or
// [Token] may be referenced by any number of parents, or by several tree
// versions across re-parses, without copying. Position-aware navigation is
// layered on top by the cst package.
//
// Green trees are produced exclusively through a [Builder]; there is no
// public constructor for [Node]. This is what keeps the width and ordering
// invariants true by construction: a node's width always equals the sum of
// its children's widths, and children are laid end to end in source order.
//
// Once built, a tree is immutable and safe to share across any number of
// concurrent readers.
package green
