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
	"github.com/reedlang/reed/green"
	"github.com/reedlang/reed/syntax"
)

// Builder assembles a syntax tree and hands back the red root.
//
// It is a thin shell over [green.Builder] and inherits its contract: the
// event sequence must be balanced, construction is single-threaded, and
// misuse panics. See the green package for details.
type Builder struct {
	green *green.Builder
}

// NewBuilder returns a Builder with a private token cache.
func NewBuilder() *Builder {
	return &Builder{green: green.NewBuilder()}
}

// NewBuilderWithCache returns a Builder interning tokens through a shared
// cache.
func NewBuilderWithCache(cache *green.Cache) *Builder {
	return &Builder{green: green.NewBuilderWithCache(cache)}
}

// StartNode opens a new node of the given kind.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.green.StartNode(kind)
}

// Token appends a token to the innermost open node.
func (b *Builder) Token(kind syntax.Kind, text string) {
	b.green.Token(kind, text)
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	b.green.FinishNode()
}

// Finish consumes the builder and returns the finished tree as a root
// [Node] with offset zero and no parent.
func (b *Builder) Finish() Node {
	return Root(b.green.Finish())
}
