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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reedlang/reed/syntax"
)

func TestKindNames(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("Tombstone", syntax.Tombstone.String())
	assert.Equal("EOF", syntax.EOF.String())
	assert.Equal("KwLet", syntax.KwLet.String())
	assert.Equal("Module", syntax.Module.String())
	assert.Equal("syntax.Kind(255)", syntax.Kind(255).String())

	// Every kind must have a name; an empty entry means a constant was
	// added without updating the name table.
	for k := syntax.Tombstone; ; k++ {
		name := k.String()
		if name == "" {
			t.Errorf("kind %d has no name", uint8(k))
		}
		if k == syntax.AsExpr {
			break
		}
	}
}

func TestKindByName(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	k, ok := syntax.KindByName("BlockExpr")
	assert.True(ok)
	assert.Equal(syntax.BlockExpr, k)

	_, ok = syntax.KindByName("NotAKind")
	assert.False(ok)
}

func TestKindClasses(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(syntax.Ident.IsTerminal())
	assert.True(syntax.Error.IsTerminal())
	assert.True(syntax.KwAs.IsTerminal())
	assert.False(syntax.Module.IsTerminal())
	assert.False(syntax.EOF.IsTerminal())
	assert.False(syntax.Tombstone.IsTerminal())

	assert.True(syntax.Whitespace.IsTrivia())
	assert.True(syntax.Comment.IsTrivia())
	assert.False(syntax.Ident.IsTrivia())
}
