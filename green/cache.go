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
	"strings"
	"sync"

	"github.com/reedlang/reed/syntax"
)

// Cache is a content-addressed interning table for green tokens.
//
// Interning is purely a memory optimization: repeated (kind, text) pairs,
// such as punctuation or keywords that occur throughout a file, collapse to
// one allocation. A tree built without a cache has an identical shape.
//
// A cache may be shared across several [Builder] sessions to deduplicate
// tokens across files or across incremental re-lexes of one file. The zero
// value is empty and ready to use.
type Cache struct {
	mu     sync.RWMutex
	tokens map[cacheKey]*Token
}

type cacheKey struct {
	kind syntax.Kind
	text string
}

// Intern returns the token for the given (kind, text) pair, creating and
// registering one if this cache has not seen the pair before.
//
// This function may be called by multiple goroutines concurrently.
func (c *Cache) Intern(kind syntax.Kind, text string) *Token {
	key := cacheKey{kind, text}

	// Fast path: in the common case the pair has been seen, so a read lock
	// suffices.
	c.mu.RLock()
	tok := c.tokens[key]
	c.mu.RUnlock()
	if tok != nil {
		return tok
	}

	return c.internSlow(key)
}

// Len returns the number of distinct tokens interned so far.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tokens)
}

func (c *Cache) internSlow(key cacheKey) *Token {
	// Caches are expected to be long-lived. Avoid holding onto a larger
	// buffer that the text is an internal pointer to by cloning it.
	key.text = strings.Clone(key.text)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Check again: another goroutine may have interned the pair between
	// RUnlock and Lock.
	if tok := c.tokens[key]; tok != nil {
		return tok
	}

	if c.tokens == nil {
		c.tokens = make(map[cacheKey]*Token)
	}
	tok := &Token{kind: key.kind, text: key.text}
	c.tokens[key] = tok
	return tok
}
