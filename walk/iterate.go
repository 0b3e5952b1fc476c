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

package walk

import "github.com/reedlang/reed/cst"

// Step is the outcome of one round of [Iterate]: either a cursor to
// continue from, or a final result.
type Step[R any] struct {
	next   cst.NodeOrToken
	result R
	done   bool
}

// Continue tells [Iterate] to keep going from next.
func Continue[R any](next cst.NodeOrToken) Step[R] {
	return Step[R]{next: next}
}

// Terminate tells [Iterate] to stop and return result.
func Terminate[R any](result R) Step[R] {
	return Step[R]{result: result, done: true}
}

// Iterate repeatedly applies step, starting from elem, following each
// Continue cursor until a Terminate, whose result it returns.
//
// This is the building block for search-style walks: the loop is explicit,
// so stack depth does not grow with tree depth or search-path length. The
// step function must guarantee eventual termination; Iterate performs no
// cycle detection.
func Iterate[R any](elem cst.NodeOrToken, step func(cst.NodeOrToken) Step[R]) R {
	for {
		s := step(elem)
		if s.done {
			return s.result
		}
		elem = s.next
	}
}

// TokenAt descends from elem to the token whose span contains the given
// byte offset. Returns the nil token if the offset lies outside elem.
func TokenAt(elem cst.NodeOrToken, offset int) cst.Token {
	span := elem.Span()
	if offset < span.Start || offset >= span.End {
		return cst.Token{}
	}

	return Iterate(elem, func(cur cst.NodeOrToken) Step[cst.Token] {
		if cur.IsToken() {
			return Terminate(cur.AsToken())
		}
		for c := range cur.ChildrenWithTokens() {
			if s := c.Span(); offset >= s.Start && offset < s.End {
				return Continue[cst.Token](c)
			}
		}
		// Interior node with no child covering offset: only possible if
		// every child is zero-width.
		return Terminate(cst.Token{})
	})
}
