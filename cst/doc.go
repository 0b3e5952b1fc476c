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

// Package cst provides the position-aware view over green trees: the
// "red" layer.
//
// A [Node] or [Token] wraps a green element together with its absolute byte
// offset and an upward link to the enclosing node. Wrappers are materialized
// lazily, one navigation step at a time; nothing precomputes positions for a
// whole tree. A wrapper is a small value that is created and discarded
// freely, so concurrent traversals over one finished tree never interfere.
//
// The upward links are non-owning: the green layer is the sole owner of the
// tree shape, and red wrappers only borrow it. Discarding every wrapper
// releases nothing but the wrappers themselves.
package cst
