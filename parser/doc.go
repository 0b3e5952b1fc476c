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

// Package parser defines the boundary between a grammar driver and the tree
// builder.
//
// A grammar is written purely in terms of two interfaces: it inspects
// upcoming tokens through a [TokenSource] and reports structural decisions
// through an [EventSink]. It never sees token storage or builder internals,
// so the same grammar can drive a direct build (via [Sink]) or record an
// [Event] stream for later replay (via [Apply]), which is how backtracking
// and speculative parses are supported.
//
// The grammar productions themselves live elsewhere; this package only
// provides the contract and the machinery that turns a decision stream into
// a tree plus diagnostics.
package parser
