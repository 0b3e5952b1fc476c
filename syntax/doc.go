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

// Package syntax defines the closed set of syntax kinds shared by the lexer,
// the grammar, and the tree packages.
//
// A [Kind] tags both terminals (tokens produced by the lexer) and
// non-terminals (interior nodes produced by the grammar). Keeping them in one
// enumeration lets the green tree treat leaves and interior nodes uniformly,
// and lets grammar drivers re-tag raw tokens without a separate vocabulary.
package syntax
