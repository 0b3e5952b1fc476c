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

// Package report provides diagnostics for the Reed front end.
//
// Parse errors are never failures of tree construction: the grammar records
// them through this package as a side channel while building the best-effort
// tree, so one syntax error does not hide the others and tooling always gets
// a tree, even over invalid input.
package report
