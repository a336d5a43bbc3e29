// Copyright 2026 The Diffview Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diffview computes line-level diffs between two documents, producing a pure data model
// that callers render however they like.
//
// The main entry point is [Diff], which compares two [Document] values and returns a [Model]: an
// ordered list of hunks, each a contiguous, context-bounded group of rows. A [Row] pairs at most
// one old line with at most one new line, and every [SideLine] carries segments that partition its
// text into unchanged, added and removed spans for character-level highlighting.
//
// Invariants of the returned model:
//
//   - Hunks appear in ascending document order and never overlap.
//   - For every side line, concatenating its segment texts reproduces the line text exactly, and
//     no two adjacent segments share a kind.
//   - Concatenating the old-side texts of a hunk's rows reproduces the old lines in
//     [Hunk.OldStart, Hunk.OldStart+Hunk.OldLen); symmetrically for the new side.
//   - Identical inputs produce a model with zero hunks.
//
// All functions in this package are pure: they take plain strings, allocate fresh results, hold no
// state, and are safe to call concurrently. They never fail; every valid UTF-8 input produces a
// well-defined (possibly empty) model.
//
// Note: For parsing Git conflict markers out of a single text, see
// [github.com/gitviewer/diffview/conflict].
package diffview
